package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"sync"
)

var (
	pagesMu   sync.RWMutex
	pagesTmpl *template.Template
)

// loadTemplatesFromFS parses every *.html in dir of fsys.
// Tests use it to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	pagesMu.Lock()
	pagesTmpl = tmpl
	pagesMu.Unlock()
	return nil
}

// LoadTemplates loads the embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// IndexData is the view model for the landing page.
type IndexData struct {
	Title string
}

func RenderIndex(w io.Writer, data IndexData) error {
	pagesMu.RLock()
	tmpl := pagesTmpl
	pagesMu.RUnlock()
	if tmpl == nil {
		return errors.New("index template not loaded: call views.LoadTemplates during startup")
	}
	return tmpl.ExecuteTemplate(w, "index.html", data)
}
