package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
)

const (
	maxBodyBytes     = 1 << 20
	maxMultipartMem  = 1 << 20
	blankMessageTmpl = "%s cannot be blank"
)

var validate = validator.New()

// coordinatesInput holds the parsed request fields; nil means absent or unparseable.
type coordinatesInput struct {
	Longitude *float64 `validate:"required"`
	Latitude  *float64 `validate:"required"`
}

// parseCoordinates reads longitude and latitude from a JSON object body, a
// form body or the query string. Bounds are not checked.
func parseCoordinates(w http.ResponseWriter, r *http.Request) (types.Coordinates, error) {
	lookup, err := requestValues(w, r)
	if err != nil {
		return types.Coordinates{}, err
	}

	in := coordinatesInput{
		Longitude: parseFloat(lookup("longitude")),
		Latitude:  parseFloat(lookup("latitude")),
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return types.Coordinates{}, fmt.Errorf(blankMessageTmpl, verrs[0].Field())
		}
		return types.Coordinates{}, err
	}

	return types.Coordinates{Longitude: *in.Longitude, Latitude: *in.Latitude}, nil
}

// requestValues returns a lookup over the request's parameters. JSON body
// fields take precedence over the query string.
func requestValues(w http.ResponseWriter, r *http.Request) (func(string) any, error) {
	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ = mime.ParseMediaType(ct)
	}

	switch mediaType {
	case "application/json":
		fields, err := decodeJSONObject(w, r)
		if err != nil {
			return nil, err
		}
		query := r.URL.Query()
		return func(key string) any {
			if v, ok := fields[key]; ok && v != nil {
				return v
			}
			if query.Has(key) {
				return query.Get(key)
			}
			return nil
		}, nil
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
			return nil, errors.New("malformed form body")
		}
	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, errors.New("malformed form body")
		}
	}

	return func(key string) any {
		if !r.Form.Has(key) {
			return nil
		}
		return r.Form.Get(key)
	}, nil
}

func decodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errors.New("malformed JSON body")
	}
	if fields == nil {
		// literal null
		return map[string]any{}, nil
	}
	return fields, nil
}

// parseFloat accepts JSON numbers and numeric strings. Non-finite values are rejected.
func parseFloat(v any) *float64 {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return nil
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
