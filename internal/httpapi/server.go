package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/max-lang05/RandomWeatherAPI/internal/config"
)

// NewHandler wraps mux with request logging and a CORS policy that admits
// every origin.
func NewHandler(mux http.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return requestLogger(logger, cors.AllowAll().Handler(mux))
}

func NewServer(cfg config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(mux, slog.Default()),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
