package httpapi

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/max-lang05/RandomWeatherAPI/internal/utils"
)

// ObservationCounter reports how many observations are stored.
type ObservationCounter interface {
	CountObservations(ctx context.Context) (int, error)
}

type healthcheck struct {
	db      *sql.DB
	counter ObservationCounter
}

type healthResponse struct {
	Status       string `json:"status"`
	Observations int    `json:"observations"`
}

func (h *healthcheck) handleHealthz(w http.ResponseWriter, r *http.Request) {
	var ok int
	if err := h.db.QueryRowContext(r.Context(), `SELECT 1`).Scan(&ok); err != nil {
		slog.Error("failed to check database connectivity", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to check database connectivity")
		return
	}

	count, err := h.counter.CountObservations(r.Context())
	if err != nil {
		slog.Error("failed to count observations", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to count observations")
		return
	}

	utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Observations: count})
}

func registerHealthcheck(mux *http.ServeMux, db *sql.DB, counter ObservationCounter) {
	h := &healthcheck{db: db, counter: counter}
	mux.HandleFunc("GET /healthz", h.handleHealthz)
}
