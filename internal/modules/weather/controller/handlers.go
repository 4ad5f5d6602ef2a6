package controller

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/views"
	"github.com/max-lang05/RandomWeatherAPI/internal/utils"
)

func (c *weatherControllerImpl) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, views.IndexData{Title: "Weather API"}); err != nil {
		slog.Error("index template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	utils.WriteHTML(w, http.StatusOK, buf.Bytes())
}

// handleObservation serves one endpoint variant: validate, sample, store, project.
func (c *weatherControllerImpl) handleObservation(variant types.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coords, err := parseCoordinates(w, r)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		obs, err := c.recorder.Record(r.Context(), variant, coords)
		if err != nil {
			slog.Error("record observation failed", "variant", variant, "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to store observation")
			return
		}

		body, err := variant.Project(obs)
		if err != nil {
			slog.Error("project observation failed", "variant", variant, "id", obs.ID, "error", err)
			utils.WriteError(w, http.StatusInternalServerError, "failed to build response")
			return
		}
		utils.WriteJSON(w, http.StatusOK, body)
	}
}
