package controller

import (
	"context"
	"net/http"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
)

// ObservationRecorder samples and stores one observation.
type ObservationRecorder interface {
	Record(ctx context.Context, variant types.Variant, coords types.Coordinates) (types.Observation, error)
}

type WeatherController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type weatherControllerImpl struct {
	recorder ObservationRecorder
}

func NewWeatherController(recorder ObservationRecorder) WeatherController {
	return &weatherControllerImpl{recorder: recorder}
}

func (c *weatherControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleIndex)
	mux.HandleFunc("POST /api/weather", c.handleObservation(types.VariantFull))
	mux.HandleFunc("POST /api/weather/temp", c.handleObservation(types.VariantTemperature))
	mux.HandleFunc("POST /api/weather/wind", c.handleObservation(types.VariantWind))
}
