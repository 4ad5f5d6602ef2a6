package weather

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/controller"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/repository"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/sampler"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/service"
)

// RegisterFeature mounts the landing page and the observation endpoints on
// mux. publisher may be nil.
func RegisterFeature(mux *http.ServeMux, db *sql.DB, publisher service.ObservationPublisher) {
	weatherRepository := repository.NewRepository(db)
	weatherService := service.NewService(weatherRepository, sampler.New(), publisher, slog.Default())
	weatherController := controller.NewWeatherController(weatherService)
	weatherController.RegisterRoutes(mux)
}
