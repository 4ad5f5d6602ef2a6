package service

import (
	"context"
	"log/slog"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/repository"
	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
)

// Sampler draws the synthetic measurements.
type Sampler interface {
	Temperature() int
	WindSpeed() int
	WindDirection() int
}

// ObservationPublisher forwards stored observations to an external feed.
type ObservationPublisher interface {
	PublishObservation(obs types.Observation) error
}

type Service struct {
	repository repository.WeatherRepository
	sampler    Sampler
	publisher  ObservationPublisher
	logger     *slog.Logger
}

// NewService wires the observation pipeline. publisher may be nil when the feed is disabled.
func NewService(repository repository.WeatherRepository, sampler Sampler, publisher ObservationPublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repository: repository,
		sampler:    sampler,
		publisher:  publisher,
		logger:     logger,
	}
}

// Record samples the measurements variant asks for, zeroes the rest and stores
// the observation. Publishing is best effort: once the row is stored the
// observation is returned even if the feed is down.
func (s *Service) Record(ctx context.Context, variant types.Variant, coords types.Coordinates) (types.Observation, error) {
	obs := types.Observation{
		Longitude: coords.Longitude,
		Latitude:  coords.Latitude,
		Variant:   variant,
	}
	if variant.SamplesTemperature() {
		obs.Temperature = s.sampler.Temperature()
	}
	if variant.SamplesWind() {
		obs.WindSpeed = s.sampler.WindSpeed()
		obs.WindDirection = s.sampler.WindDirection()
	}

	stored, err := s.repository.InsertObservation(ctx, obs)
	if err != nil {
		return types.Observation{}, err
	}

	s.logger.Debug("observation stored",
		"id", stored.ID,
		"variant", variant,
		"longitude", stored.Longitude,
		"latitude", stored.Latitude,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishObservation(stored); err != nil {
			s.logger.Warn("publish observation failed",
				"id", stored.ID,
				"variant", variant,
				"error", err,
			)
		}
	}
	return stored, nil
}
