package types

import "fmt"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Variant selects which measurements an endpoint samples and returns.
type Variant string

const (
	VariantFull        Variant = "full"
	VariantTemperature Variant = "temperature"
	VariantWind        Variant = "wind"
)

func (v Variant) Valid() bool {
	switch v {
	case VariantFull, VariantTemperature, VariantWind:
		return true
	}
	return false
}

// SamplesTemperature reports whether the variant draws a temperature.
func (v Variant) SamplesTemperature() bool {
	return v == VariantFull || v == VariantTemperature
}

// SamplesWind reports whether the variant draws wind speed and direction.
func (v Variant) SamplesWind() bool {
	return v == VariantFull || v == VariantWind
}

// Coordinates are caller-supplied and never range checked.
type Coordinates struct {
	Longitude float64
	Latitude  float64
}

// Observation is one stored row. Measurements a variant does not sample are stored as 0.
type Observation struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
	Temperature   int     `json:"temperature"`
	WindSpeed     int     `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Variant       Variant `json:"variant"`
}

type FullWeather struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Longitude     float64 `json:"longitude"`
	Latitude      float64 `json:"latitude"`
	Temperature   int     `json:"temperature"`
	WindSpeed     int     `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
}

type TemperatureReading struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
}

type WindReading struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	WindSpeed     int    `json:"windSpeed"`
	WindDirection int    `json:"windDirection"`
}

// Project returns the response shape of v for obs.
func (v Variant) Project(obs Observation) (any, error) {
	switch v {
	case VariantFull:
		return FullWeather{
			ID:            obs.ID,
			Date:          obs.Date,
			Time:          obs.Time,
			Longitude:     obs.Longitude,
			Latitude:      obs.Latitude,
			Temperature:   obs.Temperature,
			WindSpeed:     obs.WindSpeed,
			WindDirection: obs.WindDirection,
		}, nil
	case VariantTemperature:
		return TemperatureReading{
			ID:          obs.ID,
			Date:        obs.Date,
			Time:        obs.Time,
			Temperature: obs.Temperature,
		}, nil
	case VariantWind:
		return WindReading{
			ID:            obs.ID,
			Date:          obs.Date,
			Time:          obs.Time,
			WindSpeed:     obs.WindSpeed,
			WindDirection: obs.WindDirection,
		}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", v)
	}
}
