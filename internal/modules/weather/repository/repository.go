package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
)

//go:embed sql/insert-observation.sql
var insertObservationSQL string

//go:embed sql/count-observations.sql
var countObservationsSQL string

// WeatherRepository is the append-only observation store. Rows are never
// updated or deleted.
type WeatherRepository interface {
	// InsertObservation stores obs and returns it with the assigned id and the
	// insertion date and time. Caller-supplied ID, Date and Time are ignored.
	InsertObservation(ctx context.Context, obs types.Observation) (types.Observation, error)
	CountObservations(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	db  *sql.DB
	now func() time.Time
}

type Option func(*repositoryImpl)

// WithClock overrides the clock used to stamp inserted rows.
func WithClock(now func() time.Time) Option {
	return func(r *repositoryImpl) { r.now = now }
}

func NewRepository(db *sql.DB, opts ...Option) WeatherRepository {
	r := &repositoryImpl{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *repositoryImpl) InsertObservation(ctx context.Context, obs types.Observation) (types.Observation, error) {
	if !obs.Variant.Valid() {
		return types.Observation{}, fmt.Errorf("insert observation: unknown variant %q", obs.Variant)
	}

	ts := r.now()
	obs.Date = ts.Format(types.DateLayout)
	obs.Time = ts.Format(types.TimeLayout)

	res, err := r.db.ExecContext(ctx, insertObservationSQL,
		obs.Date,
		obs.Time,
		obs.Longitude,
		obs.Latitude,
		obs.Temperature,
		obs.WindSpeed,
		obs.WindDirection,
		string(obs.Variant),
	)
	if err != nil {
		return types.Observation{}, fmt.Errorf("insert observation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return types.Observation{}, fmt.Errorf("insert observation: last insert id: %w", err)
	}
	obs.ID = id
	return obs, nil
}

func (r *repositoryImpl) CountObservations(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countObservationsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return n, nil
}
