package service

import (
	"context"
	"errors"
	"testing"

	"github.com/max-lang05/RandomWeatherAPI/internal/modules/weather/types"
)

type fixedSampler struct {
	temp, speed, dir int
	calls            int
}

func (f *fixedSampler) Temperature() int   { f.calls++; return f.temp }
func (f *fixedSampler) WindSpeed() int     { f.calls++; return f.speed }
func (f *fixedSampler) WindDirection() int { f.calls++; return f.dir }

type mockRepo struct {
	inserted  []types.Observation
	insertErr error
}

func (m *mockRepo) InsertObservation(_ context.Context, obs types.Observation) (types.Observation, error) {
	if m.insertErr != nil {
		return types.Observation{}, m.insertErr
	}
	m.inserted = append(m.inserted, obs)
	obs.ID = int64(len(m.inserted))
	obs.Date = "2026-10-15"
	obs.Time = "12:00:00"
	return obs, nil
}

func (m *mockRepo) CountObservations(context.Context) (int, error) {
	return len(m.inserted), nil
}

type mockPublisher struct {
	published []types.Observation
	err       error
}

func (m *mockPublisher) PublishObservation(obs types.Observation) error {
	m.published = append(m.published, obs)
	return m.err
}

func TestRecord_SamplingPerVariant(t *testing.T) {
	tests := []struct {
		variant   types.Variant
		wantTemp  int
		wantSpeed int
		wantDir   int
		wantCalls int
	}{
		{variant: types.VariantFull, wantTemp: 25, wantSpeed: 10, wantDir: 180, wantCalls: 3},
		{variant: types.VariantTemperature, wantTemp: 25, wantCalls: 1},
		{variant: types.VariantWind, wantSpeed: 10, wantDir: 180, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			repo := &mockRepo{}
			smp := &fixedSampler{temp: 25, speed: 10, dir: 180}
			svc := NewService(repo, smp, nil, nil)

			got, err := svc.Record(context.Background(), tt.variant, types.Coordinates{Longitude: -122.4, Latitude: 37.8})
			if err != nil {
				t.Fatalf("Record: %v", err)
			}
			if smp.calls != tt.wantCalls {
				t.Errorf("sampler calls = %d, want %d", smp.calls, tt.wantCalls)
			}
			if len(repo.inserted) != 1 {
				t.Fatalf("inserted %d rows, want 1", len(repo.inserted))
			}
			row := repo.inserted[0]
			if row.Temperature != tt.wantTemp || row.WindSpeed != tt.wantSpeed || row.WindDirection != tt.wantDir {
				t.Errorf("stored measurements = %d/%d/%d, want %d/%d/%d",
					row.Temperature, row.WindSpeed, row.WindDirection, tt.wantTemp, tt.wantSpeed, tt.wantDir)
			}
			if row.Longitude != -122.4 || row.Latitude != 37.8 {
				t.Errorf("coordinates = %v/%v", row.Longitude, row.Latitude)
			}
			if row.Variant != tt.variant {
				t.Errorf("variant = %q, want %q", row.Variant, tt.variant)
			}
			if got.ID != 1 || got.Date == "" || got.Time == "" {
				t.Errorf("returned observation missing store fields: %+v", got)
			}
		})
	}
}

func TestRecord_StorageErrorNotPublished(t *testing.T) {
	storeErr := errors.New("disk full")
	pub := &mockPublisher{}
	svc := NewService(&mockRepo{insertErr: storeErr}, &fixedSampler{}, pub, nil)

	_, err := svc.Record(context.Background(), types.VariantFull, types.Coordinates{})
	if !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want %v", err, storeErr)
	}
	if len(pub.published) != 0 {
		t.Fatalf("published %d observations after failed insert", len(pub.published))
	}
}

func TestRecord_PublishesStoredObservation(t *testing.T) {
	pub := &mockPublisher{}
	svc := NewService(&mockRepo{}, &fixedSampler{temp: 1, speed: 2, dir: 3}, pub, nil)

	got, err := svc.Record(context.Background(), types.VariantWind, types.Coordinates{Longitude: 5, Latitude: 6})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d, want 1", len(pub.published))
	}
	if pub.published[0] != got {
		t.Errorf("published %+v, want %+v", pub.published[0], got)
	}
}

func TestRecord_PublishFailureIgnored(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := NewService(&mockRepo{}, &fixedSampler{}, pub, nil)

	if _, err := svc.Record(context.Background(), types.VariantFull, types.Coordinates{}); err != nil {
		t.Fatalf("Record with failing publisher: %v", err)
	}
}
