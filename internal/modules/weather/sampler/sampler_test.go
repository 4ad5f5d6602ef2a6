package sampler

import (
	"sync"
	"testing"
)

func TestSampler_StaysInRange(t *testing.T) {
	s := New()
	for i := 0; i < 5000; i++ {
		if v := s.Temperature(); !TemperatureRange.Contains(v) {
			t.Fatalf("Temperature() = %d, outside %v", v, TemperatureRange)
		}
		if v := s.WindSpeed(); !WindSpeedRange.Contains(v) {
			t.Fatalf("WindSpeed() = %d, outside %v", v, WindSpeedRange)
		}
		if v := s.WindDirection(); !WindDirectionRange.Contains(v) {
			t.Fatalf("WindDirection() = %d, outside %v", v, WindDirectionRange)
		}
	}
}

func TestSampler_HitsBothBounds(t *testing.T) {
	s := NewSeeded(42)
	seenMin, seenMax := false, false
	// 46 possible values; 20000 draws miss a bound with negligible probability.
	for i := 0; i < 20000 && !(seenMin && seenMax); i++ {
		switch s.Temperature() {
		case TemperatureRange.Min:
			seenMin = true
		case TemperatureRange.Max:
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("bounds not inclusive: sawMin=%v sawMax=%v", seenMin, seenMax)
	}
}

func TestNewSeeded_Reproducible(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 100; i++ {
		if x, y := a.WindDirection(), b.WindDirection(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestSampler_ConcurrentUse(t *testing.T) {
	s := NewSeeded(1)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if v := s.WindSpeed(); !WindSpeedRange.Contains(v) {
					t.Errorf("WindSpeed() = %d out of range", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRange_Contains(t *testing.T) {
	r := Range{Min: -5, Max: 40}
	for _, tc := range []struct {
		v    int
		want bool
	}{{-6, false}, {-5, true}, {0, true}, {40, true}, {41, false}} {
		if got := r.Contains(tc.v); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
