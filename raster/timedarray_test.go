package raster

import (
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	arrs    map[Field][]float64
	start   time.Time
	end     time.Time
	fetches int
	err     error
	badWin  bool
}

func (p *fakeProvider) Fetch(f Field, t time.Time) ([]float64, time.Time, time.Time, error) {
	p.fetches++
	if p.err != nil {
		return nil, time.Time{}, time.Time{}, p.err
	}
	if p.badWin {
		return p.arrs[f], t.Add(time.Hour), t.Add(2 * time.Hour), nil
	}
	return p.arrs[f], p.start, p.end, nil
}

func t0() time.Time { return time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC) }

func TestTimedArrayFreshIsInvalid(t *testing.T) {
	p := &fakeProvider{start: t0(), end: t0().Add(time.Hour)}
	ta := NewTimedArray(Rain, p, func() []float64 { return make([]float64, 4) })
	for _, at := range []time.Time{t0().Add(-time.Hour), t0(), t0().Add(24 * time.Hour)} {
		if ta.IsValid(at) {
			t.Fatalf("fresh TimedArray valid at %v", at)
		}
	}
	if _, err := ta.Get(t0()); err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.fetches != 1 {
		t.Fatalf("first get triggered %d fetches, want 1", p.fetches)
	}
}

func TestTimedArraySingleFetchInsideWindow(t *testing.T) {
	p := &fakeProvider{
		arrs:  map[Field][]float64{Rain: {1, 2, 3, 4}},
		start: t0(), end: t0().Add(time.Hour),
	}
	ta := NewTimedArray(Rain, p, func() []float64 { return make([]float64, 4) })
	a1, err := ta.Get(t0().Add(10 * time.Minute))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	a2, err := ta.Get(t0().Add(50 * time.Minute))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.fetches != 1 {
		t.Fatalf("refetch count %d, want 1", p.fetches)
	}
	if &a1[0] != &a2[0] {
		t.Fatalf("buffers differ inside validity window")
	}
	// past the window, a second fetch
	if _, err := ta.Get(t0().Add(2 * time.Hour)); err == nil && p.fetches != 2 {
		t.Fatalf("refetch count %d, want 2", p.fetches)
	}
}

func TestTimedArrayDefaultOnNil(t *testing.T) {
	p := &fakeProvider{start: t0(), end: t0().Add(time.Hour)}
	ta := NewTimedArray(Inflow, p, func() []float64 { return make([]float64, 6) })
	a, err := ta.Get(t0())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(a) != 6 {
		t.Fatalf("default length %d, want 6", len(a))
	}
	for i, v := range a {
		if v != 0 {
			t.Fatalf("default not zero at %d: %g", i, v)
		}
	}
}

func TestTimedArrayWindowViolation(t *testing.T) {
	p := &fakeProvider{arrs: map[Field][]float64{Rain: {0}}, badWin: true}
	ta := NewTimedArray(Rain, p, func() []float64 { return make([]float64, 1) })
	if _, err := ta.Get(t0()); !errors.Is(err, ErrOutsideWindow) {
		t.Fatalf("got %v, want ErrOutsideWindow", err)
	}
}

func TestTimedArrayProviderError(t *testing.T) {
	boom := errors.New("boom")
	p := &fakeProvider{err: boom}
	ta := NewTimedArray(Rain, p, func() []float64 { return make([]float64, 1) })
	if _, err := ta.Get(t0()); !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped provider error", err)
	}
}
