package raster

import (
	"fmt"
	"time"
)

// Provider supplies raw field arrays with validity windows. A nil
// array with a nil error means "no map for this field, use defaults".
// The returned window must contain the requested instant.
type Provider interface {
	Fetch(f Field, t time.Time) (a []float64, start, end time.Time, err error)
}

// TimedArray caches the most recent array fetched for a field along
// with the window [aStart,aEnd] it is valid for. Only one window is
// kept; repeated Get calls inside the window are O(1).
type TimedArray struct {
	field        Field
	prov         Provider
	def          func() []float64
	arr          []float64
	aStart, aEnd time.Time
}

// NewTimedArray starts with an inverted window so the first Get
// always fetches.
func NewTimedArray(f Field, prov Provider, def func() []float64) *TimedArray {
	return &TimedArray{
		field:  f,
		prov:   prov,
		def:    def,
		aStart: time.Unix(1, 0),
		aEnd:   time.Unix(0, 0),
	}
}

// IsValid reports whether the stored array covers instant t.
func (ta *TimedArray) IsValid(t time.Time) bool {
	return !t.Before(ta.aStart) && !t.After(ta.aEnd)
}

// Get returns an array guaranteed valid for instant t, refetching
// from the provider when the stored window no longer covers it.
func (ta *TimedArray) Get(t time.Time) ([]float64, error) {
	if !ta.IsValid(t) {
		if err := ta.refresh(t); err != nil {
			return nil, err
		}
	}
	return ta.arr, nil
}

func (ta *TimedArray) refresh(t time.Time) error {
	a, start, end, err := ta.prov.Fetch(ta.field, t)
	if err != nil {
		return fmt.Errorf("raster: fetch %s at %v: %w", ta.field, t, err)
	}
	if a == nil {
		a = ta.def()
	}
	if t.Before(start) || t.After(end) {
		return fmt.Errorf("%w: field %s, instant %v, window [%v, %v]",
			ErrOutsideWindow, ta.field, t, start, end)
	}
	ta.aStart, ta.aEnd, ta.arr = start, end, a
	return nil
}
