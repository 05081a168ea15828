package raster

import (
	"fmt"
	"time"
)

// PopulateStatArray accumulates field k's current rate into its
// cumulative tracker, weighted by the time elapsed since the last
// accumulation. The first call for a tracker only records t as the
// baseline. Calls must carry non-decreasing instants.
// Should be called before the rate array is overwritten.
func (d *Domain) PopulateStatArray(k Field, t time.Time) error {
	sk, ok := statCorresp[k]
	if !ok {
		return fmt.Errorf("raster: field %s has no statistic tracker", k)
	}
	if !d.statSet[sk] {
		d.statT[sk] = t
		d.statSet[sk] = true
		return nil
	}
	dt := t.Sub(d.statT[sk]).Seconds()
	if dt < 0 {
		return fmt.Errorf("%w: field %s, last %v, got %v",
			ErrTimeOrder, sk, d.statT[sk], t)
	}
	conv := 1.
	if isMmh(k) {
		conv = 1. / mmhToMs
	}
	rate, st := d.g[k].rows, d.g[sk].rows
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			st[i][j] += rate[i][j] * conv * dt
		}
	}
	d.statT[sk] = t
	return nil
}

// ResetStats zeroes every statistic tracker and resets its baseline.
func (d *Domain) ResetStats(t time.Time) {
	for _, sk := range statFields {
		rows := d.g[sk].rows
		for i := 0; i < d.Nr; i++ {
			for j := 0; j < d.Nc; j++ {
				rows[i][j] = 0.
			}
		}
		d.statT[sk] = t
		d.statSet[sk] = true
	}
}

// WaterVolume returns the volume of water currently in the domain [m³].
func (d *Domain) WaterVolume() float64 { return d.Sum(H) * d.CellSurf }

// InfVolume returns the cumulated infiltration volume up to t [m³].
func (d *Domain) InfVolume(t time.Time) (float64, error) {
	if err := d.PopulateStatArray(Inf, t); err != nil {
		return 0, err
	}
	return d.Sum(StInf) * d.CellSurf, nil
}

// RainVolume returns the cumulated rainfall volume up to t [m³].
func (d *Domain) RainVolume(t time.Time) (float64, error) {
	if err := d.PopulateStatArray(Rain, t); err != nil {
		return 0, err
	}
	return d.Sum(StRain) * d.CellSurf, nil
}

// InflowVolume returns the cumulated external inflow volume up to t [m³].
func (d *Domain) InflowVolume(t time.Time) (float64, error) {
	if err := d.PopulateStatArray(Inflow, t); err != nil {
		return 0, err
	}
	return d.Sum(StInflow) * d.CellSurf, nil
}

// LossesVolume returns the cumulated capped-losses volume up to t [m³].
func (d *Domain) LossesVolume(t time.Time) (float64, error) {
	if err := d.PopulateStatArray(CappedLosses, t); err != nil {
		return 0, err
	}
	return d.Sum(StLosses) * d.CellSurf, nil
}

// NDrainVolume returns the cumulated drainage exchange volume up to t [m³].
func (d *Domain) NDrainVolume(t time.Time) (float64, error) {
	if err := d.PopulateStatArray(NDrain, t); err != nil {
		return 0, err
	}
	return d.Sum(StNDrain) * d.CellSurf, nil
}

// BoundaryVolume returns the cumulated boundary volume [m³]. The
// boundary tracker is written directly by the kernel, no rate field.
func (d *Domain) BoundaryVolume() float64 { return d.Sum(StBound) * d.CellSurf }

// ErrVolume returns the cumulated mass-balance error volume [m³].
func (d *Domain) ErrVolume() float64 { return d.Sum(StHErr) * d.CellSurf }
