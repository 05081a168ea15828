package raster

import (
	"fmt"
	"math"
	"time"
)

// conversion factor between mm/h and m/s
const mmhToMs = 1000. * 3600.

// Domain groups every raster of the simulation domain: externally
// supplied inputs refreshed through TimedArrays, internal working
// fields written by the numerical kernel, and cumulative statistic
// trackers. It owns the masking and unmasking of arrays.
type Domain struct {
	Nr, Nc   int
	Dx, Dy   float64
	CellSurf float64

	mask  []bool // true = invalid/outside-domain cell, nr*nc
	fixed []bool // permanently masked cells (grid definition), may be nil

	g     [nfield]*garr
	tarr  [nfield]*TimedArray // input fields only
	isnew [nfield]bool

	statT   [nfield]time.Time // last accumulation instant
	statSet [nfield]bool

	out Outputs
}

// NewDomain builds a domain of nr x nc cells of size dx x dy. All
// arrays start zeroed, the mask starts all-valid and is recomputed
// from the elevation NaN pattern on the first input refresh.
func NewDomain(nr, nc int, dx, dy float64, prov Provider, out Outputs) (*Domain, error) {
	if nr < 1 || nc < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, nr, nc)
	}
	d := &Domain{
		Nr: nr, Nc: nc,
		Dx: dx, Dy: dy,
		CellSurf: dx * dy,
		mask:     make([]bool, nr*nc),
		out:      out,
	}
	for f := Field(0); f < nfield; f++ {
		d.g[f] = newGarr(nr, nc)
		d.isnew[f] = true
	}
	d.isnew[NDrain] = false
	for _, f := range inputFields {
		d.tarr[f] = NewTimedArray(f, prov, d.Zeros)
	}
	return d, nil
}

// Zeros returns a flat zero-filled array of the domain dimension.
// Used as the default for absent input maps.
func (d *Domain) Zeros() []float64 { return make([]float64, d.Nr*d.Nc) }

// Arr returns the interior row views of field f. Writes are visible
// in the padded buffer.
func (d *Domain) Arr(f Field) [][]float64 { return d.g[f].rows }

// Padded returns the padded row views of field f, one ghost cell of
// border on every side.
func (d *Domain) Padded(f Field) [][]float64 { return d.g[f].prows }

// UpdateInputArrays refreshes every input field whose cached window
// no longer covers t. The elevation is processed first: when it
// changed, the mask is recomputed from its NaN pattern before any
// field is masked.
func (d *Domain) UpdateInputArrays(t time.Time) error {
	for _, f := range inputFields {
		ta := d.tarr[f]
		if ta.IsValid(t) {
			d.isnew[f] = false
			continue
		}
		a, err := ta.Get(t)
		if err != nil {
			return err
		}
		if f == Dem {
			// note: the kernel must recompute flow directions after this
			d.updateMask(a)
		}
		if err := d.UpdateArray(f, a); err != nil {
			return err
		}
		d.isnew[f] = true
	}
	return nil
}

// UpdateArray writes a flat array into field f's interior and applies
// masking with the field-specific fill value.
func (d *Domain) UpdateArray(f Field, a []float64) error {
	if len(a) != d.Nr*d.Nc {
		return fmt.Errorf("%w: field %s, got %d cells, want %d",
			ErrShape, f, len(a), d.Nr*d.Nc)
	}
	if err := d.g[f].setInterior(a); err != nil {
		return fmt.Errorf("field %s: %w", f, err)
	}
	d.maskArray(f, fillValue(f))
	return nil
}

func fillValue(f Field) float64 {
	switch f {
	case Dem:
		return math.MaxFloat64
	case Friction:
		return 1.
	}
	return 0.
}

// updateMask marks NaN cells of the elevation array as outside the
// simulated domain.
func (d *Domain) updateMask(dem []float64) {
	for i, v := range dem {
		d.mask[i] = math.IsNaN(v)
	}
	for i := range d.fixed {
		if d.fixed[i] {
			d.mask[i] = true
		}
	}
}

// maskArray replaces NaN and out-of-domain cells by the fill value.
// After masking no interior cell holds a NaN.
func (d *Domain) maskArray(f Field, fill float64) {
	rows := d.g[f].rows
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			if d.mask[i*d.Nc+j] || math.IsNaN(rows[i][j]) {
				rows[i][j] = fill
			}
		}
	}
}

// Unmasked returns a flat copy of field f with NaN restored on
// out-of-domain cells.
func (d *Domain) Unmasked(f Field) []float64 {
	rows := d.g[f].rows
	u := make([]float64, d.Nr*d.Nc)
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			if d.mask[i*d.Nc+j] {
				u[i*d.Nc+j] = math.NaN()
			} else {
				u[i*d.Nc+j] = rows[i][j]
			}
		}
	}
	return u
}

// UpdateExtArray recombines the forcing fields into Ext [m/s] when at
// least one of them changed this step. Rainfall and infiltration are
// held in mm/h, inflow and the drainage source term in m/s.
func (d *Domain) UpdateExtArray() {
	if !(d.isnew[Inflow] || d.isnew[Rain] || d.isnew[Inf] || d.isnew[NDrain]) {
		d.isnew[Ext] = false
		return
	}
	qext, rain, inf, qd := d.g[Inflow].rows, d.g[Rain].rows, d.g[Inf].rows, d.g[NDrain].rows
	ext := d.g[Ext].rows
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			ext[i][j] = qext[i][j] + rain[i][j]/mmhToMs - inf[i][j]/mmhToMs + qd[i][j]
		}
	}
	d.isnew[Ext] = true
}

// IsNew reports whether field f was refreshed during the current step.
func (d *Domain) IsNew(f Field) bool { return d.isnew[f] }

// SetNew flags field f as refreshed. The drainage coupling uses it
// after writing the source term.
func (d *Domain) SetNew(f Field, isnew bool) { d.isnew[f] = isnew }

// SwapArrays exchanges the buffers of two fields, interior and padded
// alike, without copying. Used to promote the kernel's "new" fields.
func (d *Domain) SwapArrays(k1, k2 Field) {
	d.g[k1], d.g[k2] = d.g[k2], d.g[k1]
}

// Mask reports whether the cell at (row, col) lies outside the
// simulated domain.
func (d *Domain) Mask(row, col int) bool { return d.mask[row*d.Nc+col] }

// Max returns the maximum interior value of field f.
func (d *Domain) Max(f Field) float64 {
	rows := d.g[f].rows
	m := math.Inf(-1)
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			if rows[i][j] > m {
				m = rows[i][j]
			}
		}
	}
	return m
}

// Sum returns the interior sum of field f. Out-of-domain cells hold
// benign defaults so they do not corrupt the sum.
func (d *Domain) Sum(f Field) float64 {
	rows := d.g[f].rows
	s := 0.
	for i := 0; i < d.Nr; i++ {
		for j := 0; j < d.Nc; j++ {
			s += rows[i][j]
		}
	}
	return s
}
