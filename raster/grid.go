package raster

// garr is one field's buffer pair: a padded backing array with a
// one-cell ghost border and a set of interior row views aliasing it.
// Writes through the interior views land in the padded buffer; the
// ghost border is replicated from the nearest edge once at creation
// and is not refreshed afterwards. Stencil code relies on exactly
// that behaviour.
type garr struct {
	nr, nc int
	p      []float64   // (nr+2)*(nc+2), row major
	prows  [][]float64 // nr+2 row views into p
	rows   [][]float64 // nr interior row views into p
}

func newGarr(nr, nc int) *garr {
	g := &garr{
		nr: nr,
		nc: nc,
		p:  make([]float64, (nr+2)*(nc+2)),
	}
	g.prows = make([][]float64, nr+2)
	for i := 0; i < nr+2; i++ {
		g.prows[i] = g.p[i*(nc+2) : (i+1)*(nc+2)]
	}
	g.rows = make([][]float64, nr)
	for i := 0; i < nr; i++ {
		g.rows[i] = g.prows[i+1][1 : nc+1]
	}
	return g
}

// setInterior copies a flat nr*nc array into the interior views.
// The ghost border is left untouched.
func (g *garr) setInterior(a []float64) error {
	if len(a) != g.nr*g.nc {
		return ErrShape
	}
	for i := 0; i < g.nr; i++ {
		copy(g.rows[i], a[i*g.nc:(i+1)*g.nc])
	}
	return nil
}

// pad replicates the interior edge onto the ghost border.
func (g *garr) pad() {
	nr, nc := g.nr, g.nc
	for j := 0; j < nc; j++ {
		g.prows[0][j+1] = g.rows[0][j]
		g.prows[nr+1][j+1] = g.rows[nr-1][j]
	}
	for i := 0; i < nr+2; i++ {
		g.prows[i][0] = g.prows[i][1]
		g.prows[i][nc+1] = g.prows[i][nc]
	}
}
