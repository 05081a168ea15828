package raster

import (
	"fmt"

	"github.com/maseology/goHydro/grid"
)

// FromGDEF builds a domain from a grid definition file. Cells absent
// from the definition's active set are masked out. The definition's
// cell ids are row major, matching the domain layout.
func FromGDEF(fp string, nr, nc int, prov Provider, out Outputs) (*Domain, *grid.Definition, error) {
	gd, err := grid.ReadGDEF(fp, false)
	if err != nil {
		return nil, nil, fmt.Errorf(" raster.FromGDEF: %v", err)
	}
	if gd.Ncells() != nr*nc {
		return nil, nil, fmt.Errorf("%w: gdef holds %d cells, domain %dx%d",
			ErrShape, gd.Ncells(), nr, nc)
	}
	cw := gd.Cwidth
	d, err := NewDomain(nr, nc, cw, cw, prov, out)
	if err != nil {
		return nil, nil, err
	}
	act := make(map[int]bool, len(gd.Sactives))
	for _, c := range gd.Sactives {
		act[c] = true
	}
	d.fixed = make([]bool, nr*nc)
	for i := range d.fixed {
		if !act[i] {
			d.fixed[i] = true
			d.mask[i] = true
		}
	}
	return d, gd, nil
}
