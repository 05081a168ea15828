package raster

import (
	"encoding/gob"
	"fmt"
	"os"
)

// domainGob is the persisted descriptor of a prepared domain. Field
// buffers are transient, only the geometry, mask and output selection
// survive a save/load cycle.
type domainGob struct {
	Nr, Nc int
	Dx, Dy float64
	Mask   []bool
	Fixed  []bool
	Out    Outputs
}

// SaveGob writes the domain descriptor to fp.
func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" raster.SaveGob %v", err)
	}
	g := domainGob{Nr: d.Nr, Nc: d.Nc, Dx: d.Dx, Dy: d.Dy, Mask: d.mask, Fixed: d.fixed, Out: d.out}
	if err := gob.NewEncoder(f).Encode(g); err != nil {
		f.Close()
		return fmt.Errorf(" raster.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobDomain rebuilds a domain from a saved descriptor, attaching
// a provider for the input refreshes.
func LoadGobDomain(fp string, prov Provider) (*Domain, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	var g domainGob
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		f.Close()
		return nil, err
	}
	f.Close()
	d, err := NewDomain(g.Nr, g.Nc, g.Dx, g.Dy, prov, g.Out)
	if err != nil {
		return nil, err
	}
	if len(g.Mask) != g.Nr*g.Nc {
		return nil, fmt.Errorf("%w: saved mask holds %d cells", ErrShape, len(g.Mask))
	}
	copy(d.mask, g.Mask)
	if len(g.Fixed) == g.Nr*g.Nc {
		d.fixed = g.Fixed
	}
	return d, nil
}
