package drainage

import (
	"fmt"

	"github.com/maseology/mmaths"
)

// Link is one conduit/pump/regulator of the 1D network. Kept for
// reporting; links take no part in the surface coupling.
type Link struct {
	ID                 string
	StartNode, EndNode string
	Vertices           []mmaths.Point

	LinkData
}

func NewLink(eng Engine, id, startNode, endNode string, vertices []mmaths.Point) (*Link, error) {
	l := &Link{ID: id, StartNode: startNode, EndNode: endNode, Vertices: vertices}
	if err := l.Update(eng); err != nil {
		return nil, err
	}
	return l, nil
}

// Update refreshes the link record from the engine.
func (l *Link) Update(eng Engine) error {
	ld, err := eng.LinkData(l.ID)
	if err != nil {
		return fmt.Errorf("drainage: link %s: %w", l.ID, err)
	}
	l.LinkData = ld
	return nil
}
