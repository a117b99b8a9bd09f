package tapcode

import "sync/atomic"

// Active holds the grid currently in use. Readers always observe a complete grid;
// writers replace it with Swap.
type Active struct {
	grid atomic.Pointer[Grid]
}

// NewActive starts with g, or Default when g is nil.
func NewActive(g *Grid) *Active {
	if g == nil {
		g = Default()
	}
	a := &Active{}
	a.grid.Store(g)
	return a
}

func (a *Active) Load() *Grid {
	return a.grid.Load()
}

// Swap installs next and returns the grid it replaced. A nil next is ignored.
func (a *Active) Swap(next *Grid) *Grid {
	if next == nil {
		return a.grid.Load()
	}
	return a.grid.Swap(next)
}
