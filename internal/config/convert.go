package config

import (
	"github.com/danmuck/tapcode/internal/gridfile"
	"github.com/danmuck/tapcode/internal/tapcode"
)

// Grid builds the startup grid described by cfg.
func Grid(cfg Config) (*tapcode.Grid, error) {
	marker, err := ParseMarker(cfg.TapMarker)
	if err != nil {
		return nil, err
	}
	return tapcode.New(cfg.Alphabet, marker)
}

// Store returns the grid file store described by cfg.
func Store(cfg Config) gridfile.Store {
	return gridfile.NewStore(cfg.GridFile)
}
