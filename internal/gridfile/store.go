// Package gridfile persists a grid as its 25 cells written row-major with no delimiter.
package gridfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/rs/zerolog/log"
)

// DefaultFileName is the grid file used when no path is configured.
const DefaultFileName = "tapcode_grid.txt"

var (
	ErrInvalidGridFileLength = errors.New("gridfile: grid file must contain exactly 25 characters")
	ErrGridFileUnreadable    = errors.New("gridfile: could not read grid file, ensure it exists and is accessible")
)

// Store reads and writes one grid file.
type Store struct {
	path string
}

// NewStore returns a store for path, falling back to DefaultFileName in cwd.
func NewStore(path string) Store {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = DefaultFileName
	}
	return Store{path: resolved}
}

func (s Store) Path() string {
	return s.path
}

// Save writes the grid cells, creating parent directories as needed.
func (s Store) Save(g *tapcode.Grid) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, []byte(g.Alphabet()), 0o644); err != nil {
		return err
	}
	log.Debug().Str("path", s.path).Msg("grid saved")
	return nil
}

// Read returns the raw file content after checking its length.
func (s Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGridFileUnreadable, err)
	}
	if len(data) != tapcode.Cells {
		return "", fmt.Errorf("%w: got %d", ErrInvalidGridFileLength, len(data))
	}
	return string(data), nil
}

// Load reads the file and builds a grid rendered with marker.
func (s Store) Load(marker rune) (*tapcode.Grid, error) {
	alphabet, err := s.Read()
	if err != nil {
		return nil, err
	}
	g, err := tapcode.New(alphabet, marker)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", s.path).Msg("grid loaded")
	return g, nil
}
