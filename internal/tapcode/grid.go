package tapcode

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Size is the number of rows and columns in every grid.
	Size = 5
	// Cells is the number of characters an alphabet must provide.
	Cells = Size * Size

	// DefaultAlphabet is the classic tap code square with "j" folded out.
	DefaultAlphabet = "abcdefghiklmnopqrstuvwxyz"
	// DefaultTapMarker renders one tap.
	DefaultTapMarker = '.'
)

// Grid is an immutable 5x5 character table plus the marker used to render taps.
// Replace a Grid wholesale instead of mutating it; see Active.
type Grid struct {
	cells  [Size][Size]rune
	marker rune
}

// New builds a grid from a 25 character alphabet, lower-cased and chunked row-major.
func New(alphabet string, marker rune) (*Grid, error) {
	if len(alphabet) != Cells {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAlphabetLength, len(alphabet))
	}
	runes := []rune(strings.ToLower(alphabet))
	if len(runes) != Cells {
		return nil, fmt.Errorf("%w: got %d runes", ErrInvalidAlphabetLength, len(runes))
	}

	g := &Grid{marker: marker}
	seen := make(map[rune]struct{}, Cells)
	for i, r := range runes {
		if unicode.IsSpace(r) || r == '|' {
			return nil, fmt.Errorf("%w: %q", ErrSeparatorCharacter, r)
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCharacter, r)
		}
		seen[r] = struct{}{}
		g.cells[i/Size][i%Size] = r
	}
	return g, nil
}

// Default returns the grid built from DefaultAlphabet and DefaultTapMarker.
func Default() *Grid {
	g, err := New(DefaultAlphabet, DefaultTapMarker)
	if err != nil {
		panic(err)
	}
	return g
}

// WithMarker returns a copy of g that renders taps with marker.
func (g *Grid) WithMarker(marker rune) *Grid {
	next := *g
	next.marker = marker
	return &next
}

func (g *Grid) Marker() rune {
	return g.marker
}

// Rows returns a copy of the cell table.
func (g *Grid) Rows() [Size][Size]rune {
	return g.cells
}

// Alphabet returns the 25 cells concatenated row-major.
func (g *Grid) Alphabet() string {
	var b strings.Builder
	b.Grow(Cells * utf8.UTFMax)
	for _, row := range g.cells {
		for _, r := range row {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Locate scans rows then columns and returns the first cell holding r.
func (g *Grid) Locate(r rune) (row int, col int, ok bool) {
	for i, cells := range g.cells {
		for j, c := range cells {
			if c == r {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// At returns the cell at (row, col), or false when either index is outside the grid.
func (g *Grid) At(row int, col int) (rune, bool) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, false
	}
	return g.cells[row][col], true
}
