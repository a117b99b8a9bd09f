package tapcode

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const wordSeparator = "|"

// Encode renders message as tap pairs. Whitespace becomes a word separator and any
// other character missing from the grid fails the whole call.
func (g *Grid) Encode(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	marker := string(g.marker)
	var out strings.Builder
	for _, ch := range strings.ToLower(message) {
		if unicode.IsSpace(ch) {
			out.WriteString(wordSeparator)
			continue
		}
		row, col, ok := g.Locate(ch)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrCharacterNotInGrid, ch)
		}
		out.WriteString(strings.Repeat(marker, row+1))
		out.WriteByte(' ')
		out.WriteString(strings.Repeat(marker, col+1))
		out.WriteByte(' ')
	}
	return strings.TrimRightFunc(out.String(), unicode.IsSpace), nil
}

// Decode reads "|" separated words of tap pairs back into text, one space per word.
func (g *Grid) Decode(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyInput
	}

	var out strings.Builder
	for i, word := range strings.Split(code, wordSeparator) {
		taps := strings.Fields(word)
		if len(taps)%2 != 0 {
			return "", fmt.Errorf("%w: word %d has %d tokens", ErrMalformedTapSequence, i+1, len(taps))
		}
		for j := 0; j < len(taps); j += 2 {
			rows, err := g.countTaps(taps[j])
			if err != nil {
				return "", err
			}
			cols, err := g.countTaps(taps[j+1])
			if err != nil {
				return "", err
			}
			ch, ok := g.At(rows-1, cols-1)
			if !ok {
				return "", fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinates, rows, cols)
			}
			out.WriteRune(ch)
		}
		out.WriteByte(' ')
	}
	return strings.TrimRightFunc(out.String(), unicode.IsSpace), nil
}

// countTaps returns the number of markers in token; every rune must be the marker.
func (g *Grid) countTaps(token string) (int, error) {
	for _, r := range token {
		if r != g.marker {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTapToken, token)
		}
	}
	return utf8.RuneCountInString(token), nil
}
