// Package board holds the fixed 4x4 letter grid the solver walks.
package board

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-boggle-engine/internal/errors"
	"github.com/gcbaptista/go-boggle-engine/model"
)

// Size is the number of rows and columns on the board.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Grid is a read-only 4x4 view of uppercase letters. 'Q' denotes the "QU" tile.
// Grid is a value type; the solver never mutates it.
type Grid [Size][Size]byte

// Parse builds a Grid from four rows of four letters. Lowercase letters are accepted
// and uppercased. Each letter is one cell; a 'Q' cell is the "QU" tile.
// Any other shape or character fails with a ValidationError before a solve starts.
func Parse(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, errors.NewValidationError("board", fmt.Sprintf("expected %d rows, got %d", Size, len(rows)))
	}
	for r, raw := range rows {
		row := strings.TrimSpace(raw)
		if len(row) != Size {
			return g, errors.NewValidationError("board", fmt.Sprintf("row %d must have %d letters, got %q", r, Size, raw))
		}
		for c := 0; c < Size; c++ {
			letter, ok := asciiUpper(row[c])
			if !ok {
				return g, errors.NewValidationError("board", fmt.Sprintf("row %d column %d: %q is not a letter A-Z", r, c, row[c]))
			}
			g[r][c] = letter
		}
	}
	return g, nil
}

// asciiUpper uppercases an ASCII letter byte. Multi-byte runes never pass, so letters
// such as 'ſ' that uppercase to ASCII are rejected.
func asciiUpper(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return b, true
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	}
	return 0, false
}

// ParseString parses a board written as "ABCD/EFGH/IJKL/MNOP".
func ParseString(s string) (Grid, error) {
	return Parse(strings.Split(s, "/"))
}

// Validate checks that every cell holds an uppercase letter A-Z. A zero Grid is invalid.
func (g *Grid) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] < 'A' || g[r][c] > 'Z' {
				return errors.NewValidationError("board", fmt.Sprintf("row %d column %d: %q is not a letter A-Z", r, c, g[r][c]))
			}
		}
	}
	return nil
}

// InBounds reports whether the cell lies on the board.
func InBounds(c model.Cell) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Adjacent reports whether two cells are distinct 8-neighbours (Chebyshev distance 1).
func Adjacent(a, b model.Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Index maps a cell to its row-major position in [0,16).
func Index(c model.Cell) int {
	return c.Row*Size + c.Col
}

// letter returns the raw board letter at the cell.
func (g *Grid) letter(c model.Cell) byte {
	return g[c.Row][c.Col]
}

// Tile returns the text a cell contributes to a word: "QU" for 'Q', the letter otherwise.
func (g *Grid) Tile(c model.Cell) string {
	l := g.letter(c)
	if l == 'Q' {
		return "QU"
	}
	return string(l)
}

// Spell reads a path off the grid, expanding Q tiles.
func (g *Grid) Spell(path []model.Cell) string {
	var sb strings.Builder
	sb.Grow(len(path) + 2)
	for _, c := range path {
		sb.WriteString(g.Tile(c))
	}
	return sb.String()
}

// Rows returns the board as four strings of single letters.
func (g *Grid) Rows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		rows[r] = string(g[r][:])
	}
	return rows
}

func (g Grid) String() string {
	return strings.Join(g.Rows(), "/")
}
