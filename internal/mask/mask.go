// Package mask provides BitMask, a fixed-size grid of three-valued cells used
// to combine lighting and line-of-sight results.
package mask

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDimensionMismatch is returned when two grids of different sizes are combined.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// State is the value of a single mask cell.
type State uint8

const (
	// Unset means the cell has not been resolved yet.
	Unset State = iota
	// Off means the cell is resolved false.
	Off
	// On means the cell is resolved true.
	On
)

// String returns a single-character representation of the state.
func (s State) String() string {
	switch s {
	case On:
		return "#"
	case Off:
		return "."
	default:
		return "?"
	}
}

func stateOf(v bool) State {
	if v {
		return On
	}
	return Off
}

// BitMask is a width×height grid of three-valued cells, indexed by row then column.
// Or and And never modify their operands.
type BitMask struct {
	width, height int
	cells         []State
}

// New creates a mask with every cell set to fill.
func New(width, height int, fill bool) *BitMask {
	m := Empty(width, height)
	s := stateOf(fill)
	for i := range m.cells {
		m.cells[i] = s
	}
	return m
}

// Empty creates a mask with every cell unset.
func Empty(width, height int) *BitMask {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("mask: negative dimensions %dx%d", width, height))
	}
	return &BitMask{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}
}

// Width returns the number of columns.
func (m *BitMask) Width() int { return m.width }

// Height returns the number of rows.
func (m *BitMask) Height() int { return m.height }

// Get returns the state at (row, col). It panics if the cell is out of range.
func (m *BitMask) Get(row, col int) State {
	return m.cells[m.index(row, col)]
}

// On reports whether the cell at (row, col) is resolved true.
func (m *BitMask) On(row, col int) bool {
	return m.Get(row, col) == On
}

// Resolved reports whether the cell at (row, col) has been set.
func (m *BitMask) Resolved(row, col int) bool {
	return m.Get(row, col) != Unset
}

// Set resolves the cell at (row, col). It panics if the cell is out of range.
func (m *BitMask) Set(row, col int, v bool) {
	m.cells[m.index(row, col)] = stateOf(v)
}

// Or returns the cell-wise disjunction of m and other.
func (m *BitMask) Or(other *BitMask) (*BitMask, error) {
	return m.combine(other, or)
}

// And returns the cell-wise conjunction of m and other.
func (m *BitMask) And(other *BitMask) (*BitMask, error) {
	return m.combine(other, and)
}

// Apply renders glyphs through the mask: one string per row, with the glyph
// where the cell is on and a space otherwise.
func (m *BitMask) Apply(glyphs [][]rune) ([]string, error) {
	if len(glyphs) != m.height {
		return nil, fmt.Errorf("%w: mask has %d rows, glyph grid has %d", ErrDimensionMismatch, m.height, len(glyphs))
	}

	rows := make([]string, m.height)
	var sb strings.Builder
	for row, line := range glyphs {
		if len(line) != m.width {
			return nil, fmt.Errorf("%w: mask has %d columns, glyph row %d has %d", ErrDimensionMismatch, m.width, row, len(line))
		}
		sb.Reset()
		for col, g := range line {
			if m.On(row, col) {
				sb.WriteRune(g)
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[row] = sb.String()
	}
	return rows, nil
}

// Count returns the number of cells that are on.
func (m *BitMask) Count() int {
	n := 0
	for _, s := range m.cells {
		if s == On {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same size and cell states.
func (m *BitMask) Equal(other *BitMask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String dumps the mask one row per line using '#' for on, '.' for off and '?' for unset.
func (m *BitMask) String() string {
	var sb strings.Builder
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			sb.WriteString(m.Get(row, col).String())
		}
		if row < m.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *BitMask) index(row, col int) int {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		panic(fmt.Sprintf("mask: index (%d,%d) out of range %dx%d", row, col, m.height, m.width))
	}
	return row*m.width + col
}

func (m *BitMask) combine(other *BitMask, op func(a, b State) State) (*BitMask, error) {
	if m.width != other.width || m.height != other.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, m.width, m.height, other.width, other.height)
	}
	out := Empty(m.width, m.height)
	for i := range m.cells {
		out.cells[i] = op(m.cells[i], other.cells[i])
	}
	return out, nil
}

// or and and follow three-valued logic: Unset is "unknown".
func or(a, b State) State {
	switch {
	case a == On || b == On:
		return On
	case a == Unset || b == Unset:
		return Unset
	default:
		return Off
	}
}

func and(a, b State) State {
	switch {
	case a == Off || b == Off:
		return Off
	case a == Unset || b == Unset:
		return Unset
	default:
		return On
	}
}
