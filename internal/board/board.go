// Package board holds the cell records of the drawn 8x8 grid.
package board

import (
	"fmt"

	"github.com/hailam/boarddraw/internal/layout"
)

// CellSizeFactor is a cell's size as a fraction of one grid unit.
const CellSizeFactor = 0.95

// Material selects one of the two shared cell colors.
type Material uint8

const (
	Light Material = iota
	Dark
)

func (m Material) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Material(%d)", uint8(m))
}

// MaterialAt returns the checkerboard material of cell (x, y).
func MaterialAt(x, y int) Material {
	if (x+y+1)%2 == 0 {
		return Light
	}
	return Dark
}

// Coord is a cell's grid coordinate. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Valid reports whether c lies on the board.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < layout.Columns && c.Y >= 0 && c.Y < layout.Rows
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is one square of the board. Center and Size are derived from the
// window by Resize and hold nothing else.
type Cell struct {
	Coord      Coord
	SizeFactor float64
	Material   Material

	Center layout.Point
	Size   layout.Size
}

// Board is the fixed list of cells.
type Board struct {
	Cells []Cell
}

// New creates the 64 cells, columns outer and rows inner.
func New() *Board {
	b := &Board{Cells: make([]Cell, 0, layout.Columns*layout.Rows)}
	for x := 0; x < layout.Columns; x++ {
		for y := 0; y < layout.Rows; y++ {
			b.Cells = append(b.Cells, Cell{
				Coord:      Coord{X: x, Y: y},
				SizeFactor: CellSizeFactor,
				Material:   MaterialAt(x, y),
			})
		}
	}
	return b
}

// Resize recomputes every cell's size and center for window w. The cells
// are left untouched if w has no usable size.
func (b *Board) Resize(w layout.Window) error {
	if err := layout.Check(w); err != nil {
		return err
	}
	for i := range b.Cells {
		c := &b.Cells[i]
		c.Size = layout.CellSize(c.SizeFactor, w)
		c.Center = layout.CellCenter(c.Coord.X, c.Coord.Y, w)
	}
	return nil
}

// At returns the cell at c, or nil if c is off the board.
func (b *Board) At(c Coord) *Cell {
	if !c.Valid() {
		return nil
	}
	i := c.X*layout.Rows + c.Y
	if i >= len(b.Cells) {
		return nil
	}
	return &b.Cells[i]
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.Cells)
}
