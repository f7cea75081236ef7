package osk

import (
	"fmt"

	"github.com/BrandonKowalski/osk/pkg/osk/constants"
)

// CompiledCell is one renderable key after adjacent duplicates are merged.
type CompiledCell struct {
	Row    int
	Column int
	Span   int
	Label  KeyLabel
}

// Compile merges runs of identical adjacent labels within each row into a
// single spanning cell. Runs never cross row boundaries.
func Compile(grid RawGrid) []CompiledCell {
	cells := make([]CompiledCell, 0, grid.Rows()*grid.Columns())

	for r := 0; r < grid.Rows(); r++ {
		var current *CompiledCell

		for c := 0; c < grid.Columns(); c++ {
			label := grid.At(r, c)
			if current != nil && current.Label == label {
				current.Span++
				continue
			}

			if current != nil {
				cells = append(cells, *current)
			}
			current = &CompiledCell{Row: r, Column: c, Span: 1, Label: label}
		}

		if current != nil {
			cells = append(cells, *current)
		}
	}

	return cells
}

// Plan is everything a host needs to draw one layout.
type Plan struct {
	Mode    LayoutMode
	Rows    int
	Columns int
	Cells   []CompiledCell
}

// CompilePlan looks up mode in the catalog and compiles it.
func CompilePlan(mode LayoutMode) Plan {
	rows, columns, grid := Grid(mode)
	return Plan{
		Mode:    mode,
		Rows:    rows,
		Columns: columns,
		Cells:   Compile(grid),
	}
}

// Len returns the number of cells in the plan.
func (p Plan) Len() int {
	return len(p.Cells)
}

// Cell returns the cell at index i.
func (p Plan) Cell(i int) (CompiledCell, error) {
	if i < 0 || i >= len(p.Cells) {
		return CompiledCell{}, fmt.Errorf("%w: %d (plan has %d cells)", ErrCellOutOfRange, i, len(p.Cells))
	}
	return p.Cells[i], nil
}

// RowCells returns the cells of one row, left to right.
func (p Plan) RowCells(row int) []CompiledCell {
	var cells []CompiledCell
	for _, cell := range p.Cells {
		if cell.Row == row {
			cells = append(cells, cell)
		}
	}
	return cells
}

// IndexAt returns the index of the cell covering grid position (row, column).
func (p Plan) IndexAt(row, column int) (int, bool) {
	for i, cell := range p.Cells {
		if cell.Row == row && column >= cell.Column && column < cell.Column+cell.Span {
			return i, true
		}
	}
	return -1, false
}

// CellName returns the control name of cell i, e.g. buttonKeyR3C7.
func (p Plan) CellName(i int) string {
	if i < 0 || i >= len(p.Cells) {
		return ""
	}
	cell := p.Cells[i]
	return fmt.Sprintf("%s%s%d%s%d",
		constants.KeyButtonNamePrefix,
		constants.KeyButtonNameRowPrefix, cell.Row,
		constants.KeyButtonNameColumnPrefix, cell.Column)
}

// Direction is a navigation move between cells.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Navigate moves from cell index from one step in dir, wrapping around the
// edges. Vertical moves keep the starting column where the target row has a
// cell covering it.
func (p Plan) Navigate(from int, dir Direction) int {
	if len(p.Cells) == 0 {
		return -1
	}
	if from < 0 || from >= len(p.Cells) {
		return 0
	}

	cell := p.Cells[from]

	switch dir {
	case DirectionUp, DirectionDown:
		row := cell.Row - 1
		if dir == DirectionDown {
			row = cell.Row + 1
		}
		if row < 0 {
			row = p.Rows - 1
		}
		if row >= p.Rows {
			row = 0
		}
		if idx, ok := p.IndexAt(row, cell.Column); ok {
			return idx
		}
		return from

	case DirectionLeft, DirectionRight:
		rowCells := p.RowCells(cell.Row)
		pos := 0
		for i, rc := range rowCells {
			if rc.Column == cell.Column {
				pos = i
				break
			}
		}
		if dir == DirectionLeft {
			pos--
			if pos < 0 {
				pos = len(rowCells) - 1
			}
		} else {
			pos++
			if pos >= len(rowCells) {
				pos = 0
			}
		}
		idx, _ := p.IndexAt(cell.Row, rowCells[pos].Column)
		return idx
	}

	return from
}
