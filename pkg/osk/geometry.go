package osk

import "image"

// CellBounds splits area into one rectangle per plan cell. Each cell is
// Span/Columns of the width and 1/Rows of the height; spacing is the gap
// left between neighbouring keys.
func CellBounds(plan Plan, area image.Rectangle, spacing int) []image.Rectangle {
	bounds := make([]image.Rectangle, len(plan.Cells))
	if plan.Rows == 0 || plan.Columns == 0 {
		return bounds
	}

	width := area.Dx()
	height := area.Dy()

	for i, cell := range plan.Cells {
		x0 := area.Min.X + cell.Column*width/plan.Columns
		x1 := area.Min.X + (cell.Column+cell.Span)*width/plan.Columns
		y0 := area.Min.Y + cell.Row*height/plan.Rows
		y1 := area.Min.Y + (cell.Row+1)*height/plan.Rows

		r := image.Rect(x0, y0, x1, y1).Inset(spacing / 2)
		if r.Empty() {
			r = image.Rect(x0, y0, x1, y1)
		}
		bounds[i] = r
	}

	return bounds
}

// HitTest returns the index of the cell under pt, ignoring spacing, or -1.
func HitTest(plan Plan, area image.Rectangle, pt image.Point) int {
	if plan.Rows == 0 || plan.Columns == 0 || !pt.In(area) {
		return -1
	}

	column := band(pt.X-area.Min.X, area.Dx(), plan.Columns)
	row := band(pt.Y-area.Min.Y, area.Dy(), plan.Rows)

	idx, ok := plan.IndexAt(row, column)
	if !ok {
		return -1
	}
	return idx
}

// band returns the slot of offset when size is split into n slots at the
// boundaries i*size/n, the same rounding CellBounds uses.
func band(offset, size, n int) int {
	i := offset * n / size
	for i+1 < n && (i+1)*size/n <= offset {
		i++
	}
	return i
}
