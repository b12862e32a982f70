package ring

// ChartSize is the width and height of the square the ring runs around.
const ChartSize = 5

// cells[i] is the (row, col) of ring position i on the chart.
var cells = [Positions][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}, // top edge, left to right
	{1, 4}, {2, 4}, {3, 4}, // right edge, downwards
	{4, 4}, {4, 3}, {4, 2}, {4, 1}, {4, 0}, // bottom edge, right to left
	{3, 0}, {2, 0}, {1, 0}, // left edge, upwards
}

// Cell returns the chart coordinates of a ring position.
func Cell(pos int) (row, col int) {
	c := cells[pos]
	return c[0], c[1]
}

// PositionAt returns the ring position drawn at (row, col), or false for
// the interior and for coordinates off the chart.
func PositionAt(row, col int) (int, bool) {
	for i, c := range cells {
		if c[0] == row && c[1] == col {
			return i, true
		}
	}
	return 0, false
}
