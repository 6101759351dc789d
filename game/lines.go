package game

import "sync"

// Coord addresses a single cell.
type Coord struct {
	Column int
	Row    int
	Height int
}

func (c Coord) add(d Coord, times int) Coord {
	return Coord{
		Column: c.Column + d.Column*times,
		Row:    c.Row + d.Row*times,
		Height: c.Height + d.Height*times,
	}
}

func (c Coord) inside() bool {
	return c.Column >= 0 && c.Column < Size &&
		c.Row >= 0 && c.Row < Size &&
		c.Height >= 0 && c.Height < Size
}

// Line is a set of cells that wins the game when one player occupies all of them.
type Line [Size]Coord

// NumLines is the size of the catalog: 48 straight lines, 24 slice diagonals and 4 space diagonals.
const NumLines = 3*Pillars + 2*Size*3 + 4

// One vector per orientation; opposite vectors describe the same lines.
var directions = [...]Coord{
	// Axes
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	// Diagonals within axis-aligned slices
	{1, 1, 0}, {1, -1, 0},
	{1, 0, 1}, {1, 0, -1},
	{0, 1, 1}, {0, 1, -1},
	// Space diagonals
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
}

var (
	catalog     []Line
	catalogOnce sync.Once
)

// Lines returns the catalog of all winning lines. The slice is shared and must not be modified.
func Lines() []Line {
	catalogOnce.Do(func() {
		catalog = buildLines()
	})
	return catalog
}

func buildLines() []Line {
	lines := make([]Line, 0, NumLines)
	for _, d := range directions {
		for column := 0; column < Size; column++ {
			for row := 0; row < Size; row++ {
				for height := 0; height < Size; height++ {
					start := Coord{column, row, height}
					// A line starts on the boundary and spans the whole cube
					if start.add(d, -1).inside() || !start.add(d, Size-1).inside() {
						continue
					}
					var line Line
					for i := range line {
						line[i] = start.add(d, i)
					}
					lines = append(lines, line)
				}
			}
		}
	}
	return lines
}
