package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	lines := Lines()

	t.Run("catalog holds 76 lines", func(t *testing.T) {
		require.Len(t, lines, 76)
		require.Equal(t, 76, NumLines)
	})

	t.Run("catalog is built once", func(t *testing.T) {
		require.Same(t, &lines[0], &Lines()[0], "Repeated calls should share the catalog")
	})

	t.Run("lines are distinct", func(t *testing.T) {
		seen := make(map[[Size]Coord]bool, len(lines))
		for _, line := range lines {
			key := line
			// Normalize direction so a reversed line collides with the original
			if key[0].Column > key[Size-1].Column ||
				(key[0].Column == key[Size-1].Column && key[0].Row > key[Size-1].Row) ||
				(key[0].Column == key[Size-1].Column && key[0].Row == key[Size-1].Row && key[0].Height > key[Size-1].Height) {
				for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
					key[i], key[j] = key[j], key[i]
				}
			}
			require.False(t, seen[key], "Line %v should appear once", line)
			seen[key] = true
		}
	})

	t.Run("lines are straight and inside the cube", func(t *testing.T) {
		for _, line := range lines {
			step := Coord{
				Column: line[1].Column - line[0].Column,
				Row:    line[1].Row - line[0].Row,
				Height: line[1].Height - line[0].Height,
			}
			for i, at := range line {
				require.True(t, at.inside(), "Cell %v should be inside the cube", at)
				require.Equal(t, line[0].add(step, i), at, "Line %v should have a constant step", line)
			}
		}
	})

	t.Run("catalog splits into straight, slice diagonal and space diagonal lines", func(t *testing.T) {
		counts := map[int]int{}
		for _, line := range lines {
			varying := 0
			if line[0].Column != line[1].Column {
				varying++
			}
			if line[0].Row != line[1].Row {
				varying++
			}
			if line[0].Height != line[1].Height {
				varying++
			}
			counts[varying]++
		}
		require.Equal(t, 48, counts[1], "16 straight lines per axis")
		require.Equal(t, 24, counts[2], "2 diagonals per slice, 4 slices, 3 orientations")
		require.Equal(t, 4, counts[3], "4 space diagonals")
	})

	t.Run("every cell lies on at least 4 lines", func(t *testing.T) {
		through := map[Coord]int{}
		for _, line := range lines {
			for _, at := range line {
				through[at]++
			}
		}
		require.Len(t, through, Cells)
		require.Equal(t, 7, through[Coord{0, 0, 0}], "Corners lie on 3 straight, 3 slice and 1 space diagonal")
		require.Equal(t, 7, through[Coord{1, 1, 1}], "Inner cells lie on 3 straight, 3 slice and 1 space diagonal")
		require.Equal(t, 4, through[Coord{1, 0, 0}], "Edge cells lie on 3 straight lines and 1 slice diagonal")
	})
}
