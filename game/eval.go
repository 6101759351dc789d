package game

// Evaluate scores the cube from player's perspective.
//
// A line completed by player is an immediate Win and a line completed by the
// opponent an immediate Loss. Otherwise every line the opponent has not yet
// blocked is worth one point, so scores range from 0 to NumLines.
func Evaluate(cube Cube, player Piece) Outcome {
	opponent := player.Opponent()
	score := 0
	for _, line := range Lines() {
		hits, misses := 0, 0
		for _, at := range line {
			switch cube.At(at) {
			case player:
				hits++
			case opponent:
				misses++
			}
		}

		switch {
		case hits == Size:
			return Win
		case misses == Size:
			return Loss
		case misses == 0:
			score++
		}
	}
	return Score(score)
}

// Winner returns the owner of the first completed line, or Empty if no line is complete.
func Winner(cube Cube) Piece {
	for _, line := range Lines() {
		owner := cube.At(line[0])
		if owner == Empty {
			continue
		}
		complete := true
		for _, at := range line[1:] {
			if cube.At(at) != owner {
				complete = false
				break
			}
		}
		if complete {
			return owner
		}
	}
	return Empty
}
