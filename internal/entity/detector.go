package entity

// Line marks a completed S-O-S by its two S endpoints. The O sits in the middle.
type Line struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckForSOS returns the lines completed by the letter at (r, c).
// Only runs that start at (r, c) are scanned, so the played cell has to be an S endpoint.
func CheckForSOS(board *Board, r, c int) []Line {
	lines := make([]Line, 0)

	for _, d := range directions {
		dr, dc := d[0], d[1]

		if formsSOS(board, r, c, dr, dc) {
			lines = append(lines, Line{R1: r, C1: c, R2: r + 2*dr, C2: c + 2*dc})
		}

		if formsSOS(board, r, c, -dr, -dc) {
			lines = append(lines, Line{R1: r, C1: c, R2: r - 2*dr, C2: c - 2*dc})
		}
	}

	return lines
}

func formsSOS(board *Board, r, c, dr, dc int) bool {
	if !board.InBounds(r, c) || !board.InBounds(r+dr, c+dc) || !board.InBounds(r+2*dr, c+2*dc) {
		return false
	}

	return board.Cells[r][c].Letter == LetterS &&
		board.Cells[r+dr][c+dc].Letter == LetterO &&
		board.Cells[r+2*dr][c+2*dc].Letter == LetterS
}
