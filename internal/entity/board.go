package entity

const (
	LetterS     Letter = "S"
	LetterO     Letter = "O"
	EmptyLetter Letter = ""

	PlayerBlue Player = "blue"
	PlayerRed  Player = "red"
	NoPlayer   Player = ""

	MinBoardSize = 3
	// MaxBoardSize is the largest board a front-end should offer. NewBoard does not enforce it.
	MaxBoardSize = 12
)

// Letter is the value written into a cell.
type Letter string

// Player identifies who moves and who owns a placed letter.
type Player string

// Opponent returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerBlue {
		return PlayerRed
	}
	return PlayerBlue
}

// Cell keeps a letter and its owner together, so they are always written by the same move.
type Cell struct {
	Letter Letter `json:"letter,omitempty"`
	Owner  Player `json:"owner,omitempty"`
}

// Board holds the grid plus turn and move bookkeeping. It does no validation of its own.
type Board struct {
	Size      int      `json:"size"`
	Cells     [][]Cell `json:"cells"`
	Turn      Player   `json:"turn"`
	MoveCount int      `json:"move_count"`
}

func NewBoard(size int) Board {
	if size < MinBoardSize {
		size = MinBoardSize
	}

	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}

	return Board{
		Size:  size,
		Cells: cells,
		Turn:  PlayerBlue,
	}
}

func (that *Board) InBounds(r, c int) bool {
	return r >= 0 && r < that.Size && c >= 0 && c < that.Size
}

func (that *Board) IsCellEmpty(r, c int) bool {
	return that.InBounds(r, c) && that.Cells[r][c].Letter == EmptyLetter
}

// GetCell returns EmptyLetter for coordinates outside the board.
func (that *Board) GetCell(r, c int) Letter {
	if !that.InBounds(r, c) {
		return EmptyLetter
	}
	return that.Cells[r][c].Letter
}

// GetCellOwner returns NoPlayer for coordinates outside the board.
func (that *Board) GetCellOwner(r, c int) Player {
	if !that.InBounds(r, c) {
		return NoPlayer
	}
	return that.Cells[r][c].Owner
}

func (that *Board) ToggleTurn() {
	that.Turn = that.Turn.Opponent()
}

func (that *Board) IsFull() bool {
	return that.MoveCount >= that.Size*that.Size
}

// placeCell expects an empty in-bounds cell; the caller checks that.
func (that *Board) placeCell(r, c int, letter Letter, owner Player) {
	that.Cells[r][c] = Cell{Letter: letter, Owner: owner}
	that.MoveCount++
}
