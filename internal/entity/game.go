package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// ModeSimple ends the game on the first SOS.
	ModeSimple = "simple"
	// ModeGeneral scores every SOS and ends when the board is full.
	ModeGeneral = "general"
)

type Game struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
	Board

	Status         string         `json:"status"`
	Winner         Player         `json:"winner,omitempty"`
	Scores         map[Player]int `json:"scores,omitempty"`
	LastSOSLines   []Line         `json:"last_sos_lines"`
	LastMovePlayer Player         `json:"last_move_player,omitempty"`
}

// Outcome is the final answer for a game: still running, won by someone, or drawn.
type Outcome struct {
	Finished bool   `json:"finished"`
	Winner   Player `json:"winner,omitempty"`
	Draw     bool   `json:"draw"`
}

func IsKnownMode(mode string) bool {
	return mode == ModeSimple || mode == ModeGeneral
}

func NewGame(id, mode string, size int) (*Game, error) {
	if !IsKnownMode(mode) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	game := &Game{
		ID:   id,
		Mode: mode,
	}
	game.Reset(size)

	return game, nil
}

// Reset starts the game over on an empty board of the given size.
func (that *Game) Reset(size int) {
	that.Board = NewBoard(size)
	that.Status = StatusOngoing
	that.Winner = NoPlayer
	that.LastSOSLines = []Line{}
	that.LastMovePlayer = NoPlayer

	that.Scores = nil
	if that.Mode == ModeGeneral {
		that.Scores = map[Player]int{PlayerBlue: 0, PlayerRed: 0}
	}
}

// NormalizeLetter accepts "s", " O " and the like. It returns EmptyLetter for anything else.
func NormalizeLetter(raw string) Letter {
	switch letter := Letter(strings.ToUpper(strings.TrimSpace(raw))); letter {
	case LetterS, LetterO:
		return letter
	default:
		return EmptyLetter
	}
}

// MakeMove places letter at (r, c) for the player whose turn it is.
// A rejected move returns an apperror sentinel and leaves the game untouched.
func (that *Game) MakeMove(r, c int, rawLetter string) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	letter := NormalizeLetter(rawLetter)
	if letter == EmptyLetter {
		return fmt.Errorf("%w: got %q", apperror.ErrInvalidLetter, rawLetter)
	}

	if !that.InBounds(r, c) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, r, c)
	}

	if !that.IsCellEmpty(r, c) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, r, c)
	}

	mover := that.Turn
	that.placeCell(r, c, letter, mover)
	that.LastMovePlayer = mover
	that.LastSOSLines = CheckForSOS(&that.Board, r, c)

	that.applyMoveOutcome(mover, that.LastSOSLines)

	return nil
}

func (that *Game) applyMoveOutcome(mover Player, lines []Line) {
	switch that.Mode {
	case ModeSimple:
		if len(lines) > 0 {
			that.Winner = mover
			that.Status = StatusFinished
			return
		}

		that.ToggleTurn()
	case ModeGeneral:
		that.Scores[mover] += len(lines)
		that.ToggleTurn()

		if that.IsFull() {
			that.Status = StatusFinished
		}
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Score returns zero in simple mode.
func (that *Game) Score(player Player) int {
	return that.Scores[player]
}

// Outcome also reports a simple game that filled up without an SOS as a finished draw.
func (that *Game) Outcome() Outcome {
	switch that.Mode {
	case ModeSimple:
		if that.Winner != NoPlayer {
			return Outcome{Finished: true, Winner: that.Winner}
		}

		if that.IsFull() {
			return Outcome{Finished: true, Draw: true}
		}
	case ModeGeneral:
		if !that.IsFinished() {
			return Outcome{}
		}

		blue, red := that.Score(PlayerBlue), that.Score(PlayerRed)
		switch {
		case blue > red:
			return Outcome{Finished: true, Winner: PlayerBlue}
		case red > blue:
			return Outcome{Finished: true, Winner: PlayerRed}
		default:
			return Outcome{Finished: true, Draw: true}
		}
	}

	return Outcome{}
}
