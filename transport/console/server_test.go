package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/repository"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, mode string, size int, input ...string) string {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewNoopResultRepository())
	server := New(logger, manager, mode, size)

	var out bytes.Buffer
	err := server.Start(context.Background(), strings.NewReader(strings.Join(input, "\n")), &out)
	require.NoError(t, err)

	return out.String()
}

func TestServer_Start(t *testing.T) {
	t.Run("Opens a default game on start", func(t *testing.T) {
		// When: the console starts with no input
		out := runConsole(t, entity.ModeSimple, 4)

		// Then: an empty 4x4 board is shown with blue to move
		assert.Contains(t, out, "new simple game on a 4x4 board")
		assert.Contains(t, out, "  3  .  .  .  .\n")
		assert.Contains(t, out, "Current turn: blue")
	})

	t.Run("Fails when the default mode is unknown", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		manager := usecase.NewGameManager(logger, repository.NewNoopResultRepository())
		server := New(logger, manager, "ladder", 3)

		err := server.Start(context.Background(), strings.NewReader(""), io.Discard)

		require.Error(t, err)
	})

	t.Run("Fails when the default size is too large", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		manager := usecase.NewGameManager(logger, repository.NewNoopResultRepository())
		server := New(logger, manager, entity.ModeSimple, entity.MaxBoardSize+1)

		err := server.Start(context.Background(), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrBadArguments)
		assert.Nil(t, manager.Game())
	})

	t.Run("Skips an overlong line and keeps reading", func(t *testing.T) {
		// Given: a line far past the read limit followed by a normal move
		long := "move " + strings.Repeat("9", 3*maxLineLength)

		// When: both are fed to the console
		out := runConsole(t, entity.ModeSimple, 3, long, "move 0 0 S")

		// Then: the long line is reported and the move still lands
		assert.Contains(t, out, "error: line too long")
		assert.Contains(t, out, "  0 Sb  .  .\n")
	})

	t.Run("Stops reading after quit", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3, "quit", "move 0 0 S")

		assert.NotContains(t, out, "Sb")
	})
}

func TestServer_Move(t *testing.T) {
	t.Run("Simple win is announced", func(t *testing.T) {
		// Given / When: blue completes the top row
		out := runConsole(t, entity.ModeSimple, 3,
			"move 0 0 S",
			"move 0 1 o",
			"move 0 2 s",
		)

		// Then: the board shows owners, the line and the winner
		assert.Contains(t, out, "  0 Sb Or Sb\n")
		assert.Contains(t, out, "SOS by blue: (0,2)-(0,0)")
		assert.Contains(t, out, "Game over: Blue wins by forming SOS!")
	})

	t.Run("General game shows scores and a draw", func(t *testing.T) {
		input := []string{"new general 3"}
		for i := 0; i < 9; i++ {
			input = append(input, "move "+string(rune('0'+i/3))+" "+string(rune('0'+i%3))+" O")
		}

		out := runConsole(t, entity.ModeSimple, 3, input...)

		assert.Contains(t, out, "new general game on a 3x3 board")
		assert.Contains(t, out, "Blue: 0 | Red: 0")
		assert.Contains(t, out, "Game over: It's a draw!")
	})

	t.Run("Rejected moves print an error and continue", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3,
			"move 1 1 S",
			"move 1 1 O",
			"move 9 9 S",
			"move 0 0 X",
			"move a 0 S",
			"move 0",
			"board",
		)

		assert.Contains(t, out, "error: failed to make move: cell is already occupied")
		assert.Contains(t, out, "error: failed to make move: cell is out of bounds")
		assert.Contains(t, out, "error: failed to make move: letter must be S or O")
		assert.Contains(t, out, "error: bad arguments: row \"a\" is not a number")
		assert.Contains(t, out, "error: bad arguments: move <row> <col> <S|O>")
		assert.Contains(t, out, "Current turn: red")
	})

	t.Run("Moves after the end are refused", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3,
			"move 0 0 S",
			"move 0 1 O",
			"move 0 2 S",
			"move 2 2 S",
		)

		assert.Contains(t, out, "error: game is already finished")
	})
}

func TestServer_OtherCommands(t *testing.T) {
	t.Run("Help lists commands", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3, "help")

		assert.Contains(t, out, "move <row> <col> <S|O>")
	})

	t.Run("Unknown command", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3, "jump 1 1")

		assert.Contains(t, out, "error: unknown command: jump")
	})

	t.Run("Oversized board is refused", func(t *testing.T) {
		// Given / When: sizes past the maximum are requested
		out := runConsole(t, entity.ModeSimple, 3,
			"new simple 999999",
			"new general 4611686018427387904",
			"new simple 13",
			"board",
		)

		// Then: each is rejected and the default game is untouched
		assert.Contains(t, out, "error: bad arguments: size 999999 is larger than 12")
		assert.Contains(t, out, "error: bad arguments: size 4611686018427387904 is larger than 12")
		assert.Contains(t, out, "error: bad arguments: size 13 is larger than 12")
		assert.NotContains(t, out, "new general game")
		assert.Contains(t, out, "Current turn: blue")
	})

	t.Run("Largest board is accepted", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3, "new general 12")

		assert.Contains(t, out, "new general game on a 12x12 board")
	})

	t.Run("Bad size", func(t *testing.T) {
		out := runConsole(t, entity.ModeSimple, 3, "new general big")

		assert.Contains(t, out, "error: bad arguments: size \"big\" is not a number")
	})

	t.Run("Stats for the current mode", func(t *testing.T) {
		out := runConsole(t, entity.ModeGeneral, 3, "stats")

		assert.Contains(t, out, "general: blue 0, red 0, draws 0")
	})

	t.Run("Stats for an unknown mode", func(t *testing.T) {
		out := runConsole(t, entity.ModeGeneral, 3, "stats blitz")

		assert.Contains(t, out, "error: unknown game mode")
	})
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "Red wins with higher score!", resultMessage(entity.ModeGeneral, entity.Outcome{Finished: true, Winner: entity.PlayerRed}))
	assert.Equal(t, "Red wins by forming SOS!", resultMessage(entity.ModeSimple, entity.Outcome{Finished: true, Winner: entity.PlayerRed}))
	assert.Equal(t, "It's a draw!", resultMessage(entity.ModeSimple, entity.Outcome{Finished: true, Draw: true}))
}
