package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

// renderGame prints the grid, the lines formed by the last move and the turn or result.
// Each cell shows its letter followed by the owner's initial, e.g. "Sb" or "Or".
func renderGame(out io.Writer, game *entity.Game) {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := 0; c < game.Size; c++ {
		fmt.Fprintf(&sb, "%3d", c)
	}
	sb.WriteString("\n")

	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(&sb, "%3d", r)
		for c := 0; c < game.Size; c++ {
			fmt.Fprintf(&sb, "%3s", cellText(game, r, c))
		}
		sb.WriteString("\n")
	}

	for _, line := range game.LastSOSLines {
		fmt.Fprintf(&sb, "SOS by %s: (%d,%d)-(%d,%d)\n", game.LastMovePlayer, line.R1, line.C1, line.R2, line.C2)
	}

	if game.Mode == entity.ModeGeneral {
		fmt.Fprintf(&sb, "Blue: %d | Red: %d\n", game.Score(entity.PlayerBlue), game.Score(entity.PlayerRed))
	}

	if outcome := game.Outcome(); outcome.Finished {
		fmt.Fprintf(&sb, "Game over: %s\n", resultMessage(game.Mode, outcome))
	} else {
		fmt.Fprintf(&sb, "Current turn: %s\n", game.Turn)
	}

	fmt.Fprint(out, sb.String())
}

func cellText(game *entity.Game, r, c int) string {
	letter := game.GetCell(r, c)
	if letter == entity.EmptyLetter {
		return "."
	}

	return string(letter) + string(game.GetCellOwner(r, c))[:1]
}

func resultMessage(mode string, outcome entity.Outcome) string {
	if outcome.Draw {
		return "It's a draw!"
	}

	if mode == entity.ModeGeneral {
		return displayName(outcome.Winner) + " wins with higher score!"
	}

	return displayName(outcome.Winner) + " wins by forming SOS!"
}

func displayName(player entity.Player) string {
	name := string(player)
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
