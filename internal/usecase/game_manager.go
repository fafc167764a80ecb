package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

type resultRepo interface {
	Record(ctx context.Context, mode string, outcome entity.Outcome) error
	GetTally(ctx context.Context, mode string) (*entity.Tally, error)
}

// GameManager drives the one live game for a single caller. It is not safe for concurrent use.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
	}
}

// NewGame discards the current game, if any, and starts a fresh one.
func (that *GameManager) NewGame(_ context.Context, mode string, size int) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), mode, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.game = game
	that.logger.Info("game started", "gameID", game.ID, "mode", game.Mode, "size", game.Size)

	return game, nil
}

// Game returns the live game, or nil before the first NewGame.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) MakeMove(ctx context.Context, row, col int, letter string) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	log := that.logger.With("method", "MakeMove", "gameID", that.game.ID)

	if that.game.Outcome().Finished {
		return that.game, apperror.ErrGameFinished
	}

	mover := that.game.Turn
	if err := that.game.MakeMove(row, col, letter); err != nil {
		log.Debug("move rejected", "row", row, "col", col, "letter", letter, "error", err)
		return that.game, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move applied", "player", mover, "row", row, "col", col, "lines", len(that.game.LastSOSLines))

	if outcome := that.game.Outcome(); outcome.Finished {
		that.recordResult(ctx, outcome)
	}

	return that.game, nil
}

func (that *GameManager) Tally(ctx context.Context, mode string) (*entity.Tally, error) {
	if !entity.IsKnownMode(mode) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	tally, err := that.resultRepo.GetTally(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

func (that *GameManager) recordResult(ctx context.Context, outcome entity.Outcome) {
	log := that.logger.With("method", "recordResult", "gameID", that.game.ID)

	if err := that.resultRepo.Record(ctx, that.game.Mode, outcome); err != nil {
		log.Error("failed to record result", "error", err)
		return
	}

	log.Info("game finished", "winner", outcome.Winner, "draw", outcome.Draw)
}
