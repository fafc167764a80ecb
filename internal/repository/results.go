package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

const (
	fieldBlue = "blue"
	fieldRed  = "red"
	fieldDraw = "draw"
)

type ResultRepository interface {
	Record(ctx context.Context, mode string, outcome entity.Outcome) error
	GetTally(ctx context.Context, mode string) (*entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

// NewResultRepository keeps one hash per mode under "results:<mode>" with blue, red and draw counters.
func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Record(ctx context.Context, mode string, outcome entity.Outcome) error {
	if !outcome.Finished {
		return nil
	}

	field := fieldDraw
	switch {
	case outcome.Draw:
	case outcome.Winner == entity.PlayerBlue:
		field = fieldBlue
	case outcome.Winner == entity.PlayerRed:
		field = fieldRed
	}

	if err := that.client.HIncrBy(ctx, resultsKey(mode), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbResult) GetTally(ctx context.Context, mode string) (*entity.Tally, error) {
	response, err := that.client.HGetAll(ctx, resultsKey(mode)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &entity.Tally{Mode: mode}
	for field, target := range map[string]*int64{
		fieldBlue: &tally.BlueWins,
		fieldRed:  &tally.RedWins,
		fieldDraw: &tally.Draws,
	} {
		raw, ok := response[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s counter: %w", field, err)
		}
	}

	return tally, nil
}

func resultsKey(mode string) string {
	return "results:" + mode
}

type noopResult struct{}

// NewNoopResultRepository is used when no result store is configured. It keeps nothing.
func NewNoopResultRepository() ResultRepository {
	return noopResult{}
}

func (noopResult) Record(context.Context, string, entity.Outcome) error {
	return nil
}

func (noopResult) GetTally(_ context.Context, mode string) (*entity.Tally, error) {
	return &entity.Tally{Mode: mode}, nil
}
