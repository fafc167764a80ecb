package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/sos-backend/internal/config"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/repository"
	"github.com/rocketscienceinc/sos-backend/internal/repository/storage"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
	"github.com/rocketscienceinc/sos-backend/transport/console"
)

var (
	ErrAddrNotFound      = errors.New("redis address string is empty")
	ErrBoardSizeTooLarge = errors.New("board size is too large")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Game.BoardSize > entity.MaxBoardSize {
		return fmt.Errorf("%w: %d, max is %d", ErrBoardSizeTooLarge, conf.Game.BoardSize, entity.MaxBoardSize)
	}

	resultRepo := repository.NewNoopResultRepository()

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisClient, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisClient)
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "mode", conf.Game.Mode, "size", conf.Game.BoardSize)
		consoleServer := console.New(logger, gameManager, conf.Game.Mode, conf.Game.BoardSize)
		consoleErrCh <- consoleServer.Start(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
