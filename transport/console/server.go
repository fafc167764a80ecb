package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrLineTooLong    = errors.New("line too long")

	errQuit = errors.New("quit")
)

const maxLineLength = 4096

const helpText = `commands:
  new [simple|general] [size]   start a new game
  move <row> <col> <S|O>        place a letter for the current player
  board                         show the board
  stats [simple|general]        show finished game counts
  help                          show this help
  quit                          leave
`

type uGame interface {
	NewGame(ctx context.Context, mode string, size int) (*entity.Game, error)
	MakeMove(ctx context.Context, row, col int, letter string) (*entity.Game, error)
	Game() *entity.Game
	Tally(ctx context.Context, mode string) (*entity.Tally, error)
}

type handlerFunc func(ctx context.Context, args []string, out io.Writer) error

// Server is a line-oriented front-end: it reads commands and prints the board after each one.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	defaultMode string
	defaultSize int

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, defaultMode string, defaultSize int) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		defaultMode: defaultMode,
		defaultSize: defaultSize,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["new"] = server.handleNewGame
	server.handlers["move"] = server.handleMove
	server.handlers["board"] = server.handleBoard
	server.handlers["stats"] = server.handleStats
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start opens a game with the default settings and serves commands from in until quit, EOF or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	if err := that.handleNewGame(ctx, nil, out); err != nil {
		return fmt.Errorf("failed to start first game: %w", err)
	}

	reader := bufio.NewReaderSize(in, maxLineLength)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if errors.Is(err, ErrLineTooLong) {
			log.Debug("line skipped", "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		err = that.dispatch(ctx, fields, out)
		if errors.Is(err, errQuit) {
			log.Info("console closed by user")
			return nil
		}

		if err != nil {
			log.Debug("command failed", "command", fields[0], "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// readLine returns the next line. A line longer than the reader's buffer is
// consumed in full and reported as ErrLineTooLong.
func readLine(reader *bufio.Reader) (string, error) {
	line, isPrefix, err := reader.ReadLine()
	if err != nil {
		return "", err
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = reader.ReadLine(); err != nil {
			break
		}
	}

	return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, maxLineLength)
}

func (that *Server) dispatch(ctx context.Context, fields []string, out io.Writer) error {
	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}

	return handler(ctx, fields[1:], out)
}

func (that *Server) handleNewGame(ctx context.Context, args []string, out io.Writer) error {
	mode, size := that.defaultMode, that.defaultSize

	if len(args) > 2 {
		return fmt.Errorf("%w: new [simple|general] [size]", ErrBadArguments)
	}

	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}

	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: size %q is not a number", ErrBadArguments, args[1])
		}
		size = parsed
	}

	if size > entity.MaxBoardSize {
		return fmt.Errorf("%w: size %d is larger than %d", ErrBadArguments, size, entity.MaxBoardSize)
	}

	game, err := that.uGame.NewGame(ctx, mode, size)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "new %s game on a %dx%d board\n", game.Mode, game.Size, game.Size)
	renderGame(out, game)

	return nil
}

func (that *Server) handleMove(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: move <row> <col> <S|O>", ErrBadArguments)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q is not a number", ErrBadArguments, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: column %q is not a number", ErrBadArguments, args[1])
	}

	game, err := that.uGame.MakeMove(ctx, row, col, args[2])
	if err != nil {
		return err
	}

	renderGame(out, game)

	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string, out io.Writer) error {
	game := that.uGame.Game()
	if game == nil {
		return apperror.ErrGameIsNotStarted
	}

	renderGame(out, game)

	return nil
}

func (that *Server) handleStats(ctx context.Context, args []string, out io.Writer) error {
	mode := that.defaultMode
	if game := that.uGame.Game(); game != nil {
		mode = game.Mode
	}

	if len(args) > 0 {
		mode = strings.ToLower(args[0])
	}

	tally, err := that.uGame.Tally(ctx, mode)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: blue %d, red %d, draws %d\n", tally.Mode, tally.BlueWins, tally.RedWins, tally.Draws)

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprint(out, helpText)
	return nil
}

func (that *Server) handleQuit(context.Context, []string, io.Writer) error {
	return errQuit
}
