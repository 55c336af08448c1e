package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrInvalidMove = errors.New("invalid move")

type gameManager interface {
	NewGame(size int, firstMover string) (*entity.Game, error)
	MakeTurn(gameID string, row, col int) (*entity.Game, error)
	Restart(gameID string) (*entity.Game, error)
	EndGame(gameID string) error
}

type handler func(game *entity.Game, args []string, out io.Writer) (*entity.Game, error)

// Terminal - plays one session against the bot over a line-based reader and writer.
type Terminal struct {
	logger *slog.Logger
	games  gameManager

	marks      entity.Marks
	size       int
	firstMover string

	handlers map[string]handler
}

func New(logger *slog.Logger, games gameManager, marks entity.Marks, size int, firstMover string) *Terminal {
	terminal := &Terminal{
		logger:     logger,
		games:      games,
		marks:      marks,
		size:       size,
		firstMover: firstMover,

		handlers: make(map[string]handler),
	}

	terminal.handlers["reset"] = terminal.handleReset
	terminal.handlers["r"] = terminal.handleReset
	terminal.handlers["mode"] = terminal.handleMode
	terminal.handlers["size"] = terminal.handleMode
	terminal.handlers["help"] = terminal.handleHelp
	terminal.handlers["h"] = terminal.handleHelp

	return terminal
}

// Run - reads commands until quit, end of input or a cancelled context.
func (that *Terminal) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	game, err := that.games.NewGame(that.size, that.firstMover)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	// game always holds the live session, a size switch replaces it
	defer func() {
		if endErr := that.games.EndGame(game.ID); endErr != nil {
			log.Error("failed to end game", "gameID", game.ID, "error", endErr)
		}
	}()

	log.Debug("session started", "gameID", game.ID)

	fmt.Fprintln(out, "Welcome to Tic Tac Toe!")
	fmt.Fprint(out, directions(game.Size))
	that.printGame(out, game)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErrs := readLines(ctx, in)

	for {
		if ctx.Err() != nil {
			return nil
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case next, ok := <-lines:
			if !ok {
				select {
				case err = <-readErrs:
					return fmt.Errorf("failed to read input: %w", err)
				default:
					return nil
				}
			}
			line = next
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" || fields[0] == "q" {
			fmt.Fprintln(out, "Bye!")
			return nil
		}

		if handle, ok := that.handlers[fields[0]]; ok {
			next, err := handle(game, fields[1:], out)
			if err != nil {
				return err
			}

			game = next
			continue
		}

		row, col, err := parseMove(fields)
		if err != nil {
			fmt.Fprintf(out, "Unknown command %q, type help for directions.\n", strings.Join(fields, " "))
			continue
		}

		updated, err := that.games.MakeTurn(game.ID, row, col)
		if err != nil {
			fmt.Fprintln(out, that.describeError(err))
			continue
		}

		game = updated
		that.printGame(out, game)
	}
}

// readLines - scans in on its own goroutine so a blocked read never holds up cancellation.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}

func (that *Terminal) handleReset(game *entity.Game, _ []string, out io.Writer) (*entity.Game, error) {
	restarted, err := that.games.Restart(game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to restart game: %w", err)
	}

	fmt.Fprintln(out, "New round!")
	that.printGame(out, restarted)

	return restarted, nil
}

// handleMode - starts a fresh game on another grid, the old session is dropped.
func (that *Terminal) handleMode(game *entity.Game, args []string, out io.Writer) (*entity.Game, error) {
	if len(args) != 1 {
		fmt.Fprintf(out, "Pick a grid with mode <size>, from %d to %d.\n", entity.MinGridSize, entity.MaxGridSize)
		return game, nil
	}

	size, err := strconv.Atoi(args[0])
	if err != nil || !entity.IsSupportedGridSize(size) {
		fmt.Fprintf(out, "There is no %s grid, pick a size from %d to %d.\n", args[0], entity.MinGridSize, entity.MaxGridSize)
		return game, nil
	}

	switched, err := that.games.NewGame(size, that.firstMover)
	if err != nil {
		return nil, fmt.Errorf("failed to switch grid: %w", err)
	}

	if err = that.games.EndGame(game.ID); err != nil {
		that.logger.Error("failed to end game", "method", "handleMode", "gameID", game.ID, "error", err)
	}

	fmt.Fprintf(out, "New %dx%d grid!\n", size, size)
	fmt.Fprint(out, directions(size))
	that.printGame(out, switched)

	return switched, nil
}

func (that *Terminal) handleHelp(game *entity.Game, _ []string, out io.Writer) (*entity.Game, error) {
	fmt.Fprint(out, directions(game.Size))

	return game, nil
}

func (that *Terminal) printGame(out io.Writer, game *entity.Game) {
	if game.BotMove != nil {
		fmt.Fprintf(out, "Bot %s takes %d %d.\n", that.marks.Bot, game.BotMove.Row, game.BotMove.Col)
	}

	fmt.Fprint(out, RenderBoard(game.Board, that.marks))
	fmt.Fprintln(out, DescribeOutcome(game, that.marks))

	if game.IsFinished() {
		fmt.Fprintln(out, "Type reset to play again or quit to leave.")
	}
}

// describeError - maps engine errors to a message, the loop goes on after any of them.
func (that *Terminal) describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return "That cell is off the board."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return "The round is over, type reset to play again."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn."
	default:
		that.logger.Error("failed to make turn", "error", err)
		return "Something went wrong, try again."
	}
}

func parseMove(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected row and column", ErrInvalidMove)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrInvalidMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", ErrInvalidMove, fields[1])
	}

	return row, col, nil
}
