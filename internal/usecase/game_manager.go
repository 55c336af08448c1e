package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	FirstMoverPlayer = "player"
	FirstMoverBot    = "bot"
	FirstMoverRandom = "random"
)

const maxIDAttempts = 10

var ErrNoFreeGameID = errors.New("could not allocate a game id")

type session struct {
	mu   sync.Mutex
	game *tictactoe.Game
}

// GameManager - owns independent game sessions, each with its own board.
type GameManager struct {
	logger *slog.Logger
	rnd    random.Source

	mu       sync.RWMutex
	sessions map[string]*session
	newID    func() (string, error)
}

func NewGameManager(logger *slog.Logger, rnd random.Source) *GameManager {
	return &GameManager{
		logger:   logger,
		rnd:      rnd,
		sessions: make(map[string]*session),
		newID:    pkg.GenerateGameID,
	}
}

// NewGame - starts a session. When the bot opens, its first move is already on the returned board.
func (that *GameManager) NewGame(size int, firstMover string) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	opener, err := that.resolveFirstMover(firstMover)
	if err != nil {
		return nil, err
	}

	game, err := tictactoe.NewGame(size, opener, tictactoe.NewMoveSelector(that.rnd))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	botMove, err := openRound(game)
	if err != nil {
		return nil, err
	}

	id, err := that.register(game)
	if err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", id, "size", size, "firstMover", opener.String())

	snapshot := entity.NewGameSnapshot(id, game)
	snapshot.BotMove = botMove

	return snapshot, nil
}

// MakeTurn - applies the player's move and, if the round goes on, the bot's reply.
func (that *GameManager) MakeTurn(gameID string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	s, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.game.ApplyPlayerMove(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("player moved", "row", row, "col", col)

	snapshot := entity.NewGameSnapshot(gameID, s.game)
	if outcome.IsTerminal() {
		log.Info("game finished", "status", s.game.Status())

		return snapshot, nil
	}

	pos, outcome, err := s.game.ApplyBotMove()
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved", "row", pos.Row, "col", pos.Col)

	if outcome.IsTerminal() {
		log.Info("game finished", "status", s.game.Status())
	}

	snapshot = entity.NewGameSnapshot(gameID, s.game)
	snapshot.BotMove = &pos

	return snapshot, nil
}

// Restart - clears the board of a session and opens a new round.
func (that *GameManager) Restart(gameID string) (*entity.Game, error) {
	s, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Reset()

	that.logger.Info("game restarted", "method", "Restart", "gameID", gameID)

	botMove, err := openRound(s.game)
	if err != nil {
		return nil, err
	}

	snapshot := entity.NewGameSnapshot(gameID, s.game)
	snapshot.BotMove = botMove

	return snapshot, nil
}

func (that *GameManager) GetGame(gameID string) (*entity.Game, error) {
	s, err := that.getSession(gameID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.NewGameSnapshot(gameID, s.game), nil
}

// EndGame - drops the session.
func (that *GameManager) EndGame(gameID string) error {
	if _, err := that.getSession(gameID); err != nil {
		return err
	}

	that.remove(gameID)
	that.logger.Info("game deleted", "method", "EndGame", "gameID", gameID)

	return nil
}

// openRound - plays the bot's opening move when the bot starts.
func openRound(game *tictactoe.Game) (*tictactoe.Position, error) {
	if game.Turn() != tictactoe.Bot {
		return nil, nil
	}

	pos, _, err := game.ApplyBotMove()
	if err != nil {
		return nil, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return &pos, nil
}

func (that *GameManager) resolveFirstMover(firstMover string) (tictactoe.Cell, error) {
	switch firstMover {
	case FirstMoverPlayer, "":
		return tictactoe.Player, nil
	case FirstMoverBot:
		return tictactoe.Bot, nil
	case FirstMoverRandom:
		if that.rnd.Intn(2) == 0 {
			return tictactoe.Player, nil
		}
		return tictactoe.Bot, nil
	default:
		return tictactoe.Empty, fmt.Errorf("%w: unknown first mover %q", apperror.ErrInvalidConfiguration, firstMover)
	}
}

func (that *GameManager) register(game *tictactoe.Game) (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for range maxIDAttempts {
		id, err := that.newID()
		if err != nil {
			return "", fmt.Errorf("failed to register game: %w", err)
		}

		if _, ok := that.sessions[id]; ok {
			continue
		}

		that.sessions[id] = &session{game: game}

		return id, nil
	}

	return "", ErrNoFreeGameID
}

func (that *GameManager) getSession(gameID string) (*session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	s, ok := that.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, gameID)
	}

	return s, nil
}

func (that *GameManager) remove(gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, gameID)
}
