package agent

import (
	"bufio"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/rand"
)

var (
	ErrNoLegalMove = errors.New("no legal move")
	ErrUnknownKind = errors.New("unknown agent kind")
)

type Agent interface {
	// ProposeMove returns the column the agent wants to play on board. It
	// returns ErrNoLegalMove when every column is full.
	ProposeMove(board *game.Board) (int, error)
	Player() game.Player
}

// Reporter is implemented by agents that search before moving.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

type Kind string

const (
	AlphaBetaKind  Kind = "alphabeta"
	ExpectimaxKind Kind = "expectimax"
	MinimaxKind    Kind = "minimax"
	RandomKind     Kind = "random"
	HumanKind      Kind = "human"
)

// ParseKind validates an agent kind, ignoring case and surrounding spaces.
func ParseKind(kind string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(kind))); k {
	case AlphaBetaKind, ExpectimaxKind, MinimaxKind, RandomKind, HumanKind:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (k Kind) IsSearching() bool {
	return k == AlphaBetaKind || k == ExpectimaxKind || k == MinimaxKind
}

type Settings struct {
	Depth   int            // Search depth, DefaultDepth when zero
	Rng     *rand.Rand     // Random source, time seeded when nil
	Input   *bufio.Scanner // Human input, a scanner shared by every stdin agent when nil
	Out     io.Writer      // Human prompts, os.Stdout when nil
	Metrics bool           // Collect search metrics
}

// New builds an agent of the given kind playing as player.
func New(kind Kind, player game.Player, settings Settings) (Agent, error) {
	if !player.IsValid() {
		return nil, fmt.Errorf("cannot create agent for player %d", player)
	}
	rng := settings.Rng
	if rng == nil {
		rng = newRand()
	}

	options := []searcher.Option{searcher.WithDepth(settings.Depth)}
	if settings.Metrics {
		options = append(options, searcher.WithMetrics())
	}

	switch kind {
	case AlphaBetaKind:
		return NewSearchAgent(player, searcher.NewAlphaBeta(options...), rng), nil
	case ExpectimaxKind:
		return NewSearchAgent(player, searcher.NewExpectimax(options...), rng), nil
	case MinimaxKind:
		return NewSearchAgent(player, searcher.NewMinimax(options...), rng), nil
	case RandomKind:
		return NewRandomAgent(player, rng), nil
	case HumanKind:
		input, out := settings.Input, settings.Out
		if input == nil {
			input = stdin()
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHumanAgent(player, input, out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func randomMove(rng *rand.Rand, moves []int) (int, error) {
	if len(moves) == 0 {
		return searcher.NoMove, ErrNoLegalMove
	}
	return moves[rng.Intn(len(moves))], nil
}
