package engine

import (
	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithStartingPlayer selects who moves first, Player1 by default.
func WithStartingPlayer(player game.Player) Option {
	return func(e *Engine) {
		if player.IsValid() {
			e.starting = player
		}
	}
}

// WithOutput renders the board to w before the first move and after every move.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// Engine owns the canonical board and asks each agent for one column per turn.
type Engine struct {
	Board    *game.Board
	agents   map[game.Player]agent.Agent
	starting game.Player
	out      io.Writer
}

var _ Runner = (*Engine)(nil)

func LocalEngine(board *game.Board, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	byPlayer := make(map[game.Player]agent.Agent, len(agents))
	for _, a := range agents {
		byPlayer[a.Player()] = a
	}
	if byPlayer[game.Player1] == nil || byPlayer[game.Player2] == nil {
		panic("agents must play as Player1 and Player2")
	}

	e := &Engine{
		Board:    board,
		agents:   byPlayer,
		starting: game.Player1,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the board is decided.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.starting,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting on a %dx%d board", e.starting, e.Board.Rows(), e.Board.Cols())
	e.render()

	current := e.starting
	for step := 1; !game.IsTerminal(e.Board); step++ {
		a := e.agents[current]

		// Agents only ever see a copy of the canonical board
		col, err := a.ProposeMove(e.Board.Copy())
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%s failed to propose a move: %w", current, err)
		}
		next, err := game.Play(e.Board, col, current)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%s proposed column %d: %w", current, col, err)
		}

		moveMetric := metrics.MoveMetric{Step: step, Player: current, Column: col}
		if reporter, ok := a.(agent.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastSearch()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Msgf("step %d: %s played column %d", step, current, col)

		e.Board = next
		e.render()
		current = current.Other()
	}

	winner := game.Winner(e.Board)
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.NoPlayer {
		log.Info().Msgf("game ended in a draw after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game won by %s after %d moves", winner, gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, nil
}

func (e *Engine) render() {
	if e.out == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(e.Board.String())
	sb.WriteByte('\n')
	for col := 0; col < e.Board.Cols(); col++ {
		sb.WriteString(fmt.Sprintf("%d", col%10))
	}
	sb.WriteString("\n\n")
	fmt.Fprint(e.out, sb.String())
}
