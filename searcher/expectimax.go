package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"math"
)

// Expectimax maximizes over self's moves and averages over the opponent's,
// modelling an opponent that picks a legal column uniformly at random.
type Expectimax struct {
	settings
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{settings: newSettings(options)}
}

func (s *Expectimax) Search(board *game.Board, self game.Player) (Result, metrics.SearchMetric) {
	checkPlayer(self)
	s.metrics.Start("expectimax", s.depth)
	result := s.decision(board, s.depth, self)
	return result, s.metrics.Complete()
}

// decision is self's ply: the best child wins, no pruning.
func (s *Expectimax) decision(board *game.Board, depth int, self game.Player) Result {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(board) {
		return s.leaf(board, self)
	}

	best := Result{Score: math.Inf(-1), Move: NoMove}
	for _, move := range game.ValidMoves(board) {
		score := s.chance(game.MustPlay(board, move, self), depth-1, self).Score
		if score > best.Score {
			best = Result{Score: score, Move: move}
		}
	}
	return best
}

// chance is the opponent's ply: the expected score over equally likely moves.
// It never reports a move.
func (s *Expectimax) chance(board *game.Board, depth int, self game.Player) Result {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(board) {
		return s.leaf(board, self)
	}

	moves := game.ValidMoves(board)
	if len(moves) == 0 { // Screened by IsTerminal
		panic("chance ply has no legal moves")
	}

	// Summed in move order
	probability := 1 / float64(len(moves))
	value := 0.0
	for _, move := range moves {
		score := s.decision(game.MustPlay(board, move, self.Other()), depth-1, self).Score
		value += probability * score
	}
	return Result{Score: value, Move: NoMove}
}
