package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"math"
)

// Minimax explores the full tree without pruning. It returns the same scores
// as AlphaBeta and serves as its baseline.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

func (s *Minimax) Search(board *game.Board, self game.Player) (Result, metrics.SearchMetric) {
	checkPlayer(self)
	s.metrics.Start("minimax", s.depth)
	result := s.minimax(board, s.depth, true, self)
	return result, s.metrics.Complete()
}

func (s *Minimax) minimax(board *game.Board, depth int, maximizing bool, self game.Player) Result {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(board) {
		return s.leaf(board, self)
	}

	if maximizing {
		best := Result{Score: math.Inf(-1), Move: NoMove}
		for _, move := range game.ValidMoves(board) {
			score := s.minimax(game.MustPlay(board, move, self), depth-1, false, self).Score
			if score > best.Score {
				best = Result{Score: score, Move: move}
			}
		}
		return best
	}

	best := Result{Score: math.Inf(1), Move: NoMove}
	for _, move := range game.ValidMoves(board) {
		score := s.minimax(game.MustPlay(board, move, self.Other()), depth-1, true, self).Score
		if score < best.Score {
			best = Result{Score: score, Move: move}
		}
	}
	return best
}
