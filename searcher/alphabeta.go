package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"math"
)

// AlphaBeta is depth-bounded minimax with alpha-beta pruning. The opponent is
// assumed to play the move that is worst for self.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (s *AlphaBeta) Search(board *game.Board, self game.Player) (Result, metrics.SearchMetric) {
	checkPlayer(self)
	s.metrics.Start("alphabeta", s.depth)
	result := s.alphaBeta(board, s.depth, math.Inf(-1), math.Inf(1), true, self)
	return result, s.metrics.Complete()
}

func (s *AlphaBeta) alphaBeta(board *game.Board, depth int, alpha, beta float64, maximizing bool, self game.Player) Result {
	s.metrics.AddNode()
	if depth == 0 || game.IsTerminal(board) {
		return s.leaf(board, self)
	}

	moves := game.ValidMoves(board)
	if maximizing {
		best := Result{Score: math.Inf(-1), Move: NoMove}
		for _, move := range moves {
			child := game.MustPlay(board, move, self)
			score := s.alphaBeta(child, depth-1, alpha, beta, false, self).Score
			if score > best.Score { // First move wins ties
				best = Result{Score: score, Move: move}
			}
			alpha = math.Max(alpha, best.Score)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	opponent := self.Other()
	best := Result{Score: math.Inf(1), Move: NoMove}
	for _, move := range moves {
		child := game.MustPlay(board, move, opponent)
		score := s.alphaBeta(child, depth-1, alpha, beta, true, self).Score
		if score < best.Score {
			best = Result{Score: score, Move: move}
		}
		beta = math.Min(beta, best.Score)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}
