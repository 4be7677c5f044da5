package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"
)

type Option func(s *settings)

type settings struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EvaluateBoard,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) leaf(board *game.Board, self game.Player) Result {
	s.metrics.AddLeaf()
	return Result{Score: s.evaluate(board, self), Move: NoMove}
}

func checkPlayer(self game.Player) {
	if !self.IsValid() {
		panic(fmt.Sprintf("cannot search for player %d", self))
	}
}
