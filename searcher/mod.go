package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
)

// Depth-bounded game tree search

const DefaultDepth = meta.SEARCH_DEPTH

// NoMove marks a result that does not report a column
const NoMove = -1

type Result struct {
	Score float64
	Move  int
}

func (r Result) HasMove() bool {
	return r.Move != NoMove
}

// Searcher picks a column for self. Implementations keep per-search metrics
// and are not safe for concurrent use.
type Searcher interface {
	Search(board *game.Board, self game.Player) (Result, metrics.SearchMetric)
}
