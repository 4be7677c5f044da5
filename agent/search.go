package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// SearchAgent proposes the root move of a game tree search run with its own
// player as the maximizing side.
type SearchAgent struct {
	player   game.Player
	searcher searcher.Searcher
	rng      *rand.Rand
	last     metrics.SearchMetric
}

func NewSearchAgent(player game.Player, s searcher.Searcher, rng *rand.Rand) *SearchAgent {
	return &SearchAgent{
		player:   player,
		searcher: s,
		rng:      rng,
	}
}

func NewAlphaBetaAgent(player game.Player, rng *rand.Rand, options ...searcher.Option) *SearchAgent {
	return NewSearchAgent(player, searcher.NewAlphaBeta(options...), rng)
}

func NewExpectimaxAgent(player game.Player, rng *rand.Rand, options ...searcher.Option) *SearchAgent {
	return NewSearchAgent(player, searcher.NewExpectimax(options...), rng)
}

func (a *SearchAgent) Player() game.Player {
	return a.player
}

func (a *SearchAgent) ProposeMove(board *game.Board) (int, error) {
	moves := game.ValidMoves(board)
	if len(moves) == 0 {
		return searcher.NoMove, ErrNoLegalMove
	}

	result, metric := a.searcher.Search(board, a.player)
	a.last = metric
	if !result.HasMove() {
		// Only a decided root yields no move
		log.Debug().Msgf("%s search returned no move, playing a random column", a.player)
		return randomMove(a.rng, moves)
	}
	return result.Move, nil
}

func (a *SearchAgent) LastSearch() metrics.SearchMetric {
	return a.last
}
