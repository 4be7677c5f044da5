package searcher

import (
	"connectfour/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
- root results:
	- empty board -> centre column for every algorithm
	- own open three -> completing column
	- opponent open three -> blocking column
	- terminal root -> no move, board evaluation
- properties:
	- alpha-beta scores equal unpruned minimax scores
	- chance ply equals the mean of its children
	- caller's board is never mutated
*/

func parse(t *testing.T, lines ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(lines...)
	require.NoError(t, err)
	return b
}

func randomPosition(rng *rand.Rand, moves int) *game.Board {
	b := game.NewBoard(6, 7)
	player := game.Player1
	for i := 0; i < moves && !game.IsTerminal(b); i++ {
		valid := game.ValidMoves(b)
		b = game.MustPlay(b, valid[rng.Intn(len(valid))], player)
		player = player.Other()
	}
	return b
}

type searcherFactory func(options ...Option) Searcher

var factories = map[string]searcherFactory{
	"alphabeta":  func(options ...Option) Searcher { return NewAlphaBeta(options...) },
	"minimax":    func(options ...Option) Searcher { return NewMinimax(options...) },
	"expectimax": func(options ...Option) Searcher { return NewExpectimax(options...) },
}

func TestSearchEmptyBoard(t *testing.T) {
	t.Run("alphabeta", func(t *testing.T) {
		for _, self := range []game.Player{game.Player1, game.Player2} {
			got, metric := NewAlphaBeta(WithMetrics()).Search(game.NewBoard(6, 7), self)

			require.Equal(t, 3, got.Move, "Centre column should be strictly best")
			require.Equal(t, 520.0, got.Score)
			require.Equal(t, "alphabeta", metric.Algorithm)
			require.Equal(t, 3, metric.Depth)
			require.Equal(t, 180, metric.Nodes, "Pruning should skip part of the tree")
			require.Positive(t, metric.Cutoffs)
		}
	})

	t.Run("minimax", func(t *testing.T) {
		got, metric := NewMinimax(WithMetrics()).Search(game.NewBoard(6, 7), game.Player1)

		require.Equal(t, 3, got.Move)
		require.Equal(t, 520.0, got.Score)
		require.Equal(t, 1+7+49+343, metric.Nodes, "Minimax should visit the whole tree")
		require.Equal(t, 343, metric.Leaves)
		require.Zero(t, metric.Cutoffs)
	})

	t.Run("expectimax", func(t *testing.T) {
		got, metric := NewExpectimax(WithMetrics()).Search(game.NewBoard(6, 7), game.Player1)

		require.Equal(t, 3, got.Move)
		require.InDelta(t, 1084.2857142857142, got.Score, 1e-9)
		require.Equal(t, 400, metric.Nodes, "Expectimax should never prune")
	})
}

func TestSearchCompletesOwnThree(t *testing.T) {
	board := parse(t,
		".......",
		".......",
		".......",
		".......",
		"OO.....",
		"XXX.O..",
	)

	for name, factory := range factories {
		for depth := 1; depth <= 3; depth++ {
			got, _ := factory(WithDepth(depth)).Search(board, game.Player1)

			require.Equal(t, 3, got.Move, "%s at depth %d should complete the row", name, depth)
			require.Equal(t, 999260.0, got.Score, "%s at depth %d", name, depth)
		}
	}
}

func TestSearchBlocksOpponentThree(t *testing.T) {
	t.Run("horizontal threat", func(t *testing.T) {
		board := parse(t,
			".......",
			".......",
			".......",
			".......",
			"XX.....",
			"OOO..X.",
		)

		for name, factory := range factories {
			for depth := 1; depth <= 3; depth++ {
				got, _ := factory(WithDepth(depth)).Search(board, game.Player1)

				require.Equal(t, 3, got.Move, "%s at depth %d should block", name, depth)
			}
		}

		got, _ := NewAlphaBeta().Search(board, game.Player1)
		require.Equal(t, 3510.0, got.Score)
	})

	t.Run("vertical threat", func(t *testing.T) {
		board := parse(t,
			".......",
			".......",
			".......",
			"O......",
			"O....X.",
			"O...XX.",
		)

		for depth := 2; depth <= 3; depth++ {
			got, _ := NewAlphaBeta(WithDepth(depth)).Search(board, game.Player1)
			require.Equal(t, 0, got.Move, "alphabeta at depth %d should block", depth)
		}
	})
}

func TestSearchTerminalRoot(t *testing.T) {
	won := parse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXXX...",
	)
	full := parse(t,
		"XOXOXOX",
		"XOXOXOX",
		"OXOXOXO",
		"XOXOXOX",
		"XOXOXOX",
		"OXOXOXO",
	)

	for name, factory := range factories {
		got, _ := factory().Search(won, game.Player1)
		require.False(t, got.HasMove(), "%s should not report a move on a decided board", name)
		require.Equal(t, game.EvaluateBoard(won, game.Player1), got.Score)

		got, _ = factory().Search(full, game.Player2)
		require.Equal(t, NoMove, got.Move, "%s should not report a move on a full board", name)
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for i := 0; i < 40; i++ {
		board := randomPosition(rng, rng.Intn(30))
		for depth := 1; depth <= 4; depth++ {
			for _, self := range []game.Player{game.Player1, game.Player2} {
				pruned, prunedMetric := NewAlphaBeta(WithDepth(depth), WithMetrics()).Search(board, self)
				full, fullMetric := NewMinimax(WithDepth(depth), WithMetrics()).Search(board, self)

				require.Equal(t, full.Score, pruned.Score, "depth %d board:\n%s", depth, board)
				require.LessOrEqual(t, prunedMetric.Nodes, fullMetric.Nodes)
			}
		}
	}
}

func TestChancePlyIsMeanOfChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := NewExpectimax()

	checked := 0
	for i := 0; i < 40; i++ {
		board := randomPosition(rng, rng.Intn(25))
		if game.IsTerminal(board) {
			continue
		}
		self := game.Player(1 + rng.Intn(2))

		moves := game.ValidMoves(board)
		probability := 1 / float64(len(moves))
		expected := 0.0
		for _, move := range moves {
			expected += probability * s.decision(game.MustPlay(board, move, self.Other()), 1, self).Score
		}

		got := s.chance(board, 2, self)
		require.False(t, got.HasMove(), "Chance plies never report a move")
		require.Equal(t, expected, got.Score, "Children should be summed in move order")
		checked++
	}
	require.Positive(t, checked)
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	board := randomPosition(rng, 10)
	snapshot := board.Copy()

	for _, factory := range factories {
		factory().Search(board, game.Player1)
		require.True(t, snapshot.Equal(board))
	}
}

func TestSearchOptions(t *testing.T) {
	t.Run("first move wins ties", func(t *testing.T) {
		flat := func(*game.Board, game.Player) float64 { return 0 }

		for name, factory := range factories {
			got, _ := factory(WithEvaluationFn(flat)).Search(game.NewBoard(6, 7), game.Player1)
			require.Equal(t, 0, got.Move, name)
		}
	})

	t.Run("custom depth", func(t *testing.T) {
		_, metric := NewMinimax(WithDepth(1), WithMetrics()).Search(game.NewBoard(6, 7), game.Player1)

		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 8, metric.Nodes)
	})

	t.Run("ignoring invalid values", func(t *testing.T) {
		s := NewAlphaBeta(WithDepth(0), WithEvaluationFn(nil))

		require.Equal(t, DefaultDepth, s.depth)
		require.NotNil(t, s.evaluate)
	})

	t.Run("metrics are disabled by default", func(t *testing.T) {
		_, metric := NewAlphaBeta().Search(game.NewBoard(6, 7), game.Player1)
		require.Zero(t, metric.Nodes)
	})

	t.Run("rejecting a non-player", func(t *testing.T) {
		require.Panics(t, func() { NewExpectimax().Search(game.NewBoard(6, 7), game.NoPlayer) })
	})
}
