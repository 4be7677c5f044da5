package agent

import (
	"connectfour/game"
	"time"

	"golang.org/x/exp/rand"
)

// RandomAgent plays a uniformly random legal column.
type RandomAgent struct {
	player game.Player
	rng    *rand.Rand
}

func NewRandomAgent(player game.Player, rng *rand.Rand) *RandomAgent {
	return &RandomAgent{player: player, rng: rng}
}

func (a *RandomAgent) Player() game.Player {
	return a.player
}

func (a *RandomAgent) ProposeMove(board *game.Board) (int, error) {
	return randomMove(a.rng, game.ValidMoves(board))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
