package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

type Runner interface {
	// Run plays the game until a player connects four or the board is full
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
