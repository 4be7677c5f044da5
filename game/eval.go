package game

// Window pattern scores. Opponent threats are penalized harder than our own
// equivalent patterns are rewarded.
const (
	ScoreFour           = 1000000
	ScoreThreeImmediate = 5000
	ScoreThree          = 1000
	ScoreTwoImmediate   = 500
	ScoreTwo            = 100

	PenaltyFour           = 1000000
	PenaltyThreeImmediate = 5500
	PenaltyThree          = 1100
	PenaltyTwoImmediate   = 750
	PenaltyTwo            = 150

	// Per piece of self in the centre column
	CenterWeight = 10
)

// EvaluateBoard scores the exact position on the board for self: centre
// column bias plus the pattern score of every window.
func EvaluateBoard(b *Board, self Player) float64 {
	return EvaluateCenter(b, self) + EvaluatePatterns(b, self, true)
}

// EvaluateCenter rewards self's pieces in the middle column. The opponent's
// centre pieces are not counted.
func EvaluateCenter(b *Board, self Player) float64 {
	center := b.cols / 2
	count := 0
	for row := 0; row < b.rows; row++ {
		if b.At(row, center) == self.Cell() {
			count++
		}
	}
	return float64(CenterWeight * count)
}

// EvaluatePatterns sums ScoreWindow over all windows in the four directions.
func EvaluatePatterns(b *Board, self Player, immediate bool) float64 {
	score := 0.0
	forEachWindow(b, func(w Window) bool {
		score += ScoreWindow(w, self, immediate)
		return true
	})
	return score
}

// ScoreWindow scores a single window for self. immediate selects the weights
// used when scoring the board as it stands rather than a projected one.
func ScoreWindow(w Window, self Player, immediate bool) float64 {
	mine := w.count(self.Cell())
	theirs := w.count(self.Other().Cell())
	empty := w.count(Empty)

	score := 0
	switch {
	case mine == 4:
		score += ScoreFour
	case mine == 3 && empty == 1:
		score += pick(immediate, ScoreThreeImmediate, ScoreThree)
	case mine == 2 && empty == 2:
		score += pick(immediate, ScoreTwoImmediate, ScoreTwo)
	}

	switch {
	case theirs == 4:
		score -= PenaltyFour
	case theirs == 3 && empty == 1:
		score -= pick(immediate, PenaltyThreeImmediate, PenaltyThree)
	case theirs == 2 && empty == 2:
		score -= pick(immediate, PenaltyTwoImmediate, PenaltyTwo)
	}

	return float64(score)
}

func pick(immediate bool, now, later int) int {
	if immediate {
		return now
	}
	return later
}
