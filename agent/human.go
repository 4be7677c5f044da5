package agent

import (
	"bufio"
	"connectfour/game"
	"connectfour/searcher"
	"connectfour/utils"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// HumanAgent reads columns line by line, prompting until a legal one is
// entered. Agents reading the same stream must share one scanner since a
// scanner buffers ahead of the line it returns.
type HumanAgent struct {
	player  game.Player
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanAgent(player game.Player, input *bufio.Scanner, out io.Writer) *HumanAgent {
	return &HumanAgent{
		player:  player,
		scanner: input,
		out:     out,
	}
}

var stdin = sync.OnceValue(func() *bufio.Scanner {
	return bufio.NewScanner(os.Stdin)
})

func (h *HumanAgent) Player() game.Player {
	return h.player
}

func (h *HumanAgent) ProposeMove(board *game.Board) (int, error) {
	moves := game.ValidMoves(board)
	if len(moves) == 0 {
		return searcher.NoMove, ErrNoLegalMove
	}

	fmt.Fprintf(h.out, "Valid columns: %v\n", moves)
	for {
		fmt.Fprint(h.out, "Enter your move (0-based index for column): ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return searcher.NoMove, fmt.Errorf("failed to read move: %w", err)
			}
			return searcher.NoMove, io.ErrUnexpectedEOF
		}

		col, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err == nil && utils.Contains(moves, col) {
			return col, nil
		}
		fmt.Fprintf(h.out, "Invalid move. Column full or out of range, choose from: %v\n", moves)
	}
}
