package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidBoard = errors.New("invalid board")
)

// Player identifies one of the two participants. The zero value means no player.
type Player uint8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Other returns the opponent of p
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	panic(fmt.Sprintf("player %d has no opponent", p))
}

func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) IsValid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "None"
}

// Cell is the content of a single board square.
type Cell uint8

const Empty Cell = 0

func (c Cell) Player() Player {
	return Player(c)
}

func (c Cell) symbol() byte {
	switch c {
	case Player1.Cell():
		return 'X'
	case Player2.Cell():
		return 'O'
	}
	return '.'
}

// Evaluate scores a board from self's perspective, higher values favour self.
type Evaluate func(board *Board, self Player) float64
