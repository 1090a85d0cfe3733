package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type State int

const (
	StateInProgress State = iota
	StateLost
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Game is one session: a board plus whether it has been lost. There is no
// won state.
type Game struct {
	board *Board
	state State
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	board, err := NewBoard(params, r)
	if err != nil {
		return nil, err
	}
	return &Game{board: board}, nil
}

func newGameFromBoard(board *Board) *Game {
	return &Game{board: board}
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Params() GameParams {
	return g.board.GameParams
}

func (g *Game) State() State {
	return g.state
}

// Reveal opens a cell. Hitting a mine ends the game and exposes the whole
// board; the exposed cells are appended to the result.
func (g *Game) Reveal(row, column int) (RevealResult, error) {
	if g.state == StateLost {
		return RevealResult{}, ErrGameOver
	}

	p := Point{row, column}
	res, err := Reveal(g.board, p)
	if err != nil {
		return res, err
	}

	if res.Outcome == Lost {
		g.state = StateLost
		res.Affected = append(res.Affected, RevealAll(g.board)...)
		Log.WithFields(logrus.Fields{
			"row":    row,
			"column": column,
		}).Info("mine hit")
	}

	return res, nil
}

func (g *Game) ToggleFlag(row, column int) error {
	if g.state == StateLost {
		return ErrGameOver
	}
	p := Point{row, column}
	if err := g.board.checkBounds(p); err != nil {
		return err
	}
	c := g.board.at(p)
	c.Flagged = !c.Flagged
	return nil
}
