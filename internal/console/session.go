// Package console drives a [mines.Game] from line-oriented text commands and
// redraws the board after each one.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/render"
)

// Session owns the game currently being played. Starting a new game drops
// the old one.
type Session struct {
	game *mines.Game
	rnd  *rand.Rand
	log  logrus.FieldLogger
	out  io.Writer
}

func NewSession(
	params mines.GameParams,
	rnd *rand.Rand,
	log logrus.FieldLogger,
	out io.Writer,
) (*Session, error) {
	s := &Session{rnd: rnd, log: log, out: out}
	if err := s.NewGame(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Game() *mines.Game {
	return s.game
}

func (s *Session) NewGame(params mines.GameParams) error {
	game, err := mines.NewGame(params, s.rnd)
	if err != nil {
		return err
	}
	s.game = game
	s.log.WithField("params", params.String()).Info("new game")
	return nil
}

func (s *Session) print() error {
	return render.Game(s.out, s.game)
}

// Execute runs the ';'-separated commands of one input line, stopping at
// the first failure.
func (s *Session) Execute(line string) error {
	for _, piece := range byPiece(strings.TrimSpace(line), ";") {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		c, err := parseCommand(piece)
		if err != nil {
			return fmt.Errorf("%q: %w", piece, err)
		}
		if err := s.executeCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Run executes lines until they run out, the player quits or ctx is done.
// Command errors are reported to the player and do not end the session.
func (s *Session) Run(ctx context.Context, lines <-chan string) error {
	if err := s.print(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := s.Execute(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				s.log.WithError(err).Debug("command failed")
				if _, err := fmt.Fprintf(s.out, "error: %s\n", err); err != nil {
					return err
				}
			}
		}
	}
}
