package console

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

// Maps known commands to accepted numbers of arguments
var commandNargs = map[string][]int{
	"o": {2},
	"f": {2},
	"n": {0, 1},
	"p": {0},
	"q": {0},
	"h": {0},
}

const usage = `commands:
  o <row> <column>        open a cell
  f <row> <column>        toggle a flag
  n [rows:columns:mines]  start a new game
  p                       print the board
  h                       show this help
  q                       quit
several commands may be joined with ';'
`

func parseRowColumn(twoStrings []string) (row int, column int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if column, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

type command struct {
	name string
	args []string
}

func parseCommand(s string) (command, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return command{}, ErrUnknownCommand
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return command{}, ErrUnknownCommand
	}
	if !slices.Contains(nargs, len(parts)-1) {
		return command{}, ErrNargs
	}
	return command{parts[0], parts[1:]}, nil
}

func (s *Session) executeCommand(c command) (err error) {
	switch c.name {
	case "o":
		row, column, err := parseRowColumn(c.args)
		if err != nil {
			return err
		}
		res, err := s.game.Reveal(row, column)
		if err != nil {
			return err
		}
		s.log.WithField("affected", len(res.Affected)).Debug("revealed")
		if err := s.print(); err != nil {
			return err
		}
		if res.Outcome == mines.Lost {
			_, err = io.WriteString(s.out, "you lost\n")
		}
		return err
	case "f":
		row, column, err := parseRowColumn(c.args)
		if err != nil {
			return err
		}
		if err := s.game.ToggleFlag(row, column); err != nil {
			return err
		}
		return s.print()
	case "n":
		params := s.game.Params()
		if len(c.args) == 1 {
			p, err := mines.ParseParams(c.args[0])
			if err != nil {
				return err
			}
			params = *p
		}
		if err := s.NewGame(params); err != nil {
			return err
		}
		return s.print()
	case "p":
		return s.print()
	case "h":
		_, err = io.WriteString(s.out, usage)
		return err
	case "q":
		return ErrQuit
	}
	return ErrUnknownCommand
}
