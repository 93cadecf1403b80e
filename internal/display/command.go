package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pokermentor/internal/game"
)

// CommandKind identifies what the user typed.
type CommandKind int

const (
	// CmdContinue is an empty line: deal the next hand or show the table.
	CmdContinue CommandKind = iota
	CmdAction
	CmdAllIn
	CmdNext
	CmdHint
	CmdStats
	CmdHistory
	CmdHelp
	CmdQuit
)

// Command is one parsed line of user input.
type Command struct {
	Kind   CommandKind
	Action game.Action
	Amount int
}

// ErrUnknownCommand is returned for input that is not a command.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand parses a line such as "call", "raise 12" or "hint".
func ParseCommand(input string) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return Command{Kind: CmdContinue}, nil
	}
	name, args := parts[0], parts[1:]

	switch name {
	case "quit", "q", "exit":
		return Command{Kind: CmdQuit}, nil
	case "next", "n", "deal":
		return Command{Kind: CmdNext}, nil
	case "hint", "?", "advice":
		return Command{Kind: CmdHint}, nil
	case "stats", "s":
		return Command{Kind: CmdStats}, nil
	case "history", "hist":
		return Command{Kind: CmdHistory}, nil
	case "help", "h":
		return Command{Kind: CmdHelp}, nil
	case "allin", "all", "a":
		return Command{Kind: CmdAllIn}, nil
	}

	action, err := game.ParseAction(name)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCommand, name)
	}
	cmd := Command{Kind: CmdAction, Action: action}
	if action != game.Raise {
		return cmd, nil
	}
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%s needs an amount, e.g. 'raise 10'", name)
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil || amount <= 0 {
		return Command{}, fmt.Errorf("invalid raise amount %q", args[0])
	}
	cmd.Amount = amount
	return cmd, nil
}

const helpText = `Commands:
  fold (f)            give up the hand
  check (x)           pass when there is nothing to call
  call (c)            match the current bet
  raise N (r N)       raise the street bet to N
  allin (a)           raise with everything behind
  hint (?)            coaching for the current spot
  stats (s)           your session statistics
  history             your last five hands
  next (n) or Enter   deal the next hand
  quit (q)            leave the table`
