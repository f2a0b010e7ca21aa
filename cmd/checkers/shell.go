package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/checkers-go/internal/config"
)

const shellHelp = `commands:
  show                draw the board
  moves               list the legal moves of the side to move
  play <move>...      play one or more moves, e.g. play 22-18 11-15
  side [black|white]  print or set the side to move
  perft [depth]       count the move tree below the current position
  reset               restore the start position
  help                print this text
  exit                leave the shell
`

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

var shellCompleter = readline.NewPrefixCompleter(
	readline.PcItem("show"),
	readline.PcItem("moves"),
	readline.PcItem("play"),
	readline.PcItem("side", readline.PcItem("black"), readline.PcItem("white")),
	readline.PcItem("perft"),
	readline.PcItem("reset"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

// shell runs the interactive loop until exit, EOF or an interrupt on an
// empty line.
func (a *app) shell(ctx context.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcheckers>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "checkers-history.tmp"),
		AutoComplete:    shellCompleter,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	a.setOutput(l.Stdout())
	fmt.Fprintf(a.w, "checkers-go %s, type help for commands\n", programVersion)

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		quit, err := a.execute(ctx, line)
		if err != nil {
			log.Error().Err(err).Msg("")
			continue
		}
		if quit {
			break
		}
	}
	return nil
}

// execute runs one shell line. It reports true when the shell should exit.
func (a *app) execute(ctx context.Context, line string) (bool, error) {
	fields, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	log.Debug().Str("cmd", cmd).Strs("args", args).Msg("shell")

	switch cmd {
	case "exit", "quit", "bye":
		return true, nil
	case "help":
		_, err := io.WriteString(a.w, shellHelp)
		return false, err
	case "show":
		return false, a.show()
	case "moves":
		return false, a.moves(ctx)
	case "play":
		if len(args) == 0 {
			return false, fmt.Errorf("play: no moves given")
		}
		if err := a.play(args); err != nil {
			return false, err
		}
		return false, a.show()
	case "side":
		if len(args) == 0 {
			_, err := fmt.Fprintf(a.w, "%s to move\n", a.side)
			return false, err
		}
		side, err := config.ParseSide(args[0])
		if err != nil {
			return false, err
		}
		a.side = side
		return false, nil
	case "perft":
		return false, a.perft(ctx, args)
	case "reset":
		if err := a.reset(); err != nil {
			return false, err
		}
		return false, a.show()
	}
	return false, fmt.Errorf("unknown command %q, type help for commands", cmd)
}
