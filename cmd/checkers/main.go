// checkers is a command-line front end for the checkers rules engine: it
// shows boards, lists legal moves, plays move sequences, counts move trees
// and runs an interactive shell.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/lgbarn/checkers-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes one command and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("checkers", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	configPath := fs.StringP("config", "c", "", "YAML configuration file")
	version := fs.BoolP("version", "v", false, "print the version and exit")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *version {
		fmt.Fprintf(stdout, "checkers-go version %s\n", programVersion)
		return 0
	}

	cfg, err := config.Load(fs, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "checkers: %v\n", err)
		return 2
	}
	setupLogging(stderr, cfg.LogLevel)

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr, fs)
		return 2
	}

	a, err := newApp(cfg, stdout)
	if err != nil {
		log.Error().Err(err).Msg("start position rejected")
		return 1
	}
	if err := a.dispatch(ctx, rest[0], rest[1:]); err != nil {
		log.Error().Err(err).Str("command", rest[0]).Msg("")
		return 1
	}
	return 0
}

// setupLogging installs a console logger on w at level.
func setupLogging(w io.Writer, level zerolog.Level) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Str("level", level.String()).Msg("logging configured")
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	io.WriteString(w, "usage: checkers [flags] <command> [args]\n\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "  show              draw the start position\n")
	io.WriteString(w, "  moves             list the legal moves of the side to move\n")
	io.WriteString(w, "  apply <move>...   play moves from the start position and draw the result\n")
	io.WriteString(w, "  perft [depth]     count the move tree below the start position\n")
	io.WriteString(w, "  shell             start an interactive session\n\n")
	io.WriteString(w, "flags:\n")
	io.WriteString(w, fs.FlagUsages())
}
