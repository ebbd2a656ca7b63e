package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/justjake/go-argv/argv"
	"github.com/justjake/go-argv/env"
)

// Output formats understood by --format.
const (
	formatText   = "text"
	formatArgs   = "args"
	formatEnv    = "env"
	formatPretty = "pretty"
)

type options struct {
	format string
	line   string
	debug  bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   env.SystemArgs().ProcessName() + " [flags] -- tokens...",
		Short: "shows how invocation tokens are read as arguments",
		Long: `argdump reads the tokens after -- (or the command line given with --line)
the same way a program using the argv package reads its own arguments, and
prints the result.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, opts.debug)

			store := argv.New(args)
			if opts.line != "" {
				var err error
				if store, err = argv.Parse(opts.line); err != nil {
					return err
				}
			}

			for _, tok := range store.Ignored() {
				log.Debug("ignored token", "token", tok)
			}
			log.Debug("read arguments", "count", store.Len())

			return dump(stdout, store, opts.format)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&opts.format, "format", formatText, "output `format`: text, args, env or pretty")
	cmd.Flags().StringVar(&opts.line, "line", "", "read this shell-quoted `command line` instead of the tokens after --")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log ignored tokens to stderr")
	return cmd
}

func newLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// dump writes store to out in the given format.
func dump(out io.Writer, store *argv.Store, format string) error {
	switch format {
	case formatText:
		for _, k := range store.Keys() {
			fmt.Fprintf(out, "%s=%s\n", k, store.String(k, ""))
		}
	case formatArgs:
		fmt.Fprintln(out, store.CommandLine())
	case formatEnv:
		for _, line := range store.Exports() {
			fmt.Fprintln(out, line)
		}
	case formatPretty:
		fmt.Fprintf(out, "%# v\n", pretty.Formatter(store.Values()))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
