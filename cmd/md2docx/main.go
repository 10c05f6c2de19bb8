package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := DefaultEnv()
	os.Exit(run(ctx, os.Args, env))
}

// run dispatches the command line and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	command, rest := splitCommand(args)

	switch command {
	case "version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return ExitSuccess

	case "help":
		if len(rest) > 0 && rest[0] == "convert" {
			printConvertUsage(env.Stdout)
		} else {
			printUsage(env.Stdout)
		}
		return ExitSuccess

	case "convert":
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			printConvertUsage(env.Stderr)
			return ExitUsage
		}

		configureMaxprocs(env, flags.common.verbose)

		if err := runConvert(ctx, flags, positional, env); err != nil {
			printError(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
	printUsage(env.Stderr)
	return ExitUsage
}

// splitCommand extracts the subcommand. Anything that is not a known
// command (including a bare invocation or leading flags) is treated as
// the convert command, so the interactive wizard stays one keystroke away.
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "convert", nil
	}
	switch args[1] {
	case "convert", "version", "help":
		return args[1], args[2:]
	}
	return "convert", args[1:]
}

// configureMaxprocs aligns GOMAXPROCS with container CPU quotas.
// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env variable is
// invalid, in which case Go runtime defaults apply and the program
// continues safely.
func configureMaxprocs(env *Environment, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
