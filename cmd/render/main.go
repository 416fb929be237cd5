package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-html2pdf/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args, renders, and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "go-html2pdf %s\n", Version)
		return ExitSuccess
	}

	log := logging.New(env.Stderr, logging.LevelFor(flags.quiet, flags.verbose))
	defer func() { _ = log.Sync() }()

	// Configure GOMAXPROCS; maxprocs.Set only fails on an invalid GOMAXPROCS
	// env value, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	if flags.printConfig {
		if err := printEffectiveConfig(flags, env.Stdout); err != nil {
			log.Error(err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	if len(positional) < 2 {
		fmt.Fprintf(env.Stderr, "%v: need <input> and <output>, got %d argument(s)\n", ErrUsage, len(positional))
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runRender(ctx, positional, flags, env, log); err != nil {
		log.Error(err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
