// Command archglob prints the files inside archives matching glob
// patterns such as "phar://app.phar/plugins/*/plugin.json".
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/xerrors"

	"github.com/retro-framework/go-archglob/framework"
	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/config"
	"github.com/retro-framework/go-archglob/framework/matcher"
)

const (
	exitMatched   = 0
	exitNoMatches = 1
	exitInvalid   = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {

	var flags = config.NewFlags("archglob")
	flags.SetOutput(stderr)
	explain := flags.Bool("explain", false, "print the outcome of every pattern")

	cfg, err := flags.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}
	if len(cfg.Args) == 0 {
		fmt.Fprintln(stderr, "usage: archglob [flags] PATTERN...")
		return exitInvalid
	}

	excludes, err := matcher.CompileExcludes(cfg.Glob.Excludes)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	var g = archglob.New(archglob.Options{
		Scheme:    cfg.Glob.Scheme,
		Extension: cfg.Glob.Extension,
		Logger:    framework.NewLogrus(stderr, cfg.Log.Level),
		Excludes:  excludes,
	})

	var (
		status  = exitNoMatches
		invalid bool
	)
	for _, pattern := range cfg.Args {
		res, err := g.Find(ctx, pattern)
		if xerrors.Is(err, archglob.ErrInvalidPattern) {
			fmt.Fprintf(stderr, "%s: %s\n", pattern, err)
			invalid = true
			continue
		}
		if *explain {
			explainResult(stderr, res)
		}
		for _, p := range res.Paths {
			fmt.Fprintln(stdout, p)
		}
		if len(res.Paths) > 0 {
			status = exitMatched
		}
	}
	if invalid {
		return exitInvalid
	}
	return status
}

func explainResult(w io.Writer, res archglob.Result) {
	if res.Err != nil {
		fmt.Fprintf(w, "%s: %s, %d matches in %s: %s\n", res.Pattern, res.Outcome, len(res.Paths), res.Duration, res.Err)
		return
	}
	fmt.Fprintf(w, "%s: %s, %d matches in %s\n", res.Pattern, res.Outcome, len(res.Paths), res.Duration)
}
