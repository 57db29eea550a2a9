package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"ctypegraph/ctype"
)

// Eq implements subcommands.Command for the "eq" command.
type Eq struct {
	maxDepth int
	against  string

	out io.Writer
}

// Name implements subcommands.Command.
func (*Eq) Name() string {
	return "eq"
}

// Synopsis implements subcommands.Command.
func (*Eq) Synopsis() string {
	return "compares two types structurally"
}

// Usage implements subcommands.Command.
func (*Eq) Usage() string {
	return `eq [flags] <catalog.yaml>... <type name> <type name>
eq -against <catalog.yaml>[,...] [flags] <catalog.yaml>... <type name> [<type name>]

Exits with status 0 when the types are equal and 1 otherwise. With -against
the second type is looked up in the other catalogs.
`
}

// SetFlags implements subcommands.Command.
func (e *Eq) SetFlags(f *flag.FlagSet) {
	f.IntVar(&e.maxDepth, "max-depth", ctype.DefaultMaxDepth, "deepest nesting compared before giving up.")
	f.StringVar(&e.against, "against", "", "comma-separated catalogs to look the second type up in.")
}

// Execute implements subcommands.Command.Execute.
func (e *Eq) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	paths, first, second, ok := e.split(f.Args())
	if !ok {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log := logger(args)

	equal, err := e.run(ctx, log, paths, first, second)
	if err != nil {
		return fail(log, err)
	}

	if !equal {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// split separates catalogs from the type names. Without -against both names
// are required; with it the second defaults to the first.
func (e *Eq) split(args []string) (paths []string, first, second string, ok bool) {
	n := len(args)

	switch {
	case e.against == "" && n >= 3:
		return args[:n-2], args[n-2], args[n-1], true
	case e.against != "" && n >= 2:
		return args[:n-1], args[n-1], args[n-1], true
	default:
		return nil, "", "", false
	}
}

func (e *Eq) run(ctx context.Context, log *logrus.Logger, paths []string, first, second string) (bool, error) {
	out := output(e.out)

	l, err := loadCatalogs(ctx, log, paths)
	if err != nil {
		return false, err
	}

	if l.index == nil {
		printDiagnostics(out, l.diags)
		return false, l.diags.Error()
	}

	other := l
	if e.against != "" {
		if other, err = loadCatalogs(ctx, log, strings.Split(e.against, ",")); err != nil {
			return false, err
		}

		if other.index == nil {
			printDiagnostics(out, other.diags)
			return false, other.diags.Error()
		}
	}

	a, err := l.index.Find(first)
	if err != nil {
		return false, err
	}

	b, err := other.index.Find(second)
	if err != nil {
		return false, err
	}

	equal, err := (&ctype.Comparer{MaxDepth: e.maxDepth}).Equal(a, b)
	if err != nil {
		return false, err
	}

	if equal {
		fmt.Fprintf(out, "%s == %s\n", first, second)
	} else {
		fmt.Fprintf(out, "%s != %s\n", first, second)
	}

	return equal, nil
}
