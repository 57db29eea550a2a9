package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"ctypegraph/internal/catalog"
)

// Check implements subcommands.Command for the "check" command.
type Check struct {
	strict bool

	out io.Writer
}

// Name implements subcommands.Command.
func (*Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.
func (*Check) Synopsis() string {
	return "validates catalogs and resolves every type reference"
}

// Usage implements subcommands.Command.
func (*Check) Usage() string {
	return `check [flags] <catalog.yaml>...
`
}

// SetFlags implements subcommands.Command.
func (c *Check) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.strict, "strict", false, "treat warnings as errors.")
}

// Execute implements subcommands.Command.Execute.
func (c *Check) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log := logger(args)

	ok, err := c.run(ctx, log, f.Args())
	if err != nil {
		return fail(log, err)
	}

	if !ok {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// run checks the catalogs at paths and reports whether they passed.
func (c *Check) run(ctx context.Context, log *logrus.Logger, paths []string) (bool, error) {
	out := output(c.out)

	l, err := loadCatalogs(ctx, log, paths)
	if err != nil {
		return false, err
	}

	diags := l.diags
	if l.index != nil {
		diags.Merge(*catalog.Check(l.index, l.ids))
	}

	printDiagnostics(out, diags)
	fmt.Fprintf(out, "%d types, %d errors, %d warnings\n", len(l.ids), len(diags.Errors), len(diags.Warnings))

	if diags.HasErrors() || (c.strict && len(diags.Warnings) > 0) {
		return false, nil
	}

	return true, nil
}
