package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"ctypegraph/ctype"
	"ctypegraph/internal/typeindex"
)

// Show implements subcommands.Command for the "show" command.
type Show struct {
	sizeof    bool
	paths     int
	dump      bool
	dumpDepth int

	out io.Writer
}

// Name implements subcommands.Command.
func (*Show) Name() string {
	return "show"
}

// Synopsis implements subcommands.Command.
func (*Show) Synopsis() string {
	return "renders a type from the given catalogs"
}

// Usage implements subcommands.Command.
func (*Show) Usage() string {
	return `show [flags] <catalog.yaml>... <type name>

The type name is a C type name such as "struct list_head" or "char *[16]".
`
}

// SetFlags implements subcommands.Command.
func (s *Show) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.sizeof, "sizeof", false, "print the size of the type.")
	f.IntVar(&s.paths, "paths", -1, "list member paths up to the given nesting depth.")
	f.BoolVar(&s.dump, "dump", false, "dump the type descriptor.")
	f.IntVar(&s.dumpDepth, "dump-depth", 4, "maximum nesting shown by -dump.")
}

// Execute implements subcommands.Command.Execute.
func (s *Show) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log := logger(args)

	if err := s.run(ctx, log, f.Args()[:f.NArg()-1], f.Arg(f.NArg()-1)); err != nil {
		return fail(log, err)
	}

	return subcommands.ExitSuccess
}

func (s *Show) run(ctx context.Context, log *logrus.Logger, paths []string, name string) error {
	out := output(s.out)

	l, err := loadCatalogs(ctx, log, paths)
	if err != nil {
		return err
	}

	if l.index == nil {
		printDiagnostics(out, l.diags)
		return l.diags.Error()
	}

	ix := l.index

	t, err := ix.Find(name)
	if err != nil {
		return err
	}

	cName, err := ix.Stringer().TypeName(t)
	if err != nil {
		return err
	}

	repr, err := t.Repr()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s\n", cName, repr)

	if s.sizeof {
		size, err := ix.Sizeof(t)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "sizeof(%s) = %d\n", cName, size)
	}

	if s.paths >= 0 {
		if err := s.printPaths(out, ix, t); err != nil {
			return err
		}
	}

	if s.dump {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                s.dumpDepth,
			DisableMethods:          true,
			DisablePointerAddresses: true,
			SortKeys:                true,
		}
		cfg.Fdump(out, t)
	}

	return nil
}

func (s *Show) printPaths(out io.Writer, ix *typeindex.Index, t *ctype.Type) error {
	paths, err := ix.Stringer().MemberPaths(t, s.paths)
	if err != nil {
		return err
	}

	for _, path := range slices.Sorted(maps.Keys(paths)) {
		info := paths[path]

		typeName, err := ix.Stringer().TypeName(info.Type)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%6d", info.BitOffset)

		if info.BitFieldSize != 0 {
			fmt.Fprintf(out, ":%-3d", info.BitFieldSize)
		} else {
			fmt.Fprint(out, "    ")
		}

		fmt.Fprintf(out, " %s %s\n", path, typeName)
	}

	return nil
}
