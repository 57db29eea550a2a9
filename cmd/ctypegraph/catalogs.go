package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"ctypegraph/internal/catalog"
	"ctypegraph/internal/diagnostic"
	"ctypegraph/internal/typeindex"
)

// loaded is a set of catalogs built into one index.
type loaded struct {
	index *typeindex.Index
	ids   []typeindex.TypeID
	diags *diagnostic.Diagnostics
}

// loadCatalogs loads, validates and builds the catalogs at paths. Validation
// errors are returned in diags with a nil index.
func loadCatalogs(ctx context.Context, log *logrus.Logger, paths []string) (*loaded, error) {
	files, err := catalog.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}

	diags := catalog.Validate(files...)
	if diags.HasErrors() {
		return &loaded{diags: diags}, nil
	}

	config := typeindex.DefaultConfig()
	config.Logger = log.WithField("catalogs", strings.Join(paths, ","))

	ix, ids, err := catalog.NewIndex(config, files...)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"types":    len(ids),
		"platform": ix.Platform().String(),
	}).Debug("built type index")

	return &loaded{index: ix, ids: ids, diags: diags}, nil
}

// logger returns the logger main passes to every command.
func logger(args []any) *logrus.Logger {
	if len(args) > 0 {
		if log, ok := args[0].(*logrus.Logger); ok {
			return log
		}
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}

// printDiagnostics writes one line per diagnostic, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// fail logs err and returns ExitFailure.
func fail(log *logrus.Logger, err error) subcommands.ExitStatus {
	log.WithError(err).Error("command failed")
	return subcommands.ExitFailure
}
