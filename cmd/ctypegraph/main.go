// Package main provides the CLI entrypoint for ctypegraph.
//
// ctypegraph loads YAML type catalogs into a lazily resolved C type graph:
//   - check validates catalogs and resolves every reference
//   - show renders a type, its size and its member layout
//   - eq compares two types structurally, cycles included
//   - watch re-runs check whenever a catalog changes
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var (
	verbose = flag.Bool("v", false, "enable debug logging.")
	jsonLog = flag.Bool("log-json", false, "log in JSON format.")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, os.Args[0])
	register(commander)

	flag.Parse()

	log := newLogger(*verbose, *jsonLog)

	os.Exit(int(commander.Execute(context.Background(), log)))
}

// register adds every ctypegraph command to c.
func register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(new(Check), "")
	c.Register(new(Show), "")
	c.Register(new(Eq), "")
	c.Register(new(Watch), "")
}

func newLogger(debug, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
