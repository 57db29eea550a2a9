package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Watch implements subcommands.Command for the "watch" command.
type Watch struct {
	debounce time.Duration
	strict   bool

	out io.Writer
}

// Name implements subcommands.Command.
func (*Watch) Name() string {
	return "watch"
}

// Synopsis implements subcommands.Command.
func (*Watch) Synopsis() string {
	return "re-runs check whenever a catalog changes"
}

// Usage implements subcommands.Command.
func (*Watch) Usage() string {
	return `watch [flags] <catalog.yaml>...
`
}

// SetFlags implements subcommands.Command.
func (w *Watch) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&w.debounce, "debounce", 200*time.Millisecond, "quiet period before re-checking.")
	f.BoolVar(&w.strict, "strict", false, "treat warnings as errors.")
}

// Execute implements subcommands.Command.Execute.
func (w *Watch) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log := logger(args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fail(log, err)
	}
	defer watcher.Close()

	// Editors replace files by renaming, so the directories are watched.
	dirs := map[string]struct{}{}
	for _, path := range f.Args() {
		dirs[filepath.Dir(path)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fail(log, err)
		}
	}

	if err := w.loop(ctx, log, f.Args(), watcher.Events, watcher.Errors); err != nil {
		return fail(log, err)
	}

	return subcommands.ExitSuccess
}

// loop checks once, then again after every burst of relevant events, until
// ctx is done or events is closed.
func (w *Watch) loop(
	ctx context.Context,
	log *logrus.Logger,
	paths []string,
	events <-chan fsnotify.Event,
	errs <-chan error,
) error {
	check := &Check{strict: w.strict, out: w.out}
	watched := make(map[string]struct{}, len(paths))

	for _, path := range paths {
		watched[filepath.Clean(path)] = struct{}{}
	}

	run := func() {
		if _, err := check.run(ctx, log, paths); err != nil {
			log.WithError(err).Error("check failed")
		}
	}

	run()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			if !relevant(ev, watched) {
				continue
			}

			log.WithFields(logrus.Fields{"file": ev.Name, "op": ev.Op.String()}).Debug("catalog changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			pending = timer.C
		case err, ok := <-errs:
			if !ok {
				return nil
			}

			log.WithError(err).Warn("watch error")
		case <-pending:
			pending = nil

			run()
		}
	}
}

// relevant reports whether ev changes the content of a watched file.
func relevant(ev fsnotify.Event, watched map[string]struct{}) bool {
	if _, ok := watched[filepath.Clean(ev.Name)]; !ok {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
