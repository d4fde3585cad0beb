package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/feedback/internal/config"
	"github.com/idilsaglam/feedback/internal/feedback"
	"github.com/idilsaglam/feedback/internal/store"
	"github.com/idilsaglam/feedback/internal/store/jsonstore"
	"github.com/idilsaglam/feedback/internal/store/sqlitestore"
	"github.com/idilsaglam/feedback/internal/tui"
	"github.com/idilsaglam/feedback/internal/ui"
)

// Options carry the resolved configuration from root flags + config file.
type Options struct {
	Config config.Config
	Now    func() time.Time // nil means time.Now
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return withWidget(opt, doUI)

	case "ls":
		return withWidget(opt, doList)

	case "avg":
		return withWidget(opt, doAverage)

	case "add":
		if len(a) < 2 {
			ui.Fail("usage: feedback add <rating 1-5> <comment...>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("add: not a number: " + a[0])
			return 2
		}
		comment := strings.Join(a[1:], " ")
		return withWidget(opt, func(w *feedback.Widget) int { return doAdd(w, n, comment) })

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: feedback rm <id>")
			return 2
		}
		return withWidget(opt, func(w *feedback.Widget) int { return doRemove(w, a[0]) })
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`feedback - collect star ratings and comments

Usage:
  feedback [--store json|sqlite|memory] [--path PATH] [--theme NAME] [--color auto|always|never] <subcommand> [args]

Subcommands:
  ui                          Interactive feedback form (default on a terminal)
  add <rating> <comment...>   Submit a rating (1-5) with a comment
  ls                          List entries with the average rating
  rm <id>                     Delete the entry with this id
  avg                         Print the average rating

Examples:
  feedback add 4 "Great tool"
  feedback ls
  feedback rm 1717496100000
`)
}

// OpenStore builds the configured key-value backend.
func OpenStore(c config.StoreConfig) (store.KV, io.Closer, error) {
	switch c.Backend {
	case config.BackendMemory:
		return store.NewMemory(), io.NopCloser(nil), nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.BackendJSON, "":
		s, err := jsonstore.New(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, io.NopCloser(nil), nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", c.Backend)
}

func withWidget(opt Options, fn func(*feedback.Widget) int) int {
	kv, closer, err := OpenStore(opt.Config.Store)
	if err != nil {
		ui.Fail("open store: " + err.Error())
		return 1
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()
	var opts []feedback.Option
	if opt.Now != nil {
		opts = append(opts, feedback.WithClock(opt.Now))
	}
	return fn(feedback.New(kv, opts...))
}

// -------------- subcommand impls ----------------

func doUI(w *feedback.Widget) int {
	if err := tui.Run(w); err != nil {
		ui.Fail("ui: " + err.Error())
		return 1
	}
	return 0
}

func doList(w *feedback.Widget) int {
	ui.Panel(ui.ListLines(w.Entries.All()))
	return 0
}

func doAverage(w *feedback.Widget) int {
	fmt.Println(feedback.FormatAverage(w.Average()))
	return 0
}

func doAdd(w *feedback.Widget, rating int, comment string) int {
	w.SelectRating(rating)
	w.UpdateComment(comment)
	entry, err := w.Submit()
	switch {
	case errors.Is(err, feedback.ErrInvalidForm):
		ui.Fail(w.Form.Error)
		return 2
	case err != nil:
		ui.Fail(w.Notice + ": " + err.Error())
		return 1
	}
	log.Info().Str("id", entry.ID).Int("rating", entry.Rating).Msg("feedback added")
	ui.OK(fmt.Sprintf("added %s (%s %s)", entry.ID, ui.Stars(entry.Rating), entry.Date))
	return 0
}

func doRemove(w *feedback.Widget, id string) int {
	before := w.Entries.Len()
	if err := w.Delete(id); err != nil {
		ui.Fail(w.Notice + ": " + err.Error())
		return 1
	}
	if w.Entries.Len() == before {
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: no entry with id "+id+"; run `feedback ls` to see ids"))
		return 0
	}
	ui.OK("removed")
	return 0
}
