// Package cli is the todo command line: it loads the saved todo, applies
// one transition and writes it back.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/ui"
)

// Options redirect output; nil writers mean stdout/stderr.
type Options struct {
	Out io.Writer
	Err io.Writer
}

// usageError marks bad invocations so Run can exit 2 instead of 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type app struct {
	out, errw io.Writer

	// root flags
	file     string
	theme    string
	logLevel string
	noColor  bool

	store *jsonstore.Store
	log   *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	a := &app{out: opt.Out, errw: opt.Err, log: logging.Discard()}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.errw == nil {
		a.errw = os.Stderr
	}

	root := a.rootCmd()
	if len(args) == 0 {
		_ = root.Help()
		return 2
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return a.report(err)
	}
	return 0
}

func (a *app) report(err error) int {
	if msg := model.TransitionMessage(err); msg != "" {
		ui.Fail(a.errw, msg)
		return 1
	}
	if errors.Is(err, jsonstore.ErrNoTodo) {
		ui.Fail(a.errw, err.Error())
		fmt.Fprintln(a.errw, ui.Colorize(a.errw, ui.Current().Muted, "Hint: run `todo new <title...>` first"))
		return 1
	}
	ui.Fail(a.errw, err.Error())
	var uerr usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - track one task through pending, skipped and completed",
		Example: `  todo new "Take logan for a walk"
  todo skip
  todo complete
  todo show
  todo delete`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return nil
		},
		// flags only, no subcommand
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return usageError{errors.New("missing subcommand")}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errw)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.file, "file", "", "todo data file (default \"todo.json\" in the working directory)")
	pf.StringVar(&a.theme, "theme", "", "colour theme: classic, neon or mono")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colour output")

	root.AddCommand(
		a.newCmd(),
		a.transitionCmd("skip", "Mark the todo skipped", "skipped", (*model.Todo).Skip),
		a.transitionCmd("complete", "Mark the todo completed", "completed", (*model.Todo).Complete),
		a.transitionCmd("delete", "Soft-delete the todo", "deleted", func(t *model.Todo) error {
			t.Delete()
			return nil
		}),
		a.showCmd(),
		a.uiCmd(),
	)
	return root
}

// setup resolves configuration: files and env first, then root flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}
	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = a.file
	}
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if err := cfg.Validate(); err != nil {
		return usageError{fmt.Errorf("config: %w", err)}
	}

	ui.SetColorForcing(false, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	logger, err := logging.New(a.errw, opts)
	if err != nil {
		return err
	}

	a.log = logger
	a.store = jsonstore.New(cfg.File)
	a.log.Debug("config loaded", "file", cfg.File, "theme", cfg.Theme)
	return nil
}

func (a *app) load() (*model.Todo, error) {
	t, err := a.store.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.store.Path(), err)
	}
	return t, nil
}

func (a *app) save(t *model.Todo) error {
	if err := a.store.Save(t); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func argsUsage(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{fmt.Errorf("usage: %s", cmd.UseLine())}
		}
		return nil
	}
}
