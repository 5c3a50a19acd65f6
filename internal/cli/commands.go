package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

func (a *app) newCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new <title...>",
		Short: "Start a new pending todo (title can be multiple words)",
		Args:  argsUsage(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				exists, err := a.store.Exists()
				if err != nil {
					return err
				}
				if exists {
					return fmt.Errorf("a todo already exists at %s (use --force to replace it)", a.store.Path())
				}
			}
			t := model.New(strings.Join(args, " "))
			if err := a.save(t); err != nil {
				return err
			}
			a.log.Debug("todo created", "title", t.Title(), "file", a.store.Path())
			ui.OK(a.out, "created")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing todo")
	return cmd
}

// transitionCmd loads the todo, applies op and saves it. A rejected
// transition leaves the file untouched.
func (a *app) transitionCmd(use, short, done string, op func(*model.Todo) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.load()
			if err != nil {
				return err
			}
			if err := op(t); err != nil {
				a.log.Info("todo rejected", "action", use, "reason", model.TransitionMessage(err),
					"status", t.Status(), "deleted", t.IsDeleted())
				return err
			}
			if err := a.save(t); err != nil {
				return err
			}
			a.log.Debug("todo "+done, "title", t.Title(), "status", t.Status(), "deleted", t.IsDeleted())
			ui.OK(a.out, done)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the todo",
		Args:  argsUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.load()
			if err != nil {
				return err
			}
			if asJSON {
				b, err := json.MarshalIndent(t.Snapshot(), "", "  ")
				if err != nil {
					return fmt.Errorf("json marshal: %w", err)
				}
				fmt.Fprintln(a.out, string(b))
				return nil
			}
			ui.Panel(a.out, ui.Card(t))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the saved snapshot as JSON")
	return cmd
}

func (a *app) uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive view (saves on quit if changed)",
		Args:  argsUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.load()
			if err != nil {
				return err
			}
			saved := false
			err = tui.Run(t, func(t *model.Todo) error {
				saved = true
				return a.save(t)
			}, tea.WithAltScreen())
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			if saved {
				ui.OK(a.out, "saved")
			}
			return nil
		},
	}
}
