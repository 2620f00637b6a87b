// Package cli is the command surface: one cobra root command whose flags
// mirror the tool's original interface, dispatching onto the profile,
// activation, picker/tui, and history packages.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/activation"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/config"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/tui"
)

const version = "0.1.0"

// App carries the dispatcher's collaborators. Stdout is the eval side of
// the shell contract; every human-facing message goes to Stderr or is a
// plain confirmation printed only in persistent mode. SelectProfile and
// PromptText are swappable so tests can script the interactive steps.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	SelectProfile func(records []profile.Record, pageSize int) (profile.Record, bool, error)
	PromptText    func(label, placeholder string) (string, bool, error)

	cfg     config.Config
	pointer *activation.Pointer
	act     *activation.Activator
	mode    activation.Mode
}

// NewApp wires the real terminal UI and process streams.
func NewApp() *App {
	return &App{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		SelectProfile: tui.RunSelector,
		PromptText:    tui.RunPrompt,
	}
}

type rootFlags struct {
	activate   string
	deactivate bool
	newName    string
	current    bool
	add        bool
	edit       string
	delete     string
	list       bool
	history    bool
}

// NewRootCmd builds the root command. There are no subcommands: like the
// original tool, everything hangs off flags on a single invocation.
func (a *App) NewRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "pulumi-profile-selector",
		Short:         "Interactive Pulumi backend profile selector",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.activate, "activate", "a", "", "activate a specific profile by name (skips interactive selection)")
	f.BoolVarP(&flags.deactivate, "deactivate", "d", false, "deactivate PULUMI_BACKEND_URL")
	f.StringVarP(&flags.newName, "new", "n", "", "set a profile name that is not available in the list")
	f.BoolVarP(&flags.current, "current", "c", false, "output a shell command for the current shell instead of persisting")
	f.BoolVar(&flags.add, "add", false, "add a new profile interactively")
	f.StringVar(&flags.edit, "edit", "", "edit an existing profile's backend URL")
	f.StringVar(&flags.delete, "delete", "", "delete a profile")
	f.BoolVarP(&flags.list, "list", "l", false, "list all profiles")
	f.BoolVar(&flags.history, "history", false, "show recent activation history")

	// Errors get printed where they happen; cobra only reports flag
	// misuse, which never reaches RunE.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(a.Stderr, err)
		fmt.Fprintf(a.Stderr, "Run '%s --help' for usage.\n", c.Name())
		return err
	})
	return cmd
}

// run dispatches in the original tool's order: management commands first,
// then deactivation, then --new (which never requires a readable store),
// and only then the store-backed activation paths.
func (a *App) run(ctx context.Context, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return a.fail(fmt.Errorf("load config: %w", err))
	}
	a.cfg = cfg
	a.mode = activation.ModePersistent
	if flags.current {
		a.mode = activation.ModeSession
	}
	a.pointer = activation.NewPointer(cfg.Activation.PointerPath)
	a.act = activation.NewActivator(a.pointer, a.resolveShell())

	switch {
	case flags.add:
		return a.runAdd()
	case flags.edit != "":
		return a.runEdit(flags.edit)
	case flags.delete != "":
		return a.runDelete(flags.delete)
	case flags.list:
		return a.runList()
	case flags.history:
		return a.runHistory(ctx)
	case flags.deactivate:
		return a.runDeactivate(ctx)
	case flags.newName != "":
		return a.runNew(ctx, flags.newName)
	case flags.activate != "":
		return a.runActivate(ctx, flags.activate)
	default:
		return a.runSelector(ctx)
	}
}

// fail prints err to stderr before handing it back for exit-code mapping.
// The root command silences cobra's own reporting, so this is the single
// place command failures become visible.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.Stderr, err)
	return err
}

// resolveShell honors an explicit config choice and falls back to $SHELL
// detection for "auto" or anything unrecognized.
func (a *App) resolveShell() activation.Shell {
	if sh, ok := activation.ParseShell(a.cfg.Activation.Shell); ok {
		return sh
	}
	return activation.DetectShell()
}

func (a *App) loadStore() (*profile.Store, error) {
	st, err := profile.Load(a.cfg.Profiles.Path)
	if err != nil {
		return nil, a.fail(err)
	}
	return st, nil
}

// loadStoreForActivation refuses to start an activation against an empty
// store; --add is the answer, not a selector with nothing in it.
func (a *App) loadStoreForActivation() (*profile.Store, error) {
	st, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	if len(st.List()) == 0 {
		fmt.Fprintf(a.Stderr, "No Pulumi profiles found in %s\n", a.cfg.Profiles.Path)
		fmt.Fprintln(a.Stderr, "Use --add to create your first profile")
		return nil, fmt.Errorf("no profiles configured")
	}
	return st, nil
}

// notFound reports a missing profile name with the available names and a
// nearest-match hint when one is close enough to be a likely typo.
func (a *App) notFound(st *profile.Store, name string) error {
	fmt.Fprintf(a.Stderr, "Profile '%s' not found in Pulumi profiles\n", name)
	fmt.Fprintln(a.Stderr, "Available profiles:")
	for _, rec := range st.List() {
		fmt.Fprintf(a.Stderr, "  %s\n", rec.Name)
	}
	if hint := st.Suggest(name); hint != "" {
		fmt.Fprintf(a.Stderr, "Did you mean '%s'?\n", hint)
	}
	return fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
}

func (a *App) cancelled(msg string) error {
	fmt.Fprintln(a.Stderr, msg)
	return ErrCancelled
}
