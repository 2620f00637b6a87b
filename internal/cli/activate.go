package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/activation"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

func (a *App) runDeactivate(ctx context.Context) error {
	res, err := a.act.Deactivate(a.mode)
	if err != nil {
		return a.fail(err)
	}
	if a.mode == activation.ModeSession {
		fmt.Fprintln(a.Stdout, res.Command)
	} else if res.Cleared {
		fmt.Fprintln(a.Stdout, "Pulumi profile deactivated")
	} else {
		fmt.Fprintln(a.Stdout, "No active Pulumi profile to deactivate")
	}
	a.recordHistory(ctx, res)
	return nil
}

// runNew activates a name without requiring it to be registered. A name
// that does exist in the store still resolves to its backend in session
// mode; persistent mode writes the pointer either way.
func (a *App) runNew(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return a.fail(fmt.Errorf("profile name required"))
	}

	if a.mode == activation.ModeSession {
		rec := profile.Record{Name: name, Backend: name}
		// A broken store must not block an explicitly named session
		// activation; fall back to exporting the name literally.
		if st, err := profile.Load(a.cfg.Profiles.Path); err == nil {
			if found, ok := st.Get(name); ok {
				rec = found
			}
		}
		res, err := a.act.Activate(rec, a.mode)
		if err != nil {
			return a.fail(err)
		}
		fmt.Fprintln(a.Stdout, res.Command)
		a.recordHistory(ctx, res)
		return nil
	}

	res, err := a.act.ActivateUnregistered(name, a.mode)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Stdout, "Pulumi profile activated: %s\n", res.Name)
	a.recordHistory(ctx, res)
	return nil
}

func (a *App) runActivate(ctx context.Context, name string) error {
	st, err := a.loadStoreForActivation()
	if err != nil {
		return err
	}
	rec, ok := st.Get(name)
	if !ok {
		return a.notFound(st, name)
	}
	return a.finishActivation(ctx, rec)
}

func (a *App) runSelector(ctx context.Context) error {
	st, err := a.loadStoreForActivation()
	if err != nil {
		return err
	}
	rec, ok, err := a.SelectProfile(st.List(), a.cfg.UI.PageSize)
	if err != nil {
		return a.fail(fmt.Errorf("selector: %w", err))
	}
	if !ok {
		return a.cancelled("No profile selected")
	}
	return a.finishActivation(ctx, rec)
}

// finishActivation is the shared tail of --activate and the selector:
// session mode prints the export command for eval, persistent mode writes
// the pointer and confirms with the resolved backend.
func (a *App) finishActivation(ctx context.Context, rec profile.Record) error {
	res, err := a.act.Activate(rec, a.mode)
	if err != nil {
		return a.fail(err)
	}
	if a.mode == activation.ModeSession {
		fmt.Fprintln(a.Stdout, res.Command)
	} else {
		fmt.Fprintf(a.Stdout, "Pulumi profile activated: %s (%s)\n", res.Name, res.Backend)
	}
	a.recordHistory(ctx, res)
	return nil
}
