package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/activation"
	"github.com/stephenstubbs/pulumi-profile-selector/internal/history"
)

const historyLimit = 20

// recordHistory logs a completed activation or deactivation. Best effort:
// the command already succeeded, so history trouble is a warning and never
// an exit-code change.
func (a *App) recordHistory(ctx context.Context, res activation.Result) {
	if !a.cfg.History.Enabled {
		return
	}
	db, err := history.Open(a.cfg.History.Path)
	if err != nil {
		log.Printf("warn: open history: %v", err)
		return
	}
	defer db.Close()

	entry := history.Entry{
		Name:    res.Name,
		Backend: res.Backend,
		Mode:    string(res.Mode),
		Action:  string(res.Action),
	}
	if err := history.NewRepo(db).Record(ctx, entry); err != nil {
		log.Printf("warn: record history: %v", err)
	}
}

func (a *App) runHistory(ctx context.Context) error {
	if !a.cfg.History.Enabled {
		fmt.Fprintln(a.Stdout, "History is disabled in config")
		return nil
	}
	db, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return a.fail(fmt.Errorf("open history: %w", err))
	}
	defer db.Close()

	entries, err := history.NewRepo(db).Recent(ctx, historyLimit)
	if err != nil {
		return a.fail(fmt.Errorf("read history: %w", err))
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "No activation history yet")
		return nil
	}
	for _, e := range entries {
		target := e.Name
		if e.Action == string(activation.ActionDeactivate) {
			target = "-"
		}
		fmt.Fprintf(a.Stdout, "%s  %-10s  %-10s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Action, e.Mode, target)
	}
	return nil
}
