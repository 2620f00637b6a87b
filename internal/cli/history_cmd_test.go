package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/history"
)

func TestActivationIsRecordedToHistory(t *testing.T) {
	home := setupEnv(t)
	t.Setenv("PULUMI_PROFILE_SELECTOR_HISTORY_ENABLED", "true")
	writeProfiles(t, home, twoProfiles)
	app, _, _ := newTestApp(t)

	if err := execute(t, app, "-a", "prod"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	db, err := history.Open(filepath.Join(home, ".local", "share", "pulumi-profile-selector", "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer db.Close()
	entries, err := history.NewRepo(db).Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "prod" || e.Backend != "s3://prod-bucket/state" || e.Action != "activate" || e.Mode != "persistent" {
		t.Errorf("entry = %+v", e)
	}
}

func TestHistoryFlagPrintsRecent(t *testing.T) {
	home := setupEnv(t)
	t.Setenv("PULUMI_PROFILE_SELECTOR_HISTORY_ENABLED", "true")
	writeProfiles(t, home, twoProfiles)

	app, _, _ := newTestApp(t)
	if err := execute(t, app, "-a", "prod", "-c"); err != nil {
		t.Fatalf("activate: %v", err)
	}
	app2, _, _ := newTestApp(t)
	if err := execute(t, app2, "-d"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	app3, stdout, _ := newTestApp(t)
	if err := execute(t, app3, "--history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("history lines = %d, want 2:\n%s", len(lines), stdout.String())
	}
	// Newest first: the deactivation, then the session activation.
	if !strings.Contains(lines[0], "deactivate") || !strings.HasSuffix(lines[0], " -") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "activate") || !strings.Contains(lines[1], "prod") || !strings.Contains(lines[1], "session") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestHistoryDisabled(t *testing.T) {
	home := setupEnv(t)
	writeProfiles(t, home, twoProfiles)
	app, _, _ := newTestApp(t)

	if err := execute(t, app, "-a", "prod"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	dbPath := filepath.Join(home, ".local", "share", "pulumi-profile-selector", "history.db")
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("history file created despite history.enabled=false (stat err %v)", err)
	}

	app2, stdout, _ := newTestApp(t)
	if err := execute(t, app2, "--history"); err != nil {
		t.Fatalf("history: %v", err)
	}
	if got := stdout.String(); got != "History is disabled in config\n" {
		t.Errorf("stdout = %q", got)
	}
}
