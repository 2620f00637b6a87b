package activation

import (
	"path/filepath"
	"testing"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

func testActivator(t *testing.T) (*Activator, *Pointer) {
	t.Helper()
	p := NewPointer(filepath.Join(t.TempDir(), "current_profile"))
	return NewActivator(p, ShellPosix), p
}

func TestActivateSessionReturnsCommandOnly(t *testing.T) {
	a, p := testActivator(t)
	rec := profile.Record{Name: "prod", Backend: "s3://prod-bucket"}

	res, err := a.Activate(rec, ModeSession)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if res.Command != `export PULUMI_BACKEND_URL="s3://prod-bucket"` {
		t.Errorf("command = %q", res.Command)
	}
	if res.Mode != ModeSession || res.Action != ActionActivate {
		t.Errorf("result = %+v, want session activate", res)
	}
	if _, ok, _ := p.Read(); ok {
		t.Error("session activation must not touch the pointer file")
	}
}

func TestActivatePersistentWritesPointer(t *testing.T) {
	a, p := testActivator(t)
	rec := profile.Record{Name: "dev", Backend: "s3://dev-bucket"}

	res, err := a.Activate(rec, ModePersistent)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if res.Command != "" {
		t.Errorf("persistent activation returned command %q", res.Command)
	}
	name, ok, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok || name != "dev" {
		t.Errorf("pointer = %q, %v, want dev, true", name, ok)
	}
}

func TestActivateUnregisteredExportsName(t *testing.T) {
	a, _ := testActivator(t)

	res, err := a.ActivateUnregistered("scratch", ModeSession)
	if err != nil {
		t.Fatalf("ActivateUnregistered: %v", err)
	}
	if res.Command != `export PULUMI_BACKEND_URL="scratch"` {
		t.Errorf("command = %q, want the name exported verbatim", res.Command)
	}
}

func TestActivateUnregisteredPersistent(t *testing.T) {
	a, p := testActivator(t)

	if _, err := a.ActivateUnregistered("scratch", ModePersistent); err != nil {
		t.Fatalf("ActivateUnregistered: %v", err)
	}
	name, ok, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok || name != "scratch" {
		t.Errorf("pointer = %q, %v, want scratch, true", name, ok)
	}
}

func TestDeactivateSession(t *testing.T) {
	a, _ := testActivator(t)

	res, err := a.Deactivate(ModeSession)
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if res.Command != "unset PULUMI_BACKEND_URL" {
		t.Errorf("command = %q", res.Command)
	}
	if res.Action != ActionDeactivate {
		t.Errorf("action = %v, want deactivate", res.Action)
	}
}

func TestDeactivatePersistentRemovesPointer(t *testing.T) {
	a, p := testActivator(t)
	if err := p.Write("dev"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	res, err := a.Deactivate(ModePersistent)
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if !res.Cleared {
		t.Error("expected Cleared=true when a pointer existed")
	}
	if _, ok, _ := p.Read(); ok {
		t.Error("pointer should be gone after deactivation")
	}

	res, err = a.Deactivate(ModePersistent)
	if err != nil {
		t.Fatalf("second Deactivate: %v", err)
	}
	if res.Cleared {
		t.Error("expected Cleared=false with no active profile")
	}
}

func TestFishActivatorSyntax(t *testing.T) {
	p := NewPointer(filepath.Join(t.TempDir(), "current_profile"))
	a := NewActivator(p, ShellFish)

	res, err := a.Activate(profile.Record{Name: "dev", Backend: "s3://dev"}, ModeSession)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if res.Command != `set -gx PULUMI_BACKEND_URL "s3://dev"` {
		t.Errorf("command = %q", res.Command)
	}
}
