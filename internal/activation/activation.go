// Package activation owns what "active profile" means: the pointer file for
// activations that outlive the process, and generated shell commands for
// activations scoped to the calling shell.
package activation

import (
	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

// Mode distinguishes a pointer-file activation from a shell-eval one.
type Mode string

const (
	ModePersistent Mode = "persistent"
	ModeSession    Mode = "session"
)

// Action names the state change described by a Result.
type Action string

const (
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
)

// Activator applies profile selections. Persistent operations rewrite the
// pointer file; session operations only return the command line for the
// caller to print, so stdout stays clean for eval.
type Activator struct {
	pointer *Pointer
	shell   Shell
}

// NewActivator wires an activator to its pointer file and shell syntax.
func NewActivator(pointer *Pointer, shell Shell) *Activator {
	return &Activator{pointer: pointer, shell: shell}
}

// Result describes one completed activation or deactivation.
type Result struct {
	Name    string // profile name, empty for deactivations
	Backend string // value a session export carries, empty for deactivations
	Mode    Mode
	Action  Action
	Command string // shell line to print, session mode only
	Cleared bool   // persistent deactivation: whether a pointer existed
}

// Activate marks the record's profile active. Session mode touches nothing on
// disk; persistent mode rewrites the pointer with the profile name.
func (a *Activator) Activate(rec profile.Record, mode Mode) (Result, error) {
	res := Result{Name: rec.Name, Backend: rec.Backend, Mode: mode, Action: ActionActivate}
	if mode == ModeSession {
		res.Command = ExportCommand(a.shell, rec.Backend)
		return res, nil
	}
	if err := a.pointer.Write(rec.Name); err != nil {
		return Result{}, err
	}
	return res, nil
}

// ActivateUnregistered activates a name with no store entry. The exported
// value is the name itself, matching what the pointer file would record.
func (a *Activator) ActivateUnregistered(name string, mode Mode) (Result, error) {
	return a.Activate(profile.Record{Name: name, Backend: name}, mode)
}

// Deactivate undoes the active profile. Session mode returns the unset
// command; persistent mode removes the pointer file and reports through
// Cleared whether one existed.
func (a *Activator) Deactivate(mode Mode) (Result, error) {
	res := Result{Mode: mode, Action: ActionDeactivate}
	if mode == ModeSession {
		res.Command = UnsetCommand(a.shell)
		return res, nil
	}
	cleared, err := a.pointer.Clear()
	if err != nil {
		return Result{}, err
	}
	res.Cleared = cleared
	return res, nil
}
