package cli

import (
	"errors"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

// ErrCancelled reports that the user backed out of an interactive step,
// either the selector or one of the add/edit prompts.
var ErrCancelled = errors.New("cancelled")

// ExitCode is the process exit status for one invocation. Scripts wrapping
// the tool branch on these, so the mapping is part of the CLI contract.
type ExitCode int

const (
	ExitSuccess   ExitCode = 0
	ExitGeneral   ExitCode = 1
	ExitNotFound  ExitCode = 2
	ExitDuplicate ExitCode = 3
	ExitCancelled ExitCode = 4
)

// MapExitCode translates sentinel errors into exit codes. A malformed
// store file is a general error: it needs a human, not a script branch.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrCancelled):
		return ExitCancelled
	case errors.Is(err, profile.ErrDuplicateName):
		return ExitDuplicate
	case errors.Is(err, profile.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneral
	}
}
