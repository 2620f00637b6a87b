package activation

import (
	"fmt"
	"os"
	"strings"
)

// envVar is the variable every emitted shell command sets or clears.
const envVar = "PULUMI_BACKEND_URL"

// Shell identifies the command syntax emitted for the calling shell.
type Shell string

const (
	ShellPosix   Shell = "posix"
	ShellFish    Shell = "fish"
	ShellNushell Shell = "nushell"
)

// ParseShell maps a config value to a Shell. "auto" and unknown values report
// ok=false so the caller falls back to detection.
func ParseShell(s string) (Shell, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "posix", "bash", "zsh", "sh":
		return ShellPosix, true
	case "fish":
		return ShellFish, true
	case "nushell", "nu":
		return ShellNushell, true
	}
	return ShellPosix, false
}

// DetectShell classifies $SHELL. Nushell is checked before fish, and anything
// unrecognized gets posix syntax, which bash and zsh both accept.
func DetectShell() Shell {
	shell := os.Getenv("SHELL")
	switch {
	case strings.Contains(shell, "nu"):
		return ShellNushell
	case strings.Contains(shell, "fish"):
		return ShellFish
	}
	return ShellPosix
}

// ExportCommand renders the one line that sets the backend variable when
// eval'd by the given shell. The value is quoted so URLs with spaces or
// quotes survive the eval.
func ExportCommand(shell Shell, value string) string {
	switch shell {
	case ShellNushell:
		return fmt.Sprintf("$env.%s = %q", envVar, value)
	case ShellFish:
		return fmt.Sprintf("set -gx %s %q", envVar, value)
	}
	return fmt.Sprintf("export %s=%q", envVar, value)
}

// UnsetCommand renders the one line that clears the backend variable.
func UnsetCommand(shell Shell) string {
	switch shell {
	case ShellNushell:
		return "hide-env " + envVar
	case ShellFish:
		return "set -e " + envVar
	}
	return "unset " + envVar
}
