package activation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Pointer is the single-line file recording which profile is persistently
// active. It holds only the profile name; resolving the name against the
// store happens at read time, so a pointer to a since-deleted profile is
// valid state.
type Pointer struct {
	path string
}

// NewPointer binds a pointer to its file path.
func NewPointer(path string) *Pointer {
	return &Pointer{path: path}
}

// Read returns the active profile name. ok is false when no profile is
// active, meaning the file is absent or blank.
func (p *Pointer) Read() (name string, ok bool, err error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read current profile %s: %w", p.path, err)
	}
	name = strings.TrimSpace(string(data))
	return name, name != "", nil
}

// Write records name as the active profile, creating the parent directory on
// demand. The write goes through a temp file so a crash cannot leave a
// half-written pointer behind.
func (p *Pointer) Write(name string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create pointer dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(name), 0o600); err != nil {
		return fmt.Errorf("write current profile: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace current profile %s: %w", p.path, err)
	}
	return nil
}

// Clear removes the pointer file. cleared is false when there was nothing to
// remove, which callers report differently from a real deactivation.
func (p *Pointer) Clear() (cleared bool, err error) {
	if err := os.Remove(p.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove current profile %s: %w", p.path, err)
	}
	return true, nil
}
