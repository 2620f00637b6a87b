package cli

import (
	"fmt"
)

const backendPlaceholder = "e.g., s3://my-bucket/state, file://./state, https://api.pulumi.com"

func (a *App) runAdd() error {
	// Loading first surfaces a malformed store before the user types
	// anything in.
	st, err := a.loadStore()
	if err != nil {
		return err
	}

	name, ok, err := a.PromptText("Profile name:", "Enter a unique name for this profile")
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		return a.cancelled("Cancelled")
	}
	backend, ok, err := a.PromptText("Backend URL:", backendPlaceholder)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		return a.cancelled("Cancelled")
	}

	if err := st.Add(name, backend); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Stdout, "Profile '%s' added successfully\n", name)
	return nil
}

func (a *App) runEdit(name string) error {
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	// Check membership before prompting so a typo fails with the hint
	// instead of discarding a freshly typed URL.
	if _, ok := st.Get(name); !ok {
		return a.notFound(st, name)
	}

	backend, ok, err := a.PromptText("New backend URL:", backendPlaceholder)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		return a.cancelled("Cancelled")
	}

	if err := st.Edit(name, backend); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Stdout, "Profile '%s' updated successfully\n", name)
	return nil
}

func (a *App) runDelete(name string) error {
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	if _, ok := st.Get(name); !ok {
		return a.notFound(st, name)
	}
	if err := st.Delete(name); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Stdout, "Profile '%s' deleted successfully\n", name)
	return nil
}

func (a *App) runList() error {
	st, err := a.loadStore()
	if err != nil {
		return err
	}
	records := st.List()
	if len(records) == 0 {
		fmt.Fprintln(a.Stdout, "No profiles found.")
		return nil
	}

	// The pointer may name an unregistered profile; then no row carries
	// the marker and that is fine.
	active, ok, err := a.pointer.Read()
	if err != nil || !ok {
		active = ""
	}

	fmt.Fprintln(a.Stdout, "Available profiles:")
	for _, rec := range records {
		marker := "  "
		if rec.Name == active {
			marker = "* "
		}
		fmt.Fprintf(a.Stdout, "%s%s -> %s\n", marker, rec.Name, rec.Backend)
	}
	return nil
}
