package profile

// Record is one named backend entry in the profiles file.
type Record struct {
	Name    string `json:"name"`
	Backend string `json:"backend"`
}

// String renders the record the way the selector and --list display it.
func (r Record) String() string {
	return r.Name + " -> " + r.Backend
}
