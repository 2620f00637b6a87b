// Package picker holds the selection state machine behind the interactive
// chooser. It owns no terminal I/O: the tui layer feeds it key names and
// renders from its accessors, which keeps every transition unit-testable.
package picker

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/profile"
)

// Action classifies what a keystroke did to the session.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionSelected
	ActionCancelled
)

// Result reports the outcome of one keystroke. Record is populated for
// ActionSelected.
type Result struct {
	Action Action
	Record profile.Record
}

// Picker filters records by a typed query and tracks a cursor over the
// matches. All state is private; mutation happens only through HandleKey and
// SetQuery.
type Picker struct {
	records  []profile.Record
	filtered []profile.Record
	query    string
	cursor   int
}

// New builds a picker over the given records. Record order is the final
// tie-break when scores and names collide, so callers pass store order.
func New(records []profile.Record) *Picker {
	p := &Picker{records: append([]profile.Record(nil), records...)}
	p.rebuildFiltered()
	return p
}

func (p *Picker) Query() string { return p.query }

func (p *Picker) Cursor() int { return p.cursor }

// Filtered returns a copy of the current matches in display order.
func (p *Picker) Filtered() []profile.Record {
	return append([]profile.Record(nil), p.filtered...)
}

func (p *Picker) MatchCount() int { return len(p.filtered) }

func (p *Picker) TotalCount() int { return len(p.records) }

// SetQuery replaces the query and refilters. The cursor clamps into the new
// result bounds rather than resetting to the top.
func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

// Current returns the record under the cursor, ok=false when nothing matches.
func (p *Picker) Current() (profile.Record, bool) {
	if len(p.filtered) == 0 {
		return profile.Record{}, false
	}
	return p.filtered[p.cursor], true
}

// HandleKey applies one keystroke. Arrows and ctrl+p/ctrl+n move without
// wraparound, enter selects, esc cancels, anything printable edits the
// query. "q" doubles as a cancel key, but only while the query is empty;
// once the user is typing it is ordinary filter input.
func (p *Picker) HandleKey(keyName string) Result {
	switch keyName {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
			return Result{Action: ActionMoved}
		}
		return Result{Action: ActionNone}
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return Result{Action: ActionMoved}
		}
		return Result{Action: ActionNone}
	case "enter":
		rec, ok := p.Current()
		if !ok {
			return Result{Action: ActionNone}
		}
		return Result{Action: ActionSelected, Record: rec}
	case "esc", "ctrl+c":
		return Result{Action: ActionCancelled}
	case "q":
		if p.query == "" {
			return Result{Action: ActionCancelled}
		}
		p.SetQuery(p.query + "q")
		return Result{Action: ActionNone}
	case "backspace":
		if p.query != "" {
			_, size := utf8.DecodeLastRuneInString(p.query)
			p.SetQuery(p.query[:len(p.query)-size])
		}
		return Result{Action: ActionNone}
	case "space", " ":
		p.SetQuery(p.query + " ")
		return Result{Action: ActionNone}
	default:
		if r, ok := printableKey(keyName); ok {
			p.SetQuery(p.query + string(r))
		}
		return Result{Action: ActionNone}
	}
}

type scoredRecord struct {
	rec   profile.Record
	score int
	index int
}

// rebuildFiltered recomputes the match list: matches only, score descending,
// then case-insensitive name, then insertion order.
func (p *Picker) rebuildFiltered() {
	scored := make([]scoredRecord, 0, len(p.records))
	for idx, rec := range p.records {
		matched, score := fuzzyMatchScore(rec.Name, p.query)
		if !matched {
			continue
		}
		scored = append(scored, scoredRecord{rec: rec, score: score, index: idx})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		ni, nj := strings.ToLower(scored[i].rec.Name), strings.ToLower(scored[j].rec.Name)
		if ni != nj {
			return ni < nj
		}
		return scored[i].index < scored[j].index
	})

	p.filtered = p.filtered[:0]
	for _, row := range scored {
		p.filtered = append(p.filtered, row.rec)
	}

	if maxIdx := len(p.filtered) - 1; maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
}

// printableKey reports whether keyName is one printable rune, meaning the
// terminal layer passed a literal character through rather than a named key.
func printableKey(keyName string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(keyName)
	if size != len(keyName) || r == utf8.RuneError {
		return 0, false
	}
	if !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}
