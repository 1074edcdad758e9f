package option

import (
	"fmt"
	"sort"
	"strconv"
)

// Store is the typed registry of boolean, integer, and priority-scheme
// options for a single parse run. The zero value is not meaningful; use
// NewStore.
type Store struct {
	bools    map[string]bool
	ints     map[string]int64
	priority string // "*-PRIORITIES" scheme name; empty means unset (defaults to NONE)
	started  bool   // true once the first directive or payload line was seen
}

// NewStore returns a Store with every boolean false and every integer at its
// documented default (spec §4.2).
func NewStore() *Store {
	s := &Store{
		bools: make(map[string]bool, len(booleanNames)),
		ints:  make(map[string]int64, len(integerNames)),
	}
	for name := range booleanNames {
		s.bools[name] = false
	}
	for name, def := range integerNames {
		s.ints[name] = def
	}

	return s
}

// MarkParsingStarted records that the first directive or payload line has
// been seen; subsequent Apply calls fail with ErrParsingAlreadyStarted.
func (s *Store) MarkParsingStarted() { s.started = true }

// Apply interprets one option line's already-tokenized terms (spec §4.1
// rule 3 / §4.2) and mutates the Store accordingly. terms is never empty;
// callers skip blank option lines before calling Apply.
//
// Resolution order:
//  1. If parsing has already started, fail fast (ErrParsingAlreadyStarted).
//  2. A single term matching a known boolean name sets it true (idempotent:
//     repeating a boolean option is a no-op, not an error).
//  3. A term ending in "-PRIORITIES" selects the priority scheme; repeating
//     it keeps the last value (silently overwritten, not an error).
//  4. A term matching a known integer name, with a following integer-valued
//     term, sets that integer; repeating it keeps the last value.
//  5. Anything else is ErrUnknownOption.
func (s *Store) Apply(terms []string) error {
	if s.started {
		return ErrParsingAlreadyStarted
	}

	name := terms[0]

	switch {
	case booleanNames[name]:
		s.bools[name] = true

		return nil

	case isPriorityName(name):
		s.priority = name

		return nil

	case isKnownInteger(name):
		if len(terms) < 2 {
			return fmt.Errorf("%w: %s", ErrMissingIntegerValue, name)
		}
		v, err := strconv.ParseInt(terms[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadIntegerValue, name, terms[1])
		}
		s.ints[name] = v

		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
}

func isKnownInteger(name string) bool {
	_, ok := integerNames[name]

	return ok
}

// Bool returns the current value of a boolean option. Unknown names return
// false; callers only ever query names from the constants in types.go.
func (s *Store) Bool(name string) bool { return s.bools[name] }

// Int returns the current value of an integer option.
func (s *Store) Int(name string) int64 { return s.ints[name] }

// Priority returns the selected priority-scheme name, or "" if none was set
// (the cost model then applies the NONE scheme, spec §4.5).
func (s *Store) Priority() string { return s.priority }

// ForceBool sets a boolean option unconditionally, bypassing the
// started-guard Apply enforces. This is not a want-file directive: it is
// for a CLI-level override applied after a run has already parsed its
// input (spec §6 "show/hide non-trades").
func (s *Store) ForceBool(name string, value bool) { s.bools[name] = value }

// ForcePriority sets the priority scheme unconditionally, bypassing the
// started-guard, for a CLI-level override (spec §6 "priority-scheme
// override or priority disable") that must win regardless of what the
// want-file itself declared.
func (s *Store) ForcePriority(scheme string) { s.priority = scheme }

// ActiveBools returns, sorted, the name of every boolean option currently
// set to true. Used by package report to echo the options a run was given
// (spec §4.9 "Preceded by the parser's option echo").
func (s *Store) ActiveBools() []string {
	out := make([]string, 0, len(s.bools))
	for name, v := range s.bools {
		if v {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// Ints returns every integer option name paired with its current value,
// sorted by name, regardless of whether it differs from its default.
func (s *Store) Ints() []IntSetting {
	out := make([]IntSetting, 0, len(s.ints))
	for name, v := range s.ints {
		out = append(out, IntSetting{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// IntSetting pairs an integer option name with its current value.
type IntSetting struct {
	Name  string
	Value int64
}
