package option

import (
	"errors"
	"strings"
)

// Sentinel errors for option-store operations. All are reported as
// line-tagged diagnostics by the caller (package wantparser); none panic.
var (
	// ErrUnknownOption indicates an option name not recognized as boolean,
	// integer, or a "*-PRIORITIES" scheme.
	ErrUnknownOption = errors.New("option: unknown option")

	// ErrParsingAlreadyStarted indicates an option line appeared after the
	// first directive or payload line (spec §4.2: "Options may only appear
	// before the first directive or payload line").
	ErrParsingAlreadyStarted = errors.New("option: option given after parsing has begun")

	// ErrMissingIntegerValue indicates an integer option name with no value
	// term following it.
	ErrMissingIntegerValue = errors.New("option: missing integer value")

	// ErrBadIntegerValue indicates an integer option value that did not
	// parse as a signed integer.
	ErrBadIntegerValue = errors.New("option: value is not an integer")
)

// Boolean option names (spec §4.2), default false.
const (
	AllowDummies      = "ALLOW-DUMMIES"
	CaseSensitive     = "CASE-SENSITIVE"
	HideErrors        = "HIDE-ERRORS"
	HideLoops         = "HIDE-LOOPS"
	HideNontrades     = "HIDE-NONTRADES"
	HideRepeats       = "HIDE-REPEATS"
	HideStats         = "HIDE-STATS"
	HideSummary       = "HIDE-SUMMARY"
	RequireColons     = "REQUIRE-COLONS"
	RequireUsernames  = "REQUIRE-USERNAMES"
	ShowElapsedTime   = "SHOW-ELAPSED-TIME"
	ShowMissing       = "SHOW-MISSING"
	SortByItem        = "SORT-BY-ITEM"
)

// Integer option names (spec §4.2) and their defaults.
const (
	SmallStep    = "SMALL-STEP"
	BigStep      = "BIG-STEP"
	NontradeCost = "NONTRADE-COST"

	DefaultSmallStep    int64 = 1
	DefaultBigStep      int64 = 9
	DefaultNontradeCost int64 = 1_000_000_000
)

// isPriorityName recognizes any name ending in "-PRIORITIES" as syntactically
// valid (spec §4.2); whether it is actually supported is a costmodel concern.
func isPriorityName(name string) bool {
	return strings.HasSuffix(name, "-PRIORITIES")
}

var booleanNames = map[string]bool{
	AllowDummies:     true,
	CaseSensitive:    true,
	HideErrors:       true,
	HideLoops:        true,
	HideNontrades:    true,
	HideRepeats:      true,
	HideStats:        true,
	HideSummary:      true,
	RequireColons:    true,
	RequireUsernames: true,
	ShowElapsedTime:  true,
	ShowMissing:      true,
	SortByItem:       true,
}

var integerNames = map[string]int64{
	SmallStep:    DefaultSmallStep,
	BigStep:      DefaultBigStep,
	NontradeCost: DefaultNontradeCost,
}
