package costmodel

import (
	"errors"
	"fmt"
)

// Recognized priority-scheme names, matching the option-store term exactly
// (see package option, which already validates the "*-PRIORITIES" shape).
const (
	None     = ""
	Linear   = "LINEAR-PRIORITIES"
	Triangle = "TRIANGLE-PRIORITIES"
	Square   = "SQUARE-PRIORITIES"
	Scaled   = "SCALED-PRIORITIES"
)

// ErrScaledNotImplemented is returned when SCALED-PRIORITIES is selected:
// its formula is unspecified in the original implementation (spec §9, open
// question) and must not be guessed.
var ErrScaledNotImplemented = errors.New("costmodel: SCALED-PRIORITIES has no documented formula; refusing to guess")

// ErrUnsupportedScheme is returned for any syntactically valid
// ("*-PRIORITIES") but otherwise unrecognized scheme name.
var ErrUnsupportedScheme = errors.New("costmodel: unsupported priority scheme")

// Cost returns the min-cost-flow arc cost for a want-arc of the given rank
// under scheme, given whether its source item is a dummy.
//
// A dummy source always costs 0: it incurs no preference penalty on what it
// "sends" (spec §4.5). Otherwise the cost is a pure function of rank and
// scheme:
//
//	NONE     -> 1
//	LINEAR   -> rank
//	TRIANGLE -> rank*(rank+1)/2
//	SQUARE   -> rank*rank
//	SCALED   -> ErrScaledNotImplemented (fatal if selected)
func Cost(scheme string, rank int64, sourceIsDummy bool) (int64, error) {
	if sourceIsDummy {
		return 0, nil
	}

	switch scheme {
	case None:
		return 1, nil
	case Linear:
		return rank, nil
	case Triangle:
		return rank * (rank + 1) / 2, nil
	case Square:
		return rank * rank, nil
	case Scaled:
		return 0, ErrScaledNotImplemented
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}
