package cave

import "errors"

var (
	// ErrInvalidSegment indicates a rock segment that is not axis-aligned or
	// that reaches above row 0.
	ErrInvalidSegment = errors.New("cave: invalid rock segment")
	// ErrMalformedPath indicates a path line that cannot be parsed.
	ErrMalformedPath = errors.New("cave: malformed rock path")
	// ErrNoRock indicates a cave built without any rock.
	ErrNoRock = errors.New("cave: no rock segments")
	// ErrSourceOutOfRange indicates a source above the top row or not above
	// the floor.
	ErrSourceOutOfRange = errors.New("cave: source outside the cave")
)
