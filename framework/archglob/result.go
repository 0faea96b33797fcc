package archglob

import (
	"fmt"
	"time"
)

// Outcome says how a Find call ended. Only OutcomeMatched means the
// archive was walked completely, every other outcome comes with an
// empty Paths.
type Outcome int

const (
	OutcomeMatched Outcome = iota + 1
	OutcomeMissingArchive
	OutcomeTraversalFailed
	OutcomeMalformedSegment
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeMissingArchive:
		return "missing-archive"
	case OutcomeTraversalFailed:
		return "traversal-failed"
	case OutcomeMalformedSegment:
		return "malformed-segment"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result of a single Find call. Paths is never nil.
type Result struct {
	Pattern  string
	Archive  string
	Paths    []string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Degraded is true when the result is empty for a reason other than
// "the archive simply has nothing matching".
func (r Result) Degraded() bool {
	return r.Outcome != OutcomeMatched && r.Outcome != OutcomeMissingArchive
}
