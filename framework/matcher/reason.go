package matcher

import "fmt"

// Reason is a simple enum so that the glob walker can keep
// track of why an entry did or did not match.
type Reason int

const (

	// ReasonNone indicates a match, implemented so that
	// callers can rely on having a result instead
	// of having to deal with nils.
	ReasonNone Reason = iota + 1

	// ReasonDepth indicates that the entry is not at exactly
	// the depth the pattern asks for, no segment was compared.
	ReasonDepth

	// ReasonDirSegment indicates that one of the directory
	// segments did not match, Result.Index says which one.
	ReasonDirSegment

	// ReasonFilename indicates that every directory matched
	// but the final segment did not.
	ReasonFilename
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "match"
	case ReasonDepth:
		return "depth"
	case ReasonDirSegment:
		return "dir-segment"
	case ReasonFilename:
		return "filename"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}
