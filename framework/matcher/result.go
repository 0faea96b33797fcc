package matcher

import "fmt"

// Result holds a result for a match, failures carry the reason and,
// for directory segment failures, the index of the offending segment.
type Result struct {
	success bool
	reason  Reason
	index   int
}

func (mr Result) Reason() Reason { return mr.reason }
func (mr Result) Success() bool  { return mr.success }
func (mr Result) Failure() bool  { return !mr.Success() }
func (mr Result) Index() int     { return mr.index }

func (mr Result) String() string {
	if mr.reason == ReasonDirSegment {
		return fmt.Sprintf("%s[%d]", mr.reason, mr.index)
	}
	return mr.reason.String()
}

func ResultSuccess() Result {
	return Result{success: true, reason: ReasonNone, index: -1}
}

func ResultDepthMismatch() Result {
	return Result{success: false, reason: ReasonDepth, index: -1}
}

func ResultDirSegmentMismatch(i int) Result {
	return Result{success: false, reason: ReasonDirSegment, index: i}
}

func ResultFilenameMismatch() Result {
	return Result{success: false, reason: ReasonFilename, index: -1}
}
