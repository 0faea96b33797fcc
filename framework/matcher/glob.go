package matcher

import (
	"github.com/pkg/errors"
	"github.com/zyedidia/glob"
)

// Glob matches whole strings, '*' happily crosses slashes, which is what
// one wants for exclude lists ("*.bak", "*/vendor/*") and exactly what
// one does not want for segment matching, see Segment for that.
type Glob struct{}

func (_ Glob) DoesMatch(pattern, s string) (bool, error) {
	glob, err := glob.Compile(pattern)
	if err != nil {
		return false, errors.Wrap(err, "can't compile glob pattern")
	}
	return glob.MatchString(s), nil
}

// Excludes is a compiled list of Glob patterns.
type Excludes []*glob.Glob

func CompileExcludes(patterns []string) (Excludes, error) {
	var ex = make(Excludes, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "can't compile exclude pattern %q", p)
		}
		ex = append(ex, g)
	}
	return ex, nil
}

// Excluded reports whether s matches any of the patterns.
func (ex Excludes) Excluded(s string) bool {
	for _, g := range ex {
		if g.MatchString(s) {
			return true
		}
	}
	return false
}

// Filter returns the paths which are not excluded, order is kept.
func (ex Excludes) Filter(paths []string) []string {
	if len(ex) == 0 {
		return paths
	}
	var kept = make([]string, 0, len(paths))
	for _, p := range paths {
		if !ex.Excluded(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
