package matcher

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// WildcardChars are the characters which make a path segment a pattern
// rather than a literal directory name. A lone ']' does not count, it
// can't open a class.
const WildcardChars = "*?["

// IsWildcard reports whether the segment needs to be matched, as opposed
// to being usable verbatim as part of a directory path.
func IsWildcard(segment string) bool {
	return strings.ContainsAny(segment, WildcardChars)
}

// Segment is a single slash-free path component pattern, compiled
// into an anchored regular expression. The zero value matches nothing.
type Segment struct {
	src string
	re  *regexp.Regexp
}

// CompileSegment translates a glob segment into a regular expression.
// Everything is quoted except for the glob metacharacters:
//
//	*      any run of non separator characters
//	?      exactly one non separator character
//	[...]  a character class, '-' ranges work, negation does not
//
// Inside a class '*' and '?' are literal, so is a ']' directly after
// the opening '[' ("[]]" matches "]").
func CompileSegment(segment string) (Segment, error) {
	var (
		b          strings.Builder
		inClass    bool
		classStart bool
	)
	b.WriteString("^")
	for _, r := range segment {
		var opened = classStart
		classStart = false
		switch {
		case r == '[' && !inClass:
			inClass, classStart = true, true
			b.WriteRune(r)
		case r == ']' && inClass && opened:
			b.WriteString(`\]`)
		case r == ']' && inClass:
			inClass = false
			b.WriteRune(r)
		case r == '*' && !inClass:
			b.WriteString("[^/]*")
		case r == '?' && !inClass:
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return Segment{}, errors.Wrapf(err, "can't compile segment %q", segment)
	}
	return Segment{src: segment, re: re}, nil
}

// MustCompileSegment is CompileSegment for patterns known at compile time.
func MustCompileSegment(segment string) Segment {
	s, err := CompileSegment(segment)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Segment) DoesMatch(name string) bool {
	if s.re == nil {
		return false
	}
	return s.re.MatchString(name)
}

func (s Segment) String() string { return s.src }

// Expr exposes the generated expression, mostly for debug logging.
func (s Segment) Expr() string {
	if s.re == nil {
		return ""
	}
	return s.re.String()
}
