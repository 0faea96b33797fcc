package matcher

import (
	"strings"
	"testing"

	test "github.com/retro-framework/go-archglob/framework/test_helper"
)

func Test_Path_Match(t *testing.T) {

	p, err := CompilePath([]string{"*", "[bc]"}, "*.txt")
	test.H(t).IsNil(err)
	test.H(t).IntEql(p.Depth(), 3)

	t.Run("match", func(t *testing.T) {
		r := p.Match(strings.Split("a/b/x.txt", "/"))
		test.H(t).BoolEql(r.Success(), true)
		test.H(t).StringEql(r.String(), "match")
	})

	t.Run("too shallow", func(t *testing.T) {
		r := p.Match(strings.Split("a/x.txt", "/"))
		test.H(t).BoolEql(r.Failure(), true)
		test.H(t).InterfaceEql(r.Reason(), ReasonDepth)
	})

	t.Run("too deep", func(t *testing.T) {
		r := p.Match(strings.Split("a/b/c/x.txt", "/"))
		test.H(t).InterfaceEql(r.Reason(), ReasonDepth)
	})

	t.Run("dir segment", func(t *testing.T) {
		r := p.Match(strings.Split("a/d/x.txt", "/"))
		test.H(t).InterfaceEql(r.Reason(), ReasonDirSegment)
		test.H(t).IntEql(r.Index(), 1)
		test.H(t).StringEql(r.String(), "dir-segment[1]")
	})

	t.Run("filename", func(t *testing.T) {
		r := p.Match(strings.Split("a/b/x.log", "/"))
		test.H(t).InterfaceEql(r.Reason(), ReasonFilename)
	})
}

func Test_CompilePath_Malformed(t *testing.T) {
	_, err := CompilePath([]string{"[x"}, "y")
	test.H(t).NotNil(err)
	_, err = CompilePath(nil, "[y")
	test.H(t).NotNil(err)
}
