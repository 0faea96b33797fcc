package matcher

import (
	"testing"

	test "github.com/retro-framework/go-archglob/framework/test_helper"
)

func Test_CompileSegment(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		result  bool
	}{
		{"x.txt", "x.txt", true},
		{"x.txt", "xatxt", false},
		{"x.txt", "X.txt", false},
		{"x.txt", "x.txt.bak", false},
		{"*", "", true},
		{"*", "anything", true},
		{"*.txt", "x.txt", true},
		{"*.txt", ".txt", true},
		{"*.txt", "x.log", false},
		{"?", "a", true},
		{"?", "", false},
		{"?", "ab", false},
		{"a?c", "abc", true},
		{"a?c", "ac", false},
		{"[bc]", "b", true},
		{"[bc]", "c", true},
		{"[bc]", "d", false},
		{"[bc]", "bc", false},
		{"[a-c]x", "bx", true},
		{"[a-c]x", "dx", false},
		{"[*]", "*", true},
		{"[*]", "a", false},
		{"file(1)+", "file(1)+", true},
		{"file(1)+", "file1", false},
		{"]", "]", true},
		{"[]]", "]", true},
		{"[]]", "a", false},
		{"[]a]x", "ax", true},
		{"[]a]x", "]x", true},
		{"[]a]x", "bx", false},
		{"[a]]", "a]", true},
		{"ü?", "üx", true},
		{"?", "ü", true},
	}

	for _, c := range cases {
		s, err := CompileSegment(c.pattern)
		if err != nil {
			t.Fatalf("unexpected err compiling %q: %s", c.pattern, err)
		}
		if got := s.DoesMatch(c.name); got != c.result {
			t.Errorf("pattern %q (expr %s) against %q: got %t wanted %t", c.pattern, s.Expr(), c.name, got, c.result)
		}
	}
}

func Test_CompileSegment_Malformed(t *testing.T) {
	for _, p := range []string{"[ab", "[]", "[]ab"} {
		if _, err := CompileSegment(p); err == nil {
			t.Errorf("expected %q to be malformed", p)
		}
	}
}

func Test_Segment_ZeroValue(t *testing.T) {
	var s Segment
	test.H(t).BoolEql(s.DoesMatch(""), false)
	test.H(t).StringEql(s.Expr(), "")
}

func Test_IsWildcard(t *testing.T) {
	test.H(t).BoolEql(IsWildcard("plain"), false)
	test.H(t).BoolEql(IsWildcard("a]"), false)
	test.H(t).BoolEql(IsWildcard("*"), true)
	test.H(t).BoolEql(IsWildcard("a?"), true)
	test.H(t).BoolEql(IsWildcard("[ab]"), true)
}
