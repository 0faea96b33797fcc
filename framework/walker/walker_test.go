package walker

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"

	test "github.com/retro-framework/go-archglob/framework/test_helper"
)

var fixture = fstest.MapFS{
	"a/b/x.txt": &fstest.MapFile{Data: []byte("x")},
	"a/c/x.txt": &fstest.MapFile{Data: []byte("x")},
	"a/b/y.log": &fstest.MapFile{Data: []byte("y")},
	"a/z.txt":   &fstest.MapFile{Data: []byte("z")},
	"top.txt":   &fstest.MapFile{Data: []byte("t")},
}

func collect(t *testing.T, ctx context.Context, root string) ([]string, error) {
	t.Helper()
	var seen []string
	err := SelfFirst(ctx, fixture, root, func(p string, _ fs.DirEntry) error {
		seen = append(seen, p)
		return nil
	})
	return seen, err
}

func Test_SelfFirst(t *testing.T) {

	t.Run("from the archive root", func(t *testing.T) {
		seen, err := collect(t, context.Background(), ".")
		test.H(t).IsNil(err)
		test.H(t).StringsEql(seen, []string{
			"a",
			"a/b",
			"a/b/x.txt",
			"a/b/y.log",
			"a/c",
			"a/c/x.txt",
			"a/z.txt",
			"top.txt",
		})
	})

	t.Run("from a subdirectory, root itself excluded", func(t *testing.T) {
		seen, err := collect(t, context.Background(), "a/b")
		test.H(t).IsNil(err)
		test.H(t).StringsEql(seen, []string{"a/b/x.txt", "a/b/y.log"})
	})

	t.Run("missing root", func(t *testing.T) {
		seen, err := collect(t, context.Background(), "nope")
		test.H(t).NotNil(err)
		test.H(t).IntEql(len(seen), 0)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := collect(t, ctx, ".")
		test.H(t).ErrIs(err, context.Canceled)
	})

	t.Run("callback error aborts", func(t *testing.T) {
		var (
			boom  = errors.New("boom")
			calls int
		)
		err := SelfFirst(context.Background(), fixture, ".", func(string, fs.DirEntry) error {
			calls++
			return boom
		})
		test.H(t).ErrIs(err, boom)
		test.H(t).IntEql(calls, 1)
	})
}
