// Package walker enumerates directory trees exposed through io/fs,
// parents before their children, the way a recursive directory
// iterator in "self first" mode does.
package walker

import (
	"context"
	"io/fs"
	"path"
	"sort"

	"github.com/golang-collections/collections/stack"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/types"
)

type pending struct {
	path  string
	entry fs.DirEntry
}

// SelfFirst visits every entry below root (but never root itself),
// depth first, siblings in lexical order. Directories are visited
// before anything they contain.
//
// The first error, from reading a directory, from fn or from the
// context, aborts the walk and is returned.
func SelfFirst(ctx context.Context, fsys fs.FS, root string, fn types.WalkFunc) error {

	spnWalk, ctx := opentracing.StartSpanFromContext(ctx, "walker.SelfFirst")
	defer spnWalk.Finish()
	spnWalk.SetTag("root", root)

	var (
		s       stack.Stack
		visited int
	)

	if err := pushChildren(&s, fsys, root); err != nil {
		return err
	}

	for s.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "walk aborted")
		}

		var next = s.Pop().(pending)
		if err := fn(next.path, next.entry); err != nil {
			return err
		}
		visited++

		if next.entry.IsDir() {
			if err := pushChildren(&s, fsys, next.path); err != nil {
				return err
			}
		}
	}

	spnWalk.SetTag("visited", visited)
	return nil
}

// pushChildren pushes in reverse so that popping yields lexical order.
// Not every archive backed fs.FS honours the sorted ReadDir contract,
// so the entries are sorted again here.
func pushChildren(s *stack.Stack, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrapf(err, "can't read directory %q", dir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for i := len(entries) - 1; i >= 0; i-- {
		s.Push(pending{path: join(dir, entries[i].Name()), entry: entries[i]})
	}
	return nil
}

func join(dir, name string) string {
	if dir == "." {
		return name
	}
	return path.Join(dir, name)
}
