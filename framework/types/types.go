package types

import (
	"context"
	"io/fs"
)

// Logger is the generic logging interface. It explicitly avoids including
// Fatal and Fatalf because of the relative brutal nature of os.Exit
// without a chance to clean up.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
}

// ArchiveOpener resolves an archive file on disk (or anywhere else
// that can pretend to be a disk) into a read-only directory tree.
//
// Exists is consulted before Open so that a missing archive can be
// reported as "nothing here" rather than as a failure.
type ArchiveOpener interface {
	Exists(path string) bool
	Open(ctx context.Context, path string) (fs.FS, error)
}

// WalkFunc is called once for every entry below the walk root, with
// the slash separated path of the entry inside the archive.
type WalkFunc func(path string, d fs.DirEntry) error

// SessionID identifies a browser (or API client) session across
// requests.
type SessionID string
