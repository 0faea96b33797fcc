package archglob

import "golang.org/x/xerrors"

var (
	// ErrInvalidPattern is returned (wrapped) for patterns which do not
	// start with the configured scheme. Retrying won't help, the caller
	// has to fix the pattern.
	ErrInvalidPattern = xerrors.New("archglob: invalid pattern")

	ErrOutsideArchive = xerrors.New("archglob: walk root is not inside the archive")
)
