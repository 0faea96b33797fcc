package archive

import "golang.org/x/xerrors"

var (
	ErrNotAnArchive = xerrors.New("archive: not an extractable archive")
	ErrNotMounted   = xerrors.New("archive: nothing mounted at path")
)
