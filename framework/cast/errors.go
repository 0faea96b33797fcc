package cast

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	ErrUnknownKind = xerrors.New("cast: unknown kind")
	ErrNotCastable = xerrors.New("cast: value not castable")
	ErrNotInEnum   = xerrors.New("cast: value not in enum")
)

// Error describes a failed conversion of Value to Kind.
type Error struct {
	Kind  string
	Value interface{}
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cast: can't cast %T(%v) to %s: %s", e.Value, e.Value, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(k Kind, v interface{}, err error) error {
	return &Error{Kind: k.String(), Value: v, Err: err}
}
