package cast

import "github.com/pkg/errors"

// EnumSet is a named, closed list of allowed string values.
type EnumSet struct {
	name   string
	values []string
}

func NewEnumSet(name string, values ...string) EnumSet {
	return EnumSet{name: name, values: values}
}

func (es EnumSet) Name() string     { return es.name }
func (es EnumSet) Values() []string { return es.values }

func (es EnumSet) Has(s string) bool {
	for _, v := range es.values {
		if v == s {
			return true
		}
	}
	return false
}

// Enum casts v to a string and checks it against the set, numbers are
// accepted for numerically backed enums ("1", 1, 1.0 all work).
func Enum(v interface{}, es EnumSet) (string, error) {
	s, err := String(v)
	if err != nil {
		return "", err
	}
	if !es.Has(s) {
		return "", &Error{Kind: es.name, Value: v, Err: errors.Wrapf(ErrNotInEnum, "%q", s)}
	}
	return s, nil
}
