package cast

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the closed set of targets To knows how to produce.
type Kind int

const (
	KindInt Kind = iota + 1
	KindFloat
	KindString
	KindBool
	KindSlice
	KindMap
	KindTime
)

var kindNames = map[string]Kind{
	"int":      KindInt,
	"integer":  KindInt,
	"float":    KindFloat,
	"double":   KindFloat,
	"string":   KindString,
	"str":      KindString,
	"bool":     KindBool,
	"boolean":  KindBool,
	"array":    KindSlice,
	"slice":    KindSlice,
	"object":   KindMap,
	"stdclass": KindMap,
	"map":      KindMap,
	"time":     KindTime,
	"date":     KindTime,
	"datetime": KindTime,
}

// ParseKind accepts the usual type names and their common aliases,
// case insensitively.
func ParseKind(name string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
	}
	return k, nil
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
