// Package cast converts loosely typed values (query strings, decoded
// JSON, YAML settings) into the handful of shapes the rest of the code
// works with. Every target kind has its own function, To only
// dispatches.
package cast

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// TimeLayouts are tried in order when casting strings to time.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// To converts v to the given kind.
func To(v interface{}, k Kind) (interface{}, error) {
	switch k {
	case KindInt:
		return Int(v)
	case KindFloat:
		return Float(v)
	case KindString:
		return String(v)
	case KindBool:
		return Bool(v)
	case KindSlice:
		return Slice(v)
	case KindMap:
		return Map(v)
	case KindTime:
		return Time(v)
	default:
		return nil, errors.Wrap(ErrUnknownKind, k.String())
	}
}

// ToNamed is To with the kind given by name, e.g. "integer".
func ToNamed(v interface{}, name string) (interface{}, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return To(v, k)
}

// signed widens any of the signed integer types.
func signed(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	}
	return 0, false
}

// unsigned widens any of the unsigned integer types.
func unsigned(v interface{}) (uint64, bool) {
	switch t := v.(type) {
	case uint:
		return uint64(t), true
	case uint8:
		return uint64(t), true
	case uint16:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case uint64:
		return t, true
	case uintptr:
		return uint64(t), true
	}
	return 0, false
}

func floating(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func Int(v interface{}) (int64, error) {
	if i, ok := signed(v); ok {
		return i, nil
	}
	if u, ok := unsigned(v); ok {
		if u > math.MaxInt64 {
			return 0, fail(KindInt, v, ErrNotCastable)
		}
		return int64(u), nil
	}
	if f, ok := floating(v); ok {
		return floatToInt(f)
	}
	switch t := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return i, nil
		}
		if xerrors.Is(err, strconv.ErrRange) {
			return 0, fail(KindInt, v, ErrNotCastable)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fail(KindInt, v, err)
		}
		return floatToInt(f)
	default:
		return 0, fail(KindInt, v, ErrNotCastable)
	}
}

// floatToInt truncates towards zero. 1<<63 is the first float64 past
// MaxInt64, MinInt64 itself is exact.
func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || f >= 1<<63 || f < math.MinInt64 {
		return 0, fail(KindInt, f, ErrNotCastable)
	}
	return int64(f), nil
}

func Float(v interface{}) (float64, error) {
	if i, ok := signed(v); ok {
		return float64(i), nil
	}
	if u, ok := unsigned(v); ok {
		return float64(u), nil
	}
	if f, ok := floating(v); ok {
		return f, nil
	}
	switch t := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fail(KindFloat, v, err)
		}
		return f, nil
	default:
		return 0, fail(KindFloat, v, ErrNotCastable)
	}
}

func String(v interface{}) (string, error) {
	if i, ok := signed(v); ok {
		return strconv.FormatInt(i, 10), nil
	}
	if u, ok := unsigned(v); ok {
		return strconv.FormatUint(u, 10), nil
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		if t {
			return "1", nil
		}
		return "", nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	default:
		return "", fail(KindString, v, ErrNotCastable)
	}
}

// Bool understands the usual spellings of yes and no, any other
// string is an error rather than a guess. Numbers are true unless zero.
func Bool(v interface{}) (bool, error) {
	if i, ok := signed(v); ok {
		return i != 0, nil
	}
	if u, ok := unsigned(v); ok {
		return u != 0, nil
	}
	if f, ok := floating(v); ok {
		return f != 0, nil
	}
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "on", "y":
			return true, nil
		case "", "0", "false", "no", "off", "n":
			return false, nil
		}
		return false, fail(KindBool, v, ErrNotCastable)
	default:
		return false, fail(KindBool, v, ErrNotCastable)
	}
}

// Slice wraps scalars in a one element slice, nil becomes empty.
func Slice(v interface{}) ([]interface{}, error) {
	switch t := v.(type) {
	case nil:
		return []interface{}{}, nil
	case []interface{}:
		return t, nil
	case []string:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, nil
	case []int:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, nil
	case map[string]interface{}:
		return nil, fail(KindSlice, v, ErrNotCastable)
	default:
		return []interface{}{t}, nil
	}
}

func Map(v interface{}) (map[string]interface{}, error) {
	switch t := v.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return t, nil
	case map[string]string:
		out := make(map[string]interface{}, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			ks, err := String(k)
			if err != nil {
				return nil, fail(KindMap, v, err)
			}
			out[ks] = e
		}
		return out, nil
	default:
		return nil, fail(KindMap, v, ErrNotCastable)
	}
}

// Time parses strings with TimeLayouts (UTC unless the layout carries
// a zone), integers are unix seconds.
func Time(v interface{}) (time.Time, error) {
	if i, ok := signed(v); ok {
		return time.Unix(i, 0).UTC(), nil
	}
	if u, ok := unsigned(v); ok {
		if u > math.MaxInt64 {
			return time.Time{}, fail(KindTime, v, ErrNotCastable)
		}
		return time.Unix(int64(u), 0).UTC(), nil
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range TimeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fail(KindTime, v, ErrNotCastable)
	default:
		return time.Time{}, fail(KindTime, v, ErrNotCastable)
	}
}
