// Package nested mutates trees of string keyed maps addressed with
// dotted keys ("glob.excludes"), creating intermediate levels as it
// goes and refusing to trample over anything which is not a tree.
package nested

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
	yaml "gopkg.in/yaml.v2"
)

var ErrInvalidKey = xerrors.New("nested: invalid key")

// Tree is a level of string keyed values, values which are themselves
// a Tree (or a plain map[string]interface{}) are sub levels.
type Tree map[string]interface{}

// ConflictError is returned when a key runs into a non tree value.
type ConflictError struct {
	Key  string
	Part string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("nested: cannot add %q, value at %q is not a tree", e.Key, e.Part)
}

func asTree(v interface{}) (Tree, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]interface{}:
		return Tree(t), true
	}
	return nil, false
}

// Add sets key to value in t, which is mutated in place.
//
// With merge set and a tree value, the value's entries are merged into
// whatever tree already lives at key instead of replacing it. For
// dotted keys every part, including the last one, must be absent or a
// tree, even when the value would replace it. A failing call does not
// touch t.
func Add(t Tree, key string, value interface{}, merge bool) error {
	if key == "" || strings.Contains(key, "..") {
		return errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	if t == nil {
		return errors.Wrap(ErrInvalidKey, "nil tree")
	}

	var valueTree, valueIsTree = asTree(value)

	if !strings.Contains(key, ".") {
		if valueIsTree && merge {
			existing, ok := t[key]
			if !ok {
				existing = Tree{}
			}
			dst, ok := asTree(existing)
			if !ok {
				return &ConflictError{Key: key, Part: key}
			}
			mergeInto(dst, valueTree)
			t[key] = dst
			return nil
		}
		t[key] = value
		return nil
	}

	var parts = strings.Split(key, ".")
	if err := checkPath(t, key, parts); err != nil {
		return err
	}
	var parent = descend(t, parts[:len(parts)-1])
	var last = parts[len(parts)-1]

	if valueIsTree && merge {
		dst, ok := asTree(parent[last])
		if !ok {
			dst = Tree{}
		}
		mergeInto(dst, valueTree)
		parent[last] = dst
		return nil
	}
	parent[last] = value
	return nil
}

// checkPath fails on the first part holding something other than a
// tree, before anything is created, so a failed call leaves t as it
// was.
func checkPath(t Tree, key string, parts []string) error {
	var current = t
	for _, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil
		}
		sub, ok := asTree(next)
		if !ok {
			return &ConflictError{Key: key, Part: part}
		}
		current = sub
	}
	return nil
}

// descend walks parts, creating missing levels, and returns the last.
// The path must have passed checkPath.
func descend(t Tree, parts []string) Tree {
	var current = t
	for _, part := range parts {
		sub, ok := asTree(current[part])
		if !ok {
			sub = Tree{}
			current[part] = sub
		}
		current = sub
	}
	return current
}

// Set assigns value to a dotted key, creating intermediate trees.
// Unlike Add it happily replaces whatever lives at the last part, only
// the parts leading up to it must be trees.
func Set(t Tree, key string, value interface{}) error {
	if key == "" || strings.Contains(key, "..") {
		return errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	if t == nil {
		return errors.Wrap(ErrInvalidKey, "nil tree")
	}

	var parts = strings.Split(key, ".")
	if err := checkPath(t, key, parts[:len(parts)-1]); err != nil {
		return err
	}
	descend(t, parts[:len(parts)-1])[parts[len(parts)-1]] = value
	return nil
}

// mergeInto is a shallow merge, src wins.
func mergeInto(dst, src Tree) {
	for k, v := range src {
		dst[k] = v
	}
}

// Get reads a dotted key.
func Get(t Tree, key string) (interface{}, bool) {
	var current = t
	var parts = strings.Split(key, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		current, ok = asTree(v)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Clone copies every level of the tree, leaf values are shared.
func Clone(t Tree) Tree {
	var out = make(Tree, len(t))
	for k, v := range t {
		if sub, ok := asTree(v); ok {
			out[k] = Clone(sub)
			continue
		}
		out[k] = v
	}
	return out
}

// FromYAML decodes a YAML mapping into a Tree, nested mappings become
// Trees too so that Add and Get can descend into them.
func FromYAML(b []byte) (Tree, error) {
	var raw map[interface{}]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "can't decode yaml tree")
	}
	t, err := fromYAMLMap(raw)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func fromYAMLMap(m map[interface{}]interface{}) (Tree, error) {
	var t = make(Tree, len(m))
	for k, v := range m {
		ks, ok := k.(string)
		if !ok {
			return nil, errors.Errorf("nested: yaml key %v is %T, not a string", k, k)
		}
		switch vt := v.(type) {
		case map[interface{}]interface{}:
			sub, err := fromYAMLMap(vt)
			if err != nil {
				return nil, err
			}
			t[ks] = sub
		case []interface{}:
			list := make([]interface{}, len(vt))
			for i, e := range vt {
				if em, ok := e.(map[interface{}]interface{}); ok {
					sub, err := fromYAMLMap(em)
					if err != nil {
						return nil, err
					}
					list[i] = sub
					continue
				}
				list[i] = e
			}
			t[ks] = list
		default:
			t[ks] = v
		}
	}
	return t, nil
}

// ToYAML is the inverse of FromYAML.
func ToYAML(t Tree) ([]byte, error) {
	b, err := yaml.Marshal(map[string]interface{}(t))
	if err != nil {
		return nil, errors.Wrap(err, "can't encode yaml tree")
	}
	return b, nil
}
