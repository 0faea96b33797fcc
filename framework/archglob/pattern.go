package archglob

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"

	"github.com/retro-framework/go-archglob/framework/matcher"
)

// Pattern is a glob split into the parts the walker cares about.
//
// For "phar:///srv/app.phar/plugins/*/composer.json" that is
//
//	Archive  /srv/app.phar
//	Base     /srv/app.phar/plugins
//	Dirs     [*]
//	Name     composer.json
type Pattern struct {
	Raw     string
	Scheme  string
	Archive string
	Base    string
	Dirs    []string
	Name    string
}

// Parse checks the scheme and splits the pattern, it does not touch
// the filesystem and does not compile anything.
func Parse(pattern, scheme, extension string) (Pattern, error) {
	if scheme == "" || !strings.HasPrefix(pattern, scheme) {
		return Pattern{}, errors.Wrapf(ErrInvalidPattern, "%q does not start with %q", pattern, scheme)
	}
	if extension == "" {
		return Pattern{}, errors.Wrap(ErrInvalidPattern, "no archive extension given")
	}

	var (
		internal = strings.TrimPrefix(pattern, scheme)
		p        = Pattern{Raw: pattern, Scheme: scheme}
	)

	// Everything up to the first extension is the archive, if the
	// extension is missing altogether it is appended, which then
	// almost certainly names a file which doesn't exist.
	p.Archive = strings.SplitN(internal, extension, 2)[0] + extension

	var segments = strings.Split(strings.ReplaceAll(internal, `\`, "/"), "/")
	p.Name = segments[len(segments)-1]
	segments = segments[:len(segments)-1]

	var base []string
	for _, s := range segments {
		if matcher.IsWildcard(s) {
			break
		}
		base = append(base, s)
	}
	p.Base = strings.Join(base, "/")
	p.Dirs = segments[len(base):]

	return p, nil
}

// WalkRoot is the scheme prefixed base, every result starts with it.
func (p Pattern) WalkRoot() string {
	return p.Scheme + p.Base
}

// Depth is the number of segments a result has below WalkRoot.
func (p Pattern) Depth() int {
	return len(p.Dirs) + 1
}

// Inner is Base expressed as a path inside the archive, "." for the
// archive root itself.
func (p Pattern) Inner() (string, error) {
	var archive = strings.ReplaceAll(p.Archive, `\`, "/")
	if p.Base == archive {
		return ".", nil
	}
	if !strings.HasPrefix(p.Base, archive+"/") {
		return "", errors.Wrapf(ErrOutsideArchive, "%q is not below %q", p.Base, archive)
	}
	var inner = strings.TrimPrefix(p.Base, archive+"/")
	if !fs.ValidPath(inner) {
		return "", errors.Wrapf(ErrOutsideArchive, "%q is not a valid path inside %q", inner, archive)
	}
	return inner, nil
}

// Compile turns the non literal remainder into matchers.
func (p Pattern) Compile() (matcher.Path, error) {
	return matcher.CompilePath(p.Dirs, p.Name)
}
