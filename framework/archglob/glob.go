// Package archglob expands glob patterns against the contents of
// archive files, e.g. "phar:///srv/app.phar/plugins/*/plugin.json".
//
// Matching is per segment, anchored and case sensitive, '*' and '?'
// never cross a '/', and there is no '**': a result always sits at
// exactly the depth of the pattern.
package archglob

import (
	"context"
	"io/fs"
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/retro-framework/go-archglob/framework"
	"github.com/retro-framework/go-archglob/framework/archive"
	"github.com/retro-framework/go-archglob/framework/matcher"
	"github.com/retro-framework/go-archglob/framework/types"
	"github.com/retro-framework/go-archglob/framework/walker"
)

const (
	DefaultScheme    = "phar://"
	DefaultExtension = ".phar"
)

type Options struct {
	Scheme    string
	Extension string
	Opener    types.ArchiveOpener
	Logger    types.Logger

	// Excludes are applied to the absolute results after matching.
	Excludes matcher.Excludes
}

// Glob holds no mutable state, one instance can serve any number of
// goroutines.
type Glob struct {
	scheme   string
	ext      string
	opener   types.ArchiveOpener
	log      types.Logger
	excludes matcher.Excludes
}

func New(opts Options) *Glob {
	var g = &Glob{
		scheme:   opts.Scheme,
		ext:      opts.Extension,
		opener:   opts.Opener,
		log:      opts.Logger,
		excludes: opts.Excludes,
	}
	if g.scheme == "" {
		g.scheme = DefaultScheme
	}
	if g.ext == "" {
		g.ext = DefaultExtension
	}
	if g.opener == nil {
		g.opener = archive.Disk{}
	}
	if g.log == nil {
		g.log = framework.Noop{}
	}
	return g
}

func (g *Glob) Scheme() string { return g.scheme }

// Match returns the paths matching pattern. A pattern without the
// scheme is an error (ErrInvalidPattern), anything else which goes
// wrong, a missing archive, an unreadable one, a broken character
// class, yields no paths and no error. Use Find to tell those apart.
func (g *Glob) Match(ctx context.Context, pattern string) ([]string, error) {
	res, err := g.Find(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return res.Paths, nil
}

// Find is Match with the full story. The only error it returns is
// ErrInvalidPattern, every other failure is reported on the Result.
func (g *Glob) Find(ctx context.Context, pattern string) (Result, error) {

	spnFind, ctx := opentracing.StartSpanFromContext(ctx, "archglob.Find")
	defer spnFind.Finish()
	spnFind.SetTag("pattern", pattern)

	var (
		start = time.Now()
		res   = Result{Pattern: pattern, Paths: []string{}}
	)

	var done = func(o Outcome, err error) (Result, error) {
		res.Outcome, res.Err, res.Duration = o, err, time.Since(start)
		spnFind.SetTag("outcome", o.String())
		spnFind.SetTag("matches", len(res.Paths))
		if res.Degraded() {
			g.log.Warnf("archglob: %s yields nothing, %s: %s", pattern, o, err)
		}
		return res, nil
	}

	p, err := Parse(pattern, g.scheme, g.ext)
	if err != nil {
		spnFind.SetTag("error", true)
		return Result{}, err
	}
	res.Archive = p.Archive

	if !g.opener.Exists(p.Archive) {
		g.log.Debugf("archglob: no archive at %s", p.Archive)
		return done(OutcomeMissingArchive, nil)
	}

	mp, err := p.Compile()
	if err != nil {
		return done(OutcomeMalformedSegment, err)
	}

	inner, err := p.Inner()
	if err != nil {
		return done(OutcomeTraversalFailed, err)
	}

	fsys, err := g.opener.Open(ctx, p.Archive)
	if err != nil {
		return done(OutcomeTraversalFailed, err)
	}

	var (
		root  = p.WalkRoot()
		paths []string
	)
	err = walker.SelfFirst(ctx, fsys, inner, func(entry string, _ fs.DirEntry) error {
		var rel = entry
		if inner != "." {
			rel = strings.TrimPrefix(entry, inner+"/")
		}
		if r := mp.Match(strings.Split(rel, "/")); r.Failure() {
			g.log.Debugf("archglob: %s rejected (%s)", rel, r)
			return nil
		}
		paths = append(paths, root+"/"+rel)
		return nil
	})
	if err != nil {
		return done(OutcomeTraversalFailed, err)
	}

	if paths != nil {
		res.Paths = g.excludes.Filter(paths)
	}
	return done(OutcomeMatched, nil)
}
