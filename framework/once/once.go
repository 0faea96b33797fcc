// Package once guards callbacks so they run a single time, either per
// process or per session across requests.
package once

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/retro-framework/go-archglob/framework/ctxkey"
)

const keyPrefix = "do_once_"

var ErrNoStore = xerrors.New("once: no store for cross request keys")

// Store remembers keys across requests (and usually processes).
type Store interface {
	// MarkDone records key, reporting true only for the caller which
	// recorded it first.
	MarkDone(ctx context.Context, key string) (bool, error)
}

type Once struct {
	mu    sync.Mutex
	local map[string]bool
	store Store
}

// New returns a Once, store may be nil if nothing ever asks for
// across requests behaviour.
func New(store Store) *Once {
	return &Once{local: map[string]bool{}, store: store}
}

// Do runs fn unless key was seen before and reports whether it ran.
// The key is marked before fn runs, a failing fn is not retried.
//
// Without acrossRequests the key is remembered by this Once only, with
// it the key is scoped to the session found in ctx and stored in the
// Store.
func (o *Once) Do(ctx context.Context, key string, fn func() error, acrossRequests bool) (bool, error) {
	key = keyPrefix + key

	if acrossRequests {
		if o.store == nil {
			return false, ErrNoStore
		}
		first, err := o.store.MarkDone(ctx, string(ctxkey.Session(ctx))+":"+key)
		if err != nil {
			return false, errors.Wrapf(err, "can't mark %s done", key)
		}
		if !first {
			return false, nil
		}
		return true, fn()
	}

	o.mu.Lock()
	if o.local[key] {
		o.mu.Unlock()
		return false, nil
	}
	o.local[key] = true
	o.mu.Unlock()

	return true, fn()
}
