package main

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/retro-framework/go-archglob/framework/ctxkey"
	"github.com/retro-framework/go-archglob/framework/types"
)

const (
	requestIDHeader = "X-Request-Id"
	sessionHeader   = "X-Session-Id"
)

func newRequestID() (string, error) {
	b := make([]byte, 12)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}

// requestIDMiddleware keeps an incoming X-Request-Id or makes one up,
// either way it is echoed back and available through ctxkey.
type requestIDMiddleware struct {
	idFn func() (string, error)
}

func (rim requestIDMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rid = r.Header.Get(requestIDHeader)
		if rid == "" {
			var err error
			if rid, err = rim.idFn(); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(ctxkey.WithRequestID(r.Context(), rid)))
	})
}

// sessionMiddleware attaches the caller's session, requests without
// the header stay anonymous.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		if sid := r.Header.Get(sessionHeader); sid != "" {
			ctx = ctxkey.WithSession(ctx, types.SessionID(sid))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
