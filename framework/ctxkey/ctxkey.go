package ctxkey

import (
	"context"

	"github.com/retro-framework/go-archglob/framework/types"
)

type contextKey string

func (c contextKey) String() string {
	return "archglob " + string(c)
}

var (
	contextKeySession   = contextKey("session")
	contextKeyRequestID = contextKey("request-id")
)

// AnonymousSession is handed out when no session was attached to the
// context, everything "once per session" is then once per anonymous
// visitor, which is the best we can do.
const AnonymousSession types.SessionID = "anonymous"

// Session gets the session id from the context. If none is present
// AnonymousSession is returned.
func Session(ctx context.Context) types.SessionID {
	sid, ok := ctx.Value(contextKeySession).(types.SessionID)
	if sid == "" || !ok {
		return AnonymousSession
	}
	return sid
}

func WithSession(ctx context.Context, sid types.SessionID) context.Context {
	return context.WithValue(ctx, contextKeySession, sid)
}

// RequestID gets the request id from the context, or "-" which is
// what the access log prints for unknown values.
func RequestID(ctx context.Context) string {
	rid, ok := ctx.Value(contextKeyRequestID).(string)
	if rid == "" || !ok {
		return "-"
	}
	return rid
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, rid)
}
