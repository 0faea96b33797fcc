package ctxkey

import (
	"context"
	"testing"

	"github.com/retro-framework/go-archglob/framework/types"
)

func Test_ctxkey_Session(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		res := Session(context.Background())
		if res != AnonymousSession {
			t.Fatal("expected default value, got", res)
		}
	})
	t.Run("override", func(t *testing.T) {
		ctx := WithSession(context.Background(), types.SessionID("deadbeef"))
		res := Session(ctx)
		if res != "deadbeef" {
			t.Fatal("expected overridden value, got", res)
		}
	})
	t.Run("empty is anonymous", func(t *testing.T) {
		ctx := WithSession(context.Background(), types.SessionID(""))
		if res := Session(ctx); res != AnonymousSession {
			t.Fatal("expected default value, got", res)
		}
	})
}

func Test_ctxkey_RequestID(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		if res := RequestID(context.Background()); res != "-" {
			t.Fatal("expected default value, got", res)
		}
	})
	t.Run("override", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "abc123")
		if res := RequestID(ctx); res != "abc123" {
			t.Fatal("expected overridden value, got", res)
		}
	})
}
