package framework

import (
	"bytes"
	"strings"
	"testing"
)

func Test_NewLogrus(t *testing.T) {
	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogrus(&buf, "warn")
		l.Debugf("hidden %d", 1)
		l.Warnf("shown %d", 2)
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("debug line leaked at warn level: %q", buf.String())
		}
		if !strings.Contains(buf.String(), "shown 2") {
			t.Fatalf("expected warn line, got %q", buf.String())
		}
	})
	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogrus(&buf, "chatty")
		l.Debug("hidden")
		l.Info("shown")
		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Fatalf("unexpected output %q", buf.String())
		}
	})
}
