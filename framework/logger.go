package framework

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/retro-framework/go-archglob/framework/types"
)

type Noop struct{}

func (nl Noop) Debug(...interface{})          {}
func (nl Noop) Debugf(string, ...interface{}) {}
func (nl Noop) Info(...interface{})           {}
func (nl Noop) Infof(string, ...interface{})  {}
func (nl Noop) Warn(...interface{})           {}
func (nl Noop) Warnf(string, ...interface{})  {}
func (nl Noop) Error(...interface{})          {}
func (nl Noop) Errorf(string, ...interface{}) {}

// Stdout is only really useful in tests and one-off tools, anything
// long running should use NewLogrus.
type Stdout struct{}

func (s Stdout) Debug(args ...interface{})                  { fmt.Fprintln(os.Stdout, args...) }
func (s Stdout) Debugf(pattern string, args ...interface{}) { fmt.Fprintf(os.Stdout, pattern+"\n", args...) }
func (s Stdout) Info(args ...interface{})                   { fmt.Fprintln(os.Stdout, args...) }
func (s Stdout) Infof(pattern string, args ...interface{})  { fmt.Fprintf(os.Stdout, pattern+"\n", args...) }
func (s Stdout) Warn(args ...interface{})                   { fmt.Fprintln(os.Stdout, args...) }
func (s Stdout) Warnf(pattern string, args ...interface{})  { fmt.Fprintf(os.Stdout, pattern+"\n", args...) }
func (s Stdout) Error(args ...interface{})                  { fmt.Fprintln(os.Stdout, args...) }
func (s Stdout) Errorf(pattern string, args ...interface{}) { fmt.Fprintf(os.Stdout, pattern+"\n", args...) }

// NewLogrus returns a logrus backed Logger writing text lines to w at
// the given level ("debug", "info", "warn", "error"). Unknown levels
// fall back to info.
func NewLogrus(w io.Writer, level string) types.Logger {
	var l = logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

var (
	_ types.Logger = Noop{}
	_ types.Logger = Stdout{}
)
