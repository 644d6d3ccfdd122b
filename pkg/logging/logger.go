// Package logging writes structured log entries as JSON lines.
// Details attached to a context with ContextWith are added to every entry logged with that context.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the minimum level that gets logged.
	// The zero Level is LevelInfo.
	Level Level
	// Separator ends every log entry, "\n" by default.
	Separator string

	m sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelFatal, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	e := make(entry)
	for _, d := range getLoggingDetailsFromContext(ctx) {
		d.addTo(e)
	}
	for _, d := range ds {
		d.addTo(e)
	}
	e[coalesce(l.LevelKey, "level")] = level
	e[coalesce(l.MessageKey, "message")] = msg
	e[coalesce(l.TimestampKey, "timestamp")] = clock.Now().Format(time.RFC3339)

	bs, err := json.Marshal(e)
	if err != nil {
		return
	}
	l.m.Lock()
	defer l.m.Unlock()
	_, _ = l.out().Write(append(bs, []byte(coalesce(l.Separator, "\n"))...))
}

func (l *Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

func coalesce(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Stub returns a debug level logger which writes into the returned buffer.
func Stub() (*Logger, *StubOutput) {
	buf := &StubOutput{}
	return &Logger{Level: LevelDebug, Out: buf}, buf
}

type StubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *StubOutput) Write(p []byte) (int, error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *StubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

// Entries decodes the logged JSON lines.
func (o *StubOutput) Entries() ([]Fields, error) {
	o.m.Lock()
	defer o.m.Unlock()
	var (
		fs  []Fields
		dec = json.NewDecoder(bytes.NewReader(o.buf.Bytes()))
	)
	for dec.More() {
		var f Fields
		if err := dec.Decode(&f); err != nil {
			return fs, err
		}
		fs = append(fs, f)
	}
	return fs, nil
}
