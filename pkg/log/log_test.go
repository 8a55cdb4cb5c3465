package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("turn",
		String("state", "Running"),
		Int("samples", 30),
		Float64("step", 0.4),
		Bool("ready", false),
		Duration("elapsed", 2*time.Second),
		Err(errors.New("boom")),
	)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["message"] != "turn" {
		t.Errorf("message = %v, want turn", got["message"])
	}
	if got["level"] != "info" {
		t.Errorf("level = %v, want info", got["level"])
	}
	if got["samples"] != float64(30) {
		t.Errorf("samples = %v, want 30", got["samples"])
	}
	if got["state"] != "Running" {
		t.Errorf("state = %v, want Running", got["state"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	z.Debug("hidden", Int("n", 1))
	z.Warn("shown")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "shown" {
		t.Errorf("lines = %v, want only the warn line", lines)
	}
}

func TestWith_Zerolog(t *testing.T) {
	var buf bytes.Buffer
	l := With(NewZerologAdapterWithLogger(zerolog.New(&buf)), String("run_id", "abc"))

	l.Error("failed")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["run_id"] != "abc" {
		t.Errorf("lines = %v, want run_id=abc", lines)
	}
}

type recordingLogger struct {
	NoopLogger
	fields []Field
}

func (r *recordingLogger) Info(msg string, fields ...Field) { r.fields = fields }

func TestWith_GenericLogger(t *testing.T) {
	rec := &recordingLogger{}
	l := With(rec, String("run_id", "abc"))

	l.Info("msg", Int("n", 2))

	if len(rec.fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(rec.fields))
	}
	if rec.fields[0].Key != "run_id" || rec.fields[1].Key != "n" {
		t.Errorf("fields = %v, want run_id then n", rec.fields)
	}
}

func TestWith_NoFields(t *testing.T) {
	n := NewNoopLogger()
	if With(n) != Logger(n) {
		t.Error("With without fields should return the logger unchanged")
	}
}

func TestZerologAdapter_Vec(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Debug("cloud bounds", Vec("min", r3.Vec{X: -1, Y: 0.5, Z: 2}))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got, ok := lines[0]["min"].([]any)
	if !ok || len(got) != 3 || got[0] != -1.0 || got[1] != 0.5 || got[2] != 2.0 {
		t.Errorf("min = %v, want [-1 0.5 2]", lines[0]["min"])
	}
}
