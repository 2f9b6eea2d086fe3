package dblog

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTextFormatWritesLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, FormatText)

	log.Info("db.open", "path", "test.leaf")

	out := buf.String()
	if !strings.Contains(out, "db.open") || !strings.Contains(out, "test.leaf") {
		t.Errorf("output = %q, want it to contain the message and attribute", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, FormatText)

	log.Debug("should not appear")
	log.Info("should not appear either")

	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing below the configured warn level", buf.String())
	}

	log.Warn("this should appear")
	if !strings.Contains(buf.String(), "this should appear") {
		t.Errorf("output = %q, want the warn-level message", buf.String())
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, FormatJSON)

	log.Info("db.open")

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}") {
		t.Errorf("output = %q, want a single JSON object line", out)
	}
}

func TestDiscardWritesNothing(t *testing.T) {
	log := Discard()
	log.Info("this must not panic or be observable")
}
