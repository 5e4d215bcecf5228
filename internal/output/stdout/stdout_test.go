package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/arwah7/dragonet/internal/model"
)

func testAlert() model.Alert {
	return model.Alert{
		ID:   "7f9c2d1e-0a3b-4c5d-8e9f-0a1b2c3d4e5f",
		Kind: model.AlertNew,
		Dragon: model.Dragon{
			RuleID:     "block",
			RuleLabel:  "block",
			Axis:       model.AxisSize,
			Value:      model.Big,
			Display:    "Big",
			Count:      5,
			Threshold:  4,
			NextHeight: 12000,
		},
		Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputCompactJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(false)
		out.Write(context.Background(), testAlert())
	})

	// Should be single line (NDJSON).
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["kind"] != "new" {
		t.Fatalf("expected kind=new, got %v", m["kind"])
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(true)
		out.Write(context.Background(), testAlert())
	})

	// Pretty JSON should have multiple lines with indentation.
	if !strings.Contains(result, "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputFillsText(t *testing.T) {
	result := captureStdout(func() {
		out := New(false)
		out.Write(context.Background(), testAlert())
	})

	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(result)), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	text, _ := m["text"].(string)
	if !strings.Contains(text, "block size Big x5") {
		t.Fatalf("text = %q, want streak summary", text)
	}
}
