package multi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arwah7/dragonet/internal/model"
)

// mockOutput records calls for test assertions.
type mockOutput struct {
	alerts []model.Alert
	closed bool
	err    error // if set, Write returns this error
}

func (m *mockOutput) Write(_ context.Context, alert model.Alert) error {
	m.alerts = append(m.alerts, alert)
	return m.err
}

func (m *mockOutput) Close() error {
	m.closed = true
	return m.err
}

func testAlert(ruleID string) model.Alert {
	return model.Alert{
		ID:   "1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d",
		Kind: model.AlertNew,
		Dragon: model.Dragon{
			RuleID:    ruleID,
			RuleLabel: ruleID,
			Axis:      model.AxisSize,
			Value:     model.Small,
			Display:   "Small",
			Count:     3,
			Threshold: 3,
		},
		Time: time.Now(),
	}
}

func TestFanOutDeliversToAll(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	c := &mockOutput{}
	m := New(a, b, c)

	if err := m.Write(context.Background(), testAlert("1m")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, out := range []*mockOutput{a, b, c} {
		if len(out.alerts) != 1 {
			t.Errorf("output %d: got %d alerts, want 1", i, len(out.alerts))
		}
		if out.alerts[0].Dragon.RuleID != "1m" {
			t.Errorf("output %d: got rule %q, want %q", i, out.alerts[0].Dragon.RuleID, "1m")
		}
	}
}

func TestErrorDoesNotPreventDelivery(t *testing.T) {
	failing := &mockOutput{err: errors.New("disk full")}
	healthy := &mockOutput{}
	m := New(failing, healthy)

	err := m.Write(context.Background(), testAlert("5m"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Healthy output still received the alert despite earlier failure.
	if len(healthy.alerts) != 1 {
		t.Fatalf("healthy output got %d alerts, want 1", len(healthy.alerts))
	}

	// Failing output also received the call (error returned after).
	if len(failing.alerts) != 1 {
		t.Fatalf("failing output got %d alerts, want 1", len(failing.alerts))
	}
}

func TestCloseCallsAllOutputs(t *testing.T) {
	a := &mockOutput{}
	b := &mockOutput{}
	m := New(a, b)

	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !a.closed || !b.closed {
		t.Errorf("Close not called on all outputs: a=%v b=%v", a.closed, b.closed)
	}
}

func TestCloseCollectsErrors(t *testing.T) {
	a := &mockOutput{err: errors.New("err-a")}
	b := &mockOutput{err: errors.New("err-b")}
	m := New(a, b)

	err := m.Close()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !a.closed || !b.closed {
		t.Error("Close should be called on all outputs even when errors occur")
	}
}

func TestSingleOutputIdentity(t *testing.T) {
	inner := &mockOutput{}
	m := New(inner)

	if err := m.Write(context.Background(), testAlert("1h")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inner.alerts) != 1 || inner.alerts[0].Dragon.RuleID != "1h" {
		t.Error("single-output Multi did not behave identically to wrapped output")
	}
	if !inner.closed {
		t.Error("single-output Multi did not close inner output")
	}
}
