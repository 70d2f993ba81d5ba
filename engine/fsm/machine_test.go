package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/balloon-math/event"
)

type testCtx struct {
	log   []string
	ready bool
}

func newTestMachine(t *testing.T, doc string) (*Machine[*testCtx], *testCtx) {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterAction("Log", func(ctx *testCtx, arg string) {
		ctx.log = append(ctx.log, arg)
	})
	m.RegisterGuard("Ready", func(ctx *testCtx) bool { return ctx.ready })
	if err := m.LoadConfig([]byte(doc)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	ctx := &testCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m, ctx
}

const hierarchyDoc = `
initial: Idle
states:
  Idle:
    on_enter: [{action: Log, arg: enter-idle}]
    on_exit: [{action: Log, arg: exit-idle}]
    transitions:
      - {trigger: Tick, target: Running, guard: Ready}
  Session:
    on_enter: [{action: Log, arg: enter-session}]
    on_exit: [{action: Log, arg: exit-session}]
    transitions:
      - {trigger: EventQuitHome, target: Idle}
  Running:
    parent: Session
    on_enter: [{action: Log, arg: enter-running}]
    on_exit: [{action: Log, arg: exit-running}]
    transitions:
      - {trigger: EventPause, target: Held}
  Held:
    parent: Session
    on_enter: [{action: Log, arg: enter-held}]
    transitions:
      - {trigger: EventResume, target: Running}
`

// TestTickTransitionGuard verifies auto transitions wait for their guard
func TestTickTransitionGuard(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyDoc)

	if m.CurrentName() != "Idle" {
		t.Fatalf("Expected Idle, got %s", m.CurrentName())
	}

	m.Update(ctx, 10*time.Millisecond)
	if m.CurrentName() != "Idle" || m.TimeInState() != 10*time.Millisecond {
		t.Errorf("Expected to stay in Idle for 10ms, got %s %v", m.CurrentName(), m.TimeInState())
	}

	ctx.ready = true
	m.Update(ctx, 10*time.Millisecond)
	if m.CurrentName() != "Running" {
		t.Fatalf("Expected Running, got %s", m.CurrentName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("Expected time reset on transition, got %v", m.TimeInState())
	}

	want := "enter-idle,exit-idle,enter-session,enter-running"
	if got := strings.Join(ctx.log, ","); got != want {
		t.Errorf("Action order\n got %s\nwant %s", got, want)
	}
}

// TestSiblingTransitionKeepsParent verifies LCA handling between children of one parent
func TestSiblingTransitionKeepsParent(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyDoc)
	ctx.ready = true
	m.Update(ctx, 0)
	ctx.log = nil

	if !m.HandleEvent(ctx, event.EventPause) {
		t.Fatal("Expected pause to be handled")
	}
	if !m.HandleEvent(ctx, event.EventResume) {
		t.Fatal("Expected resume to be handled")
	}

	want := "exit-running,enter-held,enter-running"
	if got := strings.Join(ctx.log, ","); got != want {
		t.Errorf("Session must not be re-entered\n got %s\nwant %s", got, want)
	}
	if !m.InState("Session") || !m.InState("Running") || m.InState("Held") {
		t.Error("Unexpected InState results")
	}
}

// TestEventBubblesToParent verifies parent transitions apply to every child
func TestEventBubblesToParent(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyDoc)
	ctx.ready = true
	m.Update(ctx, 0)
	m.HandleEvent(ctx, event.EventPause)
	ctx.ready = false
	ctx.log = nil

	if !m.HandleEvent(ctx, event.EventQuitHome) {
		t.Fatal("Expected parent transition to fire from Held")
	}
	if m.CurrentName() != "Idle" {
		t.Errorf("Expected Idle, got %s", m.CurrentName())
	}
	want := "exit-session,enter-idle"
	if got := strings.Join(ctx.log, ","); got != want {
		t.Errorf("got %s want %s", got, want)
	}

	if m.HandleEvent(ctx, event.EventResume) {
		t.Error("Unmatched event must not be handled")
	}
}

// TestOnTransitionHook verifies observers see names of both ends
func TestOnTransitionHook(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyDoc)
	var seen []string
	m.OnTransition = func(from, to string) { seen = append(seen, from+">"+to) }

	ctx.ready = true
	m.Update(ctx, 0)
	m.HandleEvent(ctx, event.EventPause)

	if got := strings.Join(seen, ","); got != "Idle>Running,Running>Held" {
		t.Errorf("Unexpected transitions %s", got)
	}
}

// TestLoadConfigErrors verifies reference validation
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "initial: [", "unmarshal"},
		{"empty", "initial: A", "no states"},
		{"bad initial", "initial: Z\nstates: {A: {}}", "initial state"},
		{"bad parent", "initial: A\nstates: {A: {parent: Q}}", "unknown parent"},
		{"bad target", "initial: A\nstates: {A: {transitions: [{trigger: Tick, target: Q}]}}", "unknown target"},
		{"bad trigger", "initial: A\nstates: {A: {transitions: [{trigger: EventBogus, target: A}]}}", "unknown event"},
		{"bad guard", "initial: A\nstates: {A: {transitions: [{trigger: Tick, target: A, guard: Nope}]}}", "unknown guard"},
		{"bad action", "initial: A\nstates: {A: {on_enter: [{action: Nope}]}}", "unknown action"},
		{"cycle", "initial: A\nstates: {A: {parent: B}, B: {parent: A}}", "cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*testCtx]()
			m.RegisterAction("Log", func(*testCtx, string) {})
			err := m.LoadConfig([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// TestUnknownTargetPanics verifies programmatic transitions to missing states panic
func TestUnknownTargetPanics(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyDoc)
	idle := m.names["Idle"]
	m.AddTransition(idle, Transition[*testCtx]{TargetID: 99, Event: event.EventRetry})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic")
		}
	}()
	m.HandleEvent(ctx, event.EventRetry)
}
