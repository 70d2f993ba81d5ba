// Package fsm is a generic hierarchical finite state machine whose graph is loaded from YAML
package fsm

import (
	"time"

	"github.com/lixenwraith/balloon-math/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]
	names map[string]StateID

	InitialStateID StateID

	// Runtime State
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID // Root -> ... -> Leaf

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	// OnTransition observes every completed state change, used for logging
	OnTransition func(from, to string)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = Tick (auto-transition)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args string // Optional argument from config
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, arg string)
