package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/balloon-math/event"
)

// NewMachine creates a new FSM instance with only the Root node
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
	m.AddState(StateRoot, "Root", StateNone)
	return m
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok || m.InitialStateID == StateNone {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances the FSM by delta time, runs OnUpdate and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	runActions(ctx, leaf.OnUpdate)

	m.fire(ctx, event.EventNone)
}

// HandleEvent routes an external event, bubbling from leaf to root
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone || eventType == event.EventNone {
		return false
	}
	return m.fire(ctx, eventType)
}

// fire takes the first matching transition whose guard passes
func (m *Machine[T]) fire(ctx T, eventType event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change through the lowest common ancestor
// Self transitions re-run exit and enter of the leaf
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	fromName := m.nodes[m.activeStateID].Name

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path
	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	if targetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	// State is committed before OnEnter so actions observe the new leaf
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}

	if m.OnTransition != nil {
		m.OnTransition(fromName, targetNode.Name)
	}
}

// CurrentName returns the active leaf name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok && m.activeStateID != StateNone {
		return node.Name
	}
	return ""
}

// InState reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) InState(name string) bool {
	id, ok := m.names[name]
	if !ok {
		return false
	}
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the active leaf
func (m *Machine[T]) TimeInState() time.Duration { return m.timeInState }

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
