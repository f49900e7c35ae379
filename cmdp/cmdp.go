package cmdp

import (
	"fmt"
	"sync"
)

// CMDP is the in-memory consumption MDP store: a catalog of States plus,
// for each state, an insertion-ordered list of outgoing Actions.
//
// Mirroring the teacher's core.Graph, a single sync.RWMutex guards both the
// state catalog and the action lists, so a CMDP can be built concurrently
// across goroutines. Every structural edit bumps the generation counter;
// package solver does not consult it, so a Solver keeps its memoized
// vectors and selectors after such an edit.
type CMDP struct {
	mu sync.RWMutex

	states []State
	names  map[string]StateID

	// actions[s] holds every action ever added for state s, in insertion
	// order; a removed action's slot is tombstoned (removed=true) rather
	// than deleted, so ActionID stays a stable index. Iteration filters
	// tombstones out.
	actions [][]actionSlot

	nextActionID ActionID
	generation   uint64
}

type actionSlot struct {
	action  Action
	removed bool
}

// New creates an empty CMDP.
func New() *CMDP {
	return &CMDP{names: make(map[string]StateID)}
}

// Generation returns a counter that increments on every structural edit
// (AddState, AddAction, RemoveAction, SetReload). Comparing it against an
// earlier reading tells a caller whether the CMDP changed in between;
// package solver does not do this itself.
func (c *CMDP) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *CMDP) bumpGeneration() {
	c.generation++
}

// NumStates returns the number of states in the CMDP.
func (c *CMDP) NumStates() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.states)
}

// AddState creates a new state and returns its id. If name is non-empty and
// already in use, ErrNameTaken is returned and no state is created.
func (c *CMDP) AddState(reload bool, name string) (StateID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name != "" {
		if _, exists := c.names[name]; exists {
			return 0, ErrNameTaken
		}
	}

	sid := StateID(len(c.states))
	c.states = append(c.states, State{ID: sid, Name: name, Reload: reload})
	c.actions = append(c.actions, nil)
	if name != "" {
		c.names[name] = sid
	}
	c.bumpGeneration()

	return sid, nil
}

// StateWithName returns the id of the state named name and true, or
// (0, false) if no such state exists.
func (c *CMDP) StateWithName(name string) (StateID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sid, ok := c.names[name]
	return sid, ok
}

// State returns a copy of the state record for sid.
func (c *CMDP) State(sid StateID) (State, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.validState(sid) {
		return State{}, fmt.Errorf("cmdp: state %d: %w", sid, ErrUnknownState)
	}
	return c.states[sid], nil
}

// IsReload reports whether sid is a reload state.
func (c *CMDP) IsReload(sid StateID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.validState(sid) {
		return false
	}
	return c.states[sid].Reload
}

// SetReload sets the reload flag of sid.
func (c *CMDP) SetReload(sid StateID, reload bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.validState(sid) {
		return fmt.Errorf("cmdp: state %d: %w", sid, ErrUnknownState)
	}
	c.states[sid].Reload = reload
	c.bumpGeneration()
	return nil
}

// validState reports whether sid is in range. Caller must hold mu.
func (c *CMDP) validState(sid StateID) bool {
	return sid >= 0 && int(sid) < len(c.states)
}

// AddAction adds an action from src with the given distribution, label and
// consumption, and returns its id.
//
// Returns ErrUnknownState if src or any successor in dist does not exist,
// ErrInvalidDistribution if dist is empty or its probabilities don't sum to
// exactly 1, and ErrDuplicateLabel if src already has an action labeled
// label.
func (c *CMDP) AddAction(src StateID, dist Distribution, label string, consumption int) (ActionID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validState(src) {
		return 0, fmt.Errorf("cmdp: src state %d: %w", src, ErrUnknownState)
	}
	if len(dist) == 0 || !dist.sumsToOne() {
		return 0, fmt.Errorf("cmdp: action %q from state %d: %w", label, src, ErrInvalidDistribution)
	}
	for succ := range dist {
		if !c.validState(succ) {
			return 0, fmt.Errorf("cmdp: successor state %d: %w", succ, ErrUnknownState)
		}
	}
	for _, slot := range c.actions[src] {
		if !slot.removed && slot.action.Label == label {
			return 0, fmt.Errorf("cmdp: state %d already has action %q: %w", src, label, ErrDuplicateLabel)
		}
	}

	aid := c.nextActionID
	c.nextActionID++

	a := Action{ID: aid, Src: src, Consumption: consumption, Distribution: dist, Label: label}
	c.actions[src] = append(c.actions[src], actionSlot{action: a})
	c.bumpGeneration()

	return aid, nil
}

// RemoveAction removes the action with the given id. Returns ErrUnknownAction
// if aid was never issued or was already removed.
func (c *CMDP) RemoveAction(aid ActionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for s, slots := range c.actions {
		for i := range slots {
			if slots[i].removed || slots[i].action.ID != aid {
				continue
			}
			c.actions[s][i].removed = true
			c.bumpGeneration()
			return nil
		}
	}
	return fmt.Errorf("cmdp: action %d: %w", aid, ErrUnknownAction)
}

// ActionsFor returns the live actions of state sid, in insertion order.
func (c *CMDP) ActionsFor(sid StateID) ([]Action, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.validState(sid) {
		return nil, fmt.Errorf("cmdp: state %d: %w", sid, ErrUnknownState)
	}
	slots := c.actions[sid]
	out := make([]Action, 0, len(slots))
	for _, slot := range slots {
		if !slot.removed {
			out = append(out, slot.action)
		}
	}
	return out, nil
}

// StateSuccessors returns the union of successors reachable from sid over
// all of its live actions.
func (c *CMDP) StateSuccessors(sid StateID) ([]StateID, error) {
	acts, err := c.ActionsFor(sid)
	if err != nil {
		return nil, err
	}
	seen := make(map[StateID]struct{})
	for _, a := range acts {
		for succ := range a.Distribution {
			seen[succ] = struct{}{}
		}
	}
	out := make([]StateID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out, nil
}

// States returns the ids of every state in ascending order.
func (c *CMDP) States() []StateID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]StateID, len(c.states))
	for i := range c.states {
		out[i] = StateID(i)
	}
	return out
}

// Reloads returns the ids of every reload state in ascending order.
func (c *CMDP) Reloads() []StateID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []StateID
	for _, s := range c.states {
		if s.Reload {
			out = append(out, s.ID)
		}
	}
	return out
}
