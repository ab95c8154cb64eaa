package pinelight

// Machine holds the single live animation state for a scene. Transitions go
// through SetState only; every write notifies the camera hook synchronously
// with the new value before SetState returns, so callers can rely on the
// camera reaction being part of the state change itself.
type Machine struct {
	state    State
	onChange func(State)
}

// newMachine creates a Machine in StateIdle. A nil hook degrades to a no-op.
func newMachine(onChange func(State)) *Machine {
	if onChange == nil {
		onChange = func(State) {}
	}
	return &Machine{state: StateIdle, onChange: onChange}
}

// State returns the current animation state.
func (m *Machine) State() State { return m.state }

// SetState writes the new state and fires the change hook.
func (m *Machine) SetState(s State) {
	m.state = s
	m.onChange(s)
}
