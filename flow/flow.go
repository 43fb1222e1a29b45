// Package flow moves the game between its top-level states. Each state owns
// exactly one scene context, and the old context is disposed before the new
// one is built.
package flow

import (
	"context"
	"fmt"

	"github.com/automoto/bladewood/config"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Context is whatever a state runs while it is active
type Context interface {
	Dispose()
}

// Builder creates the context for state
type Builder func(state string) (Context, error)

// Transitions of the game flow
var Transitions = fsm.Events{
	{Name: config.EventCreate, Src: []string{config.FlowStart}, Dst: config.FlowCharacterCreation},
	{Name: config.EventPlay, Src: []string{config.FlowCharacterCreation}, Dst: config.FlowCutscene},
	{Name: config.EventEnterGame, Src: []string{config.FlowCutscene}, Dst: config.FlowGame},
	{Name: config.EventLose, Src: []string{config.FlowGame}, Dst: config.FlowLose},
	{Name: config.EventQuit, Src: []string{config.FlowGame}, Dst: config.FlowStart},
	{Name: config.EventRestart, Src: []string{config.FlowLose}, Dst: config.FlowStart},
}

// Machine is not safe for concurrent use. Fire it from the update loop only,
// never from inside a Builder or Dispose.
type Machine struct {
	fsm    *fsm.FSM
	build  Builder
	active Context
	log    *logrus.Entry

	buildErr error
}

// New starts the flow in initial and builds its context
func New(initial string, build Builder, log *logrus.Entry) (*Machine, error) {
	m := &Machine{
		build: build,
		log:   log,
	}
	m.fsm = fsm.NewFSM(initial, Transitions, fsm.Callbacks{
		"leave_state": m.leaveState,
		"enter_state": m.enterState,
	})

	active, err := build(initial)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", initial, err)
	}
	m.active = active
	return m, nil
}

func (m *Machine) leaveState(_ context.Context, e *fsm.Event) {
	if m.active != nil {
		m.active.Dispose()
		m.active = nil
	}
	m.log.WithFields(logrus.Fields{"from": e.Src, "event": e.Event}).Debug("left state")
}

func (m *Machine) enterState(_ context.Context, e *fsm.Event) {
	active, err := m.build(e.Dst)
	if err != nil {
		m.buildErr = fmt.Errorf("build %s: %w", e.Dst, err)
		return
	}
	m.active = active
	m.log.WithField("state", e.Dst).Info("entered state")
}

// Fire runs event. Events that are not valid in the current state return
// an error and change nothing. If the next state's context cannot be built
// the flow falls back to the start state.
func (m *Machine) Fire(ctx context.Context, event string) error {
	m.buildErr = nil
	if err := m.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("flow %s from %s: %w", event, m.fsm.Current(), err)
	}
	if m.buildErr == nil {
		return nil
	}

	err := m.buildErr
	m.log.WithError(err).Error("state failed to start, returning to start")
	m.fsm.SetState(config.FlowStart)
	active, startErr := m.build(config.FlowStart)
	if startErr != nil {
		return fmt.Errorf("%w (start: %v)", err, startErr)
	}
	m.active = active
	return err
}

// State is the current flow state
func (m *Machine) State() string {
	return m.fsm.Current()
}

// Active is the context of the current state. It is nil only after a
// failed fallback.
func (m *Machine) Active() Context {
	return m.active
}

func (m *Machine) Can(event string) bool {
	return m.fsm.Can(event)
}

// Close disposes the active context
func (m *Machine) Close() {
	if m.active != nil {
		m.active.Dispose()
		m.active = nil
	}
}
