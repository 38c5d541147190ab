// internal/state/pause_state.go
package state

import "go-hex-defense/internal/component"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию. Queued commands wait in the inbound
// channel until the game resumes.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {}

func (s *PauseState) Exit() {}

func (s *PauseState) Phase() component.Phase { return component.Pause }
