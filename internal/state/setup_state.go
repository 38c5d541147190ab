// internal/state/setup_state.go
package state

import "go-hex-defense/internal/component"

// SetupState строит первую карту и сразу переходит в игру.
type SetupState struct {
	sm *StateMachine
}

func NewSetupState(sm *StateMachine) *SetupState {
	return &SetupState{sm: sm}
}

func (s *SetupState) Enter() {
	s.sm.game.Build()
}

func (s *SetupState) Update(deltaTime float64) {
	s.sm.SetState(NewGameState(s.sm))
}

func (s *SetupState) Exit() {}

func (s *SetupState) Phase() component.Phase { return component.Setup }
