// internal/state/restart_state.go
package state

import (
	"log"

	"go-hex-defense/internal/component"
)

// RestartState выбрасывает старую карту и строит новую.
// Commands queued for the old board are dropped.
type RestartState struct {
	sm *StateMachine
}

func NewRestartState(sm *StateMachine) *RestartState {
	return &RestartState{sm: sm}
}

func (s *RestartState) Enter() {
	if stale := s.sm.game.Inbound.Drain(); len(stale) > 0 {
		log.Printf("Restart: dropping %d queued commands", len(stale))
	}
	s.sm.game.Build()
}

func (s *RestartState) Update(deltaTime float64) {
	s.sm.SetState(NewGameState(s.sm))
}

func (s *RestartState) Exit() {}

func (s *RestartState) Phase() component.Phase { return component.Restart }
