// internal/state/game_over_state.go
package state

import "go-hex-defense/internal/component"

// GameOverState держит итоговый экран, пока не истечёт таймер.
type GameOverState struct {
	sm *StateMachine
}

func NewGameOverState(sm *StateMachine) *GameOverState {
	return &GameOverState{sm: sm}
}

func (s *GameOverState) Enter() {
	s.sm.game.World.Timers.GameOver.Reset()
}

func (s *GameOverState) Update(deltaTime float64) {
	if s.sm.game.UpdateGameOver(deltaTime) {
		s.sm.SetState(NewRestartState(s.sm))
	}
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Phase() component.Phase { return component.GameOver }
