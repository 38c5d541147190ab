// internal/state/state.go
package state

import (
	"log"

	game "go-hex-defense/internal/app"
	"go-hex-defense/internal/component"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Exit()
	Phase() component.Phase
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	game    *game.Game
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(g *game.Game) *StateMachine {
	return &StateMachine{game: g}
}

// Start enters Setup.
func (sm *StateMachine) Start() {
	sm.SetState(NewSetupState(sm))
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	if newState != nil && sm.current != nil {
		log.Printf("Phase %s -> %s", sm.current.Phase(), newState.Phase())
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Phase returns the phase of the current state.
func (sm *StateMachine) Phase() component.Phase {
	if sm.current == nil {
		return component.Setup
	}
	return sm.current.Phase()
}

// Game returns the simulation driven by the machine.
func (sm *StateMachine) Game() *game.Game {
	return sm.game
}

// TogglePause switches between InGame and Pause. Other phases ignore it.
func (sm *StateMachine) TogglePause() {
	switch s := sm.current.(type) {
	case *GameState:
		sm.SetState(NewPauseState(sm, s))
	case *PauseState:
		sm.SetState(s.previous)
	}
}

// RequestGameOver ends the match early.
func (sm *StateMachine) RequestGameOver() {
	if _, ok := sm.current.(*GameState); ok {
		sm.SetState(NewGameOverState(sm))
	}
}
