// internal/state/game_state.go
package state

import (
	"log"

	"go-hex-defense/internal/component"
)

// GameState — идёт матч
type GameState struct {
	sm *StateMachine
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{sm: sm}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	out := g.sm.game.Update(deltaTime)
	switch {
	case out.Restart:
		g.sm.SetState(NewRestartState(g.sm))
	case out.MatchOver:
		score := g.sm.game.Economy().Score
		log.Printf("Match over: player %d, enemies %d", score.Player, score.Enemy)
		g.sm.SetState(NewGameOverState(g.sm))
	}
}

func (g *GameState) Exit() {}

func (g *GameState) Phase() component.Phase { return component.InGame }
