// internal/event/types.go
package event

const (
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена, Data: types.EntityID
	TowerRemoved      EventType = "TowerRemoved"      // Башня снесена путём, Data: component.Tower
	EnemyKilled       EventType = "EnemyKilled"       // Враг убит, Data: component.Enemy
	EnemyBreached     EventType = "EnemyBreached"     // Враг дошёл до цели, Data: component.Enemy
	PathsRecalculated EventType = "PathsRecalculated" // Пути пересчитаны
)
