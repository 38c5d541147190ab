package component

// ScoreBoard counts kills by the player and breaches by enemies.
type ScoreBoard struct {
	Player int
	Enemy  int
}

// Economy — бюджет и счёт текущего матча
type Economy struct {
	Budget int
	Score  ScoreBoard
}
