// internal/event/queue.go
package event

// Intent — запрос на работу, которую выполняет следующая фаза тика
type Intent int

const (
	RecalculateEnemyPaths Intent = iota
	RefreshTowerDamage
)

func (i Intent) String() string {
	switch i {
	case RecalculateEnemyPaths:
		return "RecalculateEnemyPaths"
	case RefreshTowerDamage:
		return "RefreshTowerDamage"
	}
	return "Unknown"
}

// Queue holds pending intents between the phases of one tick. Phases consume
// intents with Take in a fixed order; repeated pushes of the same intent
// collapse into one.
type Queue struct {
	pending []Intent
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(intent Intent) {
	q.pending = append(q.pending, intent)
}

// Take removes every pending copy of intent and reports whether there was any.
func (q *Queue) Take(intent Intent) bool {
	found := false
	kept := q.pending[:0]
	for _, i := range q.pending {
		if i == intent {
			found = true
			continue
		}
		kept = append(kept, i)
	}
	q.pending = kept
	return found
}

func (q *Queue) Len() int {
	return len(q.pending)
}

func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}
