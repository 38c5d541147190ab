package component

// Timer — таймер с обратным отсчётом
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
}

func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick advances the timer and reports whether it finished during this call.
// A repeating timer keeps the overshoot; a one-shot timer finishes once.
func (t *Timer) Tick(dt float64) bool {
	if t.Duration <= 0 {
		return false
	}
	if !t.Repeating && t.Elapsed >= t.Duration {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	if t.Repeating {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
	} else {
		t.Elapsed = t.Duration
	}
	return true
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Finished reports whether a one-shot timer has run out.
func (t *Timer) Finished() bool {
	return !t.Repeating && t.Duration > 0 && t.Elapsed >= t.Duration
}

// Percent returns the elapsed share in [0, 1].
func (t *Timer) Percent() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Remaining returns the seconds left on the timer.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Timers — все таймеры матча
type Timers struct {
	EnemySpawn  Timer
	TowerDamage Timer
	Match       Timer
	GameOver    Timer
}
