package component

// Phase — фаза игры
type Phase int

const (
	Setup Phase = iota
	InGame
	Pause
	Restart
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "Setup"
	case InGame:
		return "InGame"
	case Pause:
		return "Pause"
	case Restart:
		return "Restart"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
