package component

// Phase — фаза игры
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseGameWin
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseGameWin:
		return "GameWin"
	}
	return "Unknown"
}
