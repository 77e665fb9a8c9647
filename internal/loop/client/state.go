package client

// GameState represents the current screen phase for a client.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // A session is running or paused
	GameStateDead                     // Session over, show restart prompt
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateDead:
		return "dead"
	default:
		return "unknown"
	}
}
