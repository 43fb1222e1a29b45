package config

// AnimState is the exclusive animation state of an actor
type AnimState int

const (
	StateNone AnimState = iota
	Idle
	Running
	Attacking
	Dying
)

func (s AnimState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Attacking:
		return "attacking"
	case Dying:
		return "dying"
	}
	return "none"
}

// Game flow states and the events that move between them
const (
	FlowStart             = "start"
	FlowCharacterCreation = "character_creation"
	FlowCutscene          = "cutscene"
	FlowGame              = "game"
	FlowLose              = "lose"

	EventCreate    = "create"
	EventPlay      = "play"
	EventEnterGame = "enter_game"
	EventLose      = "lose"
	EventQuit      = "quit"
	EventRestart   = "restart"
)
