package core

// Event is a discrete tag describing something that happened during a
// step. The engine only reports tags; sounds and HUD flashes are the
// caller's business.
type Event int

const (
	EventPush        Event = iota // a push response was invoked
	EventElectric                 // a push rattled the boundary wall
	EventBreak                    // a block broke on a blocked push
	EventPlayerDeath              // the player was caught
	EventEnemyDeath               // an enemy was squashed or finished off
	EventBonus                    // a score bonus was awarded
	EventStun                     // one or more enemies were stunned
)

// String returns the event's name.
func (e Event) String() string {
	switch e {
	case EventPush:
		return "push"
	case EventElectric:
		return "electric"
	case EventBreak:
		return "break"
	case EventPlayerDeath:
		return "player-death"
	case EventEnemyDeath:
		return "enemy-death"
	case EventBonus:
		return "bonus"
	case EventStun:
		return "stun"
	default:
		return "unknown"
	}
}
