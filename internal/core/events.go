package core

// Event is a discrete notification emitted by a game step. Games tag what
// happened; the platform decides what to do about it (sound effects, HUD
// flashes). Events carry no payload beyond the tag.
type Event int

const (
	EventNone       Event = iota
	EventPush             // a block was set in motion
	EventElectric         // a push rattled the boundary wall
	EventBreak            // a block broke (blocked push)
	EventPlayerDeath      // the player was caught
	EventEnemyDeath       // an enemy was squashed or finished off
	EventBonus            // a score bonus was awarded
	EventStun             // one or more enemies were stunned
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPush:
		return "Push"
	case EventElectric:
		return "Electric"
	case EventBreak:
		return "Break"
	case EventPlayerDeath:
		return "PlayerDeath"
	case EventEnemyDeath:
		return "EnemyDeath"
	case EventBonus:
		return "Bonus"
	case EventStun:
		return "Stun"
	default:
		return "Unknown"
	}
}
