package rollball

import "strconv"

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventCollect EventKind = iota
	EventSpecial
	EventPickup
	EventShieldAbsorb
	EventTeleport
	EventEffectExpired
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventCollect:
		return "collect"
	case EventSpecial:
		return "special"
	case EventPickup:
		return "pickup"
	case EventShieldAbsorb:
		return "shield_absorb"
	case EventTeleport:
		return "teleport"
	case EventEffectExpired:
		return "effect_expired"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Cause says what took a life.
type Cause int

const (
	CauseNone Cause = iota
	CauseObstacle
	CauseHazard
	CauseDwell
)

func (c Cause) String() string {
	switch c {
	case CauseObstacle:
		return "obstacle"
	case CauseHazard:
		return "hazard"
	case CauseDwell:
		return "dwell"
	default:
		return "none"
	}
}

// Event is one entry of the per-tick event list. Only the fields relevant to
// the kind are set.
type Event struct {
	Kind   EventKind
	Entity EntityKind // pickups and shield absorbs
	Effect EffectKind // expirations
	Cause  Cause      // life loss
	Points int        // collects
	Level  int        // level changes
}

// Message renders the event as a short HUD line.
func (e Event) Message() string {
	switch e.Kind {
	case EventCollect:
		return "+" + strconv.Itoa(e.Points)
	case EventSpecial:
		return "special +" + strconv.Itoa(e.Points)
	case EventPickup:
		return e.Entity.String() + "!"
	case EventShieldAbsorb:
		return "shield absorbed a hit"
	case EventTeleport:
		return "teleported"
	case EventEffectExpired:
		return e.Effect.String() + " wore off"
	case EventLifeLost:
		return "life lost (" + e.Cause.String() + ")"
	case EventLevelUp:
		return "level " + strconv.Itoa(e.Level)
	case EventGameOver:
		return "game over"
	case EventWin:
		return "you win"
	default:
		return ""
	}
}
