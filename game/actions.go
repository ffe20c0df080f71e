package game

// Action is a user command issued by a viewer's buttons or keys.
type Action uint8

const (
	ActionNone Action = iota
	ActionAddFish
	ActionAddLure
	ActionToggleLine
	ActionTogglePredator
)

// String returns the display name for an Action.
func (a Action) String() string {
	switch a {
	case ActionAddFish:
		return "add fish"
	case ActionAddLure:
		return "add bait"
	case ActionToggleLine:
		return "fishing line"
	case ActionTogglePredator:
		return "predator"
	default:
		return "none"
	}
}

// Apply performs an action. Viewers queue actions and apply them between
// ticks.
func (g *Game) Apply(a Action) {
	switch a {
	case ActionAddFish:
		g.AddFish()
	case ActionAddLure:
		g.AddPlainLure()
	case ActionToggleLine:
		g.ToggleFishingLine()
	case ActionTogglePredator:
		g.TogglePredator()
	}
}
