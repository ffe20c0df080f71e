package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fishtank/game"
	"github.com/pthm-cable/fishtank/ui/layout"
)

var controlRow = layout.Row{Width: 130, Height: 30, Gap: 8, Margin: 12}

// Controls is the row of buttons along the bottom edge: add fish, add bait,
// cast or reel in the line, and toggle the predator.
type Controls struct {
	screenW, screenH int32
}

// NewControls creates the control row for the given screen size.
func NewControls(screenW, screenH int32) *Controls {
	return &Controls{screenW: screenW, screenH: screenH}
}

// Resize re-anchors the row.
func (c *Controls) Resize(screenW, screenH int32) {
	c.screenW, c.screenH = screenW, screenH
}

// Draw renders the buttons and returns the action of the one pressed this
// frame, or game.ActionNone.
func (c *Controls) Draw(lineActive, predatorOn bool) game.Action {
	buttons := []struct {
		label  string
		action game.Action
	}{
		{"Add Fish", game.ActionAddFish},
		{"Add Bait", game.ActionAddLure},
		{lineLabel(lineActive), game.ActionToggleLine},
		{predatorLabel(predatorOn), game.ActionTogglePredator},
	}

	pressed := game.ActionNone
	for i, r := range c.rects(len(buttons)) {
		if gui.Button(rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}, buttons[i].label) {
			pressed = buttons[i].action
		}
	}
	return pressed
}

// Contains reports whether a screen point is over one of the buttons.
func (c *Controls) Contains(sx, sy float32) bool {
	return layout.Hit(c.rects(buttonCount), sx, sy) >= 0
}

const buttonCount = 4

func (c *Controls) rects(n int) []layout.Rect {
	return controlRow.Place(float32(c.screenW), float32(c.screenH), n)
}

func lineLabel(active bool) string {
	if active {
		return "Stop Fishing"
	}
	return "Start Fishing"
}

func predatorLabel(on bool) string {
	if on {
		return "Predator: On"
	}
	return "Predator: Off"
}
