package teaui

import (
	"tableflip.dev/dayplan/pkg/app"
	tuiapp "tableflip.dev/dayplan/pkg/tui/app"
)

// Run launches the Bubble Tea UI.
func Run(p *app.Planner) error {
	return tuiapp.Run(p)
}
