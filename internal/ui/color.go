package ui

import "github.com/fatih/color"

var (
	Bold  = color.New(color.Bold).SprintFunc()
	Red   = color.New(color.FgRed).SprintFunc()
	Green = color.New(color.FgGreen).SprintFunc()
	Faint = color.New(color.Faint).SprintFunc()
)

// SetColor turns ANSI colouring on or off for everything printed by this package.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
