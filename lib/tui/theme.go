// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for paramkit's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Headings and command names.
	HeaderForeground lipgloss.Color
	CommandName      lipgloss.Color

	// Parameter attributes.
	Required    lipgloss.Color
	FlagText    lipgloss.Color
	DefaultText lipgloss.Color

	// Shape colors, indexed in declaration order: scalar, list, set,
	// collection, iterable.
	ShapeColors [5]lipgloss.Color
}

var shapeIndex = map[string]int{
	"scalar":     0,
	"list":       1,
	"set":        2,
	"collection": 3,
	"iterable":   4,
}

// ShapeColor returns the color for a parameter shape name. Unknown
// shapes return FaintText.
func (theme Theme) ShapeColor(shape string) lipgloss.Color {
	index, ok := shapeIndex[shape]
	if !ok {
		return theme.FaintText
	}
	return theme.ShapeColors[index]
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	CommandName:      lipgloss.Color("75"), // blue

	Required:    lipgloss.Color("208"), // orange
	FlagText:    lipgloss.Color("141"), // light purple
	DefaultText: lipgloss.Color("114"), // green

	ShapeColors: [5]lipgloss.Color{
		lipgloss.Color("252"), // scalar: normal text
		lipgloss.Color("220"), // list: amber
		lipgloss.Color("114"), // set: green
		lipgloss.Color("75"),  // collection: blue
		lipgloss.Color("245"), // iterable: gray
	},
}
