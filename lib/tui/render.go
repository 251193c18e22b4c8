// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/paramkit/lib/manifest"
)

// ColorMode controls whether output is styled.
type ColorMode string

const (
	// ColorAuto styles output only when the writer is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output with 256 colors regardless of the writer.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// ParseColorMode accepts "auto", "always", or "never".
func ParseColorMode(name string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always, or never)", name)
}

// Renderer formats manifests for one writer.
type Renderer struct {
	theme  Theme
	styles *lipgloss.Renderer

	// width is the terminal width used to truncate summaries in
	// listings. Zero disables truncation.
	width int
}

// NewRenderer returns a renderer whose color profile follows mode.
// With [ColorAuto] the profile is detected from w.
func NewRenderer(w io.Writer, mode ColorMode, theme Theme) *Renderer {
	styles := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		styles.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		styles.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{theme: theme, styles: styles}
}

// SetWidth sets the width listings are truncated to. Zero or negative
// disables truncation.
func (r *Renderer) SetWidth(width int) {
	r.width = max(width, 0)
}

func (r *Renderer) paint(color lipgloss.Color, text string) string {
	return r.styles.NewStyle().Foreground(color).Render(text)
}

func (r *Renderer) bold(color lipgloss.Color, text string) string {
	return r.styles.NewStyle().Foreground(color).Bold(true).Render(text)
}

// pad appends spaces to styled text until it is width cells wide.
func pad(styled string, width int) string {
	if gap := width - ansi.StringWidth(styled); gap > 0 {
		return styled + strings.Repeat(" ", gap)
	}
	return styled
}

// List renders one line per command: the name, padded to the widest
// name, then the summary. Summaries are truncated to the renderer's
// width with an ellipsis.
func (r *Renderer) List(commands []manifest.Command) string {
	nameWidth := 0
	for _, command := range commands {
		nameWidth = max(nameWidth, ansi.StringWidth(command.Name))
	}

	var builder strings.Builder
	for _, command := range commands {
		line := pad(r.paint(r.theme.CommandName, command.Name), nameWidth)
		summary := command.Summary
		if len(command.Aliases) > 0 {
			summary = strings.TrimSpace(summary + " (" + strings.Join(command.Aliases, ", ") + ")")
		}
		if summary != "" {
			if r.width > 0 {
				summary = ansi.Truncate(summary, max(r.width-nameWidth-2, 1), "…")
			}
			line += "  " + r.paint(r.theme.NormalText, summary)
		}
		builder.WriteString(strings.TrimRight(line, " "))
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Command renders the full description of one command.
func (r *Renderer) Command(command manifest.Command) string {
	var builder strings.Builder

	builder.WriteString(r.bold(r.theme.CommandName, command.Name))
	if len(command.Aliases) > 0 {
		builder.WriteString(r.paint(r.theme.FaintText, " (aliases: "+strings.Join(command.Aliases, ", ")+")"))
	}
	builder.WriteByte('\n')
	if command.Summary != "" {
		builder.WriteString(r.paint(r.theme.NormalText, command.Summary))
		builder.WriteByte('\n')
	}

	builder.WriteByte('\n')
	builder.WriteString(r.heading("Usage:") + " " + r.paint(r.theme.NormalText, command.Usage) + "\n")
	builder.WriteString(r.heading("Permission:") + " " + r.paint(r.theme.FaintText, command.Permission) + "\n")

	if command.Description != "" {
		builder.WriteByte('\n')
		for line := range strings.SplitSeq(command.Description, "\n") {
			builder.WriteString(strings.TrimRight(r.paint(r.theme.NormalText, line), " "))
			builder.WriteByte('\n')
		}
	}

	if len(command.Parameters) > 0 {
		builder.WriteByte('\n')
		builder.WriteString(r.heading("Parameters:"))
		builder.WriteByte('\n')
		builder.WriteString(r.parameters(command.Parameters))
	}
	return builder.String()
}

func (r *Renderer) heading(text string) string {
	return r.bold(r.theme.HeaderForeground, text)
}

// parameters renders an aligned table: name, type, then attributes.
// Descriptions and suggestions follow on indented lines.
func (r *Renderer) parameters(parameters []manifest.Parameter) string {
	nameWidth, typeWidth := 0, 0
	for _, parameter := range parameters {
		nameWidth = max(nameWidth, ansi.StringWidth(parameter.Name))
		typeWidth = max(typeWidth, ansi.StringWidth(parameter.Type))
	}

	var builder strings.Builder
	for _, parameter := range parameters {
		columns := []string{
			"  " + pad(r.paint(r.theme.NormalText, parameter.Name), nameWidth),
			pad(r.paint(r.theme.ShapeColor(parameter.Shape), parameter.Type), typeWidth),
		}
		var attributes []string
		if parameter.Required {
			attributes = append(attributes, r.paint(r.theme.Required, "required"))
		}
		for _, flag := range parameter.Flags {
			attributes = append(attributes, r.paint(r.theme.FlagText, "-"+flag))
		}
		if parameter.Default != nil {
			attributes = append(attributes, r.paint(r.theme.DefaultText, "default "+formatDefault(parameter.Default)))
		}
		columns = append(columns, strings.Join(attributes, " "))
		builder.WriteString(strings.TrimRight(strings.Join(columns, "  "), " "))
		builder.WriteByte('\n')

		indent := strings.Repeat(" ", nameWidth+4)
		if parameter.Description != "" {
			builder.WriteString(indent + r.paint(r.theme.NormalText, parameter.Description) + "\n")
		}
		if len(parameter.Suggestions) > 0 {
			builder.WriteString(indent + r.paint(r.theme.FaintText, "suggestions: "+strings.Join(parameter.Suggestions, ", ")) + "\n")
		}
	}
	return builder.String()
}

// formatDefault renders a manifest default. Collection defaults are
// []any after manifest conversion and join with commas.
func formatDefault(value any) string {
	items, ok := value.([]any)
	if !ok {
		return fmt.Sprint(value)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ",")
}
