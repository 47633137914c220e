// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the console TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Prompt and the echo of submitted commands in the scrollback.
	PromptForeground  lipgloss.Color
	CommandForeground lipgloss.Color

	// Completion bar: candidate words, matched characters within them,
	// and the candidate selected while tab-cycling.
	CandidateForeground lipgloss.Color
	MatchForeground     lipgloss.Color
	SelectedBackground  lipgloss.Color
	SelectedForeground  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status-line log records.
	WarnForeground  lipgloss.Color
	ErrorForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	PromptForeground:  lipgloss.Color("114"), // green
	CommandForeground: lipgloss.Color("255"),

	CandidateForeground: lipgloss.Color("75"),  // blue
	MatchForeground:     lipgloss.Color("220"), // amber
	SelectedBackground:  lipgloss.Color("75"),
	SelectedForeground:  lipgloss.Color("235"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	WarnForeground:  lipgloss.Color("220"), // amber
	ErrorForeground: lipgloss.Color("196"), // red
}

// styles holds the lipgloss styles derived from a theme through one
// renderer, so every render shares the renderer's color profile and
// degrades together on less capable terminals.
type styles struct {
	header        lipgloss.Style
	path          lipgloss.Style
	prompt        lipgloss.Style
	command       lipgloss.Style
	candidate     lipgloss.Style
	match         lipgloss.Style
	selected      lipgloss.Style
	selectedMatch lipgloss.Style
	border        lipgloss.Style
	help          lipgloss.Style
	warnStatus    lipgloss.Style
	errorStatus   lipgloss.Style
}

func newStyles(renderer *lipgloss.Renderer, theme Theme) styles {
	return styles{
		header:        renderer.NewStyle().Foreground(theme.HeaderForeground).Bold(true),
		path:          renderer.NewStyle().Foreground(theme.FaintText),
		prompt:        renderer.NewStyle().Foreground(theme.PromptForeground).Bold(true),
		command:       renderer.NewStyle().Foreground(theme.CommandForeground),
		candidate:     renderer.NewStyle().Foreground(theme.CandidateForeground),
		match:         renderer.NewStyle().Foreground(theme.MatchForeground).Bold(true),
		selected:      renderer.NewStyle().Foreground(theme.SelectedForeground).Background(theme.SelectedBackground),
		selectedMatch: renderer.NewStyle().Foreground(theme.SelectedForeground).Background(theme.SelectedBackground).Bold(true),
		border:        renderer.NewStyle().Foreground(theme.BorderColor),
		help:          renderer.NewStyle().Foreground(theme.HelpText),
		warnStatus:    renderer.NewStyle().Foreground(theme.WarnForeground),
		errorStatus:   renderer.NewStyle().Foreground(theme.ErrorForeground),
	}
}
