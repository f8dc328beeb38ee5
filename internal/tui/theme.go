package tui

import "github.com/charmbracelet/lipgloss"

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal
// backgrounds, so colors are adaptive throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	// Headings/breadcrumbs and other secondary chrome.
	colorChromeMutedFg lipgloss.TerminalColor = ac("240", "245")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Slightly elevated surface for controls/inputs so they stay visible
	// on light terminals.
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorBorder lipgloss.TerminalColor = ac("250", "243")
)

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorChromeMutedFg).Bold(true)
}
