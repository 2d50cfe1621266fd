// Package ui defines the shared lipgloss styles for terminal output.
//
// Styles degrade to plain text automatically when the output is not a
// color-capable terminal, so command output stays grep-able in CI logs.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Title styles section headings and gate names.
	Title = lipgloss.NewStyle().Bold(true)

	// Pass styles success markers.
	Pass = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	// Fail styles failure markers.
	Fail = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	// Warn styles warning markers.
	Warn = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Muted styles secondary detail such as rulers and command echoes.
	Muted = lipgloss.NewStyle().Faint(true)
)

// Ruler returns a horizontal rule of the given character and width, styled
// as secondary detail.
func Ruler(ch string, width int) string {
	return Muted.Render(strings.Repeat(ch, width))
}
