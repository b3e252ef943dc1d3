// Package ui renders CLI status lines. Status output goes to stderr so
// payload bytes on stdout stay clean for piping into a target.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Writer receives all status output. Swappable for tests.
var Writer io.Writer = os.Stderr

// Status colors
var (
	Success = lipgloss.Color("#00D26A")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error).Bold(true)
	PathStyle    = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Wrote reports a payload written to path, with its size in bytes.
func Wrote(path string, n int) {
	fmt.Fprintf(Writer, "%s %s %s\n",
		SuccessStyle.Render("Wrote"),
		PathStyle.Render(path),
		MutedStyle.Render(fmt.Sprintf("(%d bytes)", n)))
}

// Errorf prints a styled error line.
func Errorf(format string, args ...any) {
	fmt.Fprintf(Writer, "%s\n", ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Infof prints a muted informational line.
func Infof(format string, args ...any) {
	fmt.Fprintf(Writer, "%s\n", MutedStyle.Render(fmt.Sprintf(format, args...)))
}
