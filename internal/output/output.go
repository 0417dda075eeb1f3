// Package output prints styled, human-facing lines for the gzmsgs CLI.
//
// Diagnostics go through the logger; this package is for the messages a
// user reads: what was generated, what drifted, what failed.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	out         io.Writer = os.Stdout
)

// SetVerbose enables or disables verbose output.
// The root command calls this when --verbose is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriter redirects all output to w and returns the previous writer.
func SetWriter(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Success prints a completed-operation message in green.
//
// Example:
//
//	output.Success("Generated 20 message registrations")
func Success(msg string) {
	fmt.Fprintln(out, successStyle.Render("✓ "+msg))
}

// Error prints a failure in red.
func Error(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✗ "+msg))
}

// Warn prints something the user should look at but that did not fail.
func Warn(msg string) {
	fmt.Fprintln(out, warnStyle.Render("! "+msg))
}

// Info prints a status update in cyan.
func Info(msg string) {
	fmt.Fprintln(out, infoStyle.Render("• "+msg))
}

// Step prints an indented sub-item in gray.
//
// Example:
//
//	output.Step("msgs/register.gen.go")
func Step(msg string) {
	fmt.Fprintln(out, stepStyle.Render("   "+msg))
}

// Verbose prints a debug line only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, stepStyle.Render("… "+msg))
	}
}
