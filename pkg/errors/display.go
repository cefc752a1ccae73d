// Package errors provides error formatting and display functions.
// Renders CardsErrors with color coding for TTY output.
package errors

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error type/code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Suggestions
	colorDim    = "\033[90m" // Secondary/cause info
	colorBold   = "\033[1m"  // Emphasis
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	// When false, output is plain text suitable for logs.
	UseColor bool

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer

	// Indent is the prefix for context and suggestion lines.
	Indent string
}

// DefaultFormatter returns a Formatter configured for standard error output.
// Color is enabled if stderr is a TTY.
func DefaultFormatter() *Formatter {
	return &Formatter{
		UseColor: IsTTY(os.Stderr),
		Writer:   os.Stderr,
		Indent:   "  ",
	}
}

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Format renders an error with color coding using default settings.
func Format(err error) string {
	return DefaultFormatter().Format(err)
}

// Format renders an error with color coding based on formatter settings.
// For CardsError, displays code, message, context, cause, and suggestions.
// For standard errors, displays a simple error message.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	ce, ok := AsCardsError(err)
	if !ok {
		return f.formatStandardError(err)
	}

	return f.formatCardsError(ce)
}

// Print formats an error and writes it to the formatter's writer.
func (f *Formatter) Print(err error) {
	if err == nil {
		return
	}
	w := f.Writer
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, f.Format(err))
}

// formatStandardError formats a non-CardsError error.
func (f *Formatter) formatStandardError(err error) string {
	var sb strings.Builder

	if f.UseColor {
		sb.WriteString(colorRed)
		sb.WriteString("Error: ")
		sb.WriteString(colorReset)
	} else {
		sb.WriteString("Error: ")
	}
	sb.WriteString(err.Error())

	return sb.String()
}

// formatCardsError formats a CardsError with full context and suggestions.
func (f *Formatter) formatCardsError(ce *CardsError) string {
	var sb strings.Builder

	f.writeErrorHeader(&sb, ce)

	if ce.HasContext() {
		f.writeContext(&sb, ce)
	}

	if ce.Cause != nil {
		f.writeCause(&sb, ce)
	}

	if ce.HasSuggestions() {
		f.writeSuggestions(&sb, ce)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// writeErrorHeader writes the error code and message.
func (f *Formatter) writeErrorHeader(sb *strings.Builder, ce *CardsError) {
	if f.UseColor {
		sb.WriteString(colorRed)
		sb.WriteString(colorBold)
		sb.WriteString("ERROR")
		sb.WriteString(colorReset)
		sb.WriteString(colorRed)
		sb.WriteString(" [")
		sb.WriteString(ce.Code)
		sb.WriteString("]: ")
		sb.WriteString(colorReset)
	} else {
		sb.WriteString("ERROR [")
		sb.WriteString(ce.Code)
		sb.WriteString("]: ")
	}
	sb.WriteString(ce.Message)
	sb.WriteString("\n")
}

// writeContext writes the context key-value pairs.
func (f *Formatter) writeContext(sb *strings.Builder, ce *CardsError) {
	// Sort keys for consistent output
	keys := make([]string, 0, len(ce.Context))
	for k := range ce.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := ce.Context[key]
		sb.WriteString(f.Indent)
		if f.UseColor {
			sb.WriteString(colorYellow)
			sb.WriteString(key)
			sb.WriteString(": ")
			sb.WriteString(colorReset)
		} else {
			sb.WriteString(key)
			sb.WriteString(": ")
		}
		sb.WriteString(value)
		sb.WriteString("\n")
	}
}

// writeCause writes the underlying cause of the error.
func (f *Formatter) writeCause(sb *strings.Builder, ce *CardsError) {
	sb.WriteString(f.Indent)
	if f.UseColor {
		sb.WriteString(colorDim)
		sb.WriteString("cause: ")
		sb.WriteString(ce.Cause.Error())
		sb.WriteString(colorReset)
	} else {
		sb.WriteString("cause: ")
		sb.WriteString(ce.Cause.Error())
	}
	sb.WriteString("\n")
}

// writeSuggestions writes actionable remediation suggestions.
func (f *Formatter) writeSuggestions(sb *strings.Builder, ce *CardsError) {
	// Blank line before suggestions for visual separation
	if ce.HasContext() || ce.Cause != nil {
		sb.WriteString("\n")
	}

	for _, suggestion := range ce.Suggestions {
		sb.WriteString(f.Indent)
		if f.UseColor {
			sb.WriteString(colorCyan)
			sb.WriteString("→ ")
			sb.WriteString(suggestion)
			sb.WriteString(colorReset)
		} else {
			sb.WriteString("→ ")
			sb.WriteString(suggestion)
		}
		sb.WriteString("\n")
	}
}
