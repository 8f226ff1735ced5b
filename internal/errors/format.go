package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// color wraps text in ANSI color codes if colors are enabled.
func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string   { return color(colorRed, text) }
func blue(text string) string  { return color(colorBlue, text) }
func cyan(text string) string  { return color(colorCyan, text) }
func white(text string) string { return color(colorWhite, text) }
func gray(text string) string  { return color(colorGray, text) }
func bold(text string) string  { return color(colorBold, text) }

// Format returns the error formatted for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	} else {
		b.WriteString(red(bold("ERROR: ")))
	}
	b.WriteString(white(e.Message))
	b.WriteString("\n\n")

	if e.Location != nil {
		b.WriteString("  ")
		b.WriteString(cyan(e.Location.String()))
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(gray("Cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(gray("Learn more: "))
		b.WriteString(blue(e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *Error) FormatCompact() string {
	var b strings.Builder

	if e.Location != nil {
		b.WriteString(e.Location.String())
		b.WriteString(": ")
	}
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	return b.String()
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Cause      string        `json:"cause,omitempty"`
	DocURL     string        `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *Error) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Print writes a formatted error to w. Errors that are not *Error get a
// plain header.
func Print(w io.Writer, err error) {
	if be := FromError(err, ""); be != nil && be.Code != "" {
		fmt.Fprint(w, be.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
}

// PrintJSON writes err to w as a single line of JSON. Errors that are not
// an *Error are reported as a runtime error carrying their message.
func PrintJSON(w io.Writer, err error) {
	if err == nil {
		return
	}
	var be *Error
	if !stderrors.As(err, &be) {
		be = &Error{Category: CategoryRuntime, Message: err.Error()}
	}
	fmt.Fprintln(w, be.FormatJSON())
}
