// Package errors provides error formatting for the iamlisp frontend.
// It renders lex and parse errors with source context, line/column
// information, and a caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/iamlisp/go-iamlisp/internal/lexer"
)

// SourceError is a single frontend error with position and context.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a new source error.
func New(pos lexer.Position, message, source, file string) *SourceError {
	return &SourceError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with source context. If color is true, ANSI
// color codes are used for terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		indent := len(prefix) + e.Pos.Column - 1
		if indent < len(prefix) {
			indent = len(prefix)
		}
		sb.WriteString(strings.Repeat(" ", indent))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLine extracts a 1-indexed line from the source text.
func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of errors separated by blank lines.
func FormatAll(errs []*SourceError, color bool) string {
	var sb strings.Builder
	for i, err := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(err.Format(color))
	}
	return sb.String()
}
