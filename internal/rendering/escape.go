// Package rendering turns a tailored resume into LaTeX source and compiles it
// to PDF with pdflatex.
package rendering

import (
	"fmt"
	"strings"
)

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL sanitizes a value interpolated into an \href URL argument.
// Text escaping does not apply there: \href reads its first argument as a
// URL, so characters that close the group or start a command must be
// percent-encoded instead.
func EscapeURL(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\\', '{', '}', '%', '#', ' ':
			fmt.Fprintf(&result, "%%%02X", r)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
