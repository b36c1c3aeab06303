// Package rendering turns a resume snapshot into LaTeX source and an HTML preview.
package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~ < > |
// Line breaks and runs of whitespace collapse to a single space so that user
// text can never end a paragraph or produce an empty \\ line.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	space := false
	for _, r := range text {
		switch r {
		case '\n', '\r', '\t', ' ':
			space = true
			continue
		}
		if space {
			if result.Len() > 0 {
				result.WriteByte(' ')
			}
			space = false
		}

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
		case '<':
			result.WriteString(`\textless{}`)
		case '>':
			result.WriteString(`\textgreater{}`)
		case '|':
			result.WriteString(`\textbar{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeURL prepares a URL for the first argument of \href.
// Braces, backslashes and whitespace are percent-encoded; % and # need a
// backslash because hyperref reads the argument with normal catcodes.
func EscapeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(url) + 8)

	for _, r := range url {
		switch r {
		case '\\':
			result.WriteString(`\%5C`)
		case '{':
			result.WriteString(`\%7B`)
		case '}':
			result.WriteString(`\%7D`)
		case ' ':
			result.WriteString(`\%20`)
		case '\n', '\r', '\t':
			// dropped
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
