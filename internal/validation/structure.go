package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue is one structural problem found in LaTeX source
type Issue struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

var envRe = regexp.MustCompile(`^\\(begin|end)\{([^}]*)\}`)

// CheckStructure scans LaTeX source for the mistakes unescaped user text
// causes: unbalanced braces, mismatched environments, stray math shifts and
// alignment tabs outside tabular environments. It is not a TeX parser; it
// understands escapes, comments and \begin/\end pairs, which is enough to
// catch a generator regression without a TeX installation.
func CheckStructure(source string) []Issue {
	var (
		issues []Issue
		depth  int
		envs   []string
		dollar int // line of the open inline math shift, 0 when closed
	)

	lines := strings.Split(source, "\n")
	for n, text := range lines {
		lineNo := n + 1
		for i := 0; i < len(text); i++ {
			switch c := text[i]; c {
			case '\\':
				if i+1 >= len(text) {
					continue
				}
				if m := envRe.FindStringSubmatch(text[i:]); m != nil {
					if m[1] == "begin" {
						envs = append(envs, m[2])
					} else if len(envs) == 0 || envs[len(envs)-1] != m[2] {
						issues = append(issues, Issue{Line: lineNo, Message: fmt.Sprintf(`\end{%s} does not match an open environment`, m[2])})
					} else {
						envs = envs[:len(envs)-1]
					}
					// braces of the environment name are balanced by construction
					i += len(m[0]) - 1
					continue
				}
				// skip the escaped character or control word
				start := i + 1
				i++
				for i+1 < len(text) && isLetter(text[i]) && isLetter(text[i+1]) {
					i++
				}
				if word := text[start : i+1]; (word == "href" || word == "url") && i+1 < len(text) && text[i+1] == '{' {
					end := closingBrace(text, i+1)
					if end < 0 {
						issues = append(issues, Issue{Line: lineNo, Message: fmt.Sprintf(`unterminated \%s target`, word)})
						i = len(text)
						continue
					}
					i = end
				}
			case '%':
				i = len(text)
			case '{':
				depth++
			case '}':
				depth--
				if depth < 0 {
					issues = append(issues, Issue{Line: lineNo, Message: "unmatched closing brace"})
					depth = 0
				}
			case '$':
				if dollar == 0 {
					dollar = lineNo
				} else {
					dollar = 0
				}
			case '&':
				if !inAlignment(envs) {
					issues = append(issues, Issue{Line: lineNo, Message: "alignment tab & outside a tabular environment"})
				}
			case '#':
				issues = append(issues, Issue{Line: lineNo, Message: "parameter character # in body text"})
			case '^', '_':
				if dollar == 0 {
					issues = append(issues, Issue{Line: lineNo, Message: fmt.Sprintf("math character %c outside math mode", c)})
				}
			}
		}
	}

	last := len(lines)
	if depth > 0 {
		issues = append(issues, Issue{Line: last, Message: fmt.Sprintf("%d unclosed brace(s)", depth)})
	}
	for _, env := range envs {
		issues = append(issues, Issue{Line: last, Message: fmt.Sprintf(`environment %s is never closed`, env)})
	}
	if dollar != 0 {
		issues = append(issues, Issue{Line: dollar, Message: "unterminated math shift $"})
	}

	return issues
}

// closingBrace returns the index of the brace closing the group opened at
// open, or -1 when the group does not close on this line.
func closingBrace(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}

func inAlignment(envs []string) bool {
	for _, env := range envs {
		switch strings.TrimSuffix(env, "*") {
		case "tabular", "tabularx", "array", "align", "longtable":
			return true
		}
	}
	return false
}
