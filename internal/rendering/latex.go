package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Preamble opens every generated document
const Preamble = `\documentclass[11pt,a4paper]{article}
\usepackage[left=0.75in,right=0.75in,top=0.75in,bottom=0.75in]{geometry}
\usepackage[T1]{fontenc}
\usepackage{hyperref}
\usepackage{fontawesome}
\usepackage{titlesec}
\usepackage{enumitem}

\titleformat{\section}{\large\bfseries\uppercase}{}{0em}{}[\titlerule]
\titlespacing{\section}{0pt}{12pt}{8pt}

\begin{document}

`

// Terminator closes every generated document
const Terminator = "\\end{document}\n"

const (
	contactSeparator = ` $\cdot$ `
	itemizeOpen      = `\begin{itemize}[leftmargin=*,label={},itemsep=4pt]`
	itemizeClose     = `\end{itemize}`
	// Both \\ and \item look ahead for an optional [ or * argument, so each
	// is closed with {} before user text.
	lineBreak = " \\\\{}\n    "
	itemOpen  = "  \\item{} "
)

// GenerateLaTeX renders a snapshot to LaTeX source. It never fails: every
// field is optional and every user string is escaped before interpolation.
func GenerateLaTeX(snap *types.Snapshot) string {
	return FormatLaTeX(BuildDocument(snap))
}

// FormatLaTeX writes a Document as LaTeX source
func FormatLaTeX(doc *Document) string {
	var b strings.Builder
	b.WriteString(Preamble)
	writeHeader(&b, doc.Header)
	for _, s := range doc.Sections {
		writeSection(&b, s)
	}
	b.WriteString(Terminator)
	return b.String()
}

func writeHeader(b *strings.Builder, h Header) {
	rows := []string{`{\LARGE\textbf{` + EscapeLaTeX(h.Name) + `}}`}

	if len(h.Contact) > 0 {
		contact := make([]string, len(h.Contact))
		for i, c := range h.Contact {
			contact[i] = EscapeLaTeX(c)
		}
		rows = append(rows, strings.Join(contact, contactSeparator))
	}

	if len(h.Links) > 0 {
		links := make([]string, len(h.Links))
		for i, l := range h.Links {
			links[i] = `\href{` + EscapeURL(l.URL) + `}{` + EscapeLaTeX(l.Label) + `}`
		}
		rows = append(rows, strings.Join(links, contactSeparator))
	}

	b.WriteString("% Personal Information\n")
	b.WriteString("\\begin{center}\n  ")
	b.WriteString(strings.Join(rows, " \\\\{}\n  "))
	b.WriteString("\n\\end{center}\n\n")
}

func writeSection(b *strings.Builder, s Section) {
	b.WriteString(`\section{` + EscapeLaTeX(strings.ToUpper(s.Title)) + "}\n")
	b.WriteString(itemizeOpen + "\n")
	for _, item := range s.Items {
		lines := make([]string, len(item.Lines))
		for i, l := range item.Lines {
			lines[i] = latexLine(l)
		}
		b.WriteString(itemOpen + strings.Join(lines, lineBreak) + "\n")
	}
	b.WriteString(itemizeClose + "\n\n")
}

func latexLine(l Line) string {
	var b strings.Builder
	if l.Label != "" {
		b.WriteString(`\textbf{` + EscapeLaTeX(l.Label) + `}: `)
	}
	if l.Strong {
		b.WriteString(`\textbf{` + EscapeLaTeX(l.Text) + `}`)
	} else {
		b.WriteString(EscapeLaTeX(l.Text))
	}
	if l.Note != "" {
		b.WriteString(` -- \textit{` + EscapeLaTeX(l.Note) + `}`)
	}
	if l.Aside != "" {
		b.WriteString(` \hfill ` + EscapeLaTeX(l.Aside))
	}
	return b.String()
}
