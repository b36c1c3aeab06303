// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintSnapshot outputs the header name and the section order with the
// number of items each section holds. Sections with items that are left out
// of the order are listed as hidden.
func (p *Printer) PrintSnapshot(snap *types.Snapshot) {
	if snap == nil {
		return
	}

	var sb strings.Builder
	name := strings.TrimSpace(snap.Personal.Name)
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString("\n")

	sb.WriteString("Section order:\n")
	if len(snap.SectionOrder) == 0 {
		sb.WriteString("  (empty, only the header renders)\n")
	}
	for i, section := range snap.SectionOrder {
		sb.WriteString(fmt.Sprintf("  %d. %-16s %d item(s)\n", i+1, section.Title(), snap.Len(section)))
	}

	var hidden []string
	for _, section := range types.AllSections {
		if section == types.SectionPersonal {
			continue
		}
		if !snap.SectionOrder.Contains(section) && snap.Len(section) > 0 {
			hidden = append(hidden, section.Title())
		}
	}
	if len(hidden) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Hidden: %s\n", strings.Join(hidden, ", ")))
	}

	if len(snap.SkillCategories) > 0 {
		sb.WriteString("\n")
		count := min(len(snap.SkillCategories), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skill categories: %s", strings.Join(snap.SkillCategories[:count], ", ")))
		if len(snap.SkillCategories) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(snap.SkillCategories)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("RESUME SNAPSHOT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the structural issues and compile result of a LaTeX check.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *validation.Report) {
	if report == nil {
		return
	}

	if len(report.Issues) == 0 {
		var sb strings.Builder
		sb.WriteString("✅ NO STRUCTURAL ISSUES FOUND")
		switch {
		case report.Compiled:
			sb.WriteString("\nPDF: " + report.PDFPath)
		case report.Skipped != "":
			sb.WriteString("\nCompile skipped: " + report.Skipped)
		}
		p.printBox("LATEX CHECK", sb.String())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issue(s):\n\n", len(report.Issues)))

	count := min(len(report.Issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := report.Issues[i]
		sb.WriteString(fmt.Sprintf("⚠ line %d\n", issue.Line))
		sb.WriteString(fmt.Sprintf("  %s\n", issue.Message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(report.Issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more issues", len(report.Issues)-maxItemsToShow))
	}

	p.printBox("LATEX CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
