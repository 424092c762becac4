// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-online/internal/binding"
	"github.com/jonathan/cv-online/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs the outcome counts of a binding pass and the first skipped fields.
func (p *Printer) PrintReport(report *binding.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Language: %s\n", report.Language))
	sb.WriteString(fmt.Sprintf("Applied:  %d\n", report.Count(binding.Applied)))
	sb.WriteString(fmt.Sprintf("Skipped (no value):  %d\n", report.Count(binding.SkippedMissingField)))
	sb.WriteString(fmt.Sprintf("Skipped (no target): %d\n", report.Count(binding.SkippedMissingTarget)))

	if missing := report.Fields(binding.SkippedMissingTarget); len(missing) > 0 {
		sb.WriteString("\nMissing targets:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("BINDING REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecordSummary outputs which sections a content record supplies and its item counts.
func (p *Printer) PrintRecordSummary(lang types.Language, record *types.LocalizedContentRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Language: %s\n", lang))
	if record.Basic != nil && record.Basic.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Basic.Name))
	}
	sb.WriteString("\n")

	writeSection := func(name string, present bool, items int) {
		if !present {
			sb.WriteString(fmt.Sprintf("  %-11s -\n", name))
			return
		}
		sb.WriteString(fmt.Sprintf("  %-11s %d item(s)\n", name, items))
	}
	writeSection("contact", record.Contact != nil, 0)
	writeSection("profile", record.Profile != nil, 0)
	if record.Experience != nil {
		writeSection("experience", true, len(record.Experience.Items))
	} else {
		writeSection("experience", false, 0)
	}
	if record.Education != nil {
		writeSection("education", true, len(record.Education.Items))
	} else {
		writeSection("education", false, 0)
	}
	writeSection("skill", record.Skill != nil, len(record.Skill.FirstGroupItems()))
	if record.Project != nil {
		writeSection("project", true, len(record.Project.Items))
	} else {
		writeSection("project", false, 0)
	}
	if record.Reference != nil {
		writeSection("reference", true, len(record.Reference.Items))
	} else {
		writeSection("reference", false, 0)
	}

	p.printBox("CONTENT RECORD", strings.TrimSuffix(sb.String(), "\n"))
}
