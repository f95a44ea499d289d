// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Naiitikk/cv-creator/internal/document"
	"github.com/Naiitikk/cv-creator/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, replacing the tail with "..." when
// it is cut. Slicing on rune boundaries keeps multibyte glyphs intact.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintRequest outputs a human-readable summary of the submitted CV request.
func (p *Printer) PrintRequest(req *types.CVRequest) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s %s\n", req.FirstName, req.LastName))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", req.JobTitle))
	sb.WriteString(fmt.Sprintf("Experience: %s years\n", string(req.Experience)))
	if req.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:    %s\n", req.Company))
	}
	if req.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", req.Location))
	}
	sb.WriteString(fmt.Sprintf("Theme:      %s", req.Theme))

	p.printBox("CV REQUEST", sb.String())
}

// PrintGeneratedContent outputs the generated sections with the skill list
// expanded one per line.
func (p *Printer) PrintGeneratedContent(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Summary:  %s\n", truncate(content.Summary, 50)))
	sb.WriteString(fmt.Sprintf("Bullets:  %s\n", truncate(content.ExperienceDescription, 50)))

	if len(content.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(content.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", content.Skills[i]))
		}
		if len(content.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.Skills)-maxItemsToShow))
		}
	}

	p.printBox("GENERATED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs the merged document with per-section presence markers.
func (p *Printer) PrintDocument(doc *document.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.FullName()))
	sb.WriteString(fmt.Sprintf("Role:   %s\n", doc.JobTitle))
	sb.WriteString(fmt.Sprintf("Theme:  %s\n", doc.Theme))
	sb.WriteString("\nSections:\n")

	sections := []struct {
		name    string
		present bool
	}{
		{"summary", doc.Summary != ""},
		{"experience", doc.ExperienceDescription != ""},
		{"skills", len(doc.Skills) > 0},
		{"languages", doc.Languages != ""},
		{"certifications", doc.Certifications != ""},
		{"portfolio", doc.Portfolio != ""},
		{"projects", len(doc.ProjectImages) > 0},
	}
	for _, sec := range sections {
		marker := "–"
		if sec.present {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, sec.name))
	}

	p.printBox("MERGED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResult outputs the written PDF path, page count, and size.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResult(path string, pages int, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", path))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", pages))
	sb.WriteString(fmt.Sprintf("Size:   %.1f KB", float64(size)/1024))

	p.printBox("EXPORTED PDF", sb.String())
}
