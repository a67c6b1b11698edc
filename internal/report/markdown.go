// Package report renders analysis results as a markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Table renders a markdown pipe table. Rows shorter than the header are
// padded with empty cells.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}

// Document accumulates titled sections and renders them under a YAML front
// matter header.
type Document struct {
	Title    string
	Week     int
	Date     time.Time
	sections []section
}

type section struct {
	heading string
	body    string
}

func NewDocument(title string, week int) *Document {
	return &Document{
		Title: title,
		Week:  week,
		Date:  time.Now(),
	}
}

// AddSection appends a section. Empty bodies are skipped so reports never
// carry bare headings.
func (d *Document) AddSection(heading, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	d.sections = append(d.sections, section{heading: heading, body: body})
}

// Render produces the full markdown document.
func (d *Document) Render() string {
	var b strings.Builder

	front := map[string]interface{}{
		"title": d.Title,
		"week":  d.Week,
		"date":  d.Date.Format("2006-01-02"),
	}

	b.WriteString("---\n")
	if encoded, err := yaml.Marshal(front); err == nil {
		b.Write(encoded)
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", d.Title)

	for _, s := range d.sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.heading, s.body)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
