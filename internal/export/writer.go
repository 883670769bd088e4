// Package export renders a document to a human-readable plain-text report.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/sandeepkv93/listd/internal/model"
)

const (
	ruleWide   = "=================================================="
	ruleNarrow = "----------------------------------------"
	textWidth  = 64
)

// Writer renders documents as plain-text reports. Clock exists so tests can
// pin the export timestamp; the zero value uses the wall clock.
type Writer struct {
	Clock func() time.Time
}

func (w Writer) now() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}

// Write renders the full document to out: every list with its items,
// completion marks, and dates, plus per-list progress and grand totals.
// The document is never mutated and the output is deterministic in stored
// order. Only out can fail.
func (w Writer) Write(doc *model.Document, out io.Writer) error {
	var b strings.Builder

	b.WriteString(ruleWide + "\n")
	b.WriteString("LISTD EXPORT\n")
	b.WriteString("Exported: " + w.now().Format("2006-01-02 15:04") + "\n")
	b.WriteString(ruleWide + "\n\n")

	for _, list := range doc.Lists {
		completed, total := list.Progress()
		b.WriteString(strings.ToUpper(list.Name) + "\n")
		b.WriteString(fmt.Sprintf("  Progress: %d/%d tasks (%.1f%%)\n", completed, total, list.CompletionRatio()*100))
		if !list.CreatedAt.IsZero() {
			b.WriteString("  Created: " + list.CreatedAt.Format("2006-01-02") + "\n")
		}
		b.WriteString(ruleNarrow + "\n")

		for i, item := range list.Items {
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, mark, wrapText(item.Text)))
			if item.Completed && item.CompletedAt != nil {
				b.WriteString("         Completed: " + item.CompletedAt.Format("2006-01-02 15:04") + "\n")
			} else {
				b.WriteString("         Added: " + item.CreatedAt.Format("2006-01-02 15:04") + "\n")
			}
		}
		b.WriteString("\n")
	}

	completed, total := doc.Totals()
	b.WriteString(ruleWide + "\n")
	b.WriteString(fmt.Sprintf("Total Lists: %d\n", len(doc.Lists)))
	b.WriteString(fmt.Sprintf("Total Tasks: %d\n", total))
	b.WriteString(fmt.Sprintf("Completed:   %d\n", completed))
	b.WriteString(ruleWide + "\n")

	_, err := io.WriteString(out, b.String())
	if err != nil {
		return fmt.Errorf("export: write report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, replacing any existing file.
func (w Writer) WriteFile(doc *model.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create report file: %w", err)
	}
	if err := w.Write(doc, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close report file: %w", err)
	}
	return nil
}

// wrapText wraps long item text with a hanging indent aligned under the
// first line's text column.
func wrapText(text string) string {
	wrapped := wordwrap.String(text, textWidth)
	return strings.ReplaceAll(wrapped, "\n", "\n         ")
}
