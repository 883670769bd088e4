package export

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/listd/internal/model"
)

func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 2, 9, 12, 30, 0, 0, time.UTC)
	}
}

func groceriesDocument(t *testing.T) *model.Document {
	t.Helper()
	doc := model.NewDocument()
	listID, err := doc.CreateList("Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	milk, err := doc.AddItem(listID, "Milk")
	if err != nil {
		t.Fatalf("add milk: %v", err)
	}
	if _, err := doc.AddItem(listID, "Eggs"); err != nil {
		t.Fatalf("add eggs: %v", err)
	}
	if err := doc.ToggleItem(listID, milk); err != nil {
		t.Fatalf("toggle milk: %v", err)
	}
	return doc
}

func TestWriteGroceriesReport(t *testing.T) {
	doc := groceriesDocument(t)
	var out strings.Builder
	w := Writer{Clock: testClock()}
	if err := w.Write(doc, &out); err != nil {
		t.Fatalf("write: %v", err)
	}
	report := out.String()

	for _, want := range []string{
		"Exported: 2026-02-09 12:30",
		"GROCERIES",
		"Progress: 1/2 tasks (50.0%)",
		"1. [x] Milk",
		"2. [ ] Eggs",
		"Total Lists: 1",
		"Total Tasks: 2",
		"Completed:   1",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	if !strings.Contains(report, "Completed: ") {
		t.Fatalf("expected completion date for Milk:\n%s", report)
	}
	if !strings.Contains(report, "Added: ") {
		t.Fatalf("expected added date for Eggs:\n%s", report)
	}
}

func TestWriteIsDeterministicAndPure(t *testing.T) {
	doc := groceriesDocument(t)
	w := Writer{Clock: testClock()}

	var first, second strings.Builder
	if err := w.Write(doc, &first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(doc, &second); err != nil {
		t.Fatalf("write: %v", err)
	}
	if first.String() != second.String() {
		t.Fatal("expected identical reports for identical documents")
	}
	if len(doc.Lists) != 1 || len(doc.Lists[0].Items) != 2 {
		t.Fatalf("document mutated by export: %#v", doc)
	}
}

func TestWriteEmptyDocument(t *testing.T) {
	var out strings.Builder
	w := Writer{Clock: testClock()}
	if err := w.Write(model.NewDocument(), &out); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(out.String(), "Total Lists: 0") {
		t.Fatalf("unexpected empty report:\n%s", out.String())
	}
}

func TestWriteWrapsLongItemText(t *testing.T) {
	doc := model.NewDocument()
	listID, _ := doc.CreateList("Chores")
	long := strings.Repeat("scrub the kitchen floor ", 8)
	if _, err := doc.AddItem(listID, long); err != nil {
		t.Fatalf("add item: %v", err)
	}

	var out strings.Builder
	if err := (Writer{Clock: testClock()}).Write(doc, &out); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, line := range strings.Split(out.String(), "\n") {
		if len(line) > 80 {
			t.Fatalf("line exceeds 80 columns: %q", line)
		}
	}
}

func TestWriteFile(t *testing.T) {
	doc := groceriesDocument(t)
	path := filepath.Join(t.TempDir(), "export.txt")
	w := Writer{Clock: testClock()}
	if err := w.WriteFile(doc, path); err != nil {
		t.Fatalf("write file: %v", err)
	}

	dir := filepath.Dir(path)
	missing := filepath.Join(dir, "no-such-dir", "export.txt")
	if err := w.WriteFile(doc, missing); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}
