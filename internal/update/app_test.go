package update

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/config"
	"github.com/sandeepkv93/listd/internal/model"
	"github.com/sandeepkv93/listd/internal/session"
)

type recordingSaver struct {
	saves int
	err   error
}

func (s *recordingSaver) Save(doc *model.Document) error {
	s.saves++
	return s.err
}

func newTestModel(t *testing.T) (Model, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	sess := session.New(model.NewDocument(), saver)
	cfg := config.Default()
	cfg.ExportFile = filepath.Join(t.TempDir(), "export.txt")
	return NewModel(sess, cfg), saver
}

func seedGroceries(t *testing.T, m Model) Model {
	t.Helper()
	id, err := m.Session.CreateList("Groceries")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if err := m.Session.SetActiveList(id); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if _, err := m.Session.AddItem(id, "milk"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := m.Session.AddItem(id, "eggs"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	m.syncSidebarCursor()
	m.Pane = PaneItems
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Pane != PaneSidebar {
		t.Fatalf("expected default pane %q, got %q", PaneSidebar, m.Pane)
	}
	if m.Input != InputNone {
		t.Fatalf("expected no input mode, got %q", m.Input)
	}
	if m.Keys.Quit != "q" || m.Keys.NewList != "N" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
}

func TestUpdateTabSwitchesPane(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next := updated.(Model)
	if next.Pane != PaneItems {
		t.Fatalf("expected items pane, got %q", next.Pane)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	next = updated.(Model)
	if next.Pane != PaneSidebar {
		t.Fatalf("expected sidebar pane, got %q", next.Pane)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errMsg := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errMsg})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestNewListInputFlow(t *testing.T) {
	m, saver := newTestModel(t)

	updated, _ := m.Update(keyRunes("N"))
	next := updated.(Model)
	if next.Input != InputNewList {
		t.Fatalf("expected new list input mode, got %q", next.Input)
	}

	updated, _ = next.Update(keyRunes("Groceries"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	doc := next.Session.Document()
	if len(doc.Lists) != 1 || doc.Lists[0].Name != "Groceries" {
		t.Fatalf("expected one list Groceries, got: %+v", doc.Lists)
	}
	if doc.ActiveListID != doc.Lists[0].ID {
		t.Fatal("expected new list to become active")
	}
	if next.Pane != PaneItems {
		t.Fatalf("expected items pane after create, got %q", next.Pane)
	}
	if next.Input != InputNone {
		t.Fatal("expected input closed after commit")
	}
	if saver.saves != 2 {
		t.Fatalf("expected 2 saves (create + select), got %d", saver.saves)
	}
}

func TestNewListInputEscapeCancels(t *testing.T) {
	m, saver := newTestModel(t)

	updated, _ := m.Update(keyRunes("N"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("half typed"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)

	if next.Input != InputNone {
		t.Fatal("expected input closed after escape")
	}
	if len(next.Session.Document().Lists) != 0 {
		t.Fatal("expected no list created on cancel")
	}
	if saver.saves != 0 {
		t.Fatalf("expected no saves on cancel, got %d", saver.saves)
	}
}

func TestItemsPaneToggleAndDelete(t *testing.T) {
	m, saver := newTestModel(t)
	m = seedGroceries(t, m)
	before := saver.saves

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next := updated.(Model)
	active, _ := next.Session.Document().ActiveList()
	if !active.Items[0].Completed || active.Items[0].CompletedAt == nil {
		t.Fatalf("expected first item completed, got: %+v", active.Items[0])
	}
	if saver.saves != before+1 {
		t.Fatalf("expected one save for toggle, got %d", saver.saves-before)
	}

	updated, _ = next.Update(keyRunes("d"))
	next = updated.(Model)
	active, _ = next.Session.Document().ActiveList()
	if len(active.Items) != 1 || active.Items[0].Text != "eggs" {
		t.Fatalf("expected only eggs left, got: %+v", active.Items)
	}
	if next.ItemCursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", next.ItemCursor)
	}
}

func TestItemsPaneWithoutActiveListFallsBack(t *testing.T) {
	m, _ := newTestModel(t)
	m.Pane = PaneItems

	updated, _ := m.Update(keyRunes("j"))
	next := updated.(Model)
	if next.Pane != PaneSidebar {
		t.Fatalf("expected fall back to sidebar, got %q", next.Pane)
	}
	if !next.Status.IsError {
		t.Fatalf("expected error status, got: %+v", next.Status)
	}
}

func TestSidebarDeleteReassignsActive(t *testing.T) {
	m, _ := newTestModel(t)
	firstID, err := m.Session.CreateList("First")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if _, err := m.Session.CreateList("Second"); err != nil {
		t.Fatalf("create list: %v", err)
	}
	if err := m.Session.SetActiveList(firstID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	m.syncSidebarCursor()

	updated, _ := m.Update(keyRunes("D"))
	next := updated.(Model)
	doc := next.Session.Document()
	if len(doc.Lists) != 1 || doc.Lists[0].Name != "Second" {
		t.Fatalf("expected only Second left, got: %+v", doc.Lists)
	}
	if doc.ActiveListID != doc.Lists[0].ID {
		t.Fatal("expected active list reassigned to survivor")
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m, _ := newTestModel(t)
	m = seedGroceries(t, m)

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add bread"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	active, _ := next.Session.Document().ActiveList()
	if len(active.Items) != 3 || active.Items[2].Text != "bread" {
		t.Fatalf("expected bread appended, got: %+v", active.Items)
	}
	if next.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status for unknown command, got: %+v", next.Status)
	}
	if next.Palette.Active {
		t.Fatal("expected palette closed after error")
	}
}

func TestPaletteCheckByNumber(t *testing.T) {
	m, _ := newTestModel(t)
	m = seedGroceries(t, m)

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("check 2"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	active, _ := next.Session.Document().ActiveList()
	if active.Items[0].Completed || !active.Items[1].Completed {
		t.Fatalf("expected only second item checked, got: %+v", active.Items)
	}
}

func TestSaveFailureWarnsButKeepsEdit(t *testing.T) {
	m, saver := newTestModel(t)
	m = seedGroceries(t, m)
	saver.err = errors.New("disk full")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next := updated.(Model)

	active, _ := next.Session.Document().ActiveList()
	if !active.Items[0].Completed {
		t.Fatal("expected edit kept in memory despite save failure")
	}
	if !next.Status.IsError || !strings.HasPrefix(next.Status.Text, "warning: ") {
		t.Fatalf("expected warning status, got: %+v", next.Status)
	}
	if !errors.Is(next.LastError, session.ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got: %v", next.LastError)
	}
}

func TestExportKeyWritesFile(t *testing.T) {
	m, _ := newTestModel(t)
	m = seedGroceries(t, m)

	updated, _ := m.Update(keyRunes("e"))
	next := updated.(Model)
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	data, err := os.ReadFile(m.ExportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "GROCERIES") {
		t.Fatalf("expected list heading in export, got: %q", string(data))
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(keyRunes("?"))
	next := updated.(Model)
	if !next.HelpVisible {
		t.Fatal("expected help visible")
	}
	out := next.View()
	if !strings.Contains(out, "move cursor") {
		t.Fatalf("expected help content in view, got: %q", out)
	}

	updated, _ = next.Update(keyRunes("?"))
	next = updated.(Model)
	if next.HelpVisible {
		t.Fatal("expected help hidden again")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m, _ := newTestModel(t)
	m = seedGroceries(t, m)
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "Groceries") {
		t.Fatalf("expected active list name in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "milk") {
		t.Fatalf("expected item text in output: %q", out)
	}
}
