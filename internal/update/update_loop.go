package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/session"
	"github.com/sandeepkv93/listd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Input != InputNone {
			return m.handleInputKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case "tab":
			if m.Pane == PaneSidebar {
				m.Pane = PaneItems
			} else {
				m.Pane = PaneSidebar
			}
			return m, nil
		case m.Keys.NewList:
			m.beginInput(InputNewList, "", "name for the new list")
			return m, nil
		case m.Keys.Export:
			m = m.runExport(m.ExportPath)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Pane == PaneSidebar {
			return m.handleSidebarKey(typed), nil
		}
		return m.handleItemsKey(typed), nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.LastError = typed.Err
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	doc := m.Session.Document()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	overlay := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	if m.Input != InputNone {
		overlay = inputPrompt(m.Input) + "\n" + m.textInput.View()
	}
	if m.HelpVisible {
		overlay = m.renderHelpView()
	}

	activeName := "(none)"
	if active, ok := doc.ActiveList(); ok {
		activeName = active.Name
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("listd | list: %s | %d lists", activeName, len(doc.Lists)),
		LeftPane:   m.renderSidebar(),
		RightPane:  m.renderItemsPanel(),
		StatusLine: status,
		Overlay:    overlay,
		Footer:     fmt.Sprintf("keys: tab pane | %s new list | %s export | / cmd | %s help | %s quit", m.Keys.NewList, m.Keys.Export, m.Keys.Help, m.Keys.Quit),
	})
}

// reportError routes operation failures into the status bar. A failed save
// is a warning rather than a rejection: the edit is applied in memory but
// not durable yet.
func (m *Model) reportError(err error) {
	m.LastError = err
	text := err.Error()
	if errors.Is(err, session.ErrNotSaved) {
		text = "warning: " + text
	}
	m.Status = StatusBar{Text: text, IsError: true}
}

func (m Model) runExport(path string) Model {
	if path == "" {
		path = m.ExportPath
	}
	if err := m.Exporter.WriteFile(m.Session.Document(), path); err != nil {
		m.reportError(err)
		return m
	}
	m.Status = StatusBar{Text: "exported to " + path, IsError: false}
	return m
}
