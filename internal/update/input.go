package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) beginInput(mode InputMode, initial, placeholder string) {
	m.Input = mode
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(initial)
	m.textInput.CursorEnd()
	m.textInput.Focus()
}

func (m *Model) endInput() {
	m.Input = InputNone
	m.textInput.SetValue("")
	m.textInput.Blur()
}

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.endInput()
		m.Status = StatusBar{Text: "cancelled", IsError: false}
		return m
	case "enter":
		return m.commitInput()
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) commitInput() Model {
	value := m.textInput.Value()

	switch m.Input {
	case InputNewList:
		id, err := m.Session.CreateList(value)
		if id != "" {
			if selErr := m.Session.SetActiveList(id); selErr != nil && err == nil {
				err = selErr
			}
			m.syncSidebarCursor()
			m.Pane = PaneItems
		}
		if err != nil {
			m.reportError(err)
		} else {
			m.Status = StatusBar{Text: "created list", IsError: false}
		}
	case InputRenameList:
		list, ok := m.cursorList()
		if !ok {
			m.Status = StatusBar{Text: "no list to rename", IsError: true}
			break
		}
		if err := m.Session.RenameList(list.ID, value); err != nil {
			m.reportError(err)
		} else {
			m.Status = StatusBar{Text: "renamed list", IsError: false}
		}
	case InputNewItem:
		active, ok := m.Session.Document().ActiveList()
		if !ok {
			m.Status = StatusBar{Text: "select a list first", IsError: true}
			break
		}
		if _, err := m.Session.AddItem(active.ID, value); err != nil {
			m.reportError(err)
		} else {
			m.ItemCursor = len(active.Items) - 1
			m.Status = StatusBar{Text: "added task", IsError: false}
		}
	case InputRenameItem:
		active, ok := m.Session.Document().ActiveList()
		if !ok {
			m.Status = StatusBar{Text: "select a list first", IsError: true}
			break
		}
		item, itemOK := m.cursorItem(active)
		if !itemOK {
			m.Status = StatusBar{Text: "no task to rename", IsError: true}
			break
		}
		if err := m.Session.RenameItem(active.ID, item.ID, value); err != nil {
			m.reportError(err)
		} else {
			m.Status = StatusBar{Text: "renamed task", IsError: false}
		}
	}

	m.endInput()
	return m
}
