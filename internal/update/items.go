package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/model"
)

func (m Model) handleItemsKey(msg tea.KeyMsg) Model {
	active, ok := m.Session.Document().ActiveList()
	if !ok {
		m.Status = StatusBar{Text: "select a list first", IsError: true}
		m.Pane = PaneSidebar
		return m
	}

	switch msg.String() {
	case "up", "k":
		if m.ItemCursor > 0 {
			m.ItemCursor--
		}
	case "down", "j":
		if m.ItemCursor < len(active.Items)-1 {
			m.ItemCursor++
		}
	case "a", "enter":
		m.beginInput(InputNewItem, "", "new task for "+active.Name)
	case " ", "x":
		item, ok := m.cursorItem(active)
		if !ok {
			return m
		}
		if err := m.Session.ToggleItem(active.ID, item.ID); err != nil {
			m.reportError(err)
			return m
		}
		if item.Completed {
			m.Status = StatusBar{Text: "checked off " + item.Text, IsError: false}
		} else {
			m.Status = StatusBar{Text: "unchecked " + item.Text, IsError: false}
		}
	case "r":
		item, ok := m.cursorItem(active)
		if !ok {
			m.Status = StatusBar{Text: "no task to rename", IsError: true}
			return m
		}
		m.beginInput(InputRenameItem, item.Text, "new text for the task")
	case "d":
		item, ok := m.cursorItem(active)
		if !ok {
			m.Status = StatusBar{Text: "no task to delete", IsError: true}
			return m
		}
		text := item.Text
		if err := m.Session.DeleteItem(active.ID, item.ID); err != nil {
			m.reportError(err)
			return m
		}
		if m.ItemCursor >= len(active.Items) {
			m.ItemCursor = max(0, len(active.Items)-1)
		}
		m.Status = StatusBar{Text: "deleted " + text, IsError: false}
	}
	return m
}

func (m Model) cursorItem(list *model.TaskList) (*model.Item, bool) {
	if len(list.Items) == 0 || m.ItemCursor < 0 || m.ItemCursor >= len(list.Items) {
		return nil, false
	}
	return &list.Items[m.ItemCursor], true
}
