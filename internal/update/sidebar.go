package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/model"
)

func (m Model) handleSidebarKey(msg tea.KeyMsg) Model {
	doc := m.Session.Document()
	switch msg.String() {
	case "up", "k":
		if m.SidebarCursor > 0 {
			m.SidebarCursor--
		}
	case "down", "j":
		if m.SidebarCursor < len(doc.Lists)-1 {
			m.SidebarCursor++
		}
	case "enter":
		list, ok := m.cursorList()
		if !ok {
			return m
		}
		if err := m.Session.SetActiveList(list.ID); err != nil {
			m.reportError(err)
			return m
		}
		m.Pane = PaneItems
		m.ItemCursor = 0
		m.Status = StatusBar{Text: "selected " + list.Name, IsError: false}
	case "R":
		list, ok := m.cursorList()
		if !ok {
			m.Status = StatusBar{Text: "no list to rename", IsError: true}
			return m
		}
		m.beginInput(InputRenameList, list.Name, "new name for "+list.Name)
	case "D":
		list, ok := m.cursorList()
		if !ok {
			m.Status = StatusBar{Text: "no list to delete", IsError: true}
			return m
		}
		name := list.Name
		if err := m.Session.DeleteList(list.ID); err != nil {
			m.reportError(err)
			return m
		}
		m.syncSidebarCursor()
		m.Status = StatusBar{Text: "deleted " + name, IsError: false}
	}
	return m
}

// cursorList is the list under the sidebar cursor, not necessarily the
// active one.
func (m Model) cursorList() (*model.TaskList, bool) {
	doc := m.Session.Document()
	if len(doc.Lists) == 0 || m.SidebarCursor < 0 || m.SidebarCursor >= len(doc.Lists) {
		return nil, false
	}
	return &doc.Lists[m.SidebarCursor], true
}
