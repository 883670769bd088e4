package update

import (
	"github.com/sandeepkv93/listd/internal/views"
)

func (m Model) renderSidebar() string {
	doc := m.Session.Document()
	lists := make([]views.SidebarListData, 0, len(doc.Lists))
	for _, list := range doc.Lists {
		completed, total := list.Progress()
		lists = append(lists, views.SidebarListData{
			ID:        list.ID,
			Name:      list.Name,
			Completed: completed,
			Total:     total,
		})
	}
	cursorID := ""
	if list, ok := m.cursorList(); ok {
		cursorID = list.ID
	}
	done, total := doc.Totals()
	return views.RenderSidebar(views.SidebarData{
		Lists:      lists,
		ActiveID:   doc.ActiveListID,
		CursorID:   cursorID,
		Focused:    m.Pane == PaneSidebar,
		TotalLists: len(doc.Lists),
		TotalTasks: total,
		TotalDone:  done,
	})
}

func (m Model) renderItemsPanel() string {
	active, ok := m.Session.Document().ActiveList()
	if !ok {
		return views.RenderItemsPanel(views.ItemsPanelData{})
	}

	items := make([]views.ItemData, 0, len(active.Items))
	for _, item := range active.Items {
		label := "added " + item.CreatedAt.Format("2006-01-02")
		if item.Completed && item.CompletedAt != nil {
			label = "done " + item.CompletedAt.Format("2006-01-02 15:04")
		}
		items = append(items, views.ItemData{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
			DateLabel: label,
		})
	}

	completed, total := active.Progress()
	return views.RenderItemsPanel(views.ItemsPanelData{
		ListName:     active.Name,
		CreatedOn:    active.CreatedAt.Format("2006-01-02"),
		Completed:    completed,
		Total:        total,
		ProgressView: m.listProgress.ViewAs(active.CompletionRatio()),
		Items:        items,
		Cursor:       m.ItemCursor,
		Focused:      m.Pane == PaneItems,
	})
}

func inputPrompt(mode InputMode) string {
	switch mode {
	case InputNewList:
		return "new list name:"
	case InputRenameList:
		return "rename list:"
	case InputNewItem:
		return "new task:"
	case InputRenameItem:
		return "rename task:"
	default:
		return ""
	}
}
