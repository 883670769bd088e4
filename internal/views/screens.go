package views

import (
	"fmt"
	"strings"
)

type SidebarListData struct {
	ID        string
	Name      string
	Completed int
	Total     int
}

type SidebarData struct {
	Lists      []SidebarListData
	ActiveID   string
	CursorID   string
	Focused    bool
	TotalLists int
	TotalTasks int
	TotalDone  int
}

type ItemData struct {
	ID        string
	Text      string
	Completed bool
	DateLabel string
}

type ItemsPanelData struct {
	ListName     string
	CreatedOn    string
	Completed    int
	Total        int
	ProgressView string
	Items        []ItemData
	Cursor       int
	Focused      bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	b.WriteString("lists:\n")
	if len(data.Lists) == 0 {
		b.WriteString("  (no lists yet, press N)\n")
	}
	for _, list := range data.Lists {
		cursor := " "
		if data.Focused && list.ID == data.CursorID {
			cursor = ">"
		}
		marker := " "
		if list.ID == data.ActiveID {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %s (%d/%d)\n", cursor, marker, list.Name, list.Completed, list.Total))
	}
	b.WriteString("\noverview:\n")
	b.WriteString(fmt.Sprintf("lists: %d\n", data.TotalLists))
	b.WriteString(fmt.Sprintf("tasks: %d\n", data.TotalTasks))
	b.WriteString(fmt.Sprintf("done:  %d\n", data.TotalDone))
	return strings.TrimSpace(b.String())
}

func RenderItemsPanel(data ItemsPanelData) string {
	if data.ListName == "" {
		return "no list selected\n\nselect a list in the sidebar or press N to create one"
	}

	var b strings.Builder
	b.WriteString(data.ListName + "\n")
	if data.CreatedOn != "" {
		b.WriteString("created: " + data.CreatedOn + "\n")
	}
	b.WriteString(fmt.Sprintf("progress: %d/%d %s\n\n", data.Completed, data.Total, data.ProgressView))

	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet, press a to add one)\n")
	}
	for i, item := range data.Items {
		cursor := " "
		if data.Focused && i == data.Cursor {
			cursor = ">"
		}
		mark := "[ ]"
		text := item.Text
		if item.Completed {
			mark = "[x]"
			text = CheckedText(text)
		}
		b.WriteString(fmt.Sprintf("%s %d. %s %s", cursor, i+1, mark, text))
		if item.DateLabel != "" {
			b.WriteString("  " + item.DateLabel)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
