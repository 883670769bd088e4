package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/listd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			active, ok := m.Session.Document().ActiveList()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active list; use or create one first"}
			}
			if _, err := m.Session.AddItem(active.ID, a.Text); err != nil {
				return commands.Result{}, err
			}
			m.ItemCursor = len(active.Items) - 1
			return commands.Result{Message: fmt.Sprintf("added to %s: %s", active.Name, a.Text)}, nil
		},
		List: func(l commands.ListArgs) (commands.Result, error) {
			id, err := m.Session.CreateList(l.Name)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.Session.SetActiveList(id); err != nil {
				return commands.Result{}, err
			}
			m.syncSidebarCursor()
			return commands.Result{Message: "created list: " + l.Name}, nil
		},
		Check: func(c commands.CheckArgs) (commands.Result, error) {
			active, ok := m.Session.Document().ActiveList()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active list"}
			}
			if c.Index > len(active.Items) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task number %d", c.Index)}
			}
			item := active.Items[c.Index-1]
			if err := m.Session.ToggleItem(active.ID, item.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "toggled: " + item.Text}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			active, ok := m.Session.Document().ActiveList()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no active list"}
			}
			if d.List {
				name := active.Name
				if err := m.Session.DeleteList(active.ID); err != nil {
					return commands.Result{}, err
				}
				m.syncSidebarCursor()
				return commands.Result{Message: "deleted list: " + name}, nil
			}
			if d.Index > len(active.Items) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task number %d", d.Index)}
			}
			item := active.Items[d.Index-1]
			if err := m.Session.DeleteItem(active.ID, item.ID); err != nil {
				return commands.Result{}, err
			}
			m.syncSidebarCursor()
			return commands.Result{Message: "deleted: " + item.Text}, nil
		},
		Use: func(u commands.UseArgs) (commands.Result, error) {
			doc := m.Session.Document()
			for i := range doc.Lists {
				if strings.EqualFold(doc.Lists[i].Name, u.Name) {
					if err := m.Session.SetActiveList(doc.Lists[i].ID); err != nil {
						return commands.Result{}, err
					}
					m.syncSidebarCursor()
					return commands.Result{Message: "using list: " + doc.Lists[i].Name}, nil
				}
			}
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no list named " + u.Name}
		},
		Export: func(e commands.ExportArgs) (commands.Result, error) {
			path := e.Path
			if path == "" {
				path = m.ExportPath
			}
			if err := m.Exporter.WriteFile(m.Session.Document(), path); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "exported to " + path}, nil
		},
	})
	if err != nil {
		m.reportError(err)
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
