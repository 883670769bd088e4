package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/listd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const helpIntro = `# listd

Named checklists. The sidebar holds your lists, the right panel the
tasks of the active list. Slash opens a command palette with
` + "`add`, `list`, `check`, `delete`, `use` and `export`." + `
`

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	plain := []string{views.RenderMarkdown(helpIntro)}
	for _, kb := range m.paneBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Action: "switch pane"},
		{Key: m.Keys.NewList, Action: "create a new list"},
		{Key: m.Keys.Export, Action: "export a plain-text report"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) paneBindings() []KeyBinding {
	switch m.Pane {
	case PaneSidebar:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "select list"},
			{Key: "R", Action: "rename list"},
			{Key: "D", Action: "delete list"},
		}
	case PaneItems:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "a/enter", Action: "add a task"},
			{Key: "space/x", Action: "check/uncheck task"},
			{Key: "r", Action: "rename task"},
			{Key: "d", Action: "delete task"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.paneBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.paneBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
