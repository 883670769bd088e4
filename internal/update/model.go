package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/listd/internal/config"
	"github.com/sandeepkv93/listd/internal/export"
	"github.com/sandeepkv93/listd/internal/session"
)

// Pane identifies which side of the screen has keyboard focus.
type Pane string

const (
	PaneSidebar Pane = "sidebar"
	PaneItems   Pane = "items"
)

// InputMode says what the text input is currently capturing.
type InputMode string

const (
	InputNone       InputMode = ""
	InputNewList    InputMode = "new_list"
	InputRenameList InputMode = "rename_list"
	InputNewItem    InputMode = "new_item"
	InputRenameItem InputMode = "rename_item"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	NewList string
	Export  string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Session    *session.Session
	Exporter   export.Writer
	ExportPath string

	Pane          Pane
	SidebarCursor int
	ItemCursor    int
	Input         InputMode
	Palette       CommandPaletteState
	HelpVisible   bool
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	textInput    textinput.Model
	commandInput textinput.Model
	listProgress progress.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(sess *session.Session, cfg config.Config) Model {
	m := Model{
		Session:    sess,
		Exporter:   export.Writer{},
		ExportPath: cfg.ExportFile,
		Pane:       PaneSidebar,
		Keys: GlobalKeyMap{
			NewList: "N",
			Export:  "e",
			Help:    "?",
			Quit:    "q",
		},
	}

	m.textInput = textinput.New()
	m.textInput.Placeholder = "type here"
	m.textInput.CharLimit = 200
	m.textInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add buy milk"
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 200
	m.commandInput.Width = 48

	m.listProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
	m.helpModel = help.New()

	m.syncSidebarCursor()
	return m
}

// syncSidebarCursor keeps both cursors inside the current document bounds,
// pointing the sidebar at the active list when there is one.
func (m *Model) syncSidebarCursor() {
	doc := m.Session.Document()
	if len(doc.Lists) == 0 {
		m.SidebarCursor = 0
		m.ItemCursor = 0
		return
	}
	if doc.ActiveListID != "" {
		for i := range doc.Lists {
			if doc.Lists[i].ID == doc.ActiveListID {
				m.SidebarCursor = i
				break
			}
		}
	}
	if m.SidebarCursor >= len(doc.Lists) {
		m.SidebarCursor = len(doc.Lists) - 1
	}
	if active, ok := doc.ActiveList(); ok {
		if m.ItemCursor >= len(active.Items) {
			m.ItemCursor = max(0, len(active.Items)-1)
		}
	} else {
		m.ItemCursor = 0
	}
}
