package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/graphnode"
	"github.com/go-drift/nodegraph/pkg/scene"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play <scene>",
		Short: "Drive a graph node interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, surface, err := loadNode(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			n.RequestFocus()
			p := tea.NewProgram(newPlayModel(n, surface),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

// playKeyMap binds terminal keys to node actions.
type playKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Accept      key.Binding
	Cancel      key.Binding
	Delete      key.Binding
	FollowLeft  key.Binding
	FollowRight key.Binding
	Refocus     key.Binding
	Quit        key.Binding
}

func newPlayKeyMap() playKeyMap {
	return playKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "slot up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "slot down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "connect input")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "connect output")),
		Accept:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "accept")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:      key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "delete")),
		FollowLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "follow input")),
		FollowRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "follow output")),
		Refocus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "refocus")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Accept, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Accept},
		{k.Left, k.Right, k.Cancel, k.Delete},
		{k.FollowLeft, k.FollowRight, k.Refocus, k.Quit},
	}
}

// actions pairs each node binding with its action in match order.
func (k playKeyMap) actions() []struct {
	binding key.Binding
	action  focus.Action
} {
	return []struct {
		binding key.Binding
		action  focus.Action
	}{
		{k.Up, focus.ActionUp},
		{k.Down, focus.ActionDown},
		{k.Left, focus.ActionLeft},
		{k.Right, focus.ActionRight},
		{k.Accept, focus.ActionAccept},
		{k.Cancel, focus.ActionCancel},
		{k.Delete, focus.ActionGraphDelete},
		{k.FollowLeft, focus.ActionGraphFollowLeft},
		{k.FollowRight, focus.ActionGraphFollowRight},
	}
}

// playModel is the bubbletea model of the play command.
type playModel struct {
	node    *graphnode.GraphNode
	surface *scene.Surface
	keys    playKeyMap
	help    help.Model
	last    string
}

func newPlayModel(n *graphnode.GraphNode, s *scene.Surface) playModel {
	return playModel{node: n, surface: s, keys: newPlayKeyMap(), help: help.New()}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refocus):
			m.node.RequestFocus()
			m.last = "focus node"
			return m, nil
		}
		for _, a := range m.keys.actions() {
			if !key.Matches(msg, a.binding) {
				continue
			}
			result := "ignored"
			if m.node.HandleKeyEvent(focus.Press(a.action)) == focus.KeyEventHandled {
				result = "handled"
			}
			m.last = fmt.Sprintf("%s: %s", a.action, result)
			break
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%s (%s)", m.node.Name, m.node.Title())))
	b.WriteString("\n\n")
	b.WriteString(layoutTable(m.node))
	b.WriteString("\n")
	b.WriteString(m.node.DescribeSemantics().Label)
	b.WriteString("\n")
	if focused := m.surface.Focused(); focused != "" {
		b.WriteString(styleDim.Render("focus: " + focused))
		b.WriteString("\n")
	}
	if m.last != "" {
		b.WriteString(styleDim.Render(m.last))
		b.WriteString("\n")
	}
	if n := len(m.surface.Log); n > 0 {
		b.WriteString(styleDim.Render("surface: " + m.surface.Log[n-1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
