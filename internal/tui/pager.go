package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pagerBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)

// pagerModel scrolls pre-rendered content inside a bordered viewport.
type pagerModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// border (2) + status bar (1)
		w, h := msg.Width-2, msg.Height-3
		if !m.ready {
			m.viewport = viewport.New(w, h)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = w
			m.viewport.Height = h
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	status := statusBarStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓/pgup/pgdn scroll  q quit", m.viewport.ScrollPercent()*100))
	return pagerBorderStyle.Render(m.viewport.View()) + "\n" + status
}

// RunPager shows content full-screen until the user quits.
func RunPager(content string) error {
	p := tea.NewProgram(pagerModel{content: content}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
