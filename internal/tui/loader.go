package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobhunter/internal/model"
)

// ErrCancelled is returned by RunLoader when the user presses ctrl+c.
var ErrCancelled = errors.New("cancelled")

// SearchFunc runs one fan-out search.
type SearchFunc func(ctx context.Context) (*model.SearchResult, error)

type searchDoneMsg struct {
	result *model.SearchResult
	err    error
}

type loaderModel struct {
	label   string
	search  SearchFunc
	ctx     context.Context
	cancel  context.CancelFunc
	spinner spinner.Model
	result  *model.SearchResult
	err     error
	done    bool
}

func newLoaderModel(ctx context.Context, label string, search SearchFunc) loaderModel {
	ctx, cancel := context.WithCancel(ctx)
	return loaderModel{
		label:  label,
		search: search,
		ctx:    ctx,
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(accent)),
		),
	}
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(m.doSearch(), m.spinner.Tick)
}

func (m loaderModel) doSearch() tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		res, err := search(ctx)
		return searchDoneMsg{result: res, err: err}
	}
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		m.cancel()
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Searching %s...\n", m.spinner.View(), m.label)
}

// RunLoader shows a spinner while search runs. It renders inline (no alt
// screen) and cancels the search on ctrl+c.
func RunLoader(ctx context.Context, label string, search SearchFunc) (*model.SearchResult, error) {
	m := newLoaderModel(ctx, label, search)
	defer m.cancel()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	lm := final.(loaderModel)
	return lm.result, lm.err
}
