package preview

import (
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"examgen/internal/exam"
)

// Options configures the preview.
type Options struct {
	ShowKey bool
	NoColor bool
}

// Model pages through a built exam, one question per page.
type Model struct {
	exam      exam.Model
	paginator paginator.Model
	opts      Options
}

// NewModel constructs the pager for a built exam model.
func NewModel(examModel exam.Model, opts Options) Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(max(len(examModel.Questions), 1))
	return Model{
		exam:      examModel,
		paginator: p,
		opts:      opts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles paging keys and quit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.paginator, cmd = m.paginator.Update(msg)
	return m, cmd
}

// View renders the current question page.
func (m Model) View() string {
	if len(m.exam.Questions) == 0 {
		return "No questions.\n"
	}
	page := m.paginator.Page
	body := renderQuestion(m.exam.Questions[page], page+1, len(m.exam.Questions), m.opts)
	return body + "\n" + m.paginator.View() + "\n" + renderHelp(m.opts.NoColor) + "\n"
}
