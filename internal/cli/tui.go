package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dashu-baba/architect-layout-solver/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExampleListModel - Interactive example selection
// =============================================================================

// ExampleListModel is the bubbletea model for interactive example selection.
type ExampleListModel struct {
	Examples []plan.Example
	Cursor   int
	Selected *plan.Example
}

// NewExampleListModel creates a new example list model.
func NewExampleListModel(examples []plan.Example) ExampleListModel {
	return ExampleListModel{Examples: examples}
}

func (m ExampleListModel) Init() tea.Cmd {
	return nil
}

func (m ExampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Examples)-1 {
				m.Cursor++
			}
		case "enter":
			selected := m.Examples[m.Cursor]
			m.Selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExampleListModel) View() string {
	s := StyleTitle.Render("Pick an example plan") + "\n\n"

	for i, ex := range m.Examples {
		line := fmt.Sprintf("%s  %s", ex.Name,
			listDimStyle.Render(fmt.Sprintf("%d rooms · %.0f×%.0f m · %s",
				len(ex.Plan.Rooms), ex.Plan.Boundary.Width, ex.Plan.Boundary.Height, ex.Description)))

		if i == m.Cursor {
			s += listSelectedStyle.Render("› "+line) + "\n"
		} else {
			s += listNormalStyle.Render("  "+line) + "\n"
		}
	}

	s += "\n" + listDimStyle.Render("↑/↓ move · enter select · q quit") + "\n"
	return s
}

// runExamplePicker opens the interactive selector and exports the chosen
// example.
func runExamplePicker() error {
	model := NewExampleListModel(plan.Examples())

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(ExampleListModel)
	if !ok || result.Selected == nil {
		printInfo("No example selected")
		return nil
	}

	return writeExample(result.Selected.Name)
}
