package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(errorColor)).Bold(true)
	routeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(routeColor))
	statusStyle = lipgloss.NewStyle().Reverse(true)
)

// previewModel shows one rendered scene. It has no editing state: the only
// input it reacts to is quitting and terminal resizes.
type previewModel struct {
	width  int
	height int
	lines  []string
	result Result
	source string
}

func newPreviewModel(canvas *Canvas, result Result, source string) (previewModel, error) {
	lines, err := canvas.Render()
	if err != nil {
		return previewModel{}, err
	}
	if result.Err != nil {
		// The status line carries the error.
		lines = lines[1:]
	}
	return previewModel{
		lines:  trimLines(lines),
		result: result,
		source: source,
	}, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	renderHeight := m.height - 1 // status line
	if renderHeight < 1 {
		renderHeight = len(m.lines)
	}

	var sb strings.Builder
	for i, line := range m.lines {
		if i >= renderHeight {
			break
		}
		if m.width > 0 {
			line = truncateRunes(line, m.width)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m previewModel) statusLine() string {
	if m.result.Err != nil {
		return errorStyle.Render(m.result.Err.Error())
	}
	status := fmt.Sprintf(" %s | %d points | q to quit ", m.source, len(m.result.Route))
	return statusStyle.Render(status)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// styleRender colours the error line red and route glyphs blue for terminal
// output.
func styleRender(lines []string, result Result) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 && result.Err != nil {
			out[i] = errorStyle.Render(line)
			continue
		}
		var sb strings.Builder
		for _, r := range line {
			if strings.ContainsRune("─│┌┐└┘┼", r) {
				sb.WriteString(routeStyle.Render(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}
		out[i] = sb.String()
	}
	return out
}

func runPreview(canvas *Canvas, result Result, source string) error {
	m, err := newPreviewModel(canvas, result, source)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
