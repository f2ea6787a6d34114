package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const barWidth = 30

type pipelineModel struct {
	spinner spinner.Model
	stages  []stageResult
	done    bool
	err     error

	level, unroll int
	target        string
}

type pipelineDoneMsg struct {
	stages []stageResult
	binLen int
	err    error
}

func newPipelineModel(level, unroll int, target string) *pipelineModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = stageStyle
	return &pipelineModel{spinner: s, level: level, unroll: unroll, target: target}
}

func (m *pipelineModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runPipeline)
}

func (m *pipelineModel) runPipeline() tea.Msg {
	stages, bin, err := runPipeline(m.level, m.unroll, m.target)
	return pipelineDoneMsg{stages: stages, binLen: len(bin), err: err}
}

func (m *pipelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "enter":
			if m.done {
				return m, tea.Quit
			}
		}

	case pipelineDoneMsg:
		m.done = true
		m.err = msg.err
		m.stages = msg.stages
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *pipelineModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("forgec pipeline"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	if !m.done {
		b.WriteString(m.spinner.View())
		b.WriteString(" running build -> optimize -> vectorize -> emit -> probe\n")
		return b.String()
	}

	maxSize := 1
	for _, s := range m.stages {
		if s.size > maxSize {
			maxSize = s.size
		}
	}

	for _, s := range m.stages {
		b.WriteString(fmt.Sprintf("%-10s %s\n", s.name, renderBar(s.size, maxSize)))
		b.WriteString("  ")
		b.WriteString(noteStyle.Render(s.note))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter/q quit"))
	return b.String()
}

// renderBar draws a proportional bar for one stage's size against the
// largest size seen across all stages.
func renderBar(size, maxSize int) string {
	if maxSize == 0 {
		maxSize = 1
	}
	filled := size * barWidth / maxSize
	if filled > barWidth {
		filled = barWidth
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
}

func runInteractive(level, unroll int, target string) error {
	p := tea.NewProgram(newPipelineModel(level, unroll, target), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
