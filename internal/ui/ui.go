// Package ui is the terminal presentation layer: a viewport showing the
// rendered snapshot with a copy-to-clipboard action.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"speccle/internal/clipboard"
	"speccle/internal/collector"
	"speccle/internal/logger"
	"speccle/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type specsMsg string

type statusClearMsg struct{}

type Model struct {
	collector *collector.Collector
	log       logger.Logger

	viewport viewport.Model
	content  string
	status   string
	statusOK bool
	ready    bool
}

func New(col *collector.Collector, log logger.Logger) Model {
	return Model{collector: col, log: log}
}

func (m Model) Init() tea.Cmd {
	return m.collect
}

// collect runs off the update loop, so the placeholder stays responsive
// while sources are probed.
func (m Model) collect() tea.Msg {
	snap := m.collector.Collect(context.Background())
	return specsMsg(render.Text(snap))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.body())
		return m, nil

	case specsMsg:
		m.content = string(msg)
		if m.ready {
			m.viewport.SetContent(m.content)
		}
		return m, nil

	case statusClearMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "c":
			if m.content == "" {
				return m, nil
			}
			if err := clipboard.Write(m.content); err != nil {
				m.log.Warn("clipboard write failed", "error", err)
				m.status = "Copy failed"
				m.statusOK = false
			} else {
				m.status = "Copied!"
				m.statusOK = true
			}
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
				return statusClearMsg{}
			})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) body() string {
	if m.content == "" {
		return "Detecting system specifications..."
	}
	return m.content
}

func (m Model) View() string {
	if !m.ready {
		return "Detecting system specifications..."
	}

	header := titleStyle.Render("Speccle - System Specs") + "\n"

	status := ""
	if m.status != "" {
		if m.statusOK {
			status = "  " + statusStyle.Render(m.status)
		} else {
			status = "  " + errorStyle.Render(m.status)
		}
	}
	footer := "\n" + helpStyle.Render("c: copy to clipboard | q: quit") + status

	return header + m.viewport.View() + footer
}
