package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/skalyan/odekit/internal/ode"
)

const (
	graphWidth  = 80
	graphHeight = 12
)

type TickMsg time.Time

// Model replays a completed adaptive solve sample by sample, showing
// the trajectory, the step-size history and the controller counters.
type Model struct {
	result    *ode.Result
	modelName string
	horizon   float64
	tolerance float64

	playHead int
	running  bool
	fps      int
	showHelp bool
}

func NewModel(result *ode.Result, modelName string, horizon, tolerance float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		result:    result,
		modelName: modelName,
		horizon:   horizon,
		tolerance: tolerance,
		playHead:  1,
		running:   true,
		fps:       fps,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.playHead = 1
			m.running = true
		case "left", "h":
			m.running = false
			if m.playHead > 1 {
				m.playHead--
			}
		case "right", "l":
			m.running = false
			if m.playHead < m.result.Samples() {
				m.playHead++
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.playHead < m.result.Samples() {
			m.playHead++
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("odekit live — %s (heun-euler adaptive)", m.modelName)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	values := m.result.Component(0)[:m.playHead]
	if len(values) >= 2 {
		graph := asciigraph.Plot(values,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("y0 vs accepted step"),
		)
		b.WriteString(graphStyle.Render(graph))
	} else {
		b.WriteString(graphStyle.Render("(waiting for samples)"))
	}
	b.WriteString("\n\n")

	if len(m.result.Steps) > 1 {
		spark := Sparkline(m.result.Steps[1:m.playHead], graphWidth)
		b.WriteString(labelStyle.Render("step sizes"))
		b.WriteString(" ")
		b.WriteString(spark)
		b.WriteString("\n")
	}

	t := m.result.Times[m.playHead-1]
	b.WriteString(m.statsPanel(t))

	if m.playHead >= m.result.Samples() {
		b.WriteString("\n" + doneStyle.Render("solve complete — final time lands on the horizon"))
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render("\nspace pause/resume · ←/→ scrub · r restart · q quit"))
	} else {
		b.WriteString(helpStyle.Render("\npress ? for keys"))
	}

	return b.String()
}

func (m Model) statsPanel(t float64) string {
	var b strings.Builder

	progress := 0.0
	if m.horizon > 0 {
		progress = t / m.horizon
	}

	rows := []struct{ label, value string }{
		{"time", fmt.Sprintf("%.6f / %.4f", t, m.horizon)},
		{"progress", ProgressBar(progress, 30)},
		{"samples", fmt.Sprintf("%d / %d", m.playHead, m.result.Samples())},
		{"accepted", fmt.Sprintf("%d", m.result.Stats.Accepted)},
		{"rejected", fmt.Sprintf("%d", m.result.Stats.Rejected)},
		{"rhs evals", fmt.Sprintf("%d", m.result.Stats.Evals)},
		{"tolerance", fmt.Sprintf("%.2e", m.tolerance)},
	}
	if m.playHead-1 < len(m.result.Steps) {
		rows = append(rows, struct{ label, value string }{"step size", fmt.Sprintf("%.6f", m.result.Steps[m.playHead-1])})
	}

	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return statsStyle.Render(b.String())
}

// Run starts the live playback program.
func Run(result *ode.Result, modelName string, horizon, tolerance float64, fps int) error {
	p := tea.NewProgram(NewModel(result, modelName, horizon, tolerance, fps))
	_, err := p.Run()
	return err
}
