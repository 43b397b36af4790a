package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sphlab/internal/analysis"
	"sphlab/internal/app"
)

const (
	canvasWidth  = 60
	canvasHeight = 26
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the live terminal view: it owns a stepping session and redraws
// the particle scatter each frame, with the exact-solution ellipse overlaid
// for the elliptical drop.
type Model struct {
	builder  *app.App
	sess     *app.Session
	caseName string

	canvas        *Canvas
	viewport      Viewport
	fps           int
	stepsPerFrame int
	running       bool
	overlay       bool
	err           error
}

func NewModel(builder *app.App, caseName string, fps int) (Model, error) {
	sess, err := builder.NewSession()
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{
		builder:       builder,
		sess:          sess,
		caseName:      caseName,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		viewport:      DropViewport(),
		fps:           fps,
		stepsPerFrame: 10,
		running:       true,
		overlay:       caseName == "elliptical_drop",
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
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
			sess, err := m.builder.NewSession()
			if err != nil {
				m.err = err
			} else {
				m.sess = sess
				m.err = nil
			}
		case "e":
			m.overlay = !m.overlay
		case "up", "k":
			m.stepsPerFrame *= 2
		case "down", "j":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		}
	case TickMsg:
		if m.running && m.err == nil && !m.sess.Done() {
			if err := m.sess.Step(m.stepsPerFrame); err != nil {
				m.err = err
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()

	fluid := m.sess.Fluid()
	DrawParticles(m.canvas, m.viewport, fluid.Prop("x"), fluid.Prop("y"))

	_, a := analysis.ExactSolution(m.sess.T(), 1e-6)
	if m.overlay && a > 0 {
		DrawEllipse(m.canvas, m.viewport, a, 1.0/a)
	}

	ax, ay := analysis.SemiAxes(fluid.Prop("x"), fluid.Prop("y"))

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label), valueStyle.Render(value))
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.sess.Done() {
		status = "done"
	}
	if m.err != nil {
		status = "error: " + m.err.Error()
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.caseName),
		row("status", status),
		row("t", fmt.Sprintf("%.6f / %.6f", m.sess.T(), m.sess.TFinal())),
		row("particles", fmt.Sprintf("%d", fluid.Len())),
		row("steps/frame", fmt.Sprintf("%d", m.stepsPerFrame)),
		row("semi-axis x", fmt.Sprintf("%.4f (exact %.4f)", ax, a)),
		row("semi-axis y", fmt.Sprintf("%.4f (exact %.4f)", ay, 1.0/a)),
		helpStyle.Render("space pause · r reset · e ellipse · j/k speed · q quit"),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)
}
