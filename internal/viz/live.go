// Package viz is the terminal driver loop: it steps the simulation at
// the display rate and renders bodies, trails, and run statistics to a
// braille canvas.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AmirChGit/three-body-problem/internal/physics"
	"github.com/AmirChGit/three-body-problem/internal/sim"
	"github.com/AmirChGit/three-body-problem/internal/stats"
)

const (
	width  = 80
	height = 24
)

type TickMsg time.Time

// Model owns the simulation for the session and renders one frame per
// tick. A step always completes before the frame is drawn.
type Model struct {
	sim      *sim.Simulation
	store    *stats.Store
	canvas   *Canvas
	fps      int
	theme    Theme
	paused   bool
	showHelp bool
}

func NewModel(s *sim.Simulation, store *stats.Store, fps int, themeName string) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		sim:    s,
		store:  store,
		canvas: NewCanvas(width, height),
		fps:    fps,
		theme:  ThemeByName(themeName),
	}
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
			m.paused = !m.paused
		case "r":
			m.sim.Reset()
		case "t":
			m.theme = nextTheme(m.theme)
		case "+", "=":
			m.sim.SetZoom(m.sim.Camera().Zoom * 1.1)
		case "-", "_":
			m.sim.SetZoom(m.sim.Camera().Zoom / 1.1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if !m.paused {
			m.sim.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

// project maps a world position through the camera into sub-pixel
// canvas coordinates.
func (m Model) project(p physics.Vec2) (int, int) {
	cam := m.sim.Camera()
	w, h := m.sim.Size()
	cw := float64(m.canvas.Width * 2)
	ch := float64(m.canvas.Height * 4)

	sx := (p.X-cam.Pos.X)*cam.Zoom*cw/w + cw/2
	sy := (p.Y-cam.Pos.Y)*cam.Zoom*ch/h + ch/2
	return int(math.Round(sx)), int(math.Round(sy))
}

func (m Model) draw() {
	m.canvas.Clear()
	theme := m.theme
	cam := m.sim.Camera()
	w, _ := m.sim.Size()
	pixelsPerUnit := cam.Zoom * float64(m.canvas.Width*2) / w

	for i, b := range m.sim.Bodies() {
		color := theme.Bodies[i%len(theme.Bodies)]
		b.Color = color

		// trail is most-recent-first; walk it into line segments,
		// linking the head back to the body
		prevX, prevY := m.project(b.Pos)
		for _, p := range b.Trail {
			x, y := m.project(p)
			m.canvas.DrawLine(prevX, prevY, x, y, theme.Muted)
			prevX, prevY = x, y
		}

		r := math.Max(b.Radius(), 2/cam.Zoom) * pixelsPerUnit
		bx, by := m.project(b.Pos)
		m.canvas.FillCircle(bx, by, int(math.Round(r)), color)
	}
}

func (m Model) View() string {
	m.draw()

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(m.statsPanel())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return m.helpPanel() + "\n" + main
	}
	return main
}

func (m Model) statsPanel() string {
	theme := m.theme
	st := m.store.Stats()

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(lipgloss.Color(theme.Accent)).Render("THREE-BODY") + "\n")
	if m.paused {
		s.WriteString("PAUSED\n\n")
	} else {
		s.WriteString("RUNNING\n\n")
	}

	s.WriteString(labelStyle.Render("Run") + valueStyle.Render(fmt.Sprintf("#%d", st.TotalRuns+1)) + "\n")
	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(formatSeconds(m.sim.RunElapsed().Seconds())) + "\n")
	s.WriteString(labelStyle.Render("Completed") + valueStyle.Render(fmt.Sprintf("%d", st.TotalRuns)) + "\n")
	s.WriteString(labelStyle.Render("Longest") + valueStyle.Render(formatSeconds(st.LongestRunSeconds)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.3f", m.sim.Camera().Zoom)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")

	s.WriteString("\nBODIES\n")
	bodyStyle := lipgloss.NewStyle()
	for _, b := range m.sim.Bodies() {
		dot := bodyStyle.Foreground(lipgloss.Color(b.Color)).Render("●")
		s.WriteString(fmt.Sprintf("  %s m=%4.1f v=%.3f\n", dot, b.Mass, b.Vel.Length()))
	}

	if len(st.RecentSeconds) > 1 {
		s.WriteString("\nRUN HISTORY\n")
		s.WriteString("  " + Sparkline(st.RecentSeconds, 30) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Zoom ?:Help"))
	return s.String()
}

func (m Model) helpPanel() string {
	return helpStyle.Render(strings.Join([]string{
		"Space  pause/resume",
		"R      reset the run (counts as completed)",
		"T      cycle color themes",
		"+/-    adjust camera zoom",
		"?      toggle this help",
		"Q      quit",
	}, "\n"))
}

func formatSeconds(s float64) string {
	if s >= 60 {
		return fmt.Sprintf("%dm%02.0fs", int(s)/60, math.Mod(s, 60))
	}
	return fmt.Sprintf("%.1fs", s)
}

// Run drives the TUI until the user quits.
func Run(s *sim.Simulation, store *stats.Store, fps int, themeName string) error {
	p := tea.NewProgram(NewModel(s, store, fps, themeName))
	_, err := p.Run()
	return err
}
