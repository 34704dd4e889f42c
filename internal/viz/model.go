package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/attractor/internal/driver"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	panelWidth      = 42
	historyCapacity = 120
)

type TickMsg time.Time

// Model drives a simulation from bubbletea ticks and draws it on a braille
// canvas beside a status panel.
type Model struct {
	driver   *driver.Driver
	sink     *TermSink
	theme    Theme
	styles   styles
	interval time.Duration
	frames   int
	meanZ    []float64
	showHelp bool
}

// NewModel renders at fps frames per second. Physics stays gated by the
// driver's own interval.
func NewModel(d *driver.Driver, theme string, fps int) Model {
	if fps < 1 {
		fps = 60
	}
	t := GetTheme(theme)
	r := d.Renderer()
	return Model{
		driver:   d,
		sink:     NewTermSink(defaultCols, defaultRows, r.Width, r.Height, t),
		theme:    t,
		styles:   newStyles(t),
		interval: time.Second / time.Duration(fps),
		meanZ:    make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.driver.TogglePause()
		case "r":
			m.driver.Reset()
			m.meanZ = m.meanZ[:0]
		case "p":
			m.driver.TogglePaths()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
			m.sink.SetTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		cols := max(msg.Width-panelWidth-6, 10)
		rows := max(msg.Height-4, 5)
		m.sink.Resize(cols, rows)
	case TickMsg:
		if m.driver.Frame(m.sink) {
			m.recordMeanZ()
		}
		m.frames++
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) recordMeanZ() {
	a := m.driver.Attractor()
	sum := 0.0
	for _, t := range a.Trajectories() {
		sum += float64(t.Last().Z)
	}
	if len(m.meanZ) == historyCapacity {
		copy(m.meanZ, m.meanZ[1:])
		m.meanZ = m.meanZ[:historyCapacity-1]
	}
	m.meanZ = append(m.meanZ, sum/float64(a.Len()))
}

func (m Model) View() string {
	st := m.styles
	a := m.driver.Attractor()
	p := a.Params()

	var s strings.Builder
	s.WriteString(GradientText("LORENZ ATTRACTOR", m.theme.Trail, m.theme.Accent) + "\n\n")

	if m.driver.Paused() {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(st.running.Render(AnimatedSpinner(m.frames)+" RUNNING") + "\n\n")
	}

	if len(m.meanZ) > 1 {
		chart := asciigraph.Plot(m.meanZ, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean z"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Ticks", fmt.Sprintf("%d", a.Ticks()))
	row("Population", fmt.Sprintf("%d", a.Len()))
	row("Trail", fmt.Sprintf("%d", a.TrailLength()))
	row("Paths", onOff(a.ShowPath()))
	row("Step dt", m.driver.LastDt().Round(time.Microsecond).String())
	row("Scale", fmt.Sprintf("%.2f", a.PhysicsScale()))
	row("Theme", m.theme.Name)

	s.WriteString("\n")
	row("sigma", fmt.Sprintf("%.3f", p.Sigma))
	row("rho", fmt.Sprintf("%.3f", p.Rho))
	row("beta", fmt.Sprintf("%.3f", p.Beta))

	s.WriteString(st.help.Render("SP:Pause R:Reset P:Paths\nT:Theme ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.sink.View()), st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  Space  pause / resume
  R      reseed every point
  P      toggle trails
  T      cycle themes
  Q/Esc  quit
`

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Run blocks until the user quits.
func Run(d *driver.Driver, theme string, fps int) error {
	_, err := tea.NewProgram(NewModel(d, theme, fps), tea.WithAltScreen()).Run()
	return err
}
