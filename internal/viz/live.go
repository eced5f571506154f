package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/milankovitch/internal/insolation"
	"github.com/san-kum/milankovitch/internal/logging"
	"github.com/san-kum/milankovitch/internal/render"
	"github.com/san-kum/milankovitch/internal/scene"
	"github.com/san-kum/milankovitch/internal/series"
)

const (
	width       = 80
	height      = 40
	graphWindow = 60
)

type TickMsg time.Time

// Model plays a scene in the terminal.
type Model struct {
	scene    *scene.Scene
	timeline *scene.Timeline
	canvas   *Canvas
	braille  *Braille
	step     int
	fps      int
	logger   log.Logger

	// GIFPath is where a recording is written when it stops.
	GIFPath   string
	raster    *render.Raster
	recorder  *render.Recorder
	recording bool
	showHelp  bool
	err       error
}

// NewModel binds a scene for a dataset resampled every step years.
func NewModel(ds *series.Dataset, step, fps int, logger log.Logger) Model {
	if fps <= 0 {
		fps = scene.FPS
	}
	if logger == nil {
		logger = logging.Nop()
	}
	c := NewCanvas(width, height)
	return Model{
		scene:    scene.New(ds),
		timeline: scene.NewTimeline(ds.Len()),
		canvas:   c,
		braille:  NewBraille(c),
		step:     step,
		fps:      fps,
		logger:   logger,
		GIFPath:  "milankovitch.gif",
		raster:   render.NewRaster(scene.Width, scene.Height),
		recorder: render.NewRecorder(fps),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.draw()
	return m.tick()
}

// Index is the timestep currently shown.
func (m Model) Index() int { return m.timeline.Index() }

func (m Model) Recording() bool { return m.recording }

// Update handles keys and advances the timeline once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			m.timeline.TogglePause()
		case "left", "[":
			if m.timeline.StepBack() {
				m.draw()
			}
		case "right", "]":
			if m.timeline.StepForward() {
				m.draw()
			}
		case "home":
			m.timeline.Seek(0)
			m.draw()
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.recorder.Reset()
				level.Info(m.logger).Log("msg", "recording started", "path", m.GIFPath)
			}
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.draw()
		if m.recording {
			m.capture()
		}
		m.timeline.Tick()
		return m, m.tick()
	}
	return m, nil
}

// draw renders the current timestep into the braille canvas.
func (m *Model) draw() {
	if err := m.scene.Render(m.braille, m.timeline.Index()); err != nil {
		m.err = err
		level.Error(m.logger).Log("msg", "render failed", "index", m.timeline.Index(), "err", err)
	}
}

func (m *Model) capture() {
	if err := m.scene.Render(m.raster, m.timeline.Index()); err != nil {
		m.err = err
		return
	}
	m.recorder.Capture(m.raster.Img)
}

func (m *Model) stopRecording() {
	m.recording = false
	n := m.recorder.Len()
	if err := m.recorder.Save(m.GIFPath); err != nil {
		m.err = err
		level.Error(m.logger).Log("msg", "save recording", "path", m.GIFPath, "err", err)
		return
	}
	m.recorder.Reset()
	level.Info(m.logger).Log("msg", "recording saved", "path", m.GIFPath, "frames", n)
}

// View renders the TUI interface.
func (m Model) View() string {
	st := themed(CurrentTheme)
	i := m.timeline.Index()
	ds := m.scene.Data
	sample, err := ds.At(i)
	if err != nil {
		m.err = err
	}

	var s strings.Builder
	s.WriteString(st.header.Render("MILANKOVITCH CYCLES") + "\n")
	switch {
	case m.recording:
		s.WriteString(st.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	case m.timeline.Paused():
		s.WriteString(st.paused.Render("PAUSED"))
	default:
		s.WriteString(st.running.Render("RUNNING"))
	}
	s.WriteString("\n\n")

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Timestep", fmt.Sprintf("%d yr", m.step))
	if err == nil {
		row("Time", scene.FormatMa(sample.Time)+" Ma")
		row("Eccentricity", fmt.Sprintf("%.3f", sample.Eccentricity))
		row("Obliquity", fmt.Sprintf("%.2f", sample.Obliquity))
		row("Precession", scene.FormatPrecession(sample.Tilt))
		row("Q 65N Jun", fmt.Sprintf("%.1f W/m^2", insolation.At(insolation.OrbitAt(ds, i), 65, 90)))
	}
	row("Progress", ProgressBar(float64(i)/float64(max(1, ds.Len()-1)), 20))
	s.WriteString("\n")

	for _, g := range []struct {
		name   string
		values []float64
	}{
		{"Eccentricity", ds.Eccentricity},
		{"Obliquity", ds.Obliquity},
		{"Precession", ds.Precession},
	} {
		w := series.Window(g.values, i, graphWindow)
		if len(w) < 2 {
			continue
		}
		chart := asciigraph.Plot(w, asciigraph.Height(3), asciigraph.Width(30), asciigraph.Caption(g.name))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + st.recording.Render(m.err.Error()) + "\n")
	}
	s.WriteString(st.help.Render(Divider(24) + "\nSP:Pause ←→:Step Q:Quit\nT:Theme  G:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.canvas.String()), st.stats.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  Left/[   - Step back (paused)       ║
║  Right/]  - Step forward (paused)    ║
║  Home     - Back to the start        ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run plays ds in the terminal until the user quits.
func Run(ds *series.Dataset, step, fps int, logger log.Logger) error {
	_, err := tea.NewProgram(NewModel(ds, step, fps, logger), tea.WithAltScreen()).Run()
	return err
}
