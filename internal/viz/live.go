package viz

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/epicycle/internal/export"
	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/session"
)

// LiveOptions configures a LiveModel.
type LiveOptions struct {
	Name     string
	Bound    int
	Mode     fourier.Mode
	ChainCap int
	Period   time.Duration
	Tail     int
	FPS      int
	Theme    string
	Cols     int
	Rows     int
	GIFPath  string

	// MaxFrames ends a recording once this many frames are held.
	MaxFrames int
}

type TickMsg time.Time

// LiveModel animates the epicycle chain of a computed coefficient set.
type LiveModel struct {
	opts  LiveOptions
	ref   fourier.Curve
	set   *fourier.CoefficientSet
	mags  []float64
	chain []fourier.Coefficient

	bound    int
	mode     fourier.Mode
	chainCap int
	theme    Theme

	clock   session.Clock
	tail    *session.Tail
	phase   float64
	running bool
	frame   fourier.EpicycleFrame
	now     func() time.Time

	recording bool
	scenes    []export.Scene
	status    string
}

// NewLiveModel prepares an animation of set against the reference curve.
func NewLiveModel(ref fourier.Curve, set *fourier.CoefficientSet, opts LiveOptions) *LiveModel {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Bound <= 0 {
		opts.Bound = 150
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = 600
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "epicycle.gif"
	}
	m := &LiveModel{
		opts:     opts,
		ref:      ref,
		set:      set,
		bound:    opts.Bound,
		mode:     opts.Mode,
		chainCap: opts.ChainCap,
		theme:    GetTheme(opts.Theme),
		clock:    session.NewClock(time.Now(), opts.Period),
		tail:     session.NewTail(opts.Tail),
		running:  true,
		now:      time.Now,
	}
	if set != nil {
		m.mags = make([]float64, len(set.ByOrder))
		for i, c := range set.ByOrder {
			m.mags[i] = c.Mag()
		}
	}
	m.rebuildChain()
	return m
}

func (m *LiveModel) rebuildChain() {
	m.chain = session.AnimationChain(m.set, m.bound, m.mode)
	m.frame = fourier.EvaluateFrame(m.chain, m.phase, m.chainCap)
}

func (m *LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *LiveModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances the phase on each tick.
func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case " ":
			m.togglePause()
		case "+", "=":
			m.adjustCap(1)
		case "-", "_":
			m.adjustCap(-1)
		case "]":
			m.adjustBound(m.boundStep())
		case "[":
			m.adjustBound(-m.boundStep())
		case "m":
			if m.mode == fourier.ModeMag {
				m.mode = fourier.ModeOrder
			} else {
				m.mode = fourier.ModeMag
			}
			m.tail.Reset()
			m.rebuildChain()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "r":
			m.tail.Reset()
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.scenes = make([]export.Scene, 0, min(m.opts.FPS*4, m.opts.MaxFrames))
				m.status = "recording"
			}
		}
	case TickMsg:
		if m.running {
			m.advance(time.Time(msg))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *LiveModel) advance(now time.Time) {
	m.phase = m.clock.Phase(now)
	m.frame = fourier.EvaluateFrame(m.chain, m.phase, m.chainCap)
	m.tail.Push(fourier.EvaluateAt(m.chain, m.phase))
	if m.recording {
		frame := m.frame
		m.scenes = append(m.scenes, export.Scene{Reference: m.ref, Frame: &frame, Tail: m.tail.Points()})
		if len(m.scenes) >= m.opts.MaxFrames {
			m.stopRecording()
		}
	}
}

func (m *LiveModel) stopRecording() {
	m.saveGIF()
	m.recording = false
	m.scenes = nil
}

// togglePause freezes the phase; resuming shifts the clock so the
// animation continues from where it stopped.
func (m *LiveModel) togglePause() {
	if m.running {
		m.running = false
		return
	}
	offset := time.Duration(m.phase * float64(m.clock.Period))
	m.clock = session.NewClock(m.now().Add(-offset), m.clock.Period)
	m.running = true
}

// adjustCap steps the drawn chain length; 0 stands for the whole chain
// and sits above the largest explicit cap.
func (m *LiveModel) adjustCap(dir int) {
	links := 0
	for _, c := range m.chain {
		if c.N != 0 {
			links++
		}
	}
	switch {
	case links == 0:
		m.chainCap = 0
	case dir > 0 && m.chainCap > 0:
		m.chainCap++
		if m.chainCap >= links {
			m.chainCap = 0
		}
	case dir < 0 && m.chainCap == 0:
		m.chainCap = max(1, links-1)
	case dir < 0:
		m.chainCap = max(1, m.chainCap-1)
	}
	m.frame = fourier.EvaluateFrame(m.chain, m.phase, m.chainCap)
}

func (m *LiveModel) boundStep() int {
	return max(1, m.bound/10)
}

func (m *LiveModel) adjustBound(delta int) {
	limit := 1
	if m.set != nil {
		limit = max(1, m.set.Len())
	}
	m.bound = min(max(1, m.bound+delta), limit)
	m.tail.Reset()
	m.rebuildChain()
}

func (m *LiveModel) saveGIF() {
	if len(m.scenes) == 0 {
		return
	}
	f, err := os.Create(m.opts.GIFPath)
	if err != nil {
		m.status = err.Error()
		return
	}
	defer f.Close()
	delay := max(1, 100/m.opts.FPS)
	if err := export.GIF(f, m.scenes, m.opts.Cols*8, m.opts.Rows*16, delay); err != nil {
		m.status = err.Error()
		return
	}
	slog.Debug("gif saved", "path", m.opts.GIFPath, "frames", len(m.scenes))
	m.status = "saved " + m.opts.GIFPath
}

// Render draws the current frame onto a fresh CanvasRenderer.
func (m *LiveModel) Render() *CanvasRenderer {
	r := NewCanvasRenderer(m.opts.Cols, m.opts.Rows, m.ref, m.theme)
	r.DrawReference(m.ref)
	r.DrawFrame(m.frame, m.tail.Points())
	return r
}

func (m *LiveModel) View() string {
	canvasView := canvasStyle.Render(m.Render().String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.opts.Name)) + "\n")
	switch {
	case m.recording:
		s.WriteString(StatusRecord.Render("● REC") + fmt.Sprintf(" %d frames\n\n", len(m.scenes)))
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}
	if len(m.mags) > 1 {
		chart := asciigraph.Plot(m.mags, asciigraph.Height(5), asciigraph.Width(32), asciigraph.Caption("|c_n|, n = -K..K"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	links := len(m.frame.Chain)
	capLabel := "all"
	if m.chainCap > 0 {
		capLabel = fmt.Sprintf("%d", m.chainCap)
	}
	s.WriteString(Field("Phase", fmt.Sprintf("%.3f", m.phase)) + "\n")
	s.WriteString(Field("Mode", string(m.mode)) + "\n")
	s.WriteString(Field("Bound", fmt.Sprintf("%d", m.bound)) + "\n")
	s.WriteString(Field("Chain", fmt.Sprintf("%d (cap %s)", links, capLabel)) + "\n")
	s.WriteString(Field("Tail", fmt.Sprintf("%d", m.tail.Len())) + "\n")
	s.WriteString(Field("Theme", m.theme.Name) + "\n")
	if m.status != "" {
		s.WriteString(Field("Status", m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme  G:Record M:Mode\n+/-:Chain [ ]:Bound"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
