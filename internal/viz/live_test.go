package viz

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/epicycle/internal/fourier"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) *LiveModel {
	t.Helper()
	ref := unitCircle(64)
	set, err := fourier.ComputeCoefficients(ref, 8)
	if err != nil {
		t.Fatal(err)
	}
	return NewLiveModel(ref, set, LiveOptions{
		Name:    "circle",
		Bound:   8,
		Mode:    fourier.ModeOrder,
		Period:  time.Second,
		Tail:    10,
		FPS:     20,
		Cols:    30,
		Rows:    12,
		GIFPath: filepath.Join(t.TempDir(), "out.gif"),
	})
}

func TestLiveModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	start := m.clock.Start
	_, cmd := m.Update(TickMsg(start.Add(250 * time.Millisecond)))
	if cmd == nil {
		t.Fatal("expected next tick to be scheduled")
	}
	if m.phase < 0.249 || m.phase > 0.251 {
		t.Errorf("expected phase 0.25, got %v", m.phase)
	}
	if m.tail.Len() != 1 {
		t.Errorf("expected one tail point, got %d", m.tail.Len())
	}
	// a unit circle traced counter-clockwise sits at (0,1) a quarter turn in
	p := m.frame.Point
	if p.X*p.X > 1e-6 || (p.Y-1)*(p.Y-1) > 1e-6 {
		t.Errorf("expected point near (0,1), got %v", p)
	}
}

func TestLiveModelPause(t *testing.T) {
	m := newTestModel(t)
	start := m.clock.Start
	m.Update(TickMsg(start.Add(100 * time.Millisecond)))
	m.Update(key(" "))
	if m.running {
		t.Fatal("expected paused")
	}
	m.Update(TickMsg(start.Add(600 * time.Millisecond)))
	if m.phase < 0.099 || m.phase > 0.101 {
		t.Errorf("expected phase frozen at 0.1, got %v", m.phase)
	}
	resume := start.Add(5 * time.Second)
	m.now = func() time.Time { return resume }
	m.Update(key(" "))
	m.Update(TickMsg(resume))
	if m.phase < 0.099 || m.phase > 0.101 {
		t.Errorf("expected phase to continue from 0.1, got %v", m.phase)
	}
}

func TestLiveModelChainCap(t *testing.T) {
	m := newTestModel(t)
	all := len(m.frame.Chain)
	if all == 0 {
		t.Fatal("expected a non-empty chain")
	}
	m.Update(key("-"))
	if m.chainCap != all-1 || len(m.frame.Chain) != all-1 {
		t.Errorf("expected cap %d, got cap %d with %d links", all-1, m.chainCap, len(m.frame.Chain))
	}
	m.Update(key("+"))
	if m.chainCap != 0 || len(m.frame.Chain) != all {
		t.Errorf("expected cap back to all, got %d", m.chainCap)
	}
	m.Update(key("+"))
	if m.chainCap != 0 {
		t.Error("expected + at full chain to stay at all")
	}
}

func TestLiveModelCappedTailTracesFullSum(t *testing.T) {
	set := fourier.NewCoefficientSet(2, []fourier.Coefficient{
		{N: -2}, {N: -1, Re: 0.5}, {N: 0, Re: 0.1}, {N: 1, Re: 1}, {N: 2, Im: 0.25},
	})
	m := NewLiveModel(unitCircle(64), set, LiveOptions{
		Name:     "capped",
		Bound:    2,
		Mode:     fourier.ModeOrder,
		ChainCap: 1,
		Period:   time.Second,
		Tail:     10,
		Cols:     30,
		Rows:     12,
		GIFPath:  filepath.Join(t.TempDir(), "out.gif"),
	})
	m.Update(TickMsg(m.clock.Start.Add(300 * time.Millisecond)))

	if len(m.frame.Chain) != 1 {
		t.Fatalf("expected one drawn link, got %d", len(m.frame.Chain))
	}
	if m.frame.Point != m.frame.Chain[0].To {
		t.Errorf("tip %v should sit at the end of the drawn chain %v", m.frame.Point, m.frame.Chain[0].To)
	}
	tail := m.tail.Points()
	want := fourier.EvaluateAt(m.chain, m.phase)
	got := tail[len(tail)-1]
	if (got.X-want.X)*(got.X-want.X)+(got.Y-want.Y)*(got.Y-want.Y) > 1e-18 {
		t.Errorf("tail should trace the full sum %v, got %v", want, got)
	}
}

func TestLiveModelModeAndBound(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("m"))
	if m.mode != fourier.ModeMag {
		t.Fatalf("expected mag mode, got %s", m.mode)
	}
	if len(m.chain) != 8 {
		t.Errorf("expected top 8 terms, got %d", len(m.chain))
	}
	m.Update(key("["))
	if m.bound != 7 {
		t.Errorf("expected bound 7, got %d", m.bound)
	}
	for range 20 {
		m.Update(key("["))
	}
	if m.bound != 1 {
		t.Errorf("expected bound clamped at 1, got %d", m.bound)
	}
}

func TestLiveModelThemeAndReset(t *testing.T) {
	m := newTestModel(t)
	first := m.theme.Name
	m.Update(key("t"))
	if m.theme.Name == first {
		t.Error("expected theme to change")
	}
	m.Update(TickMsg(m.clock.Start.Add(10 * time.Millisecond)))
	m.Update(key("r"))
	if m.tail.Len() != 0 {
		t.Error("expected tail cleared")
	}
}

func TestLiveModelRecordAndQuit(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("g"))
	if !m.recording {
		t.Fatal("expected recording")
	}
	m.Update(TickMsg(m.clock.Start.Add(50 * time.Millisecond)))
	m.Update(TickMsg(m.clock.Start.Add(100 * time.Millisecond)))
	if len(m.scenes) != 2 {
		t.Fatalf("expected 2 recorded scenes, got %d", len(m.scenes))
	}
	m.Update(key("g"))
	if m.recording || !strings.HasPrefix(m.status, "saved") {
		t.Errorf("expected gif saved, status %q", m.status)
	}
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestLiveModelRecordingStopsAtFrameLimit(t *testing.T) {
	m := newTestModel(t)
	m.opts.MaxFrames = 3
	m.Update(key("g"))
	for i := 1; i <= 5; i++ {
		m.Update(TickMsg(m.clock.Start.Add(time.Duration(i) * 20 * time.Millisecond)))
	}
	if m.recording {
		t.Error("expected recording to stop at the frame limit")
	}
	if len(m.scenes) != 0 {
		t.Errorf("expected recorded scenes to be released, got %d", len(m.scenes))
	}
	if !strings.HasPrefix(m.status, "saved") {
		t.Errorf("expected gif saved, status %q", m.status)
	}
}

func TestLiveModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"CIRCLE", "RUNNING", "Bound", "Chain"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
