package automation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/epicycle/internal/analysis"
	"github.com/san-kum/epicycle/internal/config"
	"github.com/san-kum/epicycle/internal/export"
	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/presets"
	"github.com/san-kum/epicycle/internal/session"
	"github.com/san-kum/epicycle/internal/store"
)

// Scenario defines a batch of approximations to compute and write.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one curve, its parameters and the file it is written to.
// The output extension picks the format: .svg, .png, .json or .csv
// (coefficients). A zero Phase draws partial sums; a Phase in (0,1)
// draws the epicycle chain at that phase instead.
type ScenarioStep struct {
	Shape        string  `yaml:"shape"`
	Points       string  `yaml:"points"`
	Samples      int     `yaml:"samples"`
	Bandwidth    int     `yaml:"bandwidth"`
	Bounds       []int   `yaml:"bounds"`
	Mode         string  `yaml:"mode"`
	CurveSamples int     `yaml:"curve_samples"`
	AnimateBound int     `yaml:"animate_bound"`
	Phase        float64 `yaml:"phase"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Scale        float64 `yaml:"scale"`
	Output       string  `yaml:"output"`
}

// StepResult summarises a finished step.
type StepResult struct {
	Index  int
	Name   string
	K      int
	Output string
	Sweep  []analysis.SweepPoint
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	for i, step := range scenario.Steps {
		if step.Output == "" {
			return nil, fmt.Errorf("step %d: missing output", i+1)
		}
		if step.Shape == "" && step.Points == "" {
			return nil, fmt.Errorf("step %d: need shape or points", i+1)
		}
	}

	return &scenario, nil
}

// config maps the step onto a sanitised Config so a step inherits the
// same defaults as the command line.
func (s ScenarioStep) config() *config.Config {
	cfg := config.DefaultConfig()
	if s.Samples != 0 {
		cfg.Samples = s.Samples
	}
	if s.Bandwidth != 0 {
		cfg.Bandwidth = s.Bandwidth
	}
	if s.Bounds != nil {
		cfg.Bounds = s.Bounds
	}
	if s.Mode != "" {
		cfg.Mode = s.Mode
	}
	if s.CurveSamples != 0 {
		cfg.CurveSamples = s.CurveSamples
	}
	if s.AnimateBound != 0 {
		cfg.AnimateBound = s.AnimateBound
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	if s.Height != 0 {
		cfg.Height = s.Height
	}
	cfg.Sanitize()
	return cfg
}

// RunScenario executes the steps concurrently. Relative outputs and points
// files resolve against baseDir. Results keep step order.
func RunScenario(ctx context.Context, scenario *Scenario, registry *presets.Registry, baseDir string) ([]StepResult, error) {
	results := make([]StepResult, len(scenario.Steps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, step := range scenario.Steps {
		g.Go(func() error {
			res, err := runStep(ctx, step, registry, baseDir)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			res.Index = i
			results[i] = res
			fmt.Printf("Step %d/%d: %s -> %s\n", i+1, len(scenario.Steps), res.Name, res.Output)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func resolve(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

func runStep(ctx context.Context, step ScenarioStep, registry *presets.Registry, baseDir string) (StepResult, error) {
	cfg := step.config()
	mode, err := fourier.ParseMode(cfg.Mode)
	if err != nil {
		return StepResult{}, err
	}

	src := Source{Shape: step.Shape, Points: resolve(baseDir, step.Points)}
	curve, err := src.Curve(registry, cfg.Samples)
	if err != nil {
		return StepResult{}, err
	}

	state, err := session.NewState(curve, cfg.Bandwidth).Compute(ctx)
	if err != nil {
		return StepResult{}, err
	}

	out := resolve(baseDir, step.Output)
	res := StepResult{Name: src.Name(), K: state.Set.K, Output: out}
	res.Sweep = analysis.ErrorSweep(curve, state.Set, cfg.Bounds, mode)

	ext := strings.ToLower(filepath.Ext(out))
	if ext == ".csv" {
		return res, store.WriteCoefficients(out, state.Set)
	}

	scene := export.Scene{Reference: curve}
	if step.Phase > 0 && step.Phase < 1 {
		chain := session.AnimationChain(state.Set, cfg.AnimateBound, mode)
		frame := fourier.EvaluateFrame(chain, step.Phase, cfg.ChainCap)
		scene.Frame = &frame
		scene.Tail = tracePrefix(chain, step.Phase, cfg.CurveSamples)
	} else {
		scene.Partials, err = session.BuildPartials(ctx, state.Set, cfg.Bounds, mode, cfg.CurveSamples)
		if err != nil {
			return StepResult{}, err
		}
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return StepResult{}, err
		}
	}

	switch ext {
	case ".svg":
		err = os.WriteFile(out, []byte(export.SVG(scene, cfg.Width, cfg.Height)), 0644)
	case ".png", ".json":
		var f *os.File
		f, err = os.Create(out)
		if err != nil {
			return StepResult{}, err
		}
		defer f.Close()
		if ext == ".png" {
			scale := step.Scale
			if scale <= 0 {
				scale = 1
			}
			err = export.PNG(f, scene, cfg.Width, cfg.Height, scale)
		} else {
			err = store.ExportJSON(f, store.NewExportData(src.Name(), curve, state.Set, scene.Partials))
		}
	default:
		err = fmt.Errorf("unsupported output %q", out)
	}
	return res, err
}

// tracePrefix is the path drawn by the chain tip from phase 0 up to phase.
func tracePrefix(chain []fourier.Coefficient, phase float64, samples int) fourier.Curve {
	n := max(2, int(float64(samples)*phase))
	trace := make(fourier.Curve, n)
	for i := range trace {
		trace[i] = fourier.EvaluateAt(chain, phase*float64(i)/float64(n-1))
	}
	return trace
}
