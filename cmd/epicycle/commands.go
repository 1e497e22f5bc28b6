package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/epicycle/internal/analysis"
	"github.com/san-kum/epicycle/internal/automation"
	"github.com/san-kum/epicycle/internal/config"
	"github.com/san-kum/epicycle/internal/export"
	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/optim"
	"github.com/san-kum/epicycle/internal/presets"
	"github.com/san-kum/epicycle/internal/session"
	"github.com/san-kum/epicycle/internal/store"
	"github.com/san-kum/epicycle/internal/viz"
)

const (
	plotCols = 72
	plotRows = 24
)

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("preset shapes:")
	for _, name := range presets.NewRegistry().Names() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func listProfiles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tN\tK\tBOUNDS\tMODE\tANIMATE\tS")
	for _, name := range config.ListProfiles() {
		p := config.GetProfile(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%s\t%d\t%d\n",
			name, p.Samples, p.Bandwidth, p.Bounds, p.Mode, p.AnimateBound, p.CurveSamples)
	}
	return w.Flush()
}

func printCoefficients(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	if coeffsOut != "" {
		if err := store.WriteCoefficients(coeffsOut, p.set); err != nil {
			return err
		}
		fmt.Printf("wrote %d coefficients to %s\n", p.set.Len(), coeffsOut)
		return nil
	}

	fmt.Printf("shape: %s  N=%d  K=%d\n\n", p.name, len(p.curve), p.set.K)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tN\tRE\tIM\t|C|")
	rows := min(max(0, top), len(p.set.ByMag))
	for i, c := range p.set.ByMag[:rows] {
		fmt.Fprintf(w, "%d\t%d\t%+.6f\t%+.6f\t%.6f\n", i+1, c.N, c.Re, c.Im, c.Mag())
	}
	return w.Flush()
}

func buildPartials(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	ctx, stop := commandContext(cmd)
	defer stop()

	partials, err := session.BuildPartials(ctx, p.set, p.cfg.Bounds, p.mode, p.cfg.CurveSamples)
	if err != nil {
		return err
	}

	th := viz.GetTheme(p.cfg.Theme)
	r := viz.NewCanvasRenderer(plotCols, plotRows, append(p.curve.Clone(), flatten(partials)...), th)
	drawStatic(r, p.curve, partials)
	fmt.Print(r.String())
	fmt.Println()
	fmt.Print(viz.Legend(partials, th))
	fmt.Println()

	sweep := analysis.ErrorSweep(p.curve, p.set, p.cfg.Bounds, p.mode)
	printSweep(sweep)

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		metrics := make(map[string]float64, len(sweep))
		for _, sp := range sweep {
			metrics[fmt.Sprintf("rms_%d", sp.Bound)] = sp.RMS
		}
		runID, err := st.Save(store.RunMetadata{
			Shape:   p.name,
			Mode:    string(p.mode),
			Bounds:  p.cfg.Bounds,
			Metrics: metrics,
		}, p.curve, p.set)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func drawStatic(r viz.Renderer, ref fourier.Curve, partials []fourier.PartialCurve) {
	r.DrawReference(ref)
	for _, pc := range partials {
		r.DrawPartial(pc)
	}
}

func flatten(partials []fourier.PartialCurve) fourier.Curve {
	var out fourier.Curve
	for _, pc := range partials {
		out = append(out, pc.Points...)
	}
	return out
}

func printSweep(sweep []analysis.SweepPoint) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOUND\tTERMS\tRMS\tENERGY")
	for _, sp := range sweep {
		fmt.Fprintf(w, "%d\t%d\t%.6f\t%.4f%%\n", sp.Bound, sp.Terms, sp.RMS, sp.Energy*100)
	}
	w.Flush()
}

func plotSpectrum(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	mags := analysis.Magnitudes(p.set)
	logMags := make([]float64, len(mags))
	for i, m := range mags {
		logMags[i] = math.Log10(m + 1e-12)
	}

	fmt.Printf("shape: %s  N=%d  K=%d\n\n", p.name, len(p.curve), p.set.K)
	fmt.Println(asciigraph.Plot(mags,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|c_n| for n = %d..%d", -p.set.K, p.set.K)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(logMags,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("log10 |c_n|"),
	))

	if useFFT {
		fast, err := analysis.SpectrumFFT(p.curve, p.set.K)
		if err != nil {
			return fmt.Errorf("fft cross-check: %w", err)
		}
		worst := 0.0
		for i, c := range p.set.ByOrder {
			f := fast.ByOrder[i]
			worst = math.Max(worst, math.Hypot(c.Re-f.Re, c.Im-f.Im))
		}
		fmt.Printf("\nfft cross-check: max |direct - fft| = %.3e\n", worst)
	}
	return nil
}

func sweepBounds(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	bounds := p.cfg.Bounds
	if !cmd.Flags().Changed("bounds") {
		limit := p.set.K
		if p.mode == fourier.ModeMag {
			limit = p.set.Len()
		}
		bounds = make([]int, 0, limit)
		for b := 1; b <= limit; b++ {
			bounds = append(bounds, b)
		}
	}
	sweep := analysis.ErrorSweep(p.curve, p.set, bounds, p.mode)
	if len(sweep) == 0 {
		return fmt.Errorf("no bounds to sweep")
	}

	rms := make([]float64, len(sweep))
	energy := make([]float64, len(sweep))
	for i, sp := range sweep {
		rms[i] = sp.RMS
		energy[i] = sp.Energy * 100
	}

	fmt.Printf("shape: %s  mode: %s  bounds: %d..%d\n\n", p.name, p.mode, bounds[0], bounds[len(bounds)-1])
	fmt.Println(asciigraph.Plot(rms, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption("rms error vs bound")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(energy, asciigraph.Height(6), asciigraph.Width(80), asciigraph.Caption("energy captured (%) vs bound")))
	fmt.Println()
	if len(sweep) <= 20 {
		printSweep(sweep)
	}

	if target > 0 {
		ctx, stop := commandContext(cmd)
		defer stop()
		g := optim.NewGridSearch(bounds, []fourier.Mode{fourier.ModeOrder, fourier.ModeMag})
		best, found, err := g.Search(ctx, p.curve, p.set, target)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("\nno bound reaches rms %.3g; closest is %s M=%d (%d terms, rms %.6f)\n",
				target, best.Mode, best.Bound, best.Terms, best.RMS)
			return nil
		}
		fmt.Printf("\ncheapest under rms %.3g: %s M=%d (%d terms, rms %.6f)\n",
			target, best.Mode, best.Bound, best.Terms, best.RMS)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(p.curve, p.set, viz.LiveOptions{
		Name:     p.name,
		Bound:    p.cfg.AnimateBound,
		Mode:     p.mode,
		ChainCap: p.cfg.ChainCap,
		Period:   periodDuration(p.cfg.Period),
		Tail:     p.cfg.Tail,
		FPS:      p.cfg.FPS,
		Theme:    p.cfg.Theme,
		Cols:     plotCols,
		Rows:     plotRows,
		GIFPath:  gifPath,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func exportShape(cmd *cobra.Command, args []string) error {
	p, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	ctx, stop := commandContext(cmd)
	defer stop()

	ext := strings.ToLower(filepath.Ext(outPath))
	if ext == ".csv" {
		if err := store.WriteCoefficients(outPath, p.set); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}

	chain := session.AnimationChain(p.set, p.cfg.AnimateBound, p.mode)
	scene := export.Scene{Reference: p.curve}
	if phase > 0 && phase < 1 {
		frame := fourier.EvaluateFrame(chain, phase, p.cfg.ChainCap)
		scene.Frame = &frame
		scene.Tail = trace(chain, phase, p.cfg.CurveSamples)
	} else if ext != ".gif" {
		scene.Partials, err = session.BuildPartials(ctx, p.set, p.cfg.Bounds, p.mode, p.cfg.CurveSamples)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".svg":
		_, err = f.WriteString(export.SVG(scene, p.cfg.Width, p.cfg.Height))
	case ".png":
		err = export.PNG(f, scene, p.cfg.Width, p.cfg.Height, scale)
	case ".json":
		err = store.ExportJSON(f, store.NewExportData(p.name, p.curve, p.set, scene.Partials))
	case ".gif":
		err = export.GIF(f, animationScenes(p, chain), p.cfg.Width, p.cfg.Height, max(1, 100/p.cfg.FPS))
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// trace returns the tip path from phase 0 up to phase.
func trace(chain []fourier.Coefficient, phase float64, samples int) fourier.Curve {
	n := max(2, int(float64(samples)*phase))
	out := make(fourier.Curve, n)
	for i := range out {
		out[i] = fourier.EvaluateAt(chain, phase*float64(i)/float64(n-1))
	}
	return out
}

// animationScenes samples one period into frames, accumulating the tail
// in the same ring the live view uses.
func animationScenes(p *prepared, chain []fourier.Coefficient) []export.Scene {
	n := max(1, frames)
	t := session.NewTail(p.cfg.Tail)
	scenes := make([]export.Scene, n)
	for i := range scenes {
		phase := float64(i) / float64(n)
		frame := fourier.EvaluateFrame(chain, phase, p.cfg.ChainCap)
		t.Push(fourier.EvaluateAt(chain, phase))
		scenes[i] = export.Scene{Reference: p.curve, Frame: &frame, Tail: t.Points()}
	}
	return scenes
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	ctx, stop := commandContext(cmd)
	defer stop()

	fmt.Printf("scenario: %s (%d steps)\n", sc.Name, len(sc.Steps))
	results, err := automation.RunScenario(ctx, sc, presets.NewRegistry(), filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nSTEP\tSOURCE\tK\tBEST RMS\tOUTPUT")
	for _, res := range results {
		best := math.NaN()
		for _, sp := range res.Sweep {
			if math.IsNaN(best) || sp.RMS < best {
				best = sp.RMS
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.6f\t%s\n", res.Index+1, res.Name, res.K, best, res.Output)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tN\tK\tMODE\tBOUNDS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%v\n",
			run.ID,
			run.Shape,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.K,
			run.Mode,
			run.Bounds,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadCoefficients(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(analysis.Magnitudes(set),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("|c_n|"),
	))
	return nil
}
