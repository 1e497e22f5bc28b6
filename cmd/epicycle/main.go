package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/epicycle/internal/automation"
	"github.com/san-kum/epicycle/internal/config"
	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/presets"
	"github.com/san-kum/epicycle/internal/session"
	"github.com/san-kum/epicycle/internal/viz"
)

var (
	dataDir    string
	configFile string
	profile    string
	pointsFile string
	verbose    bool

	samples      int
	bandwidth    int
	boundsFlag   string
	mode         string
	chainCap     int
	animateBound int
	curveSamples int
	period       float64
	tail         int
	fps          int
	theme        string
	width        int
	height       int

	outPath   string
	coeffsOut string
	gifPath   string
	phase     float64
	scale     float64
	frames    int
	top       int
	save      bool
	useFFT    bool
	target    float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags bind package-level variables.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "epicycle",
		Short:         "fourier epicycle approximation lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".epicycle", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&profile, "profile", "", "use a named parameter profile")
	pf.StringVar(&pointsFile, "points", "", "x,y csv capture used instead of a preset shape")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	pf.IntVar(&samples, "samples", config.DefaultSamples, "curve sample count N")
	pf.IntVar(&bandwidth, "bandwidth", config.DefaultBandwidth, "half-bandwidth K")
	pf.StringVar(&boundsFlag, "bounds", "1,3,10,50", "partial-sum bounds, comma separated")
	pf.StringVar(&mode, "mode", config.DefaultMode, "selection mode (order|mag)")
	pf.IntVar(&chainCap, "chain-cap", 0, "epicycles drawn, 0 for all")
	pf.IntVar(&animateBound, "animate-bound", config.DefaultAnimateBound, "terms driving the animation")
	pf.IntVar(&curveSamples, "curve-samples", config.DefaultCurveSamples, "points per reconstructed curve")
	pf.Float64Var(&period, "period", config.DefaultPeriod, "animation period in seconds")
	pf.IntVar(&tail, "tail", config.DefaultTail, "traced tail length")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme,
		"color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.IntVar(&width, "width", config.DefaultWidth, "export width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "export height in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset shapes",
		RunE:  listPresets,
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list parameter profiles",
		RunE:  listProfiles,
	}

	coeffsCmd := &cobra.Command{
		Use:   "coeffs [shape]",
		Short: "compute and print fourier coefficients",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printCoefficients,
	}
	coeffsCmd.Flags().IntVar(&top, "top", 20, "rows to print, strongest first")
	coeffsCmd.Flags().StringVar(&coeffsOut, "out", "", "write all coefficients to csv")

	buildCmd := &cobra.Command{
		Use:   "build [shape]",
		Short: "draw partial-sum approximations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  buildPartials,
	}
	buildCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [shape]",
		Short: "plot the magnitude spectrum",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSpectrum,
	}
	spectrumCmd.Flags().BoolVar(&useFFT, "fft", false, "cross-check against a radix-2 FFT")

	sweepCmd := &cobra.Command{
		Use:   "sweep [shape]",
		Short: "reconstruction error against bound",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepBounds,
	}

	sweepCmd.Flags().Float64Var(&target, "target", 0, "report the cheapest selection with rms at most this")

	liveCmd := &cobra.Command{
		Use:   "live [shape]",
		Short: "animate the epicycle chain in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&gifPath, "gif", "epicycle.gif", "gif path used by recording")

	exportCmd := &cobra.Command{
		Use:   "export [shape]",
		Short: "write svg, png, gif, json or csv",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportShape,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "epicycle.svg", "output file, format from extension")
	exportCmd.Flags().Float64Var(&phase, "phase", 0, "draw the epicycle chain at this phase in (0,1)")
	exportCmd.Flags().Float64Var(&scale, "scale", 3, "png resolution multiplier")
	exportCmd.Flags().IntVar(&frames, "frames", 90, "gif frame count")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a yaml batch scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rootCmd.AddCommand(presetsCmd, profilesCmd, coeffsCmd, buildCmd, spectrumCmd, sweepCmd, liveCmd, exportCmd, batchCmd, runsCmd, showCmd)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if debug {
		fourier.SetLogger(logger.With("pkg", "fourier"))
		session.SetLogger(logger.With("pkg", "session"))
	}
}

// resolveConfig layers defaults, profile, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if profile != "" {
		cfg = config.GetProfile(profile)
		if cfg == nil {
			return nil, fmt.Errorf("unknown profile: %s (available: %v)", profile, config.ListProfiles())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = pointsFile
	}
	if flags.Changed("samples") {
		cfg.Samples = samples
	}
	if flags.Changed("bandwidth") {
		cfg.Bandwidth = bandwidth
	}
	if flags.Changed("bounds") {
		cfg.Bounds = config.ParseBounds(boundsFlag)
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("chain-cap") {
		cfg.ChainCap = chainCap
	}
	if flags.Changed("animate-bound") {
		cfg.AnimateBound = animateBound
	}
	if flags.Changed("curve-samples") {
		cfg.CurveSamples = curveSamples
	}
	if flags.Changed("period") {
		cfg.Period = period
	}
	if flags.Changed("tail") {
		cfg.Tail = tail
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if len(args) > 0 {
		cfg.Shape = args[0]
		cfg.Points = ""
	}
	cfg.Sanitize()
	slog.Debug("config resolved", "shape", cfg.Shape, "points", cfg.Points,
		"samples", cfg.Samples, "bandwidth", cfg.Bandwidth, "mode", cfg.Mode)
	return cfg, nil
}

// prepared is a curve with its coefficients, ready for drawing.
type prepared struct {
	cfg   *config.Config
	name  string
	mode  fourier.Mode
	curve fourier.Curve
	set   *fourier.CoefficientSet
}

func prepare(cmd *cobra.Command, args []string) (*prepared, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	m, err := fourier.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	src := automation.Source{Shape: cfg.Shape, Points: cfg.Points}
	curve, err := src.Curve(presets.NewRegistry(), cfg.Samples)
	if err != nil {
		return nil, err
	}

	ctx, stop := commandContext(cmd)
	defer stop()
	computer := session.NewComputer()
	defer computer.Close()

	res := <-computer.Submit(ctx, session.NewState(curve, cfg.Bandwidth))
	if res.Err != nil {
		return nil, res.Err
	}
	slog.Debug("coefficients computed", "k", res.State.K, "n", len(curve), "elapsed", res.Elapsed)

	return &prepared{cfg: cfg, name: src.Name(), mode: m, curve: curve, set: res.State.Set}, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

func periodDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
