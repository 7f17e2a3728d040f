package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/automation"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/logging"
	"github.com/san-kum/orbitsim/internal/optim"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/viz"
)

var (
	dataDir  string
	logLevel string
	logger   = logging.NewFromEnv()

	printSteps bool
	outFile    string
	rsUnits    bool
	frameRate  int
	perFrame   int
	massSolar  float64
	svgSize    int
	scanFrom   float64
	scanTo     float64
	scanN      int
	trials     int
	perturb    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "orbitsim",
		Short:         "test-particle orbits around a black hole",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("log-level") {
				logger = logging.New(os.Stderr, logging.ParseLevel(logLevel))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and save it",
		Args:  cobra.NoArgs,
	}
	runFlags := bindOrbitFlags(runCmd)
	runCmd.Flags().BoolVar(&printSteps, "print", false, "print position and velocity after every step")
	runCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := runFlags.resolve(cmd)
		if err != nil {
			return err
		}
		return runSimulation(cfg)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:     "show [run_id]",
		Aliases: []string{"export"},
		Short:   "print run metadata",
		Args:    cobra.ExactArgs(1),
		RunE:    showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot radius, speed and orbit of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCSVCmd.Flags().BoolVar(&rsUnits, "rs", false, "write positions in Schwarzschild radii")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same initial conditions",
	}
	compareFlags := bindOrbitFlags(compareCmd)
	compareCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := compareFlags.resolve(cmd)
		if err != nil {
			return err
		}
		return compareIntegrators(cfg, args)
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
	}
	liveFlags := bindOrbitFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&perFrame, "steps-per-frame", 5, "integration steps per frame")
	liveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := liveFlags.resolve(cmd)
		if err != nil {
			return err
		}
		return runLive(cfg)
	}

	horizonCmd := &cobra.Command{
		Use:   "horizon",
		Short: "print characteristic radii for a black hole mass",
		Args:  cobra.NoArgs,
		RunE:  printHorizon,
	}
	horizonCmd.Flags().Float64Var(&massSolar, "mass", config.DefaultMassSolar, "mass in solar masses")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "apsides, precession and radial spectrum of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run orbit to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "scan launch speeds for the capture threshold",
		Args:  cobra.NoArgs,
	}
	scanFlags := bindOrbitFlags(scanCmd)
	scanCmd.Flags().Float64Var(&scanFrom, "from", 0, "lowest speed factor")
	scanCmd.Flags().Float64Var(&scanTo, "to", 1, "highest speed factor")
	scanCmd.Flags().IntVar(&scanN, "n", 11, "number of launches")
	scanCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := scanFlags.resolve(cmd)
		if err != nil {
			return err
		}
		return scanCapture(cfg)
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "capture statistics under random launch-speed perturbations",
		Args:  cobra.NoArgs,
	}
	mcFlags := bindOrbitFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&trials, "trials", 100, "number of trials")
	monteCarloCmd.Flags().Float64Var(&perturb, "perturbation", 0.05, "relative speed perturbation")
	monteCarloCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := mcFlags.resolve(cmd)
		if err != nil {
			return err
		}
		return runMonteCarlo(cfg)
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		compareCmd, presetsCmd, liveCmd, horizonCmd, analyzeCmd, scanCmd, batchCmd, monteCarloCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(context.Background(), "command failed", err)
		os.Exit(1)
	}
}

func runSimulation(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry(), logger); err != nil {
		return err
	}
	if printSteps {
		exp.GetSimulator().AddObserver(sim.ObserverFunc(func(step int, t float64, x integrators.State) {
			fmt.Printf("step %d: pos=%s vel=%s\n", step, x.Pos, x.Vel)
		}))
	}

	bh := exp.Body()
	logger.Info(ctx, "running simulation",
		"law", cfg.Law,
		"integrator", cfg.Integrator,
		"mass_solar", cfg.MassSolar,
		"rs_m", bh.SchwarzschildRadius(),
		"dt_s", exp.Dt(),
		"steps", cfg.Run.Steps,
	)
	start := time.Now()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(runMetadata(cfg, exp.Dt(), result), result)
	if err != nil {
		return err
	}
	logger.Info(logging.WithRunID(ctx, runID), "run saved", "elapsed", elapsed)

	fmt.Println(runSummary(runID, bh, exp.InitialState(), result, elapsed))
	return nil
}

func runSummary(runID string, bh gravity.BlackHole, x0 integrators.State, result *sim.Result, elapsed time.Duration) string {
	rs := bh.SchwarzschildRadius()
	fields := []viz.Field{
		viz.F("run id", "%s", runID),
		viz.F("r_s", "%.6e m", rs),
		viz.F("steps", "%d", result.StepsTaken),
		viz.F("elapsed", "%v", elapsed.Round(time.Microsecond)),
		viz.F("r0", "%.6f rs", x0.Pos.Norm()/rs),
		viz.F("r final", "%.6f rs", result.Final.Pos.Norm()/rs),
		viz.F("|v| final", "%.6f c", result.Final.Vel.Norm()/units.C),
	}
	if result.Absorbed {
		fields = append(fields, viz.F("absorbed", "step %d (t=%.4e s)", result.AbsorbedStep, result.AbsorbedTime))
	}
	for _, name := range sortedMetricNames(result.Metrics) {
		fields = append(fields, viz.F(name, "%.6e", result.Metrics[name]))
	}
	return viz.RenderSummary("orbitsim run", fields)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if _, err := os.Stat(dataDir); err == nil {
		if err := st.Init(); err != nil {
			return err
		}
		defer st.Close()
	}

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLAW\tINTEG\tTIME\tMASS\tR0\tSTEPS\tABSORBED")
	for _, run := range runs {
		absorbed := "-"
		if run.Absorbed {
			absorbed = fmt.Sprintf("step %d", run.AbsorbedStep)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f rs\t%d\t%s\n",
			run.ID,
			run.Law,
			run.Integrator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.MassSolar,
			run.RadiusRs,
			run.StepsTaken,
			absorbed,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	rs := gravity.FromSolarMass(meta.MassSolar).SchwarzschildRadius()

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("law: %s  integrator: %s\n", meta.Law, meta.Integrator)
	fmt.Printf("samples: %d\n\n", len(states))

	fmt.Println(viz.PlotSeries(viz.RadiusSeries(states, rs), "radius (rs)"))
	fmt.Println()
	fmt.Println(viz.PlotSeries(viz.SpeedSeries(states, units.C), "speed (c)"))
	fmt.Println()
	fmt.Println(viz.Title.Render("orbit (x-y)"))
	fmt.Print(viz.OrbitPlot(states, rs, 60, 24))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	scale := 1.0
	if rsUnits {
		scale = gravity.FromSolarMass(meta.MassSolar).SchwarzschildRadius()
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	defer closeFn()
	return storage.ExportCSV(w, states, times, scale)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	defer closeFn()
	return storage.ExportJSON(w, meta, states, times)
}

func output() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Error(context.Background(), "close output", err, "path", outFile)
		}
	}, nil
}

func compareIntegrators(base *config.Config, names []string) error {
	reg := experiment.NewRegistry()
	if len(names) == 0 {
		names = reg.ListIntegrators()
	}

	ctx := context.Background()
	bh := base.Body()
	rs := bh.SchwarzschildRadius()

	var (
		series  [][]float64
		results []*sim.Result
	)
	for _, name := range names {
		cfg := *base
		cfg.Integrator = name

		exp := experiment.New(&cfg)
		if err := exp.Setup(reg, logger); err != nil {
			return err
		}
		start := time.Now()
		result, err := exp.Run(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug(ctx, "compare run finished", "integrator", name, "elapsed", time.Since(start))

		results = append(results, result)
		series = append(series, viz.RadiusSeries(result.States, rs))
	}

	fmt.Printf("law: %s  r0: %.2f rs  steps: %d\n\n", base.Law, base.Orbit.RadiusRs, base.Run.Steps)
	fmt.Println(viz.PlotCompare(series, names, "radius (rs)"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tRADIUS DRIFT\tSPEED DRIFT\tENERGY DRIFT\tL DRIFT\tABSORBED")
	for i, r := range results {
		absorbed := "-"
		if r.Absorbed {
			absorbed = fmt.Sprintf("step %d", r.AbsorbedStep)
		}
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\t%.3e\t%s\n",
			names[i],
			r.Metrics["radius_drift"],
			r.Metrics["speed_drift"],
			r.Metrics["energy_drift"],
			r.Metrics["angular_momentum_drift"],
			absorbed,
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLAW\tINTEG\tR0\tSPEED\tSTEPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f rs\t%.2f v_circ\t%d\n",
			name, p.Law, p.Integrator, p.Orbit.RadiusRs, p.Orbit.SpeedFactor, p.Run.Steps)
	}
	return w.Flush()
}

func runLive(cfg *config.Config) error {
	exp := experiment.New(cfg)
	reg := experiment.NewRegistry()
	if err := exp.Setup(reg, logger); err != nil {
		return err
	}
	s := exp.GetSimulator()

	model := viz.NewLiveModel(exp.Body(), s.Law(), s.Stepper(), exp.InitialState(), exp.Dt(), perFrame, frameRate)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func printHorizon(cmd *cobra.Command, args []string) error {
	if !(massSolar > 0) {
		return fmt.Errorf("%w: mass must be positive, got %v", config.ErrInvalid, massSolar)
	}
	bh := gravity.FromSolarMass(massSolar)
	fmt.Println(viz.RenderSummary("black hole", []viz.Field{
		viz.F("mass", "%.6g Msun (%.6e kg)", massSolar, bh.MassKg),
		viz.F("r_s", "%.6e m (%.3f km)", bh.SchwarzschildRadius(), bh.SchwarzschildRadius()/1e3),
		viz.F("capture radius", "%.6e m", gravity.AbsorptionMargin*bh.SchwarzschildRadius()),
		viz.F("marginally bound", "%.6e m", bh.MarginallyBound()),
		viz.F("isco", "%.6e m", bh.ISCO()),
	}))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	bh := gravity.FromSolarMass(meta.MassSolar)
	rs := bh.SchwarzschildRadius()
	sum := analysis.Analyze(states, times)

	fields := []viz.Field{
		viz.F("samples", "%d", sum.Samples),
		viz.F("apsides", "%d", len(sum.Apsides)),
	}
	if sum.Periapsis > 0 {
		fields = append(fields, viz.F("periapsis", "%.6f rs", sum.Periapsis/rs))
	}
	if sum.Apoapsis > 0 {
		fields = append(fields, viz.F("apoapsis", "%.6f rs", sum.Apoapsis/rs))
		fields = append(fields, viz.F("eccentricity", "%.6f", sum.Eccentricity))
	}
	if sum.RadialPeriod > 0 {
		fields = append(fields, viz.F("radial period", "%.6e s", sum.RadialPeriod))
	}
	if len(sum.Precession) > 0 {
		fields = append(fields, viz.F("precession", "%.6f rad/orbit", sum.MeanPrecession))
	}
	if sum.SpectralPeriod > 0 {
		fields = append(fields, viz.F("spectral period", "%.6e s", sum.SpectralPeriod))
	}
	fmt.Println(viz.RenderSummary(fmt.Sprintf("%s (%s, %s)", meta.ID, meta.Law, meta.Integrator), fields))

	if pts := sum.Section.Points; len(pts) > 1 {
		c := viz.NewCanvas(40, 16)
		v := viz.NewViewport(c, 1.1*max(sum.Apoapsis, sum.Periapsis))
		cx, cy := v.Project(0, 0)
		c.DrawCircle(cx, cy, v.Pixels(rs))
		for _, p := range pts {
			x, y := v.Project(p.X, p.Y)
			c.Set(x, y)
		}
		fmt.Println()
		fmt.Println(viz.Title.Render("periapsis section (orbital plane)"))
		fmt.Print(c.String())
	}

	if n := analysis.UniformPrefix(times); n >= 4 {
		_, power := analysis.RadialSpectrum(viz.RadiusSeries(states[:n], rs), times[1]-times[0])
		if len(power) > 0 {
			fmt.Println()
			fmt.Println(viz.PlotSeries(power[:min(len(power), 64)], "radial amplitude spectrum (low bins)"))
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := output()
	if err != nil {
		return err
	}
	defer closeFn()
	rs := gravity.FromSolarMass(meta.MassSolar).SchwarzschildRadius()
	return export.OrbitSVG(w, states, rs, svgSize, "#00ccff")
}

func scanCapture(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp := experiment.New(cfg)
	if err := exp.Setup(experiment.NewRegistry(), logger); err != nil {
		return err
	}

	speedLaw, err := gravity.LawByName(cfg.Law)
	if err != nil {
		return err
	}
	if cfg.Orbit.SpeedLaw != "" {
		if speedLaw, err = gravity.LawByName(cfg.Orbit.SpeedLaw); err != nil {
			return err
		}
	}

	scan := &optim.SpeedScan{
		RadiusRs: cfg.Orbit.RadiusRs,
		SpeedLaw: speedLaw,
		Factors:  optim.Linspace(scanFrom, scanTo, scanN),
	}
	logger.Info(ctx, "scanning launch speeds", "law", cfg.Law, "radius_rs", cfg.Orbit.RadiusRs, "n", len(scan.Factors))

	points, err := scan.Run(ctx, exp.GetSimulator(), cfg.SimConfig(exp.Dt()))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED\tCAPTURED\tMIN R")
	for _, p := range points {
		captured := "-"
		if p.Absorbed {
			captured = fmt.Sprintf("step %d", p.AbsorbedStep)
		}
		fmt.Fprintf(w, "%.4f\t%s\t%.4f rs\n", p.SpeedFactor, captured, p.MinRadiusRs)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if f, ok := optim.CaptureThreshold(points); ok {
		fmt.Printf("\ncapture threshold: %.4f v_circ\n", f)
	} else {
		fmt.Println("\nscan does not bracket the capture threshold")
	}
	return nil
}

func runMetadata(cfg *config.Config, dt float64, result *sim.Result) storage.RunMetadata {
	return storage.RunMetadata{
		Law:          cfg.Law,
		Integrator:   cfg.Integrator,
		MassSolar:    cfg.MassSolar,
		RadiusRs:     cfg.Orbit.RadiusRs,
		Dt:           dt,
		Steps:        cfg.Run.Steps,
		StepsTaken:   result.StepsTaken,
		Absorbed:     result.Absorbed,
		AbsorbedStep: result.AbsorbedStep,
		Metrics:      result.Metrics,
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	defer st.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tLAW\tINTEG\tSTEPS\tR FINAL\tENERGY DRIFT\tRUN ID")
	for i, r := range results {
		runID := "-"
		if scenario.Steps[i].Save {
			if runID, err = st.Save(runMetadata(r.Config, r.Dt, r.Result), r.Result); err != nil {
				return err
			}
		}
		rs := r.Config.Body().SchwarzschildRadius()
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f rs\t%.3e\t%s\n",
			r.Name, r.Config.Law, r.Config.Integrator, r.Result.StepsTaken,
			r.Result.Final.Pos.Norm()/rs, r.Result.Metrics["energy_drift"], runID)
	}
	return w.Flush()
}

func runMonteCarlo(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
		Base:         cfg,
		Perturbation: perturb,
		NumTrials:    trials,
	}, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	captured, survived := automation.MonteCarloStats(results)
	fmt.Println(viz.RenderSummary("monte carlo", []viz.Field{
		viz.F("law", "%s", cfg.Law),
		viz.F("r0", "%.2f rs", cfg.Orbit.RadiusRs),
		viz.F("speed", "%.3f ± %.1f%%", cfg.Orbit.SpeedFactor, 100*perturb),
		viz.F("trials", "%d", len(results)),
		viz.F("captured", "%d (%.1f%%)", captured, 100*float64(captured)/float64(len(results))),
		viz.F("survived", "%d", survived),
	}))
	return nil
}
