package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"sphlab/internal/analysis"
	"sphlab/internal/app"
	"sphlab/internal/config"
	"sphlab/internal/export"
	"sphlab/internal/solver"
	"sphlab/internal/storage"
	"sphlab/internal/viz"
)

var (
	dataDir    string
	dx         float64
	hdx        float64
	rho0       float64
	c0         float64
	gamma      float64
	alpha      float64
	beta       float64
	xsphEps    float64
	dt         float64
	tf         float64
	integrator string
	nnpsName   string
	adaptive   bool
	cfl        float64
	every      int
	configFile string
	preset     string
	frameRate  int
	snapIndex  int
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sphlab",
		Short: "smoothed-particle hydrodynamics lab",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [case]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addCaseFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "render a stored snapshot in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}
	viewCmd.Flags().IntVar(&snapIndex, "snap", -1, "snapshot index (-1 for last)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a snapshot to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&snapIndex, "snap", -1, "snapshot index (-1 for last)")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "drop.svg", "output file")

	liveCmd := &cobra.Command{
		Use:   "live [case]",
		Short: "run simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addCaseFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [case]",
		Short: "list available presets for a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for case: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [case]",
		Short: "benchmark case across resolutions",
		Args:  cobra.ExactArgs(1),
		RunE:  benchCase,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [case] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same case",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addCaseFlags(compareCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, viewCmd, exportJSONCmd,
		exportCSVCmd, exportSVGCmd, liveCmd, presetsCmd, benchCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dx, "dx", config.DefaultDx, "particle spacing")
	cmd.Flags().Float64Var(&hdx, "hdx", config.DefaultHdx, "smoothing length factor")
	cmd.Flags().Float64Var(&rho0, "rho0", config.DefaultRho0, "reference density")
	cmd.Flags().Float64Var(&c0, "c0", config.DefaultC0, "speed of sound")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "tait exponent")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "artificial viscosity alpha")
	cmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "artificial viscosity beta")
	cmd.Flags().Float64Var(&xsphEps, "xsph-eps", config.DefaultXSPHEps, "xsph smoothing")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tf, "tf", config.DefaultTFinal, "final time")
	cmd.Flags().StringVar(&integrator, "integrator", "pec", "integrator (pec, euler)")
	cmd.Flags().StringVar(&nnpsName, "nnps", "linked_cell", "neighbor search (linked_cell, brute)")
	cmd.Flags().BoolVar(&adaptive, "adaptive", false, "cfl-adaptive timestep")
	cmd.Flags().Float64Var(&cfl, "cfl", 0.3, "cfl number")
	cmd.Flags().IntVar(&every, "every", 100, "snapshot every n steps")
}

// resolveConfig layers preset, config file, and flags, lowest priority
// first. Flags only win when explicitly set.
func resolveConfig(cmd *cobra.Command, caseName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Case = caseName

	if preset != "" {
		p := config.GetPreset(caseName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(caseName))
		}
		cfg = p
		cfg.Case = caseName
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.Case = caseName
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("dx") {
		cfg.Dx = dx
	}
	if flags.Changed("hdx") {
		cfg.Hdx = hdx
	}
	if flags.Changed("rho0") {
		cfg.Rho0 = rho0
	}
	if flags.Changed("c0") {
		cfg.C0 = c0
	}
	if flags.Changed("gamma") {
		cfg.Gamma = gamma
	}
	if flags.Changed("alpha") {
		cfg.Alpha = alpha
	}
	if flags.Changed("beta") {
		cfg.Beta = beta
	}
	if flags.Changed("xsph-eps") {
		cfg.XSPHEps = xsphEps
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("tf") {
		cfg.TFinal = tf
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("nnps") {
		cfg.NNPS = nnpsName
	}
	if flags.Changed("adaptive") {
		cfg.Adaptive = adaptive
	}
	if flags.Changed("cfl") {
		cfg.CFL = cfl
	}
	if flags.Changed("every") {
		cfg.OutputEvery = every
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", cfg.Case)

	out, err := app.New(cfg).Run(context.Background())
	if err != nil {
		return err
	}

	for _, runErr := range out.Result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", runErr)
	}

	runID, err := st.Save(cfg, out.Particles, out.Result)
	if err != nil {
		return err
	}

	fmt.Printf("setup took: %v\n", out.SetupTime)
	fmt.Printf("run took: %v\n", out.RunTime)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("particles: %d\n", out.Particles)
	fmt.Printf("steps: %d\n", out.Result.StepsTaken)

	fmt.Println("\nmetrics:")
	for name, val := range out.Result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	ax, ay := analysis.SemiAxes(out.Fluid.Prop("x"), out.Fluid.Prop("y"))
	_, a := analysis.ExactSolution(out.Result.FinalT, 1e-6)
	fmt.Printf("\nsemi-axes: %.4f x %.4f (exact %.4f x %.4f)\n", ax, ay, a, 1.0/a)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASE\tTIME\tDX\tDT\tTF\tPARTICLES\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.2e\t%.4f\t%d\t%s\n",
			run.ID,
			run.Case,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dx,
			run.Dt,
			run.TFinal,
			run.Particles,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("case: %s\n", meta.Case)
	fmt.Printf("samples: %d\n\n", len(snaps))

	axData := make([]float64, len(snaps))
	ayData := make([]float64, len(snaps))
	rhoData := make([]float64, len(snaps))
	for i, snap := range snaps {
		axData[i], ayData[i] = analysis.SemiAxes(snap.X, snap.Y)
		maxDev := 0.0
		for _, r := range snap.Rho {
			dev := r - 1.0
			if dev < 0 {
				dev = -dev
			}
			if dev > maxDev {
				maxDev = dev
			}
		}
		rhoData[i] = maxDev
	}

	series := []struct {
		data    []float64
		caption string
	}{
		{axData, "semi-axis x vs output"},
		{ayData, "semi-axis y vs output"},
		{rhoData, "max density deviation vs output"},
	}

	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func pickSnapshot(snaps []solver.Snapshot) (solver.Snapshot, error) {
	if len(snaps) == 0 {
		return solver.Snapshot{}, fmt.Errorf("no snapshots stored")
	}
	idx := snapIndex
	if idx < 0 {
		idx = len(snaps) - 1
	}
	if idx >= len(snaps) {
		return solver.Snapshot{}, fmt.Errorf("snapshot index %d out of range (%d stored)", idx, len(snaps))
	}
	return snaps[idx], nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}

	snap, err := pickSnapshot(snaps)
	if err != nil {
		return err
	}

	fmt.Printf("t = %.6f, %d particles\n\n", snap.T, len(snap.X))
	fmt.Print(viz.RenderSnapshot(snap, 70, 30))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	snaps, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Case = meta.Case
	cfg.Dx = meta.Dx
	cfg.Dt = meta.Dt
	cfg.TFinal = meta.TFinal
	cfg.Integrator = meta.Integrator

	result := &solver.Result{
		Snapshots: snaps,
		Metrics:   meta.Metrics,
	}

	return storage.ExportJSONStdout(cfg, result)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"t", "i", "x", "y", "u", "v", "rho", "p"}); err != nil {
		return err
	}

	for _, snap := range snaps {
		ts := strconv.FormatFloat(snap.T, 'g', -1, 64)
		for i := range snap.X {
			row := []string{
				ts,
				strconv.Itoa(i),
				strconv.FormatFloat(snap.X[i], 'g', -1, 64),
				strconv.FormatFloat(snap.Y[i], 'g', -1, 64),
				strconv.FormatFloat(snap.U[i], 'g', -1, 64),
				strconv.FormatFloat(snap.V[i], 'g', -1, 64),
				strconv.FormatFloat(snap.Rho[i], 'g', -1, 64),
				strconv.FormatFloat(snap.P[i], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}

	snap, err := pickSnapshot(snaps)
	if err != nil {
		return err
	}

	if err := export.WriteSnapshotSVG(outFile, snap, 800, 800); err != nil {
		return err
	}

	fmt.Printf("wrote %s (t = %.6f, %d particles)\n", outFile, snap.T, len(snap.X))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	m, err := viz.NewModel(app.New(cfg), cfg.Case, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func benchCase(cmd *cobra.Command, args []string) error {
	caseName := args[0]
	spacings := []float64{0.1, 0.05, 0.025}

	fmt.Printf("benchmarking %s\n\n", caseName)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DX\tPARTICLES\tSTEPS\tTIME\tSTEPS/SEC")

	for _, spacing := range spacings {
		cfg := config.DefaultConfig()
		cfg.Case = caseName
		cfg.Dx = spacing
		cfg.TFinal = 100 * cfg.Dt // keep each point short
		cfg.OutputEvery = 0

		out, err := app.New(cfg).Run(context.Background())
		if err != nil {
			return err
		}

		stepsPerSec := float64(out.Result.StepsTaken) / out.RunTime.Seconds()
		fmt.Fprintf(w, "%.4f\t%d\t%d\t%v\t%.0f\n",
			spacing, out.Particles, out.Result.StepsTaken, out.RunTime, stepsPerSec)
	}

	return w.Flush()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	caseName := args[0]
	integrators := args[1:]

	cfg, err := resolveConfig(cmd, caseName)
	if err != nil {
		return err
	}

	_, a := analysis.ExactSolution(cfg.TFinal, 1e-6)

	fmt.Printf("comparing integrators for %s (dt=%.2e, tf=%.4f)\n\n", caseName, cfg.Dt, cfg.TFinal)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tSEMI-AXIS X\tEXACT\tERROR\tTIME")

	for _, name := range integrators {
		runCfg := *cfg
		runCfg.Integrator = name

		out, err := app.New(&runCfg).Run(context.Background())
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", name, err)
			continue
		}

		ax, _ := analysis.SemiAxes(out.Fluid.Prop("x"), out.Fluid.Prop("y"))
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.2e\t%v\n", name, ax, a, ax-a, out.RunTime)
	}

	return w.Flush()
}
