package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/skalyan/odekit/internal/config"
	"github.com/skalyan/odekit/internal/experiment"
	"github.com/skalyan/odekit/internal/integrators"
	"github.com/skalyan/odekit/internal/models"
	"github.com/skalyan/odekit/internal/ode"
	"github.com/skalyan/odekit/internal/storage"
	"github.com/skalyan/odekit/internal/sweep"
	"github.com/skalyan/odekit/internal/viz"
)

var (
	dataDir    string
	method     string
	dt         float64
	horizon    float64
	v0         float64
	y0         float64
	pos        float64
	vel        float64
	h0         float64
	tol        float64
	shrink     float64
	growth     float64
	maxRejects = 10000
	sqrtShrink bool
	configFile string
	preset     string
	frameRate  int
	sweepTols  []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odekit",
		Short: "runge-kutta integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odekit", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "fixed-step solve",
		Args:  cobra.ExactArgs(1),
		RunE:  runFixed,
	}
	runCmd.Flags().StringVar(&method, "method", "heun", "butcher tableau (euler, midpoint, heun, ralston, rk4)")
	runCmd.Flags().Float64Var(&dt, "dt", 0.01, "step size")
	runCmd.Flags().Float64Var(&horizon, "time", 10.0, "horizon")
	runCmd.Flags().Float64Var(&v0, "v0", 0.0, "initial velocity (freefall)")
	runCmd.Flags().Float64Var(&y0, "y0", 1.0, "initial value (decay, logistic)")
	runCmd.Flags().Float64Var(&pos, "pos", 1.0, "initial position (oscillator)")
	runCmd.Flags().Float64Var(&vel, "vel", 0.0, "initial velocity (oscillator)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	adaptCmd := &cobra.Command{
		Use:   "adapt [model]",
		Short: "adaptive heun-euler solve",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdaptive,
	}
	adaptCmd.Flags().Float64Var(&horizon, "time", 10.0, "horizon")
	adaptCmd.Flags().Float64Var(&h0, "h0", 0.01, "initial step-size guess")
	adaptCmd.Flags().Float64Var(&tol, "tol", 1e-4, "absolute error tolerance")
	adaptCmd.Flags().Float64Var(&shrink, "shrink", 0.9, "rejection shrink factor")
	adaptCmd.Flags().Float64Var(&growth, "growth", 1.1, "acceptance growth factor")
	adaptCmd.Flags().IntVar(&maxRejects, "max-rejects", 10000, "consecutive rejection limit (0 = unbounded)")
	adaptCmd.Flags().BoolVar(&sqrtShrink, "sqrt-shrink", false, "use the conventional sqrt(tol/err) shrink rule")
	adaptCmd.Flags().Float64Var(&v0, "v0", 0.0, "initial velocity (freefall)")
	adaptCmd.Flags().Float64Var(&y0, "y0", 1.0, "initial value (decay, logistic)")
	adaptCmd.Flags().Float64Var(&pos, "pos", 1.0, "initial position (oscillator)")
	adaptCmd.Flags().Float64Var(&vel, "vel", 0.0, "initial velocity (oscillator)")
	adaptCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	adaptCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

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

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model]",
		Short: "compare fixed-step and adaptive solves against the exact solution",
		Args:  cobra.ExactArgs(1),
		RunE:  compareSolvers,
	}
	compareCmd.Flags().StringVar(&method, "method", "heun", "fixed-step tableau")
	compareCmd.Flags().Float64Var(&dt, "dt", 0.025, "fixed step size")
	compareCmd.Flags().Float64Var(&horizon, "time", 1.5, "horizon")
	compareCmd.Flags().Float64Var(&h0, "h0", 0.025, "adaptive initial step-size guess")
	compareCmd.Flags().Float64Var(&tol, "tol", 1e-2, "adaptive tolerance")
	compareCmd.Flags().Float64Var(&shrink, "shrink", 0.9, "rejection shrink factor")
	compareCmd.Flags().Float64Var(&growth, "growth", 1.1, "acceptance growth factor")

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "adaptive solves across a tolerance sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&horizon, "time", 1.5, "horizon")
	sweepCmd.Flags().Float64Var(&h0, "h0", 0.025, "initial step-size guess")
	sweepCmd.Flags().Float64SliceVar(&sweepTols, "tols", []float64{1e-1, 1e-2, 1e-3, 1e-4}, "tolerances")
	sweepCmd.Flags().Float64Var(&shrink, "shrink", 0.9, "rejection shrink factor")
	sweepCmd.Flags().Float64Var(&growth, "growth", 1.1, "acceptance growth factor")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "adaptive solve with live playback",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&horizon, "time", 1.5, "horizon")
	liveCmd.Flags().Float64Var(&h0, "h0", 0.025, "initial step-size guess")
	liveCmd.Flags().Float64Var(&tol, "tol", 1e-2, "absolute error tolerance")
	liveCmd.Flags().Float64Var(&shrink, "shrink", 0.9, "rejection shrink factor")
	liveCmd.Flags().Float64Var(&growth, "growth", 1.1, "acceptance growth factor")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, adaptCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, compareCmd, sweepCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyPresetAndConfig(cmd *cobra.Command, model string) error {
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		dt = cfg.Dt
		horizon = cfg.Horizon
		method = cfg.Method
		v0 = cfg.InitState.V0
		y0 = cfg.InitState.Y0
		pos = cfg.InitState.Pos
		vel = cfg.InitState.Vel
		h0 = cfg.Control.H0
		tol = cfg.Control.Tol
		shrink = cfg.Control.Shrink
		growth = cfg.Control.Growth
		maxRejects = cfg.Control.MaxRejects
		sqrtShrink = !cfg.Control.LegacyShrink
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			horizon = cfg.Horizon
		}
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("v0") {
			v0 = cfg.InitState.V0
		}
		if !cmd.Flags().Changed("y0") {
			y0 = cfg.InitState.Y0
		}
		if !cmd.Flags().Changed("pos") {
			pos = cfg.InitState.Pos
		}
		if !cmd.Flags().Changed("vel") {
			vel = cfg.InitState.Vel
		}
		if !cmd.Flags().Changed("h0") {
			h0 = cfg.Control.H0
		}
		if !cmd.Flags().Changed("tol") {
			tol = cfg.Control.Tol
		}
		if !cmd.Flags().Changed("shrink") {
			shrink = cfg.Control.Shrink
		}
		if !cmd.Flags().Changed("growth") {
			growth = cfg.Control.Growth
		}
		if !cmd.Flags().Changed("max-rejects") {
			maxRejects = cfg.Control.MaxRejects
		}
		if !cmd.Flags().Changed("sqrt-shrink") {
			sqrtShrink = !cfg.Control.LegacyShrink
		}
	}

	return nil
}

func initState(model string) ode.State {
	switch model {
	case "oscillator":
		return ode.State{pos, vel}
	case "decay", "logistic":
		return ode.State{y0}
	default:
		return ode.State{v0}
	}
}

func control() integrators.Control {
	ctrl := integrators.Control{
		H0:         h0,
		Tol:        tol,
		Shrink:     shrink,
		Growth:     growth,
		MaxRejects: maxRejects,
		Validate:   true,
	}
	if sqrtShrink {
		ctrl.Rule = integrators.ShrinkSqrt
	}
	return ctrl
}

func runFixed(cmd *cobra.Command, args []string) error {
	model := args[0]

	if err := applyPresetAndConfig(cmd, model); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}
	tb, err := registry.GetMethod(method)
	if err != nil {
		return err
	}

	fixed := integrators.NewFixed(tb)

	fmt.Printf("running %s with %s, dt=%g...\n", model, method, dt)
	start := time.Now()

	result, err := fixed.Solve(sys, initState(model), horizon, dt)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Model:   model,
		Method:  method,
		Dt:      dt,
		Horizon: horizon,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", result.Samples())
	fmt.Printf("rhs evaluations: %d\n", result.Stats.Evals)

	return nil
}

func runAdaptive(cmd *cobra.Command, args []string) error {
	model := args[0]

	if err := applyPresetAndConfig(cmd, model); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	stepper := integrators.NewHeunEuler()

	fmt.Printf("running %s with heun-euler, tol=%g...\n", model, tol)
	start := time.Now()

	result, err := stepper.Solve(sys, initState(model), horizon, control())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.RunMetadata{
		Model:     model,
		Method:    "heun-euler",
		Adaptive:  true,
		H0:        h0,
		Tolerance: tol,
		Horizon:   horizon,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("accepted steps: %d, rejected: %d\n", result.Stats.Accepted, result.Stats.Rejected)
	fmt.Printf("final time: %.6f\n", result.Times[len(result.Times)-1])

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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tMETHOD\tHORIZON\tSAMPLES\tREJECTED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Method,
			run.Horizon,
			run.Samples,
			run.Rejected,
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

	result, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if result.Samples() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s (%s)\n", meta.Model, meta.Method)
	fmt.Printf("samples: %d\n\n", result.Samples())

	numVars := len(result.States[0])
	for varIdx := 0; varIdx < numVars; varIdx++ {
		caption := fmt.Sprintf("y%d vs sample", varIdx)
		if meta.Model == "freefall" {
			caption = "velocity"
		} else if meta.Model == "oscillator" {
			if varIdx == 0 {
				caption = "position"
			} else {
				caption = "velocity"
			}
		}

		graph := asciigraph.Plot(result.Component(varIdx),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if len(result.Steps) > 0 {
		graph := asciigraph.Plot(result.Steps,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("step size per accepted step"),
		)
		fmt.Println(graph)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	return storage.WriteCSV(os.Stdout, result)
}

func compareSolvers(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}
	tb, err := registry.GetMethod(method)
	if err != nil {
		return err
	}

	x0 := initState(model)

	fixed := integrators.NewFixed(tb)
	fixedRes, err := fixed.Solve(sys, x0.Clone(), horizon, dt)
	if err != nil {
		return err
	}

	stepper := integrators.NewHeunEuler()
	adaptRes, err := stepper.Solve(sys, x0.Clone(), horizon, control())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tSAMPLES\tREJECTED\tEVALS\tMAX ERROR\tENERGY DRIFT")
	fmt.Fprintf(w, "%s (dt=%g)\t%d\t-\t%d\t%s\t%s\n",
		method, dt, fixedRes.Samples(), fixedRes.Stats.Evals, maxErrorString(model, fixedRes), driftString(sys, fixedRes))
	fmt.Fprintf(w, "heun-euler (tol=%g)\t%d\t%d\t%d\t%s\t%s\n",
		tol, adaptRes.Samples(), adaptRes.Stats.Rejected, adaptRes.Stats.Evals, maxErrorString(model, adaptRes), driftString(sys, adaptRes))
	return w.Flush()
}

// driftString reports relative energy drift for systems with a
// conserved energy.
func driftString(sys ode.System, result *ode.Result) string {
	drift, ok := ode.EnergyDrift(sys, result)
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.3e", drift)
}

// maxErrorString reports the max deviation from the closed-form
// solution where one is known.
func maxErrorString(model string, result *ode.Result) string {
	exact := exactFn(model)
	if exact == nil {
		return "n/a"
	}

	maxErr := 0.0
	for i, t := range result.Times {
		err := math.Abs(result.States[i][0] - exact(t))
		if err > maxErr {
			maxErr = err
		}
	}
	return fmt.Sprintf("%.3e", maxErr)
}

func exactFn(model string) func(float64) float64 {
	switch model {
	case "freefall":
		ff := models.NewFreeFall()
		return ff.Exact
	case "decay":
		d := models.NewDecay()
		return func(t float64) float64 { return d.Exact(y0, t) }
	case "oscillator":
		o := models.NewOscillator()
		return func(t float64) float64 { return o.Exact(pos, t) }
	case "logistic":
		l := models.NewLogistic()
		return func(t float64) float64 { return l.Exact(y0, t) }
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	base := control()
	sw := sweep.New(sys, initState(model), horizon)

	start := time.Now()
	results, err := sw.Tolerances(context.Background(), base, sweepTols)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOL\tSAMPLES\tREJECTED\tEVALS\tMAX ERROR")
	for i, res := range results {
		fmt.Fprintf(w, "%.1e\t%d\t%d\t%d\t%s\n",
			sweepTols[i], res.Samples(), res.Stats.Rejected, res.Stats.Evals, maxErrorString(model, res))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d solves in %v\n", len(results), elapsed)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	sys, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	stepper := integrators.NewHeunEuler()
	result, err := stepper.Solve(sys, initState(model), horizon, control())
	if err != nil {
		return err
	}

	return viz.Run(result, model, horizon, tol, frameRate)
}
