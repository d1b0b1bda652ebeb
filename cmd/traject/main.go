package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/traject/internal/analysis"
	"github.com/san-kum/traject/internal/config"
	"github.com/san-kum/traject/internal/engine"
	"github.com/san-kum/traject/internal/experiment"
	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/motion"
	"github.com/san-kum/traject/internal/scene"
	"github.com/san-kum/traject/internal/store"
	"github.com/san-kum/traject/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir   string
	dt        float64
	physicsDt float64
	duration  float64
	seed      int64
	frameRate int
	numRuns   int
	// Generator parameters
	baseRadius      float64
	angularSpeed    float64
	verticalSpeed   float64
	scale           float64
	speedMultiplier float64
	velX            float64
	velY            float64
	velZ            float64
	// Analysis axis
	axis string
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "traject",
		Short: "procedural trajectory generation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".traject", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [generator]",
		Short: "run a trajectory and store it",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	generatorsCmd := &cobra.Command{
		Use:   "generators",
		Short: "list available generators",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range experiment.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "top-down path plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&axis, "axis", "y", "coordinate axis (x, y, z)")

	liveCmd := &cobra.Command{
		Use:   "live [generator]",
		Short: "animate a trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "animate a scene of concurrent objects",
		RunE:  runDemo,
	}
	demoCmd.Flags().Float64Var(&duration, "time", 3.0, "duration")
	demoCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run points to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [generator]",
		Short: "list available presets for a generator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for generator: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [generator1] [generator2] ...",
		Short: "compare generators over the same run",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareGenerators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "frame timestep")
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")

	benchCmd := &cobra.Command{
		Use:   "bench [generator]",
		Short: "benchmark a generator",
		Args:  cobra.ExactArgs(1),
		RunE:  benchGenerator,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 4, "parallel runs per configuration")

	rootCmd.AddCommand(runCmd, listCmd, generatorsCmd, plotCmd, phaseCmd, analyzeCmd,
		liveCmd, demoCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd,
		compareCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "frame timestep")
	cmd.Flags().Float64Var(&physicsDt, "physics-dt", 0, "physics timestep (0 = frame timestep)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&baseRadius, "base-radius", 0, "spiral base radius")
	cmd.Flags().Float64Var(&angularSpeed, "angular-speed", 0, "spiral angular speed")
	cmd.Flags().Float64Var(&verticalSpeed, "vertical-speed", 0, "spiral vertical speed")
	cmd.Flags().Float64Var(&scale, "scale", 0, "lissajous scale")
	cmd.Flags().Float64Var(&speedMultiplier, "speed-multiplier", 0, "lissajous speed multiplier")
	cmd.Flags().Float64Var(&velX, "vx", 0, "drift velocity x")
	cmd.Flags().Float64Var(&velY, "vy", 0, "drift velocity y")
	cmd.Flags().Float64Var(&velZ, "vz", 0, "drift velocity z")
}

// resolveConfig merges preset, config file, and CLI flags. Flags win over
// the config file, the config file wins over the preset.
func resolveConfig(cmd *cobra.Command, generator string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Generator = generator

	if preset != "" {
		p := config.GetPreset(generator, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(generator))
		}
		copied := *p
		cfg = &copied
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		loaded.Generator = generator
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("physics-dt") {
		cfg.PhysicsDt = physicsDt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("base-radius") {
		cfg.Params.BaseRadius = baseRadius
	}
	if cmd.Flags().Changed("angular-speed") {
		cfg.Params.AngularSpeed = angularSpeed
	}
	if cmd.Flags().Changed("vertical-speed") {
		cfg.Params.VerticalSpeed = verticalSpeed
	}
	if cmd.Flags().Changed("scale") {
		cfg.Params.Scale = scale
	}
	if cmd.Flags().Changed("speed-multiplier") {
		cfg.Params.SpeedMultiplier = speedMultiplier
	}
	if cmd.Flags().Changed("vx") {
		cfg.Params.VX = velX
	}
	if cmd.Flags().Changed("vy") {
		cfg.Params.VY = velY
	}
	if cmd.Flags().Changed("vz") {
		cfg.Params.VZ = velZ
	}

	return cfg, nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	generator := args[0]

	cfg, err := resolveConfig(cmd, generator)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	gen, err := registry.Get(generator)
	if err != nil {
		return err
	}

	expCfg := experiment.Config{
		Generator: generator,
		Dt:        cfg.Dt,
		PhysicsDt: cfg.PhysicsDt,
		Duration:  cfg.Duration,
		Seed:      cfg.Seed,
		Params:    cfg.GeneratorParams(),
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(gen, registry.DefaultMetrics(generator)); err != nil {
		return err
	}

	fmt.Printf("running %s trajectory...\n", generator)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(generator, motion.Config{
		Dt:        cfg.Dt,
		PhysicsDt: cfg.PhysicsDt,
		Duration:  cfg.Duration,
		Seed:      cfg.Seed,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesTaken)
	if len(result.Errors) > 0 {
		fmt.Printf("errors: %d (first: %v)\n", len(result.Errors), result.Errors[0])
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tGENERATOR\tTIME\tDURATION\tDT\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Generator,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, _, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("generator: %s\n", meta.Generator)
	fmt.Printf("samples: %d\n\n", len(points))

	axes := []struct {
		caption string
		get     func(motion.Point) float64
	}{
		{"x vs time", func(p motion.Point) float64 { return p.X }},
		{"y (height) vs time", func(p motion.Point) float64 { return p.Y }},
		{"z vs time", func(p motion.Point) float64 { return p.Z }},
	}

	for _, a := range axes {
		data := make([]float64, len(points))
		for i, p := range points {
			data[i] = a.get(p)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(a.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func axisValue(p motion.Point, name string) (float64, error) {
	switch name {
	case "x":
		return p.X, nil
	case "y":
		return p.Y, nil
	case "z":
		return p.Z, nil
	}
	return 0, fmt.Errorf("unknown axis: %s", name)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, _, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data")
	}

	data := make([]float64, len(points))
	for i, p := range points {
		data[i], err = axisValue(p, axis)
		if err != nil {
			return err
		}
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("generator: %s, axis: %s\n\n", meta.Generator, axis)

	ps := analysis.PowerSpectrum(analysis.Pad(data))
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", axis)),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(data, meta.Duration)
	fmt.Printf("dominant frequency: %.3f hz (power %.3e)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	generator := args[0]

	cfg, err := resolveConfig(cmd, generator)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = frameRate
	}

	registry := experiment.NewRegistry()
	gen, err := registry.Get(generator)
	if err != nil {
		return err
	}
	if err := experiment.ApplyParams(gen, cfg.GeneratorParams()); err != nil {
		return err
	}

	m := viz.NewModel(gen, generator, cfg.Dt, cfg.FPS)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	mgr := scene.NewManager(log)

	orbiter := scene.NewObject("orbiter", generators.NewSpiral(), generators.NewSpinner())
	wanderer := scene.NewObject("wanderer", generators.NewLissajous(), nil)
	if err := mgr.Add(orbiter); err != nil {
		return err
	}
	if err := mgr.Add(wanderer); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(duration*float64(time.Second)))
	defer cancel()

	var mu sync.Mutex
	frames := make(map[string]int)
	onUpdate := func(name string, tr scene.Transform) {
		mu.Lock()
		defer mu.Unlock()
		frames[name]++
		if frames[name]%frameRate == 0 {
			fmt.Printf("%-10s pos=(%7.3f, %7.3f, %7.3f) rot=(%6.1f, %6.1f, %6.1f)\n",
				name,
				tr.Position.X, tr.Position.Y, tr.Position.Z,
				tr.Rotation.X, tr.Rotation.Y, tr.Rotation.Z)
		}
	}

	for _, name := range mgr.Names() {
		if err := mgr.Start(ctx, name, frameRate, onUpdate); err != nil {
			return err
		}
	}

	<-ctx.Done()
	mgr.StopAll()
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta, nil, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	points, times, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	for i, p := range points {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, times, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSONStdout(meta, points, times)
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	points, _, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("top-down path: %s\n", meta.ID)
	fmt.Printf("generator: %s (x horizontal, z vertical)\n\n", meta.Generator)

	xData := make([]float64, len(points))
	zData := make([]float64, len(points))
	for i, p := range points {
		xData[i] = p.X
		zData[i] = p.Z
	}

	xMin, xMax := xData[0], xData[0]
	zMin, zMax := zData[0], zData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if zData[i] < zMin {
			zMin = zData[i]
		}
		if zData[i] > zMax {
			zMax = zData[i]
		}
	}

	xRange := xMax - xMin
	zRange := zMax - zMin
	if xRange == 0 {
		xRange = 1
	}
	if zRange == 0 {
		zRange = 1
	}

	width := 70
	height := 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (zData[i] - zMin) / zRange)
		py = height - 1 - py
		if px >= 0 && px < width && py >= 0 && py < height {
			if i < len(xData)/3 {
				canvas[py][px] = '.'
			} else if i < 2*len(xData)/3 {
				canvas[py][px] = 'o'
			} else {
				canvas[py][px] = '●'
			}
		}
	}

	fmt.Printf("  %.2f ┌%s┐\n", zMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Printf("  %.2f │", (zMax+zMin)/2)
		} else {
			fmt.Print("       │")
		}
		fmt.Print(string(canvas[i]))
		fmt.Println("│")
	}
	fmt.Printf("  %.2f └%s┘\n", zMin, strings.Repeat("─", width))

	fmt.Printf("       %.2f%s%.2f\n", xMin, strings.Repeat(" ", width-20), xMax)
	fmt.Printf("\nLegend: . = early, o = middle, ● = late\n")

	return nil
}

func compareGenerators(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	fmt.Printf("comparing generators (dt=%.4f, duration=%.1fs)\n\n", dt, duration)
	fmt.Printf("%-12s  %-12s  %-14s  %-12s  %-10s\n", "generator", "path_length", "max_excursion", "final_point", "time_ms")
	fmt.Println(strings.Repeat("-", 70))

	for _, name := range args {
		gen, err := registry.Get(name)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		exp := experiment.New(experiment.Config{
			Generator: name,
			Dt:        dt,
			Duration:  duration,
		})
		if err := exp.Setup(gen, registry.DefaultMetrics(name)); err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := exp.Run(context.Background())
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		final := motion.Point{}
		if len(result.Points) > 0 {
			final = result.Points[len(result.Points)-1]
		}
		fmt.Printf("%-12s  %12.4f  %14.4f  %12.4f  %10.2f\n",
			name,
			result.Metrics["path_length"],
			result.Metrics["max_excursion"],
			final.Norm(),
			float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func benchGenerator(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := experiment.NewRegistry()
	factory, err := registry.Factory(name)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s (%d parallel runs per cell)\n\n", name, numRuns)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tFRAMES\tTIME\tFRAMES/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			cfg := motion.Config{
				Dt:       step,
				Duration: dur,
				Seed:     42,
			}

			ensemble := engine.NewEnsemble(factory, numRuns)

			start := time.Now()
			results, err := ensemble.Run(context.Background(), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			frames := 0
			for _, r := range results {
				frames += r.FramesTaken
			}
			framesPerSec := float64(frames) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, step, frames, elapsed, framesPerSec)
		}
	}

	return w.Flush()
}
