package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/san-kum/fireplace/internal/analysis"
	"github.com/san-kum/fireplace/internal/export"
	"github.com/san-kum/fireplace/internal/metrics"
	"github.com/san-kum/fireplace/internal/sim"
	"github.com/san-kum/fireplace/internal/palette"
	"github.com/san-kum/fireplace/internal/store"
)

var (
	statsFrames int
	statsRows   int
	statsCols   int
	statsSave   bool
	statsPlot   bool
	statsSVG    string
	plotSVG     string
)

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "run the fire headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&statsFrames, "frames", 200, "number of frames to simulate")
	statsCmd.Flags().IntVar(&statsRows, "rows", 0, "grid rows, 0 for the terminal height")
	statsCmd.Flags().IntVar(&statsCols, "cols", 0, "grid columns, 0 for the terminal width")
	statsCmd.Flags().BoolVar(&statsSave, "save", false, "save the run to the data directory")
	statsCmd.Flags().BoolVar(&statsPlot, "plot", true, "plot heat and flame height")
	statsCmd.Flags().StringVar(&statsSVG, "svg", "", "write the final frame to this svg file")
	return statsCmd
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func newPlotCmd() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotSVG, "svg", "", "also write flame height to this svg file")
	return plotCmd
}

// statsSize falls back to the terminal size, then to 24x80.
func statsSize() (rows, cols int) {
	rows, cols = statsRows, statsCols
	if rows > 0 && cols > 0 {
		return rows, cols
	}
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	if rows <= 0 {
		rows = h
	}
	if cols <= 0 {
		cols = w
	}
	return rows, cols
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if statsFrames < 1 {
		return fmt.Errorf("frames must be positive, got %d", statsFrames)
	}

	logger, closeLog, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	rows, cols := statsSize()
	engine, err := newEngine(cfg, rows, cols)
	if err != nil {
		return err
	}

	runner := sim.New(engine, sim.NewHeadless(rows, cols), sim.Config{
		Glyph:     cfg.GlyphRune(),
		MaxFrames: statsFrames,
	}, logger)

	series := metrics.NewSeries(statsFrames)
	runner.AddObserver(series)
	runner.AddMetric(metrics.NewTotalHeat())
	runner.AddMetric(metrics.NewFlameHeight())
	runner.AddMetric(metrics.NewLitFraction())

	start := time.Now()
	if err := runner.Run(cmd.Context()); err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%dx%d grid, %d frames, rule %d, temp %d, seed %d\n",
		rows, cols, engine.Frame(), cfg.Rule, cfg.MaxTemp, cfg.Seed)
	if elapsed > 0 {
		fmt.Fprintf(out, "%.0f frames/sec\n", float64(engine.Frame())/elapsed.Seconds())
	}
	fmt.Fprintln(out)

	results := runner.Metrics()
	if err := printMetrics(out, results); err != nil {
		return err
	}

	if statsPlot {
		plotSeries(out, series.Samples)
	}

	if statsSVG != "" {
		p := palette.Resolve(cfg.Palette, 256)
		svg := export.FieldToSVG(engine.Field(), p, engine.MaxTemp(), 8)
		if err := os.WriteFile(statsSVG, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", statsSVG)
	}

	if statsSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(store.RunMetadata{
			Seed:    cfg.Seed,
			Rows:    rows,
			Cols:    cols,
			Frames:  engine.Frame(),
			MaxTemp: cfg.MaxTemp,
			Rule:    cfg.Rule,
			FPS:     cfg.FPS,
			Metrics: results,
		}, series.Samples)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(out, "saved run %s\n", runID)
	}
	return nil
}

func printMetrics(out io.Writer, results map[string]float64) error {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, results[name])
	}
	return w.Flush()
}

func plotSeries(out io.Writer, samples []metrics.Sample) {
	if len(samples) < 2 {
		return
	}
	series := &metrics.Series{Samples: samples}

	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(series.Heat(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total heat per frame"),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(series.Height(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("flame height per frame"),
	))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAMES\tRULE\tTEMP\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows, run.Cols,
			run.Frames,
			run.Rule,
			run.MaxTemp,
			run.Seed,
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
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "size: %dx%d  rule %d  temp %d  seed %d\n",
		meta.Rows, meta.Cols, meta.Rule, meta.MaxTemp, meta.Seed)
	fmt.Fprintf(out, "samples: %d\n", len(samples))
	plotSeries(out, samples)

	if plotSVG != "" {
		series := &metrics.Series{Samples: samples}
		svg := export.SeriesToSVG(series.Height(), 800, 200, "#ff7f19")
		if err := os.WriteFile(plotSVG, []byte(svg), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Fprintf(out, "wrote %s\n", plotSVG)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "flicker analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "flicker analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "rule %d, temp %d, %d frames\n\n", meta.Rule, meta.MaxTemp, len(samples))

	height := (&metrics.Series{Samples: samples}).Height()
	ps := analysis.PowerSpectrum(height)
	fmt.Fprintln(out, asciigraph.Plot(ps[1:],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (flame height)"),
	))
	fmt.Fprintln(out)

	f := analysis.DominantFlicker(height)
	if f.Bin == 0 {
		fmt.Fprintln(out, "no periodic flicker")
		return nil
	}
	fmt.Fprintf(out, "dominant period: %.1f frames\n", f.Period)
	if meta.FPS > 0 {
		fmt.Fprintf(out, "at %d fps: %.2f s\n", meta.FPS, f.Period/float64(meta.FPS))
	}
	return nil
}
