package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/san-kum/fireplace/internal/config"
	"github.com/san-kum/fireplace/internal/fire"
	"github.com/san-kum/fireplace/internal/heater"
	"github.com/san-kum/fireplace/internal/sim"
	"github.com/san-kum/fireplace/internal/term"
	"github.com/san-kum/fireplace/internal/viz"
)

var (
	glyphFlag   string
	fpsFlag     string
	tempFlag    string
	ruleFlag    string
	seed        int64
	paletteName string
	backend     string
	status      bool
	configFile  string
	preset      string
	logFile     string
	dataDir     string
)

var errNotTerminal = errors.New("stdout is not a terminal")

const longHelp = `Draws a fire in the terminal.

The bottom edge is heated by a one-dimensional cellular automaton whose
rule is set with -w; heat then rises, spreads and cools every frame.

Keys while running:
  q, Ctrl-C   quit
  k, Up       raise the maximum temperature
  j, Down     lower the maximum temperature (not below 1)
  p           cycle colour palettes (tea backend)

Settings are layered: defaults, then --preset, then --config, then flags.`

// exitError carries the process exit status for flag parse failures.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "fireplace: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprint(stderr, cmd.UsageString())
		return ee.code
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fireplace",
		Short:         "a fire in your terminal",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runFire,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		code := 2
		if strings.HasPrefix(err.Error(), "unknown") {
			code = 1
		}
		return &exitError{code: code, err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&glyphFlag, "char", "c", config.DefaultGlyph, "character drawn for burning cells")
	pf.StringVarP(&fpsFlag, "fps", "f", fmt.Sprint(config.DefaultFPS), "frames per second, 0 for as fast as possible")
	pf.StringVarP(&tempFlag, "temp", "t", fmt.Sprint(config.DefaultMaxTemp), "maximum temperature")
	pf.StringVarP(&ruleFlag, "rule", "w", fmt.Sprint(config.DefaultRule), "wolfram rule for the heater (0-255)")
	pf.Int64Var(&seed, "seed", 0, "random seed, 0 for time based")
	pf.StringVar(&paletteName, "palette", config.DefaultPalette, "colour palette: auto, classic, x256 or doom")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logFile, "log", "", "append diagnostics to this file")
	pf.StringVar(&dataDir, "data", ".fireplace", "run data directory")

	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "display backend: tea or tcell")
	rootCmd.Flags().BoolVar(&status, "status", false, "show a status line")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s temp %-3d rule %-3d fps %-3d palette %s\n",
					name, p.MaxTemp, p.Rule, p.FPS, p.Palette)
			}
			return nil
		},
	}

	rootCmd.AddCommand(presetsCmd, newStatsCmd(), newRunsCmd(), newPlotCmd(), newAnalyzeCmd(), newSweepCmd())
	return rootCmd
}

// buildConfig layers defaults, preset, config file and the flags the user
// actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.Merge(configFile, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("char") {
		cfg.Glyph = glyphFlag
	}
	if flags.Changed("fps") {
		cfg.FPS = config.ParseIntOr(fpsFlag, 0)
	}
	if flags.Changed("temp") {
		cfg.MaxTemp = config.ParseIntOr(tempFlag, config.DefaultMaxTemp)
	}
	if flags.Changed("rule") {
		cfg.Rule = config.ParseIntOr(ruleFlag, config.DefaultRule)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteName
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("status") {
		cfg.Status = status
	}

	cfg.Sanitize()
	return cfg, nil
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "fireplace: ", log.LstdFlags), func() { f.Close() }, nil
}

// resolveSeed fixes a time based seed so it can be reported.
func resolveSeed(cfg *config.Config) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

func newEngine(cfg *config.Config, rows, cols int) (*fire.Engine, error) {
	resolveSeed(cfg)
	return fire.New(rows, cols, fire.Options{
		MaxTemp:     cfg.MaxTemp,
		Rule:        heater.Rule(cfg.Rule),
		FlickerOdds: cfg.FlickerOdds,
		Source:      rand.New(rand.NewSource(cfg.Seed)),
	})
}

func runFire(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, closeLog, err := newLogger(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simCfg := sim.Config{Glyph: cfg.GlyphRune(), FramePeriod: cfg.FramePeriod()}
	logger.Printf("start backend=%s temp=%d rule=%d fps=%d seed=%d",
		cfg.Backend, cfg.MaxTemp, cfg.Rule, cfg.FPS, cfg.Seed)

	if cfg.Backend == "tcell" {
		return runTcell(ctx, cfg, simCfg, logger)
	}
	return runTea(ctx, cfg, simCfg, logger)
}

func runTea(ctx context.Context, cfg *config.Config, simCfg sim.Config, logger *log.Logger) error {
	width, height, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	renderer := lipgloss.NewRenderer(os.Stdout)
	display := viz.NewDisplay(renderer, viz.PickPalette(cfg.Palette, renderer.ColorProfile()), cfg.Status)
	display.SetWindow(width, height)
	rows, cols := display.Size()
	display.Resize(rows, cols)

	engine, err := newEngine(cfg, rows, cols)
	if err != nil {
		return err
	}
	runner := sim.New(engine, display, simCfg, logger)

	return viz.Run(ctx, runner, display, viz.Options{
		Period: simCfg.FramePeriod,
		Status: cfg.Status,
	})
}

func runTcell(ctx context.Context, cfg *config.Config, simCfg sim.Config, logger *log.Logger) error {
	screen, err := term.Open(cfg.Palette)
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	rows, cols := screen.Size()
	engine, err := newEngine(cfg, rows, cols)
	if err != nil {
		return err
	}
	runner := sim.New(engine, screen, simCfg, logger)
	screen.Start(runner.NotifyResize)

	return runner.Run(ctx)
}
