// Package sweep runs many headless fires side by side and ranks them by a
// metric. Each run owns its own engine, so runs share no state.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/san-kum/fireplace/internal/fire"
	"github.com/san-kum/fireplace/internal/heater"
	"github.com/san-kum/fireplace/internal/metrics"
	"github.com/san-kum/fireplace/internal/sim"
)

var ErrNoPoints = errors.New("sweep: nothing to run")

type Point struct {
	Rule    int
	MaxTemp int
	Seed    int64
}

type Result struct {
	Point
	Frames  int
	Metrics map[string]float64
}

type Config struct {
	Rows, Cols  int
	Frames      int
	FlickerOdds int
}

// Grid is the cross product of rules, temperatures and seeds.
func Grid(rules, temps []int, seeds []int64) []Point {
	points := make([]Point, 0, len(rules)*len(temps)*len(seeds))
	for _, r := range rules {
		for _, t := range temps {
			for _, s := range seeds {
				points = append(points, Point{Rule: r, MaxTemp: t, Seed: s})
			}
		}
	}
	return points
}

// Seeds returns n consecutive seeds starting at start.
func Seeds(start int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = start + int64(i)
	}
	return seeds
}

// Run simulates every point in parallel. Results keep the order of points.
func Run(ctx context.Context, cfg Config, points []Point) ([]Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	results := make([]Result, len(points))
	errs := make([]error, len(points))

	var wg sync.WaitGroup
	for i := range points {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = runOne(ctx, cfg, points[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("rule %d temp %d seed %d: %w",
				points[i].Rule, points[i].MaxTemp, points[i].Seed, err)
		}
	}
	return results, nil
}

func runOne(ctx context.Context, cfg Config, p Point) (Result, error) {
	engine, err := fire.New(cfg.Rows, cfg.Cols, fire.Options{
		MaxTemp:     p.MaxTemp,
		Rule:        heater.Rule(p.Rule),
		FlickerOdds: cfg.FlickerOdds,
		Source:      rand.New(rand.NewSource(p.Seed)),
	})
	if err != nil {
		return Result{}, err
	}

	runner := sim.New(engine, sim.NewHeadless(cfg.Rows, cfg.Cols), sim.Config{MaxFrames: cfg.Frames}, nil)
	runner.AddMetric(metrics.NewTotalHeat())
	runner.AddMetric(metrics.NewFlameHeight())
	runner.AddMetric(metrics.NewLitFraction())

	if err := runner.Run(ctx); err != nil {
		return Result{}, err
	}
	return Result{Point: p, Frames: engine.Frame(), Metrics: runner.Metrics()}, nil
}

// Rank sorts results by metric, highest first. Ties keep their order.
func Rank(results []Result, metric string) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics[metric] > results[j].Metrics[metric]
	})
}
