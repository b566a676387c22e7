package sweep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a sweep described in yaml.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Frames      int     `yaml:"frames"`
	FlickerOdds int     `yaml:"flicker_odds"`
	Rules       []int   `yaml:"rules"`
	Temps       []int   `yaml:"temps"`
	Seeds       []int64 `yaml:"seeds"`
	RankBy      string  `yaml:"rank_by"`
}

// LoadScenario reads a scenario and fills unset fields with defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	sc.fill()
	return &sc, nil
}

func (sc *Scenario) fill() {
	if sc.Rows <= 0 {
		sc.Rows = 24
	}
	if sc.Cols <= 0 {
		sc.Cols = 80
	}
	if sc.Frames <= 0 {
		sc.Frames = 200
	}
	if sc.FlickerOdds <= 0 {
		sc.FlickerOdds = 30
	}
	if len(sc.Rules) == 0 {
		sc.Rules = []int{60}
	}
	if len(sc.Temps) == 0 {
		sc.Temps = []int{10}
	}
	if len(sc.Seeds) == 0 {
		sc.Seeds = []int64{1}
	}
	if sc.RankBy == "" {
		sc.RankBy = "flame_height"
	}
}

func (sc *Scenario) Config() Config {
	return Config{Rows: sc.Rows, Cols: sc.Cols, Frames: sc.Frames, FlickerOdds: sc.FlickerOdds}
}

func (sc *Scenario) Points() []Point {
	return Grid(sc.Rules, sc.Temps, sc.Seeds)
}
