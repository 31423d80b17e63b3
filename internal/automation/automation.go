package automation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/san-kum/labelmaker/internal/config"
	"github.com/san-kum/labelmaker/internal/log"
	"gopkg.in/yaml.v3"
)

// Batch is a scripted list of labels rendered in order.
type Batch struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Labels      []BatchLabel `yaml:"labels"`

	dir string
}

// BatchLabel picks a base config (preset, file, or neither), optionally
// patched by an inline config block.
type BatchLabel struct {
	Preset string    `yaml:"preset"`
	Config string    `yaml:"config"`
	Inline yaml.Node `yaml:"inline"`
	Title  string    `yaml:"title"`
	Output string    `yaml:"output"`
}

// LoadBatch loads a batch from a YAML file. Relative config paths resolve
// against the batch file's directory.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	batch, err := ParseBatch(data)
	if err != nil {
		return nil, err
	}
	batch.dir = filepath.Dir(path)
	return batch, nil
}

func ParseBatch(data []byte) (*Batch, error) {
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, err
	}
	if len(batch.Labels) == 0 {
		return nil, fmt.Errorf("batch %q has no labels", batch.Name)
	}
	return &batch, nil
}

// Resolve builds the label's config: preset or config file first, then the
// inline block, then the title and output overrides.
func (l *BatchLabel) Resolve(baseDir string) (*config.Config, error) {
	if l.Preset != "" && l.Config != "" {
		return nil, fmt.Errorf("%w: set preset or config, not both", config.ErrInvalidConfig)
	}

	cfg := config.DefaultConfig()
	switch {
	case l.Preset != "":
		cfg = config.GetPreset(l.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", l.Preset)
		}
	case l.Config != "":
		path := l.Config
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if l.Inline.Kind != 0 {
		if err := l.Inline.Decode(cfg); err != nil {
			return nil, fmt.Errorf("inline config: %w", err)
		}
	}
	if l.Title != "" {
		cfg.Title = l.Title
	}
	if l.Output != "" {
		cfg.Output.Path = l.Output
	}
	return cfg, nil
}

// RenderFunc renders one resolved label and returns where it was written.
type RenderFunc func(ctx context.Context, cfg *config.Config) (string, error)

type Result struct {
	Index  int
	Title  string
	Output string
	Err    error
}

// Run renders every label in order. A failing label does not stop the
// batch; its error is returned joined with the others. Cancellation is
// checked between labels.
func Run(ctx context.Context, batch *Batch, render RenderFunc) ([]Result, error) {
	results := make([]Result, 0, len(batch.Labels))
	var errs []error

	for i := range batch.Labels {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		label := &batch.Labels[i]
		res := Result{Index: i + 1}

		cfg, err := label.Resolve(batch.dir)
		if err == nil {
			res.Title = cfg.Title
			log.Debugw("rendering batch label", "batch", batch.Name, "index", i+1, "title", cfg.Title)
			res.Output, err = render(ctx, cfg)
		}
		if err != nil {
			res.Err = fmt.Errorf("label %d: %w", i+1, err)
			errs = append(errs, res.Err)
			log.Warnf("batch %s: %v", batch.Name, res.Err)
		}

		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

// RateSweep scales every ramp rate of a rate-driven config across a range
// of factors and reports how the schedule length responds. Factors are
// evaluated concurrently; results keep the factor order.
type RateSweep struct {
	Base      *config.Config
	MinFactor float64
	MaxFactor float64
	NumSteps  int
}

type SweepResult struct {
	Factor    float64
	TotalTime float64
	MaxRate   float64
}

func RunSweep(ctx context.Context, sweep *RateSweep) ([]SweepResult, error) {
	if sweep.Base == nil || !sweep.Base.RateDriven() {
		return nil, fmt.Errorf("%w: rate sweep needs dwells and rates", config.ErrInvalidConfig)
	}
	if sweep.NumSteps < 1 || sweep.MinFactor <= 0 || sweep.MaxFactor < sweep.MinFactor {
		return nil, fmt.Errorf("invalid sweep range %g..%g in %d steps", sweep.MinFactor, sweep.MaxFactor, sweep.NumSteps)
	}

	step := 0.0
	if sweep.NumSteps > 1 {
		step = (sweep.MaxFactor - sweep.MinFactor) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, sweep.NumSteps)
	errs := make([]error, sweep.NumSteps)

	var wg sync.WaitGroup
	for i := 0; i < sweep.NumSteps; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = sweepPoint(sweep.Base, sweep.MinFactor+float64(idx)*step)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func sweepPoint(base *config.Config, factor float64) (SweepResult, error) {
	cfg := base.Clone()
	maxRate := 0.0
	for j, r := range cfg.Schedule.Rates {
		cfg.Schedule.Rates[j] = r * factor
		maxRate = math.Max(maxRate, math.Abs(cfg.Schedule.Rates[j]))
	}

	s, err := cfg.BuildSchedule()
	if err != nil {
		return SweepResult{}, fmt.Errorf("factor %g: %w", factor, err)
	}

	return SweepResult{
		Factor:    factor,
		TotalTime: s.TotalTime(),
		MaxRate:   maxRate,
	}, nil
}
