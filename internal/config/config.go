package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/labelmaker/internal/annotate"
	"github.com/san-kum/labelmaker/internal/thermal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultTempUnit = "°C"
	DefaultTimeUnit = "hr"
	DefaultTitle    = "Reaction Coordinate"
)

// ErrInvalidConfig indicates a config that cannot describe a label.
var ErrInvalidConfig = errors.New("config: invalid label config")

type Config struct {
	Title       string             `yaml:"title"`
	Schedule    ScheduleConfig     `yaml:"schedule"`
	Identity    annotate.Identity  `yaml:"identity"`
	Date        DateConfig         `yaml:"date"`
	Chemicals   annotate.Chemicals `yaml:"chemicals"`
	Annotations annotate.Toggles   `yaml:"annotations"`
	Output      OutputConfig       `yaml:"output"`
}

// ScheduleConfig describes the thermal schedule. Either Times, or Dwells
// together with Rates, must be given.
type ScheduleConfig struct {
	Temps  []float64 `yaml:"temps"`
	Times  []float64 `yaml:"times,omitempty"`
	Dwells []float64 `yaml:"dwells,omitempty"`
	Rates  []float64 `yaml:"rates,omitempty"`
}

type DateConfig struct {
	StartDate string `yaml:"start_date"`
	StartTime string `yaml:"start_time"`
	EndDate   string `yaml:"end_date"`
	EndTime   string `yaml:"end_time"`
}

type OutputConfig struct {
	Path     string `yaml:"path"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TempUnit string `yaml:"temp_unit"`
	TimeUnit string `yaml:"time_unit"`
}

func DefaultConfig() *Config {
	return &Config{
		Title: DefaultTitle,
		Identity: annotate.Identity{
			EmailDomain: annotate.DefaultEmailDomain,
		},
		Annotations: annotate.AllToggles(),
		Output: OutputConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			TempUnit: DefaultTempUnit,
			TimeUnit: DefaultTimeUnit,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RateDriven reports whether the schedule is given by rates.
func (c *Config) RateDriven() bool {
	return len(c.Schedule.Rates) > 0 || len(c.Schedule.Dwells) > 0
}

func (c *Config) Validate() error {
	s := c.Schedule
	if len(s.Temps) == 0 {
		return fmt.Errorf("%w: schedule.temps is empty", ErrInvalidConfig)
	}
	if len(s.Times) > 0 && c.RateDriven() {
		return fmt.Errorf("%w: set either schedule.times or schedule.dwells with schedule.rates, not both", ErrInvalidConfig)
	}
	if len(s.Times) == 0 && !c.RateDriven() {
		return fmt.Errorf("%w: schedule needs times, or dwells with rates", ErrInvalidConfig)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: output size %dx%d", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}
	return nil
}

// BuildSchedule validates the config and constructs its schedule.
func (c *Config) BuildSchedule() (*thermal.Schedule, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.RateDriven() {
		return thermal.FromRates(c.Schedule.Temps, c.Schedule.Dwells, c.Schedule.Rates)
	}
	return thermal.FromTimes(c.Schedule.Temps, c.Schedule.Times)
}

// Label builds the header annotations. The date block is skipped when no
// start date is configured.
func (c *Config) Label() (annotate.Label, error) {
	l := annotate.Label{
		Identity:  c.Identity,
		Chemicals: c.Chemicals,
	}
	if c.Date.StartDate == "" {
		return l, nil
	}
	st, err := annotate.NewSpaceTime(c.Date.StartDate, c.Date.StartTime, c.Date.EndDate, c.Date.EndTime)
	if err != nil {
		return annotate.Label{}, err
	}
	l.SpaceTime = st
	return l, nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Schedule = ScheduleConfig{
		Temps:  cloneFloats(c.Schedule.Temps),
		Times:  cloneFloats(c.Schedule.Times),
		Dwells: cloneFloats(c.Schedule.Dwells),
		Rates:  cloneFloats(c.Schedule.Rates),
	}
	return &cp
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
