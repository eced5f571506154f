package config

import (
	"fmt"
	"os"

	"github.com/san-kum/milankovitch/internal/series"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimestep = 1000
	DefaultDataDir  = "data"
	DefaultFPS      = 60
	DefaultTheme    = "minimal"
)

// Config is everything a run needs beyond the drawing constants.
type Config struct {
	Timestep   int          `yaml:"timestep"`
	DataDir    string       `yaml:"data_dir"`
	Files      series.Files `yaml:"files"`
	SourceStep float64      `yaml:"source_step"`
	Span       float64      `yaml:"span"`
	FPS        int          `yaml:"fps"`
	Theme      string       `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Timestep:   DefaultTimestep,
		DataDir:    DefaultDataDir,
		Files:      series.DefaultFiles(),
		SourceStep: series.DefaultSourceStep,
		Span:       series.DefaultSpan,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
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

// Validate checks the fields a run cannot start without.
func (c *Config) Validate() error {
	if err := series.ValidateTimestep(c.Timestep); err != nil {
		return err
	}
	if c.SourceStep <= 0 {
		return fmt.Errorf("config: source_step must be positive (got %v)", c.SourceStep)
	}
	if c.Span <= 0 {
		return fmt.Errorf("config: span must be positive (got %v)", c.Span)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive (got %d)", c.FPS)
	}
	if c.Files.Eccentricity == "" || c.Files.Precession == "" || c.Files.Obliquity == "" {
		return fmt.Errorf("config: all three data files must be named")
	}
	return nil
}

// LoadDataset reads the source tables and resamples them at the configured
// timestep.
func (c *Config) LoadDataset() (*series.Dataset, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	raw, err := series.LoadRaw(c.DataDir, c.Files, c.SourceStep)
	if err != nil {
		return nil, err
	}
	return series.NewDataset(raw, c.Timestep, c.Span)
}
