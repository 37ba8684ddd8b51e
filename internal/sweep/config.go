// Package sweep evaluates the MQ estimator over a grid of (n, m, q) and
// writes the per-algorithm results as JSONL, CSV and an HTML chart.
package sweep

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config describes one sweep. Grids use the list syntax of ParseIntList,
// e.g. "10..40:5,48".
type Config struct {
	// N is the grid of variable counts.
	N string `yaml:"n" validate:"required,intlist"`
	// M is the grid of polynomial counts. Empty means square systems.
	M string `yaml:"m" validate:"omitempty,intlist"`
	// Q lists the field orders; 0 means no field.
	Q          []int    `yaml:"q" validate:"required,min=1,dive,gte=0"`
	W          float64  `yaml:"w" validate:"gte=2,lte=3"`
	NSolutions int      `yaml:"nsolutions" validate:"gte=1"`
	Exclude    []string `yaml:"exclude"`
	UseTilde   bool     `yaml:"use_tilde"`
	Workers    int      `yaml:"workers" validate:"gte=1,lte=256"`

	JSONL string `yaml:"jsonl"`
	CSV   string `yaml:"csv"`
	Chart string `yaml:"chart"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("intlist", validateIntList); err != nil {
		panic(err)
	}
}

func validateIntList(fl validator.FieldLevel) bool {
	vals, err := ParseIntList(fl.Field().String())
	return err == nil && len(vals) > 0
}

// DefaultConfig returns a small binary-field sweep over square systems.
func DefaultConfig() Config {
	return Config{
		N:          "10..30:5",
		Q:          []int{2},
		W:          2,
		NSolutions: 1,
		Workers:    runtime.NumCPU(),
		JSONL:      "sweep.jsonl",
	}
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	return configValidate.Struct(c)
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("sweep: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("sweep: parse config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("sweep: invalid config: %w", err)
	}
	return cfg, nil
}
