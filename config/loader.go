package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default file names of the classic run
const (
	DefaultStationsPath = "evas.csv"
	DefaultMapPath      = "trainmap_cells_corrected.json"
	DefaultOutputPath   = "trainmap_with_eva.json"
)

// DefaultPaths are searched in order when no explicit config path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// DefaultSettings returns the built-in enrichment settings
func DefaultSettings() Settings {
	return Settings{
		Sentinel:        "fixme",
		DestinationType: "destination",
		Delimiter:       ";",
		MalformedRows:   MalformedRowsFail,
		Indent:          "  ",
		TimeoutMS:       10000,
	}
}

// DefaultJob returns the job used when the config declares none
func DefaultJob() JobConfig {
	return JobConfig{
		Name:     "default",
		Stations: DefaultStationsPath,
		Map:      DefaultMapPath,
		Output:   DefaultOutputPath,
	}
}

// Default returns the configuration used when no config file is present
func Default() AppConfig {
	return AppConfig{Settings: DefaultSettings()}
}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist. With an empty path the DefaultPaths are tried
// and, if none exists, Default() is returned.
func LoadAppConfig(path string) (AppConfig, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
	} else {
		for _, p := range DefaultPaths {
			data, err = os.ReadFile(p)
			if err == nil {
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return AppConfig{}, err
			}
		}
		if err != nil {
			return Default(), nil
		}
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the settings and every job against their struct tags
func Validate(cfg AppConfig) error {
	v := newValidator()
	if err := v.Struct(cfg.Settings); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	seen := map[string]bool{}
	for i, j := range cfg.Jobs {
		if err := v.Struct(j); err != nil {
			return fmt.Errorf("jobs[%d]: %w", i, err)
		}
		if seen[j.Name] {
			return fmt.Errorf("jobs[%d]: duplicate job name %q", i, j.Name)
		}
		seen[j.Name] = true
	}
	return nil
}

// SelectJob chooses a job by name; fallback to first; if none, use DefaultJob.
func SelectJob(cfg AppConfig, name string) (JobConfig, error) {
	if name != "" {
		for _, j := range cfg.Jobs {
			if j.Name == name {
				return j, nil
			}
		}
		return JobConfig{}, fmt.Errorf("unknown job %q", name)
	}
	if len(cfg.Jobs) > 0 {
		return cfg.Jobs[0], nil
	}
	return DefaultJob(), nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// mutator lists are flat from/to pairs
	_ = v.RegisterValidation("pairs", func(fl validator.FieldLevel) bool {
		return fl.Field().Len()%2 == 0
	})
	return v
}
