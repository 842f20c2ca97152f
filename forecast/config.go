package forecast

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRoutes are the service types expected in the ridership dataset.
// Names match the dataset columns exactly, including case and spaces.
var DefaultRoutes = []string{
	"Local Route",
	"Light Rail",
	"Peak Service",
	"Rapid Route",
	"School",
}

// Config is the run configuration for the forecasting pipeline.
type Config struct {
	Dataset        string   `yaml:"dataset"`
	Output         string   `yaml:"output"`
	Routes         []string `yaml:"routes"`
	SeasonalPeriod int      `yaml:"seasonal_period"`
	Horizon        int      `yaml:"horizon"`
}

// DefaultConfig returns the standard weekly-seasonality configuration.
func DefaultConfig() Config {
	return Config{
		Dataset:        "data/dataset.csv",
		Output:         "reports/forecast",
		Routes:         append([]string(nil), DefaultRoutes...),
		SeasonalPeriod: DefaultSeasonalPeriod,
		Horizon:        DefaultHorizon,
	}
}

// LoadConfig reads a YAML run configuration. Fields absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("forecast: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("forecast: parse config %s: %w", path, err)
	}
	return cfg, nil
}
