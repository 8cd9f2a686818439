// Package config loads Kyaro's optional REPL/CLI customization file.
// Its absence is not an error: every field has a sensible zero-config
// default baked into cmd/kyaro.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the handful of cosmetic overrides a .kyarorc.yaml file
// may specify. Zero values mean "use cmd/kyaro's built-in default" for
// every field except NoColor, which defaults to false (color stays on)
// whether or not a file is present.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	NoColor     bool   `yaml:"no_color"`
	HistoryPath string `yaml:"history_path"`
}

// Load reads path if it exists; a missing file yields a zero-value
// Config and no error, since every caller field has a fallback default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
