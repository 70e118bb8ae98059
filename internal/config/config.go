/*
 * Copyright © 2024 The qrencode Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the defaults that seed cmd/qrencode's flags, the
// way internal/config in dfbb-im2code seeds that project's CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults applied to an encode invocation before
// command-line flags override them.
type Config struct {
	LogLevel   string       `yaml:"loglevel"`
	MinVersion int          `yaml:"min_version"`
	MaxVersion int          `yaml:"max_version"`
	ECL        string       `yaml:"ecl"`
	Format     string       `yaml:"format"`
	Scale      int          `yaml:"scale"`
	Border     int          `yaml:"border"`
	Output     OutputConfig `yaml:"output"`
}

// OutputConfig controls where and how rendered symbols are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Open bool   `yaml:"open"`
}

// Defaults returns a Config populated with this project's built-in
// defaults.
func Defaults() *Config {
	return &Config{
		LogLevel:   "info",
		MinVersion: 1,
		MaxVersion: 40,
		ECL:        "M",
		Format:     "png",
		Scale:      400,
		Border:     4,
		Output: OutputConfig{
			Dir:  ".",
			Open: false,
		},
	}
}

// Load reads a YAML config file at path, overlaying it onto Defaults.
// A missing file is not an error: Load returns the defaults unchanged,
// matching the "config file is optional" behavior a CLI needs so a
// first run works with no setup at all.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
