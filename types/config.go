/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rulego/bandmath/logger"
)

// Config 引擎配置
// It can be built in code or loaded from YAML:
//
//	logLevel: debug
//	simplify: true
//	workers: 4
type Config struct {
	// LogLevel one of debug, info, warn, error, off. Empty keeps the current level.
	LogLevel string `yaml:"logLevel" json:"logLevel"`
	// Simplify runs the simplifier on every parsed expression
	Simplify bool `yaml:"simplify" json:"simplify"`
	// Workers number of goroutines used when building masks; <= 1 is sequential
	Workers int `yaml:"workers" json:"workers"`
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	return Config{
		Simplify: true,
		Workers:  1,
	}
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// ParseConfig decodes a YAML document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML configuration
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
