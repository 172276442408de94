/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package exporter

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// Config specifies exporter run options
type Config struct {
	Interfaces    []string      `yaml:"interfaces"`     // interfaces to query, all non-loopback ones if empty
	ListenAddress string        `yaml:"listen_address"` // address /metrics is served on
	Interval      time.Duration `yaml:"interval"`       // how often interfaces are queried
	Counters      bool          `yaml:"counters"`       // also export per-interface traffic counters
}

// DefaultConfig returns Config initialized with default values
func DefaultConfig() *Config {
	return &Config{
		ListenAddress: ":6943",
		Interval:      10 * time.Second,
	}
}

// Validate config is sane
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be greater than zero")
	}
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address must be specified")
	}
	seen := map[string]bool{}
	for _, iface := range c.Interfaces {
		if iface == "" {
			return fmt.Errorf("interface name must not be empty")
		}
		if len(iface) >= 16 {
			return fmt.Errorf("interface name %q is too long", iface)
		}
		if seen[iface] {
			return fmt.Errorf("interface %q is listed twice", iface)
		}
		seen[iface] = true
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.UnmarshalStrict(cData, &c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// PrepareConfig prepares final version of config based on defaults, CLI flags and on-disk config, and validates resulting config
func PrepareConfig(cfgPath string, ifaces []string, listenAddress string, interval time.Duration, counters bool, setFlags map[string]bool) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	warn := func(name string) {
		log.Warningf("overriding %s from CLI flag", name)
	}
	if cfgPath != "" {
		cfg, err = ReadConfig(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("reading config from %q: %w", cfgPath, err)
		}
	}
	if len(ifaces) > 0 {
		warn("interfaces")
		cfg.Interfaces = ifaces
	}
	if setFlags["listen"] {
		warn("listen_address")
		cfg.ListenAddress = listenAddress
	}
	if setFlags["interval"] {
		warn("interval")
		cfg.Interval = interval
	}
	if setFlags["counters"] {
		warn("counters")
		cfg.Counters = counters
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	log.Debugf("config: %+v", cfg)
	return cfg, nil
}
