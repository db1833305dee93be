// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/siemens/digrank/query"
	"github.com/siemens/digrank/types"

	"gopkg.in/yaml.v3"
)

// Limits of settings.
const (
	MaxWorkers = 256
	MinTimeout = 100 * time.Millisecond
)

// File is the contents of a configuration file. Absent settings are nil and
// leave the corresponding configuration untouched.
type File struct {
	Workers          *uint          `yaml:"workers"`
	QueriesPerSecond *float64       `yaml:"qps"`
	Timeout          *time.Duration `yaml:"timeout"`
	Lang             *string        `yaml:"lang"`
	Native           *bool          `yaml:"native"`
	Unprivileged     *bool          `yaml:"unprivileged"`
	Netns            *string        `yaml:"netns"`
	Container        *string        `yaml:"container"`
	Ping             *string        `yaml:"ping"`
	Nameservers      []string       `yaml:"nameservers"`
}

// Load reads the configuration file at the specified path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return f, nil
}

// Parse the specified YAML configuration, rejecting unknown settings.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if f.Workers != nil && *f.Workers > MaxWorkers {
		return nil, fmt.Errorf("workers out of range [0..%d], got %d", MaxWorkers, *f.Workers)
	}
	if f.Timeout != nil && *f.Timeout < MinTimeout {
		return nil, fmt.Errorf("timeout must be at least %s, got %s", MinTimeout, *f.Timeout)
	}
	if f.Netns != nil && *f.Netns != "" && f.Container != nil && *f.Container != "" {
		return nil, errors.New("netns and container are mutually exclusive")
	}
	if f.QueriesPerSecond != nil && *f.QueriesPerSecond < 0 {
		return nil, fmt.Errorf("qps must not be negative, got %v", *f.QueriesPerSecond)
	}
	return f, nil
}

// Apply the settings present in this file to the specified pipeline
// configuration. The container setting isn't part of a pipeline configuration
// and needs to be resolved into a network namespace by the caller.
func (f *File) Apply(cfg *query.Config) {
	if f.Workers != nil {
		cfg.Workers = int(*f.Workers)
	}
	if f.QueriesPerSecond != nil {
		cfg.QueriesPerSecond = *f.QueriesPerSecond
	}
	if f.Timeout != nil {
		cfg.Timeout = *f.Timeout
	}
	if f.Lang != nil {
		cfg.Locale = types.ParseLocale(*f.Lang)
	}
	if f.Native != nil {
		cfg.Native = *f.Native
	}
	if f.Unprivileged != nil {
		cfg.Unprivileged = *f.Unprivileged
	}
	if f.Netns != nil {
		cfg.Netns = *f.Netns
	}
	if f.Ping != nil {
		cfg.PingExecutable = *f.Ping
	}
	if len(f.Nameservers) > 0 {
		cfg.Nameservers = append([]string{}, f.Nameservers...)
	}
}
