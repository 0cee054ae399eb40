// Package config loads tuning parameters for the repetition-counting
// pipeline from JSON files. Fields omitted from the JSON retain their
// defaults, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/repcount/internal/motion"
)

// TuningConfig represents tunable pipeline parameters. Pointer fields
// distinguish "not set" from explicit zero values.
type TuningConfig struct {
	// Detector params
	SmoothingWindow *int `json:"smoothing_window,omitempty"`
	AnalysisWindow  *int `json:"analysis_window,omitempty"`

	// Counter params
	SignificanceDelta *float64 `json:"significance_delta,omitempty"`
	FaultTolerance    *string  `json:"fault_tolerance,omitempty"` // duration string like "500ms"
}

// GetSmoothingWindow returns the smoothing window or its default.
func (c *TuningConfig) GetSmoothingWindow() int {
	if c != nil && c.SmoothingWindow != nil {
		return *c.SmoothingWindow
	}
	return motion.DefaultSmoothingWindow
}

// GetAnalysisWindow returns the analysis window or its default.
func (c *TuningConfig) GetAnalysisWindow() int {
	if c != nil && c.AnalysisWindow != nil {
		return *c.AnalysisWindow
	}
	return motion.DefaultAnalysisWindow
}

// GetSignificanceDelta returns the significance delta or its default.
func (c *TuningConfig) GetSignificanceDelta() float64 {
	if c != nil && c.SignificanceDelta != nil {
		return *c.SignificanceDelta
	}
	return motion.DefaultSignificanceDelta
}

// GetFaultTolerance returns the fault tolerance or its default. Validate
// has already checked that the duration string parses.
func (c *TuningConfig) GetFaultTolerance() time.Duration {
	if c != nil && c.FaultTolerance != nil {
		if d, err := time.ParseDuration(*c.FaultTolerance); err == nil {
			return d
		}
	}
	return motion.DefaultFaultTolerance
}

// CounterParams assembles motion.CounterParams from the config.
func (c *TuningConfig) CounterParams() motion.CounterParams {
	return motion.CounterParams{
		SignificanceDelta: c.GetSignificanceDelta(),
		FaultTolerance:    c.GetFaultTolerance(),
		Detector: motion.DetectorParams{
			SmoothingWindow: c.GetSmoothingWindow(),
			AnalysisWindow:  c.GetAnalysisWindow(),
		},
	}
}

// Validate checks that every set field holds a usable value.
func (c *TuningConfig) Validate() error {
	if c.SmoothingWindow != nil && *c.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing_window must be >= 1, got %d", *c.SmoothingWindow)
	}
	if c.AnalysisWindow != nil && *c.AnalysisWindow < 3 {
		return fmt.Errorf("analysis_window must be >= 3, got %d", *c.AnalysisWindow)
	}
	if c.SignificanceDelta != nil && *c.SignificanceDelta < 0 {
		return fmt.Errorf("significance_delta must be >= 0, got %g", *c.SignificanceDelta)
	}
	if c.FaultTolerance != nil {
		d, err := time.ParseDuration(*c.FaultTolerance)
		if err != nil {
			return fmt.Errorf("fault_tolerance is not a valid duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("fault_tolerance must be >= 0, got %s", d)
		}
	}
	return nil
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and stay under the size limit.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &TuningConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
