// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads uibridge settings from YAML.
//
// A missing file is not an error: every field has a default, and a file
// only needs to name what it changes.
//
//	backend: auto
//	clear_color: "#202020"
//	font:
//	  path: /usr/share/fonts/TTF/DejaVuSans.ttf
//	  size: 14
//	present_mode: mailbox
//	log_level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/uibridge/input"
)

// BackendAuto selects the highest-priority backend that starts.
const BackendAuto = "auto"

// Config holds the adapter settings.
type Config struct {
	// Backend is BackendAuto or the name of a registered surface backend.
	Backend string `yaml:"backend"`

	// ClearColor is "#rrggbb" or "#rrggbbaa". Empty clears to transparent.
	ClearColor string `yaml:"clear_color"`

	Font FontConfig `yaml:"font"`

	// ScrollLinePoints is the scroll distance of one wheel notch.
	ScrollLinePoints float64 `yaml:"scroll_line_points"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// PresentMode is one of fifo, fifo_relaxed, immediate, mailbox.
	PresentMode string `yaml:"present_mode"`

	// PowerPreference is one of none, low_power, high_performance.
	PowerPreference string `yaml:"power_preference"`

	// ForceSoftware requests a software adapter from the wgpu backend.
	ForceSoftware bool `yaml:"force_software"`

	// X11Probe checks native X11 window handles before creating surfaces.
	X11Probe bool `yaml:"x11_probe"`
}

// FontConfig selects the font for text shapes.
type FontConfig struct {
	Path string  `yaml:"path"` // TTF or OTF file; empty disables text
	Size float64 `yaml:"size"` // default text size in points
}

// ValidationError reports an invalid setting.
type ValidationError struct {
	Path string // YAML key
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend:          BackendAuto,
		Font:             FontConfig{Size: 14},
		ScrollLinePoints: input.DefaultScrollLinePoints,
		LogLevel:         "info",
		PresentMode:      "fifo",
		PowerPreference:  "none",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend) == "" {
		return &ValidationError{Path: "backend", Err: errors.New("backend is required")}
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return &ValidationError{Path: "clear_color", Err: err}
	}
	if c.Font.Size <= 0 {
		return &ValidationError{Path: "font.size", Err: errors.New("font.size must be > 0")}
	}
	if c.ScrollLinePoints <= 0 {
		return &ValidationError{Path: "scroll_line_points", Err: errors.New("scroll_line_points must be > 0")}
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return &ValidationError{Path: "log_level", Err: errors.New("log_level must be one of: debug, info, warn, error")}
	}
	if _, ok := presentModes[c.PresentMode]; !ok {
		return &ValidationError{Path: "present_mode", Err: errors.New("present_mode must be one of: fifo, fifo_relaxed, immediate, mailbox")}
	}
	if _, ok := powerPreferences[c.PowerPreference]; !ok {
		return &ValidationError{Path: "power_preference", Err: errors.New("power_preference must be one of: none, low_power, high_performance")}
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var presentModes = map[string]gputypes.PresentMode{
	"fifo":         gputypes.PresentModeFifo,
	"fifo_relaxed": gputypes.PresentModeFifoRelaxed,
	"immediate":    gputypes.PresentModeImmediate,
	"mailbox":      gputypes.PresentModeMailbox,
}

var powerPreferences = map[string]gputypes.PowerPreference{
	"none":             gputypes.PowerPreferenceNone,
	"low_power":        gputypes.PowerPreferenceLowPower,
	"high_performance": gputypes.PowerPreferenceHighPerformance,
}

// SlogLevel returns the log level, or info when unset.
func (c *Config) SlogLevel() slog.Level {
	if l, ok := logLevels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The empty string is
// transparent.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
