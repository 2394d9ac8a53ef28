// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/adapter"
	"github.com/gogpu/uibridge/input"
	"github.com/gogpu/uibridge/surface"
	"github.com/gogpu/uibridge/surface/x11probe"
)

// SurfaceOptions returns the backend construction options. The handle probe
// is left unset; OpenBackend fills it in.
func (c *Config) SurfaceOptions() surface.Options {
	return surface.Options{
		PresentMode:     presentModes[c.PresentMode],
		PowerPreference: powerPreferences[c.PowerPreference],
		ForceSoftware:   c.ForceSoftware,
	}
}

// AdapterOptions returns the adapter options for the configured clear
// color, scroll speed and font. The returned font source, if any, is owned
// by the caller.
func (c *Config) AdapterOptions() ([]adapter.Option, *text.FontSource, error) {
	clr, err := ParseColor(c.ClearColor)
	if err != nil {
		return nil, nil, &ValidationError{Path: "clear_color", Err: err}
	}
	tr := input.DefaultTranslator()
	tr.ScrollLinePoints = c.ScrollLinePoints

	opts := []adapter.Option{
		adapter.WithClearColor(clr),
		adapter.WithTranslator(tr),
	}
	if c.Font.Path == "" {
		return opts, nil, nil
	}
	font, err := text.NewFontSourceFromFile(c.Font.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: font: %w", err)
	}
	return append(opts, adapter.WithFont(font, c.Font.Size)), font, nil
}

// OpenBackend starts the configured surface backend.
//
// With X11Probe set, native handles are checked over a separate X
// connection. When no X display is reachable the probe is skipped.
func (c *Config) OpenBackend() (surface.Backend, error) {
	opts := c.SurfaceOptions()

	var probe *x11probe.Prober
	if c.X11Probe {
		p, err := x11probe.New("")
		if err != nil {
			uibridge.Logger().Warn("config: x11 probe disabled", "err", err)
		} else {
			probe = p
			opts.Probe = p
		}
	}

	var (
		b   surface.Backend
		err error
	)
	if c.Backend == BackendAuto {
		b, err = surface.NewBestBackend(opts)
	} else {
		b, err = surface.NewBackend(c.Backend, opts)
	}
	if err != nil {
		if probe != nil {
			probe.Close()
		}
		return nil, err
	}
	if probe == nil {
		return b, nil
	}
	return &probedBackend{Backend: b, probe: probe}, nil
}

// probedBackend closes the X11 probe together with the backend.
type probedBackend struct {
	surface.Backend
	probe *x11probe.Prober
}

func (b *probedBackend) Close() error {
	err := b.Backend.Close()
	b.probe.Close()
	return err
}

var _ surface.Backend = (*probedBackend)(nil)
