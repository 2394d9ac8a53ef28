// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package hosted provides a surface backend for hosts that own the GPU
// device and swapchain, such as gogpu applications.
//
// The window must implement surface.HostedWindow. Frames are drawn into a
// ggcanvas.Canvas created from the host's DeviceProvider and presented with
// Canvas.Render against the host's per-draw RenderTarget: straight into the
// surface view when the gg GPU accelerator can render directly, through a
// texture upload otherwise.
package hosted

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

// Name is the registry name of the backend.
const Name = "hosted"

// Priority is the registry priority of the backend.
const Priority = 50

func init() {
	surface.Register(Name, Priority, func(surface.Options) (surface.Backend, error) {
		return New(), nil
	}, nil)
}

var (
	errNotHosted      = errors.New("hosted: window does not implement surface.HostedWindow")
	errNoRenderTarget = errors.New("hosted: no render target outside the host draw callback")
)

// Backend creates canvas surfaces on the host's device.
type Backend struct{}

// New creates a hosted backend.
func New() *Backend {
	return &Backend{}
}

// Name returns "hosted".
func (b *Backend) Name() string { return Name }

// CreateSurface creates a canvas sized to cfg on the window's device.
func (b *Backend) CreateSurface(win surface.Window, cfg surface.Config) (surface.Surface, error) {
	hw, ok := win.(surface.HostedWindow)
	if !ok {
		return nil, errNotHosted
	}
	dp := hw.DeviceProvider()
	if dp == nil {
		return nil, fmt.Errorf("hosted: %w", uibridge.ErrNoDevice)
	}
	w, h := cfg.CanvasSize()
	c, err := ggcanvas.NewWithScale(dp, w, h, cfg.Scale)
	if err != nil {
		return nil, err
	}
	info := dp.AdapterInfo()
	uibridge.Logger().Debug("hosted: canvas created",
		"adapter", info.Name, "adapter_type", info.Type.String(), "format", dp.SurfaceFormat().String())
	return &Surface{canvas: c, cfg: cfg}, nil
}

// Close does nothing; the host owns the device.
func (b *Backend) Close() error { return nil }

// Surface is a canvas bound to a hosted window.
type Surface struct {
	canvas *ggcanvas.Canvas
	cfg    surface.Config
}

// Configure resizes and rescales the canvas.
func (s *Surface) Configure(_ surface.Window, cfg surface.Config) error {
	if s.canvas == nil {
		return ggcanvas.ErrCanvasClosed
	}
	s.canvas.SetDeviceScale(cfg.Scale)
	w, h := cfg.CanvasSize()
	if err := s.canvas.Resize(w, h); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Acquire returns the canvas context as the frame target.
func (s *Surface) Acquire(surface.Window) (surface.Target, error) {
	if s.canvas == nil {
		return nil, uibridge.ErrSurfaceLost
	}
	return target{cc: s.canvas.Context(), w: s.cfg.Width, h: s.cfg.Height}, nil
}

// Present renders the canvas to the host's current render target.
func (s *Surface) Present(win surface.Window, _ surface.Target) error {
	if s.canvas == nil {
		return uibridge.ErrSurfaceLost
	}
	hw, ok := win.(surface.HostedWindow)
	if !ok {
		return errNotHosted
	}
	rt := hw.RenderTarget()
	if rt == nil {
		return errNoRenderTarget
	}
	s.canvas.MarkDirty()
	if err := s.canvas.Render(rt); err != nil {
		if errors.Is(err, ggcanvas.ErrCanvasClosed) {
			return fmt.Errorf("%w: %w", uibridge.ErrSurfaceLost, err)
		}
		return err
	}
	return nil
}

// Release closes the canvas.
func (s *Surface) Release() {
	if s.canvas != nil {
		_ = s.canvas.Close()
		s.canvas = nil
	}
}

// Canvas returns the underlying canvas, or nil after Release.
func (s *Surface) Canvas() *ggcanvas.Canvas { return s.canvas }

type target struct {
	cc   *gg.Context
	w, h int
}

func (t target) Context() *gg.Context { return t.cc }
func (t target) Size() (int, int)     { return t.w, t.h }
