// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpusurface

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

type surfaceConfig struct {
	format      gputypes.TextureFormat
	presentMode gputypes.PresentMode
	alphaMode   gputypes.CompositeAlphaMode
}

// Surface is a wgpu swapchain with a gg canvas drawing into it.
type Surface struct {
	backend *Backend
	ws      *wgpu.Surface
	canvas  *ggcanvas.Canvas
	sc      surfaceConfig
	cfg     surface.Config
}

func newSurface(b *Backend, ws *wgpu.Surface, sc surfaceConfig, cfg surface.Config) (*Surface, error) {
	w, h := cfg.CanvasSize()
	canvas, err := ggcanvas.NewWithScale(b, w, h, cfg.Scale)
	if err != nil {
		return nil, err
	}
	s := &Surface{backend: b, ws: ws, canvas: canvas, sc: sc}
	if err := s.configure(cfg); err != nil {
		_ = canvas.Close()
		return nil, err
	}
	return s, nil
}

// Configure reconfigures the swapchain and resizes the canvas.
func (s *Surface) Configure(_ surface.Window, cfg surface.Config) error {
	if s.ws == nil {
		return uibridge.ErrSurfaceLost
	}
	return s.configure(cfg)
}

func (s *Surface) configure(cfg surface.Config) error {
	err := s.ws.Configure(s.backend.device, &wgpu.SurfaceConfiguration{
		Width:       uint32(cfg.Width),  //nolint:gosec // viewport sizes are positive
		Height:      uint32(cfg.Height), //nolint:gosec // viewport sizes are positive
		Format:      s.sc.format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: s.sc.presentMode,
		AlphaMode:   s.sc.alphaMode,
	})
	if err != nil {
		return fmt.Errorf("wgpu: configure: %w", mapError(err))
	}
	s.canvas.SetDeviceScale(cfg.Scale)
	w, h := cfg.CanvasSize()
	if err := s.canvas.Resize(w, h); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Acquire gets the next swapchain texture and a view of it.
func (s *Surface) Acquire(surface.Window) (surface.Target, error) {
	if s.ws == nil {
		return nil, uibridge.ErrSurfaceLost
	}
	tex, suboptimal, err := s.ws.GetCurrentTexture()
	if err != nil {
		return nil, mapError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		s.ws.DiscardTexture()
		return nil, err
	}
	if suboptimal {
		uibridge.Logger().Debug("wgpu: suboptimal surface texture")
	}
	gg.BeginAcceleratorFrame()
	return &frame{cc: s.canvas.Context(), tex: tex, view: view, w: s.cfg.Width, h: s.cfg.Height}, nil
}

// Present rasterizes the frame into the surface texture and presents it.
func (s *Surface) Present(_ surface.Window, t surface.Target) error {
	f, ok := t.(*frame)
	if !ok || s.ws == nil {
		return uibridge.ErrSurfaceLost
	}
	defer f.view.Release()

	s.canvas.MarkDirty()
	tv := gpucontext.NewTextureView(unsafe.Pointer(f.view))
	if err := s.canvas.RenderDirect(tv, uint32(f.w), uint32(f.h)); err != nil { //nolint:gosec // positive
		s.ws.DiscardTexture()
		return err
	}
	return mapError(s.ws.Present(f.tex))
}

// Release destroys the canvas and the swapchain.
func (s *Surface) Release() {
	if s.canvas != nil {
		_ = s.canvas.Close()
		s.canvas = nil
	}
	if s.ws != nil {
		s.ws.Release()
		s.ws = nil
	}
}

type frame struct {
	cc   *gg.Context
	tex  *wgpu.SurfaceTexture
	view *wgpu.TextureView
	w, h int
}

func (f *frame) Context() *gg.Context { return f.cc }
func (f *frame) Size() (int, int)     { return f.w, f.h }

// mapError translates wgpu surface errors into the binder's vocabulary.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wgpu.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", surface.ErrOutdated, err)
	case errors.Is(err, wgpu.ErrSurfaceLost), errors.Is(err, wgpu.ErrDeviceLost), errors.Is(err, wgpu.ErrReleased):
		return fmt.Errorf("%w: %w", uibridge.ErrSurfaceLost, err)
	default:
		return err
	}
}

// chooseFormat picks the first linear format, or the first format when the
// surface offers only sRGB ones. UI colors are already sRGB encoded.
func chooseFormat(formats []gputypes.TextureFormat) gputypes.TextureFormat {
	for _, f := range formats {
		if !isSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return gputypes.TextureFormatBGRA8Unorm
}

func isSRGB(f gputypes.TextureFormat) bool {
	return linear(f) != f
}

func linear(f gputypes.TextureFormat) gputypes.TextureFormat {
	switch f {
	case gputypes.TextureFormatRGBA8UnormSrgb:
		return gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatBGRA8UnormSrgb:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return f
	}
}

// choosePresentMode returns want if supported, FIFO otherwise. FIFO is
// always supported.
func choosePresentMode(want gputypes.PresentMode, supported []gputypes.PresentMode) gputypes.PresentMode {
	if want == gputypes.PresentModeUndefined {
		want = gputypes.PresentModeFifo
	}
	if supported == nil || slices.Contains(supported, want) {
		return want
	}
	return gputypes.PresentModeFifo
}

func chooseAlphaMode(modes []gputypes.CompositeAlphaMode) gputypes.CompositeAlphaMode {
	if len(modes) == 0 {
		return gputypes.CompositeAlphaModeOpaque
	}
	return modes[0]
}
