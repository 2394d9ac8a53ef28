// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package offscreen provides an image-backed surface backend.
//
// Frames are rasterized on the CPU into a gg.Context and kept in memory
// after Present. The backend needs no GPU and no real window, which makes
// it the backend of choice for tests and headless replay. It registers
// with priority zero, so it is only used when asked for by name.
package offscreen

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

// Name is the registry name of the backend.
const Name = "offscreen"

func init() {
	surface.Register(Name, 0, func(surface.Options) (surface.Backend, error) {
		return New(), nil
	}, nil)
}

var errReleased = errors.New("offscreen: surface released")

// Backend creates offscreen surfaces.
type Backend struct {
	last *Surface
}

// New creates an offscreen backend.
func New() *Backend {
	return &Backend{}
}

// Name returns "offscreen".
func (b *Backend) Name() string { return Name }

// CreateSurface creates an image-backed surface. The window is only
// checked for validity.
func (b *Backend) CreateSurface(win surface.Window, cfg surface.Config) (surface.Surface, error) {
	if win == nil || !win.Valid() {
		return nil, uibridge.ErrSurfaceCreation
	}
	w, h := cfg.CanvasSize()
	s := &Surface{
		cfg: cfg,
		cc:  gg.NewContext(w, h, gg.WithDeviceScale(cfg.Scale)),
	}
	b.last = s
	return s, nil
}

// Surface returns the most recently created surface, or nil.
func (b *Backend) Surface() *Surface { return b.last }

// Close does nothing; offscreen surfaces own no shared device.
func (b *Backend) Close() error { return nil }

// Surface is an offscreen surface.
type Surface struct {
	cfg      surface.Config
	cc       *gg.Context
	frame    *image.RGBA
	presents int
}

// Configure resizes the backing context.
func (s *Surface) Configure(_ surface.Window, cfg surface.Config) error {
	if s.cc == nil {
		return errReleased
	}
	s.cc.SetDeviceScale(cfg.Scale)
	w, h := cfg.CanvasSize()
	if err := s.cc.Resize(w, h); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Acquire returns the backing context as the frame target.
func (s *Surface) Acquire(surface.Window) (surface.Target, error) {
	if s.cc == nil {
		return nil, uibridge.ErrSurfaceLost
	}
	return target{cc: s.cc, w: s.cfg.Width, h: s.cfg.Height}, nil
}

// Present copies the drawn pixels into the presented frame.
func (s *Surface) Present(_ surface.Window, t surface.Target) error {
	cc := t.Context()
	if s.cc == nil || cc != s.cc {
		return uibridge.ErrSurfaceLost
	}
	if err := cc.FlushGPU(); err != nil {
		return err
	}
	src := cc.Image()
	b := src.Bounds()
	if s.frame == nil || s.frame.Bounds().Size() != b.Size() {
		s.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Copy(s.frame, image.Point{}, src, b, draw.Src, nil)
	s.presents++
	return nil
}

// Release closes the backing context.
func (s *Surface) Release() {
	if s.cc != nil {
		_ = s.cc.Close()
		s.cc = nil
	}
}

// Frame returns the last presented frame, or nil before the first present.
// The image is reused by the next present.
func (s *Surface) Frame() *image.RGBA { return s.frame }

// Presents returns the number of successful presents.
func (s *Surface) Presents() int { return s.presents }

// Config returns the current configuration.
func (s *Surface) Config() surface.Config { return s.cfg }

// EncodePNG writes the last presented frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.frame == nil {
		return errors.New("offscreen: nothing presented")
	}
	return gg.FromImage(s.frame).EncodePNG(w)
}

type target struct {
	cc   *gg.Context
	w, h int
}

func (t target) Context() *gg.Context { return t.cc }
func (t target) Size() (int, int)     { return t.w, t.h }
