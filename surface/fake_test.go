// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gg"

type fakeWindow struct {
	w, h  int
	scale float64
	dead  bool
}

func (w *fakeWindow) Size() (int, int)     { return w.w, w.h }
func (w *fakeWindow) ScaleFactor() float64 { return w.scale }
func (w *fakeWindow) Valid() bool          { return !w.dead }

type fakeBackend struct {
	name      string
	createErr error
	surfaces  []*fakeSurface
	closed    bool
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) CreateSurface(_ Window, cfg Config) (Surface, error) {
	if b.createErr != nil {
		return nil, b.createErr
	}
	s := &fakeSurface{cfg: cfg}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

func (b *fakeBackend) last() *fakeSurface {
	if len(b.surfaces) == 0 {
		return nil
	}
	return b.surfaces[len(b.surfaces)-1]
}

type fakeSurface struct {
	cfg          Config
	configures   int
	presents     int
	released     bool
	configureErr error
	acquireErr   error
	presentErr   error
}

func (s *fakeSurface) Configure(_ Window, cfg Config) error {
	if s.configureErr != nil {
		return s.configureErr
	}
	s.cfg = cfg
	s.configures++
	return nil
}

func (s *fakeSurface) Acquire(Window) (Target, error) {
	if s.acquireErr != nil {
		return nil, s.acquireErr
	}
	return &fakeTarget{w: s.cfg.Width, h: s.cfg.Height}, nil
}

func (s *fakeSurface) Present(Window, Target) error {
	if s.presentErr != nil {
		return s.presentErr
	}
	s.presents++
	return nil
}

func (s *fakeSurface) Release() { s.released = true }

type fakeTarget struct{ w, h int }

func (t *fakeTarget) Context() *gg.Context { return nil }
func (t *fakeTarget) Size() (int, int)     { return t.w, t.h }
