// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/uibridge"
)

var (
	errInvalidWindow = errors.New("window destroyed or invalid")
	errZeroSize      = errors.New("zero-sized viewport")
	errNoSurface     = errors.New("no surface: EnsureSurface was never called or failed")
)

// State is the binder's lifecycle state.
type State uint8

const (
	// StateUninitialized means no usable surface exists.
	StateUninitialized State = iota

	// StateReady means a surface exists and can be acquired from.
	StateReady

	// StateDisposed is terminal.
	StateDisposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	case StateDisposed:
		return "Disposed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Stats counts binder operations since creation.
type Stats struct {
	Creates      int // surfaces created
	Reconfigures int // surfaces reconfigured
	Acquires     int // targets handed out
	Presents     int // successful presents
	Losses       int // acquires or presents that lost the surface
}

// Binder keeps one surface in sync with a host window.
//
// Binder is not safe for concurrent use. It is driven from the host's
// event thread, one call at a time.
type Binder struct {
	backend Backend
	surf    Surface
	cfg     Config

	dirty    bool // reconfigure on next ensure even if cfg matches
	lost     bool // acquire must fail until the next successful ensure
	disposed bool

	stats Stats
}

// NewBinder creates a binder that creates surfaces with backend.
// The binder takes ownership of the backend and closes it on Dispose.
func NewBinder(backend Backend) *Binder {
	return &Binder{backend: backend}
}

// Backend returns the name of the backend in use.
func (b *Binder) Backend() string {
	if b.backend == nil {
		return ""
	}
	return b.backend.Name()
}

// State returns the lifecycle state.
func (b *Binder) State() State {
	switch {
	case b.disposed:
		return StateDisposed
	case b.surf != nil && !b.lost:
		return StateReady
	default:
		return StateUninitialized
	}
}

// Config returns the configuration of the current surface.
func (b *Binder) Config() Config {
	return b.cfg
}

// Stats returns the operation counters.
func (b *Binder) Stats() Stats {
	return b.stats
}

// EnsureSurface makes sure a surface matching vp exists for win.
//
// It creates the surface on first use and reconfigures it when the size or
// scale changed or a previous present failed. Otherwise it does nothing.
// Failures wrap uibridge.ErrSurfaceCreation and are recoverable: the caller
// skips the frame and calls EnsureSurface again on the next cycle.
func (b *Binder) EnsureSurface(win Window, vp uibridge.Viewport) error {
	if b.disposed {
		return uibridge.ErrDisposed
	}
	if !windowValid(win) {
		b.drop()
		return b.fail("ensure", uibridge.ErrSurfaceCreation, errInvalidWindow)
	}
	if vp.IsEmpty() {
		return b.fail("ensure", uibridge.ErrSurfaceCreation, errZeroSize)
	}
	cfg := ConfigFor(vp)

	if b.surf == nil {
		s, err := b.backend.CreateSurface(win, cfg)
		if err != nil {
			return b.fail("ensure", uibridge.ErrSurfaceCreation, err)
		}
		b.surf = s
		b.cfg = cfg
		b.dirty, b.lost = false, false
		b.stats.Creates++
		uibridge.Logger().Info("surface: created",
			"backend", b.Backend(), "width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale)
		return nil
	}

	if b.dirty || cfg != b.cfg {
		if err := b.surf.Configure(win, cfg); err != nil {
			b.drop()
			return b.fail("ensure", uibridge.ErrSurfaceCreation, err)
		}
		b.cfg = cfg
		b.stats.Reconfigures++
		uibridge.Logger().Debug("surface: reconfigured",
			"width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale)
	}
	b.dirty, b.lost = false, false
	return nil
}

// AcquireFrame returns the target for the next frame.
//
// It fails with uibridge.ErrSurfaceCreation when no surface exists and with
// uibridge.ErrSurfaceLost when the surface was lost, the window was
// destroyed, or the window size no longer matches the configuration.
func (b *Binder) AcquireFrame(win Window) (Target, error) {
	if b.disposed {
		return nil, uibridge.ErrDisposed
	}
	if b.lost {
		return nil, b.fail("acquire", uibridge.ErrSurfaceLost, nil)
	}
	if b.surf == nil {
		return nil, b.fail("acquire", uibridge.ErrSurfaceCreation, errNoSurface)
	}
	if !windowValid(win) {
		b.markLost()
		b.drop()
		return nil, b.fail("acquire", uibridge.ErrSurfaceLost, errInvalidWindow)
	}
	if w, h := win.Size(); w != b.cfg.Width || h != b.cfg.Height {
		b.markLost()
		return nil, b.fail("acquire", uibridge.ErrSurfaceLost,
			fmt.Errorf("window is %dx%d, surface configured for %dx%d", w, h, b.cfg.Width, b.cfg.Height))
	}

	t, err := b.surf.Acquire(win)
	if err != nil {
		b.markLost()
		return nil, b.fail("acquire", uibridge.ErrSurfaceLost, err)
	}
	b.stats.Acquires++
	return t, nil
}

// Present shows the frame drawn into t.
//
// A failed present is not reported to the caller. It forces a reconfigure
// on the next EnsureSurface and, when the backend reports the surface
// lost, drops the surface so it is created again.
func (b *Binder) Present(win Window, t Target) {
	if b.disposed || b.surf == nil || t == nil {
		return
	}
	err := b.surf.Present(win, t)
	if err == nil {
		b.stats.Presents++
		return
	}
	b.markLost()
	uibridge.Logger().Warn("surface: present failed", "backend", b.Backend(), "err", err)
	if errors.Is(err, uibridge.ErrSurfaceLost) {
		b.drop()
	}
}

// Invalidate forces a reconfigure on the next EnsureSurface. Hosts call it
// when they learn out of band that the swapchain is outdated.
func (b *Binder) Invalidate() {
	b.dirty = true
}

// Dispose releases the surface and closes the backend. The binder cannot
// be used afterwards. Dispose is idempotent.
func (b *Binder) Dispose() error {
	if b.disposed {
		return nil
	}
	b.drop()
	b.disposed = true
	uibridge.Logger().Info("surface: disposed", "backend", b.Backend())
	if b.backend != nil {
		return b.backend.Close()
	}
	return nil
}

func (b *Binder) markLost() {
	b.lost = true
	b.dirty = true
	b.stats.Losses++
}

func (b *Binder) drop() {
	if b.surf != nil {
		b.surf.Release()
		b.surf = nil
	}
}

func (b *Binder) fail(op string, kind, err error) error {
	return uibridge.NewSurfaceError(op, b.Backend(), kind, err)
}
