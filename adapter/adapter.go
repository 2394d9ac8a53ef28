// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/frame"
	"github.com/gogpu/uibridge/input"
	"github.com/gogpu/uibridge/paint"
	"github.com/gogpu/uibridge/surface"
)

var errNilUI = errors.New("adapter: nil UI")

// State is the adapter's lifecycle state.
type State uint8

const (
	// StateUninitialized means there is no usable surface. The next cycle
	// tries to create one.
	StateUninitialized State = iota

	// StateSurfaceReady means the last cycle left a usable surface.
	StateSurfaceReady

	// StateDisposed is terminal. Every call is a no-op.
	StateDisposed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateSurfaceReady:
		return "SurfaceReady"
	case StateDisposed:
		return "Disposed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Result describes one render cycle.
type Result struct {
	// Frame is the UI frame number, or 0 when the cycle stopped before the
	// UI ran.
	Frame uint64

	// Presented reports whether the frame reached the window.
	Presented bool

	// Err is the surface failure that skipped the cycle, if any.
	Err error

	// Repaint is the repaint decision forwarded to the host.
	Repaint frame.RepaintRequest

	// Paint counts the shapes drawn.
	Paint paint.Stats
}

// Skipped reports whether the cycle showed nothing.
func (r Result) Skipped() bool {
	return !r.Presented
}

// Adapter connects a UI, the host's events and a surface backend.
//
// Adapter is not safe for concurrent use. Every method must be called from
// the host's callback thread.
type Adapter struct {
	ui      UI
	binder  *surface.Binder
	frames  *frame.Manager
	painter *paint.Painter

	redraw    RedrawRequester
	scheduler RedrawScheduler
	reporter  FailureReporter
	window    gpucontext.WindowProvider

	ready    bool // last EnsureSurface succeeded
	disposed bool
}

// New creates an adapter drawing with backend. The adapter owns the backend
// and closes it in Close.
//
// A nil backend means no GPU device could be obtained; New then fails with
// an error matching uibridge.ErrNoDevice.
func New(ui UI, backend surface.Backend, opts ...Option) (*Adapter, error) {
	if ui == nil {
		return nil, errNilUI
	}
	if backend == nil {
		return nil, fmt.Errorf("adapter: %w", uibridge.ErrNoDevice)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fopts := []frame.Option{
		frame.WithTranslator(o.translator),
		frame.WithClock(o.now),
	}
	if c, ok := o.host.(CursorSetter); ok {
		fopts = append(fopts, frame.WithCursorSetter(c))
	}
	if c, ok := o.host.(ClipboardWriter); ok {
		fopts = append(fopts, frame.WithClipboard(c))
	}

	a := &Adapter{
		ui:      ui,
		binder:  surface.NewBinder(backend),
		frames:  frame.NewManager(o.viewport, fopts...),
		painter: paint.NewPainter(),
	}
	a.painter.Clear = o.clear
	a.painter.SetFont(o.font)
	a.painter.TextSize = o.textSize
	a.redraw, _ = o.host.(RedrawRequester)
	a.scheduler, _ = o.host.(RedrawScheduler)
	a.reporter, _ = o.host.(FailureReporter)
	a.window, _ = o.host.(gpucontext.WindowProvider)

	uibridge.Logger().Info("adapter: created", "backend", backend.Name())
	return a, nil
}

// NewAuto creates an adapter with the best registered surface backend.
// It fails with an error matching uibridge.ErrNoDevice when no backend can
// start.
func NewAuto(ui UI, so surface.Options, opts ...Option) (*Adapter, error) {
	backend, err := surface.NewBestBackend(so)
	if err != nil {
		return nil, err
	}
	a, err := New(ui, backend, opts...)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return a, nil
}

// State returns the lifecycle state.
func (a *Adapter) State() State {
	switch {
	case a.disposed:
		return StateDisposed
	case a.ready && a.binder.State() == surface.StateReady:
		return StateSurfaceReady
	default:
		return StateUninitialized
	}
}

// Viewport returns the viewport the next frame will be built for.
func (a *Adapter) Viewport() uibridge.Viewport {
	return a.frames.Viewport()
}

// SurfaceStats returns the surface binder counters.
func (a *Adapter) SurfaceStats() surface.Stats {
	return a.binder.Stats()
}

// Textures returns the UI texture store.
func (a *Adapter) Textures() *paint.TextureStore {
	return a.painter.Textures
}

// HandleEvent translates one host event and queues it for the next frame.
// It returns the neutral event, or false when the event was dropped.
//
// A close request disposes the adapter. Any other event asks the host for
// a redraw so the UI can react to it.
func (a *Adapter) HandleEvent(ev input.HostEvent) (input.Event, bool) {
	if a.disposed {
		return nil, false
	}
	e, ok := a.frames.HandleHostEvent(ev)
	if !ok {
		return nil, false
	}
	if _, closing := e.(input.CloseRequested); closing {
		uibridge.Logger().Info("adapter: close requested")
		if err := a.Close(); err != nil {
			uibridge.Logger().Warn("adapter: close failed", "err", err)
		}
		return e, true
	}
	if a.redraw != nil {
		a.redraw.RequestRedraw()
	}
	return e, true
}

// Bind subscribes to the host's event callbacks and returns the source
// feeding HandleEvent. When the host given to WithHost is a
// gpucontext.WindowProvider, its size and scale are synced right away.
func (a *Adapter) Bind(es gpucontext.EventSource) *input.Source {
	src := input.NewSource(func(ev input.HostEvent) {
		a.HandleEvent(ev)
	})
	src.Bind(es)
	if a.window != nil {
		src.SyncWindow(a.window)
	}
	return src
}

// RunOneCycle renders one frame into win.
//
// The cycle ensures the surface, begins a frame, runs the UI, applies
// texture uploads, acquires the frame target, paints, presents, frees
// textures and ends the frame. When the surface cannot be ensured the UI
// does not run. When the target cannot be acquired the frame is still
// ended, without drawing, and an immediate repaint is requested.
func (a *Adapter) RunOneCycle(win surface.Window) Result {
	if a.disposed {
		return Result{Err: uibridge.ErrDisposed}
	}

	a.syncViewport(win)
	if err := a.binder.EnsureSurface(win, a.frames.Viewport()); err != nil {
		a.ready = false
		a.fail(err)
		return Result{Err: err}
	}
	a.ready = true

	snap := a.frames.BeginFrame()
	out := a.ui.Run(snap)
	if out == nil {
		out = &frame.Output{}
	}
	res := Result{Frame: snap.Frame}

	if err := a.painter.Textures.Apply(out.Textures.Set); err != nil {
		uibridge.Logger().Warn("adapter: texture update failed", "frame", snap.Frame, "err", err)
	}

	t, err := a.binder.AcquireFrame(win)
	if err != nil {
		res.Err = err
		a.fail(err)
	} else {
		res.Paint, err = a.painter.Paint(t.Context(), out)
		if err != nil {
			uibridge.Logger().Warn("adapter: paint failed", "frame", snap.Frame, "err", err)
		}
		before := a.binder.Stats().Presents
		a.binder.Present(win, t)
		res.Presented = a.binder.Stats().Presents > before
	}

	a.painter.Textures.Free(out.Textures.Free)

	res.Repaint = a.frames.EndFrame(out)
	if !res.Presented {
		res.Repaint = frame.RepaintNow()
	}
	a.requestRepaint(res.Repaint)

	uibridge.Logger().Debug("adapter: cycle",
		"frame", res.Frame, "presented", res.Presented,
		"drawn", res.Paint.Drawn, "state", a.State().String())
	return res
}

// Close disposes the surface and the backend. Later calls do nothing.
func (a *Adapter) Close() error {
	if a.disposed {
		return nil
	}
	a.disposed = true
	a.painter.Textures.Reset()
	return a.binder.Dispose()
}

// syncViewport feeds a resize or scale change when the window no longer
// matches the viewport, for hosts that do not report them as events.
func (a *Adapter) syncViewport(win surface.Window) {
	if win == nil || !win.Valid() {
		return
	}
	vp := a.frames.Viewport()
	if s := win.ScaleFactor(); s > 0 && s != vp.PixelsPerPoint() {
		a.frames.Ingest(input.ScaleChanged{Scale: s})
	}
	if w, h := win.Size(); w != vp.PhysicalWidth || h != vp.PhysicalHeight {
		if w >= 0 && h >= 0 {
			a.frames.Ingest(input.WindowResized{Width: w, Height: h})
		}
	}
}

func (a *Adapter) fail(err error) {
	uibridge.Logger().Warn("adapter: cycle skipped", "backend", a.binder.Backend(), "err", err)
	if a.reporter != nil {
		a.reporter.ReportSurfaceError(err)
	}
}

func (a *Adapter) requestRepaint(r frame.RepaintRequest) {
	switch {
	case !r.Requested:
	case r.Immediate():
		if a.redraw != nil {
			a.redraw.RequestRedraw()
		}
	case a.scheduler != nil:
		a.scheduler.ScheduleRedraw(r.After)
	}
}
