// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adapter

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/frame"
	"github.com/gogpu/uibridge/input"
	"github.com/gogpu/uibridge/surface"
	"github.com/gogpu/uibridge/surface/offscreen"
)

var red = color.RGBA{R: 255, A: 255}

type window struct {
	w, h  int
	scale float64
	dead  bool
}

func (w *window) Size() (int, int)     { return w.w, w.h }
func (w *window) ScaleFactor() float64 { return w.scale }
func (w *window) Valid() bool          { return !w.dead }

type host struct {
	cursors   []gpucontext.CursorShape
	clips     []string
	redraws   int
	scheduled []time.Duration
	failures  []error
}

func (h *host) SetCursor(c gpucontext.CursorShape) { h.cursors = append(h.cursors, c) }
func (h *host) RequestRedraw()                     { h.redraws++ }
func (h *host) ScheduleRedraw(after time.Duration) { h.scheduled = append(h.scheduled, after) }
func (h *host) ReportSurfaceError(err error)       { h.failures = append(h.failures, err) }

func (h *host) ClipboardWrite(text string) error {
	h.clips = append(h.clips, text)
	return nil
}

// flakyBackend wraps the offscreen backend and fails acquires or presents
// on demand.
type flakyBackend struct {
	*offscreen.Backend
	failAcquire int
	failPresent int
}

func (b *flakyBackend) CreateSurface(win surface.Window, cfg surface.Config) (surface.Surface, error) {
	s, err := b.Backend.CreateSurface(win, cfg)
	if err != nil {
		return nil, err
	}
	return &flakySurface{Surface: s, b: b}, nil
}

type flakySurface struct {
	surface.Surface
	b *flakyBackend
}

func (s *flakySurface) Acquire(win surface.Window) (surface.Target, error) {
	if s.b.failAcquire > 0 {
		s.b.failAcquire--
		return nil, surface.ErrOutdated
	}
	return s.Surface.Acquire(win)
}

func (s *flakySurface) Present(win surface.Window, t surface.Target) error {
	if s.b.failPresent > 0 {
		s.b.failPresent--
		return errors.New("present timed out")
	}
	return s.Surface.Present(win, t)
}

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * 16 * time.Millisecond)
	}
}

func fillScreen(s *frame.Snapshot) *frame.Output {
	out := &frame.Output{}
	out.Add(uibridge.EverythingRect, frame.RectShape{Rect: s.ScreenRect(), Fill: red})
	return out
}

func newAdapter(t *testing.T, ui UI, backend surface.Backend, opts ...Option) *Adapter {
	t.Helper()
	a, err := New(ui, backend, append([]Option{WithClock(fixedClock())}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestCycleDrawsFrame(t *testing.T) {
	be := offscreen.New()
	a := newAdapter(t, UIFunc(fillScreen), be)
	win := &window{w: 40, h: 20, scale: 1}

	res := a.RunOneCycle(win)
	if res.Err != nil {
		t.Fatalf("Err = %v", res.Err)
	}
	if !res.Presented || res.Skipped() {
		t.Fatal("frame was not presented")
	}
	if res.Frame != 1 {
		t.Errorf("Frame = %d, want 1", res.Frame)
	}
	if res.Paint.Drawn != 1 {
		t.Errorf("Drawn = %d, want 1", res.Paint.Drawn)
	}
	if a.State() != StateSurfaceReady {
		t.Errorf("State = %v, want SurfaceReady", a.State())
	}

	img := be.Surface().Frame()
	if img.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Fatalf("frame bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(5, 5); got != red {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestViewportFromWindow(t *testing.T) {
	var snap *frame.Snapshot
	ui := UIFunc(func(s *frame.Snapshot) *frame.Output {
		snap = s
		return nil
	})
	a := newAdapter(t, ui, offscreen.New())

	a.RunOneCycle(&window{w: 80, h: 60, scale: 2})
	if snap == nil {
		t.Fatal("UI did not run")
	}
	if w, h := snap.Viewport.LogicalSize(); w != 40 || h != 30 {
		t.Errorf("logical size = %vx%v, want 40x30", w, h)
	}
	if len(snap.Events) != 2 {
		t.Fatalf("events = %v, want scale change and resize", snap.Events)
	}
	if _, ok := snap.Events[0].(input.ScaleChanged); !ok {
		t.Errorf("events[0] = %T, want ScaleChanged", snap.Events[0])
	}
	if _, ok := snap.Events[1].(input.WindowResized); !ok {
		t.Errorf("events[1] = %T, want WindowResized", snap.Events[1])
	}
}

func TestEventsReachUI(t *testing.T) {
	var snap *frame.Snapshot
	ui := UIFunc(func(s *frame.Snapshot) *frame.Output {
		snap = s
		return nil
	})
	h := &host{}
	a := newAdapter(t, ui, offscreen.New(),
		WithHost(h), WithViewport(uibridge.NewViewport(80, 60, 2)))

	a.HandleEvent(input.HostPointerMoved{X: 20, Y: 10})
	a.HandleEvent(input.HostPointerButton{Button: gpucontext.MouseButtonLeft, Pressed: true})
	if _, ok := a.HandleEvent(input.HostUnknown{Kind: "expose"}); ok {
		t.Error("unknown host event was not dropped")
	}
	if h.redraws != 2 {
		t.Errorf("redraws = %d, want 2", h.redraws)
	}

	a.RunOneCycle(&window{w: 80, h: 60, scale: 2})
	if snap.Pointer != uibridge.Pt(10, 5) {
		t.Errorf("Pointer = %v, want (10, 5)", snap.Pointer)
	}
	if !snap.IsButtonDown(input.ButtonPrimary) {
		t.Error("primary button not held")
	}
	if len(snap.Events) != 2 {
		t.Errorf("events = %d, want 2", len(snap.Events))
	}
}

func TestClickThenRedraw(t *testing.T) {
	var snaps []*frame.Snapshot
	ui := UIFunc(func(s *frame.Snapshot) *frame.Output {
		snaps = append(snaps, s)
		return fillScreen(s)
	})
	h := &host{}
	a := newAdapter(t, ui, offscreen.New(),
		WithHost(h), WithViewport(uibridge.NewViewport(200, 100, 1)))
	win := &window{w: 200, h: 100, scale: 1}

	a.HandleEvent(input.HostPointerMoved{X: 100, Y: 50})
	a.HandleEvent(input.HostPointerButton{Button: gpucontext.MouseButtonLeft, Pressed: true})
	a.HandleEvent(input.HostPointerButton{Button: gpucontext.MouseButtonLeft})
	if h.redraws != 3 {
		t.Errorf("redraws = %d, want 3", h.redraws)
	}

	res := a.RunOneCycle(win)
	if res.Err != nil || !res.Presented {
		t.Fatalf("cycle: presented=%v err=%v", res.Presented, res.Err)
	}
	if n := a.SurfaceStats().Presents; n != 1 {
		t.Errorf("Presents = %d, want 1", n)
	}
	clicks := snaps[0].Clicks()
	if len(clicks) != 1 {
		t.Fatalf("clicks = %v, want one", clicks)
	}
	if clicks[0].Pos != uibridge.Pt(100, 50) {
		t.Errorf("click at %v, want (100, 50)", clicks[0].Pos)
	}

	a.RunOneCycle(win)
	if len(snaps) != 2 {
		t.Fatalf("UI ran %d times, want 2", len(snaps))
	}
	for _, e := range snaps[1].Events {
		if _, ok := e.(input.PointerButton); ok {
			t.Errorf("button event %+v carried into the next frame", e)
		}
	}
	if snaps[1].IsButtonDown(input.ButtonPrimary) {
		t.Error("primary button still held after release")
	}
	if snaps[1].Pointer != uibridge.Pt(100, 50) {
		t.Errorf("Pointer = %v, want (100, 50)", snaps[1].Pointer)
	}
}

func TestEnsureFailureSkipsUI(t *testing.T) {
	tests := []struct {
		name string
		win  surface.Window
	}{
		{"zero size", &window{w: 0, h: 20, scale: 1}},
		{"destroyed", &window{w: 40, h: 20, scale: 1, dead: true}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ui := UIFunc(func(*frame.Snapshot) *frame.Output {
				calls++
				return nil
			})
			h := &host{}
			a := newAdapter(t, ui, offscreen.New(),
				WithHost(h), WithViewport(uibridge.NewViewport(0, 20, 1)))

			res := a.RunOneCycle(tt.win)
			if !errors.Is(res.Err, uibridge.ErrSurfaceCreation) {
				t.Errorf("Err = %v, want ErrSurfaceCreation", res.Err)
			}
			if calls != 0 || res.Frame != 0 {
				t.Errorf("UI ran %d times, frame %d", calls, res.Frame)
			}
			if len(h.failures) != 1 {
				t.Errorf("failures reported = %d, want 1", len(h.failures))
			}
			if h.redraws != 0 {
				t.Errorf("redraws = %d, want 0", h.redraws)
			}
			if a.State() != StateUninitialized {
				t.Errorf("State = %v, want Uninitialized", a.State())
			}
		})
	}
}

func TestZeroSizeAfterReady(t *testing.T) {
	a := newAdapter(t, UIFunc(fillScreen), offscreen.New())
	win := &window{w: 40, h: 20, scale: 1}
	a.RunOneCycle(win)

	win.w, win.h = 0, 0
	if res := a.RunOneCycle(win); !errors.Is(res.Err, uibridge.ErrSurfaceCreation) {
		t.Fatalf("Err = %v, want ErrSurfaceCreation", res.Err)
	}
	if a.State() != StateUninitialized {
		t.Errorf("State = %v, want Uninitialized", a.State())
	}

	win.w, win.h = 40, 20
	if res := a.RunOneCycle(win); !res.Presented {
		t.Fatalf("restored window not presented: %v", res.Err)
	}
	if a.State() != StateSurfaceReady {
		t.Errorf("State = %v, want SurfaceReady", a.State())
	}
}

func TestAcquireFailureStillEndsFrame(t *testing.T) {
	be := &flakyBackend{Backend: offscreen.New(), failAcquire: 1}
	h := &host{}
	pixels := image.NewRGBA(image.Rect(0, 0, 2, 2))

	frames := 0
	ui := UIFunc(func(s *frame.Snapshot) *frame.Output {
		frames++
		out := fillScreen(s)
		out.Cursor = frame.CursorText
		if frames == 1 {
			out.Textures.Set = []frame.TextureSet{
				{ID: 1, Delta: frame.ImageDelta{Image: pixels}},
				{ID: 2, Delta: frame.ImageDelta{Image: pixels}},
			}
			out.Textures.Free = []frame.TextureID{2}
		}
		return out
	})
	a := newAdapter(t, ui, be, WithHost(h))
	win := &window{w: 40, h: 20, scale: 1}

	res := a.RunOneCycle(win)
	if !errors.Is(res.Err, uibridge.ErrSurfaceLost) {
		t.Fatalf("Err = %v, want ErrSurfaceLost", res.Err)
	}
	if res.Frame != 1 || res.Presented {
		t.Errorf("Frame = %d, Presented = %v", res.Frame, res.Presented)
	}
	if !res.Repaint.Immediate() || h.redraws != 1 {
		t.Errorf("Repaint = %+v, redraws = %d; want an immediate repaint", res.Repaint, h.redraws)
	}
	if len(h.cursors) != 1 || h.cursors[0] != gpucontext.CursorText {
		t.Errorf("cursors = %v, frame was not ended", h.cursors)
	}
	if !a.Textures().Has(1) || a.Textures().Has(2) {
		t.Error("texture sets and frees were not applied")
	}
	if a.State() != StateUninitialized {
		t.Errorf("State = %v, want Uninitialized", a.State())
	}

	res = a.RunOneCycle(win)
	if !res.Presented || res.Frame != 2 {
		t.Fatalf("second cycle: Presented = %v, Frame = %d, Err = %v", res.Presented, res.Frame, res.Err)
	}
	if got := a.SurfaceStats().Reconfigures; got != 1 {
		t.Errorf("Reconfigures = %d, want 1", got)
	}
	if len(h.cursors) != 1 {
		t.Errorf("unchanged cursor was sent again: %v", h.cursors)
	}
}

func TestPresentFailureRepaints(t *testing.T) {
	be := &flakyBackend{Backend: offscreen.New(), failPresent: 1}
	h := &host{}
	a := newAdapter(t, UIFunc(fillScreen), be, WithHost(h))
	win := &window{w: 40, h: 20, scale: 1}

	res := a.RunOneCycle(win)
	if res.Presented || !res.Repaint.Immediate() {
		t.Errorf("Presented = %v, Repaint = %+v", res.Presented, res.Repaint)
	}
	if a.State() != StateUninitialized {
		t.Errorf("State = %v, want Uninitialized", a.State())
	}
	if res := a.RunOneCycle(win); !res.Presented {
		t.Errorf("second cycle not presented: %v", res.Err)
	}
}

func TestResizeReconfigures(t *testing.T) {
	be := offscreen.New()
	a := newAdapter(t, UIFunc(fillScreen), be)
	win := &window{w: 40, h: 20, scale: 1}
	a.RunOneCycle(win)

	win.w, win.h = 60, 30
	a.HandleEvent(input.HostResized{Width: 60, Height: 30})
	if res := a.RunOneCycle(win); !res.Presented {
		t.Fatalf("resized cycle not presented: %v", res.Err)
	}
	st := a.SurfaceStats()
	if st.Creates != 1 || st.Reconfigures != 1 {
		t.Errorf("Stats = %+v, want one create and one reconfigure", st)
	}
	if b := be.Surface().Frame().Bounds(); b.Dx() != 60 || b.Dy() != 30 {
		t.Errorf("frame = %v, want 60x30", b)
	}
}

func TestRepaintForwarding(t *testing.T) {
	tests := []struct {
		name      string
		repaint   frame.RepaintRequest
		redraws   int
		scheduled []time.Duration
	}{
		{"none", frame.RepaintRequest{}, 0, nil},
		{"now", frame.RepaintNow(), 1, nil},
		{"later", frame.RepaintIn(100 * time.Millisecond), 0, []time.Duration{100 * time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &host{}
			ui := UIFunc(func(*frame.Snapshot) *frame.Output {
				return &frame.Output{Repaint: tt.repaint}
			})
			a := newAdapter(t, ui, offscreen.New(), WithHost(h))
			res := a.RunOneCycle(&window{w: 10, h: 10, scale: 1})
			if res.Repaint != tt.repaint {
				t.Errorf("Repaint = %+v, want %+v", res.Repaint, tt.repaint)
			}
			if h.redraws != tt.redraws {
				t.Errorf("redraws = %d, want %d", h.redraws, tt.redraws)
			}
			if len(h.scheduled) != len(tt.scheduled) || (len(tt.scheduled) > 0 && h.scheduled[0] != tt.scheduled[0]) {
				t.Errorf("scheduled = %v, want %v", h.scheduled, tt.scheduled)
			}
		})
	}
}

func TestClipboardForwarded(t *testing.T) {
	h := &host{}
	ui := UIFunc(func(*frame.Snapshot) *frame.Output {
		return &frame.Output{CopiedText: "hello"}
	})
	a := newAdapter(t, ui, offscreen.New(), WithHost(h))
	a.RunOneCycle(&window{w: 10, h: 10, scale: 1})
	if len(h.clips) != 1 || h.clips[0] != "hello" {
		t.Errorf("clipboard = %v", h.clips)
	}
}

func TestCloseRequested(t *testing.T) {
	calls := 0
	ui := UIFunc(func(*frame.Snapshot) *frame.Output {
		calls++
		return nil
	})
	a := newAdapter(t, ui, offscreen.New())
	win := &window{w: 10, h: 10, scale: 1}
	a.RunOneCycle(win)

	if _, ok := a.HandleEvent(input.HostCloseRequested{}); !ok {
		t.Fatal("close request dropped")
	}
	if a.State() != StateDisposed {
		t.Fatalf("State = %v, want Disposed", a.State())
	}
	if res := a.RunOneCycle(win); !errors.Is(res.Err, uibridge.ErrDisposed) {
		t.Errorf("Err = %v, want ErrDisposed", res.Err)
	}
	if calls != 1 {
		t.Errorf("UI ran %d times after close", calls)
	}
	if _, ok := a.HandleEvent(input.HostPointerMoved{X: 1, Y: 1}); ok {
		t.Error("event accepted after close")
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(UIFunc(fillScreen), nil); !errors.Is(err, uibridge.ErrNoDevice) {
		t.Errorf("nil backend: err = %v, want ErrNoDevice", err)
	}
	if _, err := New(nil, offscreen.New()); err == nil {
		t.Error("nil UI accepted")
	}
}

func TestNewAutoWithoutGPU(t *testing.T) {
	// Only the offscreen backend is linked in, and it is never picked
	// automatically.
	_, err := NewAuto(UIFunc(fillScreen), surface.Options{})
	if !errors.Is(err, uibridge.ErrNoDevice) {
		t.Errorf("err = %v, want ErrNoDevice", err)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateSurfaceReady, "SurfaceReady"},
		{StateDisposed, "Disposed"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
