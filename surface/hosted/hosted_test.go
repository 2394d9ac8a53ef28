// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package hosted

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

type mockDevice struct{}

func (mockDevice) Device() gpucontext.Device             { return nil }
func (mockDevice) Queue() gpucontext.Queue               { return nil }
func (mockDevice) Adapter() gpucontext.Adapter           { return nil }
func (mockDevice) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }
func (mockDevice) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "mock", Type: gpucontext.AdapterTypeSoftware}
}

type mockTexture struct {
	w, h    int
	data    []byte
	updates int
}

func (t *mockTexture) Width() int  { return t.w }
func (t *mockTexture) Height() int { return t.h }

func (t *mockTexture) UpdateData(data []byte) error {
	t.data = append(t.data[:0], data...)
	t.updates++
	return nil
}

type mockTarget struct {
	created   []*mockTexture
	presented []any
}

func (r *mockTarget) SurfaceView() gpucontext.TextureView { return gpucontext.TextureView{} }
func (r *mockTarget) SurfaceSize() (uint32, uint32)       { return 0, 0 }

func (r *mockTarget) PresentTexture(tex any) error {
	r.presented = append(r.presented, tex)
	return nil
}

func (r *mockTarget) TextureCreator() gpucontext.TextureCreator { return r }

func (r *mockTarget) NewTextureFromRGBA(w, h int, data []byte) (gpucontext.Texture, error) {
	t := &mockTexture{w: w, h: h, data: append([]byte(nil), data...)}
	r.created = append(r.created, t)
	return t, nil
}

type mockWindow struct {
	w, h  int
	scale float64
	dp    gpucontext.DeviceProvider
	rt    ggcanvas.RenderTarget
}

func (w *mockWindow) Size() (int, int)                          { return w.w, w.h }
func (w *mockWindow) ScaleFactor() float64                      { return w.scale }
func (w *mockWindow) Valid() bool                               { return true }
func (w *mockWindow) DeviceProvider() gpucontext.DeviceProvider { return w.dp }
func (w *mockWindow) RenderTarget() ggcanvas.RenderTarget       { return w.rt }

func TestPresentUploadsFrame(t *testing.T) {
	rt := &mockTarget{}
	win := &mockWindow{w: 8, h: 4, scale: 1, dp: mockDevice{}, rt: rt}
	b := surface.NewBinder(New())
	defer b.Dispose()

	vp := uibridge.NewViewport(8, 4, 1)
	for frame := 0; frame < 2; frame++ {
		if err := b.EnsureSurface(win, vp); err != nil {
			t.Fatal(err)
		}
		tgt, err := b.AcquireFrame(win)
		if err != nil {
			t.Fatal(err)
		}
		tgt.Context().ClearWithColor(gg.RGBA{R: 1, A: 1})
		b.Present(win, tgt)
	}

	if len(rt.presented) != 2 {
		t.Fatalf("presented %d frames, want 2", len(rt.presented))
	}
	if len(rt.created) != 1 {
		t.Fatalf("created %d textures, want 1", len(rt.created))
	}
	tex := rt.created[0]
	if tex.w != 8 || tex.h != 4 || len(tex.data) != 8*4*4 {
		t.Errorf("texture = %dx%d with %d bytes", tex.w, tex.h, len(tex.data))
	}
	if tex.data[0] != 255 || tex.data[1] != 0 || tex.data[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", tex.data[:4])
	}
	if tex.updates != 1 {
		t.Errorf("updates = %d, want 1 after the first frame", tex.updates)
	}
	if b.Stats().Presents != 2 {
		t.Errorf("Presents = %d", b.Stats().Presents)
	}
}

func TestConfigureScalesCanvas(t *testing.T) {
	win := &mockWindow{w: 200, h: 100, scale: 2, dp: mockDevice{}}
	s, err := New().CreateSurface(win, surface.Config{Width: 200, Height: 100, Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	c := s.(*Surface).Canvas()
	if w, h := c.Size(); w != 100 || h != 50 {
		t.Errorf("canvas = %dx%d, want 100x50 logical", w, h)
	}

	if err := s.Configure(win, surface.Config{Width: 300, Height: 300, Scale: 1.5}); err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 200 || h != 200 {
		t.Errorf("canvas = %dx%d, want 200x200 logical", w, h)
	}
	if c.DeviceScale() != 1.5 {
		t.Errorf("DeviceScale = %v", c.DeviceScale())
	}
}

func TestCreateSurfaceErrors(t *testing.T) {
	be := New()
	cfg := surface.Config{Width: 10, Height: 10, Scale: 1}

	if _, err := be.CreateSurface(plainWindow{}, cfg); !errors.Is(err, errNotHosted) {
		t.Errorf("plain window: %v", err)
	}
	if _, err := be.CreateSurface(&mockWindow{w: 10, h: 10}, cfg); !errors.Is(err, uibridge.ErrNoDevice) {
		t.Errorf("no device: %v", err)
	}
}

func TestPresentWithoutRenderTarget(t *testing.T) {
	win := &mockWindow{w: 10, h: 10, scale: 1, dp: mockDevice{}}
	s, err := New().CreateSurface(win, surface.Config{Width: 10, Height: 10, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	tgt, _ := s.Acquire(win)
	if err := s.Present(win, tgt); !errors.Is(err, errNoRenderTarget) {
		t.Errorf("err = %v", err)
	}
	s.Release()
	if _, err := s.Acquire(win); !errors.Is(err, uibridge.ErrSurfaceLost) {
		t.Errorf("Acquire after release: %v", err)
	}
}

type plainWindow struct{}

func (plainWindow) Size() (int, int)     { return 10, 10 }
func (plainWindow) ScaleFactor() float64 { return 1 }
func (plainWindow) Valid() bool          { return true }
