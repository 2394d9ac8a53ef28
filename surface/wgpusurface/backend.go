// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpusurface provides a surface backend that owns its swapchain.
//
// The backend creates a wgpu instance, adapter and device once, and one
// wgpu surface per window from the window's native handles. Frames are
// rasterized by the gg GPU accelerator straight into the acquired surface
// texture, with no CPU readback.
//
// Importing the package registers the backend, the gg GPU accelerator and
// every wgpu HAL backend available on the platform:
//
//	import _ "github.com/gogpu/uibridge/surface/wgpusurface"
package wgpusurface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // GPU accelerator
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	_ "github.com/gogpu/wgpu/hal/allbackends"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

// Name is the registry name of the backend.
const Name = "wgpu"

// Priority is the registry priority of the backend.
const Priority = 100

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Backend, error) {
		return New(opts)
	}, nil)
}

var (
	errNotNative      = errors.New("wgpu: window does not implement surface.NativeWindow")
	errNoHandle       = errors.New("wgpu: window has no native handle")
	errNoDirectRender = errors.New("wgpu: gg accelerator cannot render to a surface on this adapter")
)

// Backend owns a wgpu device shared by all its surfaces.
//
// Backend implements gpucontext.DeviceProvider so gg's accelerator and
// canvases run on the same device.
type Backend struct {
	opts     surface.Options
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	format   gputypes.TextureFormat
}

var _ gpucontext.DeviceProvider = (*Backend)(nil)

// New creates the wgpu device. Any failure wraps uibridge.ErrNoDevice.
func New(opts surface.Options) (*Backend, error) {
	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: instance: %w", uibridge.ErrNoDevice, err)
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceSoftware,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: adapter: %w", uibridge.ErrNoDevice, err)
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: device: %w", uibridge.ErrNoDevice, err)
	}

	b := &Backend{
		opts:     opts,
		instance: instance,
		adapter:  adapter,
		device:   device,
		format:   gputypes.TextureFormatBGRA8Unorm,
	}
	if err := gg.SetAcceleratorDeviceProvider(b); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("%w: accelerator: %w", uibridge.ErrNoDevice, err)
	}
	if !gg.AcceleratorCanRenderDirect() {
		_ = b.Close()
		return nil, fmt.Errorf("%w: %w", uibridge.ErrNoDevice, errNoDirectRender)
	}

	info := adapter.Info()
	uibridge.Logger().Info("wgpu: device ready",
		"adapter", info.Name, "backend", info.Backend.String(), "type", info.DeviceType.String())
	return b, nil
}

// Name returns "wgpu".
func (b *Backend) Name() string { return Name }

// CreateSurface creates and configures a wgpu surface for the window's
// native handles.
func (b *Backend) CreateSurface(win surface.Window, cfg surface.Config) (surface.Surface, error) {
	nw, ok := win.(surface.NativeWindow)
	if !ok {
		return nil, errNotNative
	}
	display, handle := nw.NativeHandles()
	if handle == 0 {
		return nil, errNoHandle
	}
	if b.opts.Probe != nil {
		if _, _, err := b.opts.Probe.Probe(display, handle); err != nil {
			return nil, fmt.Errorf("wgpu: window probe: %w", err)
		}
	}

	ws, err := b.instance.CreateSurface(display, handle)
	if err != nil {
		return nil, err
	}

	sc := surfaceConfig{
		format:      gputypes.TextureFormatBGRA8Unorm,
		presentMode: choosePresentMode(b.opts.PresentMode, nil),
		alphaMode:   gputypes.CompositeAlphaModeOpaque,
	}
	if caps := b.adapter.GetSurfaceCapabilities(ws); caps != nil {
		sc.format = chooseFormat(caps.Formats)
		sc.presentMode = choosePresentMode(b.opts.PresentMode, caps.PresentModes)
		sc.alphaMode = chooseAlphaMode(caps.AlphaModes)
	}
	b.format = sc.format

	s, err := newSurface(b, ws, sc, cfg)
	if err != nil {
		ws.Release()
		return nil, err
	}
	uibridge.Logger().Debug("wgpu: surface created",
		"format", sc.format.String(), "present_mode", sc.presentMode.String())
	return s, nil
}

// Close releases the device, adapter and instance.
func (b *Backend) Close() error {
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
	return nil
}

// Device returns the *wgpu.Device.
func (b *Backend) Device() gpucontext.Device {
	if b.device == nil {
		return nil
	}
	return b.device
}

// Queue returns the device queue.
func (b *Backend) Queue() gpucontext.Queue {
	if b.device == nil {
		return nil
	}
	return b.device.Queue()
}

// Adapter returns the *wgpu.Adapter.
func (b *Backend) Adapter() gpucontext.Adapter {
	if b.adapter == nil {
		return nil
	}
	return b.adapter
}

// SurfaceFormat returns the format of the most recently created surface.
func (b *Backend) SurfaceFormat() gputypes.TextureFormat { return b.format }

// AdapterInfo describes the adapter.
func (b *Backend) AdapterInfo() gpucontext.AdapterInfo {
	if b.adapter == nil {
		return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
	}
	info := b.adapter.Info()
	return gpucontext.AdapterInfo{Name: info.Name, Type: adapterType(info.DeviceType)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
