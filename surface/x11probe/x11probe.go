// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package x11probe checks X11 window handles before a surface is created
// for them.
//
// A Prober keeps its own connection to the X server and answers whether a
// window id still refers to a mapped, non-empty window. It implements
// surface.HandleProbe:
//
//	p, err := x11probe.New("")
//	if err == nil {
//	    defer p.Close()
//	    opts.Probe = p
//	}
package x11probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/surface"
)

var (
	// ErrNoWindow is returned for a zero window id.
	ErrNoWindow = errors.New("x11probe: no window")

	// ErrEmptyWindow is returned for a window with zero width or height.
	ErrEmptyWindow = errors.New("x11probe: window has zero size")
)

// Prober queries window geometry over its own X connection.
type Prober struct {
	xu *xgbutil.XUtil
}

var _ surface.HandleProbe = (*Prober)(nil)

// New connects to the named X display. An empty name uses $DISPLAY.
func New(display string) (*Prober, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x11probe: connect: %w", err)
	}
	return &Prober{xu: xu}, nil
}

// Probe returns the size of window in pixels. The display pointer is the
// host's Xlib connection and is not used; the query goes over the
// prober's own connection.
func (p *Prober) Probe(_, window uintptr) (width, height int, err error) {
	if window == 0 {
		return 0, 0, ErrNoWindow
	}
	wid := xproto.Window(window) //nolint:gosec // X11 window ids are 32-bit
	geom, err := xproto.GetGeometry(p.xu.Conn(), xproto.Drawable(wid)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11probe: window %#x: %w", window, err)
	}
	if err := checkGeometry(geom.Width, geom.Height); err != nil {
		return 0, 0, fmt.Errorf("window %#x: %w", window, err)
	}
	logWindow(p.xu, wid, geom.Width, geom.Height)
	return int(geom.Width), int(geom.Height), nil
}

var wmNameGet = ewmh.WmNameGet

// logWindow logs the window title. The title is fetched only when debug
// logging is on.
func logWindow(xu *xgbutil.XUtil, wid xproto.Window, width, height uint16) {
	log := uibridge.Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	name, _ := wmNameGet(xu, wid)
	log.Debug("x11probe: window ok", "window", uint32(wid), "name", name, "width", width, "height", height)
}

// Close closes the X connection.
func (p *Prober) Close() {
	if p.xu != nil {
		p.xu.Conn().Close()
		p.xu = nil
	}
}

func checkGeometry(w, h uint16) error {
	if w == 0 || h == 0 {
		return ErrEmptyWindow
	}
	return nil
}
