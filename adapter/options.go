// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package adapter

import (
	"image/color"
	"time"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/input"
)

// Option configures an Adapter during creation.
//
// Example:
//
//	a, err := adapter.New(ui, backend,
//	    adapter.WithHost(app),
//	    adapter.WithViewport(uibridge.NewViewport(1600, 1200, 2)),
//	)
type Option func(*options)

type options struct {
	host       any
	viewport   uibridge.Viewport
	clear      color.RGBA
	font       *text.FontSource
	textSize   float64
	translator input.Translator
	now        func() time.Time
}

func defaultOptions() options {
	return options{
		translator: input.DefaultTranslator(),
		now:        time.Now,
	}
}

// WithHost sets the host notified about cursor changes, copied text, repaint
// requests and surface failures. The host is checked once, at creation,
// for each of CursorSetter, ClipboardWriter, RedrawRequester,
// RedrawScheduler and FailureReporter.
func WithHost(host any) Option {
	return func(o *options) {
		o.host = host
	}
}

// WithViewport sets the initial viewport. Without it the viewport is taken
// from the window on the first cycle.
func WithViewport(vp uibridge.Viewport) Option {
	return func(o *options) {
		o.viewport = vp
	}
}

// WithClearColor sets the color every frame starts from.
// The default is transparent.
func WithClearColor(c color.RGBA) Option {
	return func(o *options) {
		o.clear = c
	}
}

// WithFont sets the font for text shapes and the size of text shapes that
// do not set one. Without a font, text shapes are skipped.
func WithFont(src *text.FontSource, size float64) Option {
	return func(o *options) {
		o.font = src
		o.textSize = size
	}
}

// WithTranslator replaces the default input translator.
func WithTranslator(t input.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithClock replaces time.Now for frame timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
