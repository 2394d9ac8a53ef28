// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command uireplay replays a scripted host session through the adapter and
// writes the drawn frames as PNG files.
//
// It plays the part of the host: it owns an offscreen window, delivers the
// script's events and requests one redraw per step. No GPU or display is
// needed.
//
//	uireplay -script session.yaml -out frames
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gpucontext"
	"golang.org/x/term"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/adapter"
	"github.com/gogpu/uibridge/config"
	"github.com/gogpu/uibridge/input"
	"github.com/gogpu/uibridge/surface/offscreen"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "YAML event script (default: built-in demo session)")
		configPath = flag.String("config", "", "YAML config file")
		outDir     = flag.String("out", "frames", "output directory")
		all        = flag.Bool("all", false, "write every frame, not only snapshot steps")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	uibridge.SetLogger(newLogger(os.Stderr, level))

	script, err := LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	sum, err := replay(script, cfg, *outDir, *all)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	log.Printf("%d frames drawn, %d skipped, %d written to %s\n",
		sum.Frames, sum.Skipped, len(sum.Written), *outDir)
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(f *os.File, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}

// summary reports what a replay did.
type summary struct {
	Frames    int      // cycles that presented
	Skipped   int      // cycles that drew nothing
	Written   []string // PNG files
	Redraws   int      // redraw requests from the adapter
	Cursor    gpucontext.CursorShape
	Clipboard string
}

// replay runs script through a fresh adapter on the offscreen backend.
// The config's backend setting is ignored.
func replay(s *Script, cfg *config.Config, outDir string, all bool) (*summary, error) {
	opts, font, err := cfg.AdapterOptions()
	if err != nil {
		return nil, err
	}
	if font != nil {
		defer func() { _ = font.Close() }()
	}

	be := offscreen.New()
	win := &window{w: s.Window.Width, h: s.Window.Height, scale: s.Window.Scale}
	h := &host{}
	opts = append(opts,
		adapter.WithHost(h),
		adapter.WithViewport(uibridge.NewViewport(win.w, win.h, win.scale)),
	)
	a, err := adapter.New(&demoUI{}, be, opts...)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	sum := &summary{}
	for i, step := range s.Steps {
		for _, spec := range step.Events {
			ev, err := spec.HostEvent()
			if err != nil {
				return sum, fmt.Errorf("step %d: %w", i+1, err)
			}
			win.apply(ev)
			a.HandleEvent(ev)
		}
		if a.State() == adapter.StateDisposed {
			uibridge.Logger().Info("uireplay: window closed", "step", i+1)
			break
		}

		res := a.RunOneCycle(win)
		if res.Skipped() {
			sum.Skipped++
			continue
		}
		sum.Frames++
		if step.Snapshot || all {
			path := filepath.Join(outDir, fmt.Sprintf("frame-%03d.png", i+1))
			if err := writePNG(path, be.Surface()); err != nil {
				return sum, err
			}
			sum.Written = append(sum.Written, path)
		}
	}

	sum.Redraws = h.redraws
	sum.Cursor = h.cursor
	sum.Clipboard = h.clipboard
	return sum, nil
}

func writePNG(path string, s *offscreen.Surface) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.EncodePNG(f)
}

// window is the replayed host window. Resize and scale events from the
// script change it before the adapter sees them, as a real host would.
type window struct {
	w, h   int
	scale  float64
	closed bool
}

func (w *window) Size() (int, int)     { return w.w, w.h }
func (w *window) ScaleFactor() float64 { return w.scale }
func (w *window) Valid() bool          { return !w.closed }

func (w *window) apply(ev input.HostEvent) {
	switch e := ev.(type) {
	case input.HostResized:
		w.w, w.h = e.Width, e.Height
	case input.HostScaleChanged:
		w.scale = e.Factor
	case input.HostCloseRequested:
		w.closed = true
	}
}

// host records what the adapter asks of the host.
type host struct {
	redraws   int
	cursor    gpucontext.CursorShape
	clipboard string
}

func (h *host) RequestRedraw()                     { h.redraws++ }
func (h *host) SetCursor(c gpucontext.CursorShape) { h.cursor = c }

func (h *host) ClipboardWrite(text string) error {
	h.clipboard = text
	return nil
}
