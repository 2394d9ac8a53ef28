// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gpucontext"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/uibridge/input"
)

// Script is a recorded host session: a window and the events delivered
// between redraws.
type Script struct {
	Window WindowSpec `yaml:"window"`
	Steps  []Step     `yaml:"steps"`
}

// WindowSpec is the initial window geometry in physical pixels.
type WindowSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// Step is a batch of events followed by one redraw.
type Step struct {
	Events []EventSpec `yaml:"events"`

	// Snapshot writes the frame drawn by this step to a PNG file.
	Snapshot bool `yaml:"snapshot"`
}

// EventSpec is one host event. Type selects which fields are read.
type EventSpec struct {
	Type    string   `yaml:"type"`
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Button  string   `yaml:"button"`
	Key     string   `yaml:"key"`
	Mods    []string `yaml:"mods"`
	Repeat  bool     `yaml:"repeat"`
	Text    string   `yaml:"text"`
	DX      float64  `yaml:"dx"`
	DY      float64  `yaml:"dy"`
	Mode    string   `yaml:"mode"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Factor  float64  `yaml:"factor"`
	Gained  bool     `yaml:"gained"`
	Pressed *bool    `yaml:"pressed"`
}

var defaultScript = Script{
	Window: WindowSpec{Width: 320, Height: 200, Scale: 1},
	Steps: []Step{
		{Snapshot: true},
		{Events: []EventSpec{{Type: "move", X: 40, Y: 30}}, Snapshot: true},
		{Events: []EventSpec{{Type: "press", Button: "left"}, {Type: "release", Button: "left"}}},
		{Events: []EventSpec{{Type: "move", X: 60, Y: 80}, {Type: "text", Text: "hello"}}, Snapshot: true},
		{Events: []EventSpec{{Type: "resize", Width: 480, Height: 240}}, Snapshot: true},
	},
}

// LoadScript reads a script file. An empty path returns the built-in script.
func LoadScript(path string) (*Script, error) {
	if path == "" {
		s := defaultScript
		return &s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: %w", err)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return nil, errors.New("script: window width and height must be > 0")
	}
	if s.Window.Scale == 0 {
		s.Window.Scale = 1
	}
	for i, step := range s.Steps {
		for j, ev := range step.Events {
			if _, err := ev.HostEvent(); err != nil {
				return nil, fmt.Errorf("script: steps[%d].events[%d]: %w", i, j, err)
			}
		}
	}
	return &s, nil
}

// HostEvent returns the event a host would deliver for e.
func (e EventSpec) HostEvent() (input.HostEvent, error) {
	switch e.Type {
	case "move":
		return input.HostPointerMoved{X: e.X, Y: e.Y}, nil
	case "press", "release":
		b, err := mouseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return input.HostPointerButton{Button: b, Pressed: e.Type == "press"}, nil
	case "leave":
		return input.HostPointerLeft{}, nil
	case "key":
		code, ok := input.KeyCodeFor(input.KeyName(e.Key))
		if !ok {
			return nil, fmt.Errorf("unknown key %q", e.Key)
		}
		mods, err := modifiers(e.Mods)
		if err != nil {
			return nil, err
		}
		pressed := e.Pressed == nil || *e.Pressed
		return input.HostKey{Code: code, Pressed: pressed, Repeat: e.Repeat, Mods: mods}, nil
	case "text":
		return input.HostText{Text: e.Text}, nil
	case "scroll":
		mode, err := scrollMode(e.Mode)
		if err != nil {
			return nil, err
		}
		mods, err := modifiers(e.Mods)
		if err != nil {
			return nil, err
		}
		return input.HostScroll{DX: e.DX, DY: e.DY, Mode: mode, Mods: mods}, nil
	case "resize":
		return input.HostResized{Width: e.Width, Height: e.Height}, nil
	case "scale":
		return input.HostScaleChanged{Factor: e.Factor}, nil
	case "focus":
		return input.HostFocus{Gained: e.Gained}, nil
	case "close":
		return input.HostCloseRequested{}, nil
	case "preedit":
		return input.HostIMEPreedit{Text: e.Text}, nil
	case "commit":
		return input.HostIMECommit{Text: e.Text}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

func mouseButton(name string) (gpucontext.MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return gpucontext.MouseButtonLeft, nil
	case "right":
		return gpucontext.MouseButtonRight, nil
	case "middle":
		return gpucontext.MouseButtonMiddle, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

func scrollMode(name string) (gpucontext.ScrollDeltaMode, error) {
	switch strings.ToLower(name) {
	case "", "line":
		return gpucontext.ScrollDeltaLine, nil
	case "pixel":
		return gpucontext.ScrollDeltaPixel, nil
	case "page":
		return gpucontext.ScrollDeltaPage, nil
	default:
		return 0, fmt.Errorf("unknown scroll mode %q", name)
	}
}

func modifiers(names []string) (gpucontext.Modifiers, error) {
	var m gpucontext.Modifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= gpucontext.ModShift
		case "ctrl", "control":
			m |= gpucontext.ModControl
		case "alt":
			m |= gpucontext.ModAlt
		case "super", "cmd":
			m |= gpucontext.ModSuper
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}
