// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input converts host window events into the neutral input model
// consumed by immediate-mode UIs.
//
// Two event families live here:
//
//   - [HostEvent]: what the host runtime reports, in physical pixels, using
//     gpucontext key codes, modifier masks and mouse buttons.
//   - [Event]: what the UI sees, in logical points, with host-agnostic key
//     names and modifiers.
//
// [Translator.Translate] maps one host event to at most one neutral event.
// Events that mean nothing to a UI (unknown kinds, unmapped keys, empty text)
// translate to nothing; that is not an error.
//
// [Source] subscribes to a gpucontext.EventSource and turns its callbacks into
// host events, so a gogpu application can feed the adapter without writing
// any glue:
//
//	src := input.NewSource(adapter.HandleEvent)
//	src.Bind(app.EventSource())
//	src.SyncWindow(app.WindowProvider())
package input
