// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paint rasterizes UI frame output with gg.
//
// [TextureStore] keeps the UI's textures and applies texture deltas.
// [Painter] clears a gg.Context and draws frame shapes into it, each inside
// its clip rectangle. Whether the pixels end up on a CPU pixmap or go
// straight to a GPU surface is up to the context the surface backend hands
// in; the painter only speaks gg.
package paint
