// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/uibridge/frame"
)

// Texture store errors.
var (
	// ErrUnknownTexture is returned for a partial update of a texture that
	// was never set.
	ErrUnknownTexture = errors.New("paint: unknown texture")

	// ErrTextureBounds is returned when a partial update does not fit
	// inside the texture.
	ErrTextureBounds = errors.New("paint: texture update out of bounds")

	// ErrNilImage is returned for a delta without pixels.
	ErrNilImage = errors.New("paint: nil image in texture delta")

	// ErrEmptyImage is returned for a whole-texture delta with no pixels.
	ErrEmptyImage = errors.New("paint: empty image in texture delta")
)

// maxTints bounds the tinted copies kept per texture.
const maxTints = 8

var opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type texture struct {
	img    *image.RGBA
	buf    *gg.ImageBuf // built lazily from img, dropped on update
	tinted map[color.RGBA]*gg.ImageBuf
	filter frame.Filter
}

func (t *texture) invalidate() {
	t.buf = nil
	clear(t.tinted)
}

// TextureStore keeps the UI's textures between frames.
//
// Updates arrive as frame.TexturesDelta: sets are applied before the frame
// is painted and frees after it is presented, so a texture freed in a frame
// can still be drawn by that frame.
type TextureStore struct {
	textures map[frame.TextureID]*texture
}

// NewTextureStore creates an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{textures: make(map[frame.TextureID]*texture)}
}

// Len returns the number of live textures.
func (s *TextureStore) Len() int {
	return len(s.textures)
}

// Has reports whether id is live.
func (s *TextureStore) Has(id frame.TextureID) bool {
	_, ok := s.textures[id]
	return ok
}

// Size returns the pixel size of texture id.
func (s *TextureStore) Size(id frame.TextureID) (width, height int, ok bool) {
	t, ok := s.textures[id]
	if !ok {
		return 0, 0, false
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Apply applies every set in order. A failing update is skipped and
// reported; the others are still applied.
func (s *TextureStore) Apply(sets []frame.TextureSet) error {
	var errs []error
	for _, set := range sets {
		if err := s.set(set.ID, set.Delta); err != nil {
			errs = append(errs, fmt.Errorf("texture %d: %w", set.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *TextureStore) set(id frame.TextureID, d frame.ImageDelta) error {
	if d.Image == nil {
		return ErrNilImage
	}
	src := d.Image
	sb := src.Bounds()

	if d.IsWhole() {
		if sb.Empty() {
			return ErrEmptyImage
		}
		dst := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
		s.textures[id] = &texture{img: dst, filter: d.Filter}
		return nil
	}

	t, ok := s.textures[id]
	if !ok {
		return ErrUnknownTexture
	}
	r := image.Rectangle{Min: *d.Pos, Max: d.Pos.Add(sb.Size())}
	if !r.In(t.img.Bounds()) {
		return fmt.Errorf("%w: %v not in %v", ErrTextureBounds, r, t.img.Bounds())
	}
	draw.Draw(t.img, r, src, sb.Min, draw.Src)
	t.filter = d.Filter
	t.invalidate()
	return nil
}

// Free drops textures. Unknown ids are ignored.
func (s *TextureStore) Free(ids []frame.TextureID) {
	for _, id := range ids {
		delete(s.textures, id)
	}
}

// Reset drops every texture.
func (s *TextureStore) Reset() {
	clear(s.textures)
}

// ImageBuf returns the gg image for id, building it on first use after an
// update.
func (s *TextureStore) ImageBuf(id frame.TextureID) (*gg.ImageBuf, frame.Filter, bool) {
	t, ok := s.textures[id]
	if !ok || t.img.Bounds().Empty() {
		return nil, 0, false
	}
	if t.buf == nil {
		t.buf = gg.ImageBufFromImage(t.img)
	}
	return t.buf, t.filter, true
}

// TintedImageBuf is ImageBuf with every texel multiplied by tint. The zero
// tint and opaque white leave the texture unchanged.
func (s *TextureStore) TintedImageBuf(id frame.TextureID, tint color.RGBA) (*gg.ImageBuf, frame.Filter, bool) {
	if tint == (color.RGBA{}) || tint == opaqueWhite {
		return s.ImageBuf(id)
	}
	t, ok := s.textures[id]
	if !ok || t.img.Bounds().Empty() {
		return nil, 0, false
	}
	if buf, ok := t.tinted[tint]; ok {
		return buf, t.filter, true
	}
	if t.tinted == nil || len(t.tinted) >= maxTints {
		t.tinted = make(map[color.RGBA]*gg.ImageBuf)
	}
	buf := gg.ImageBufFromImage(tintImage(t.img, tint))
	t.tinted[tint] = buf
	return buf, t.filter, true
}

// tintImage multiplies premultiplied texels by a premultiplied tint.
func tintImage(src *image.RGBA, tint color.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	k := [4]uint32{uint32(tint.R), uint32(tint.G), uint32(tint.B), uint32(tint.A)}
	for i, v := range src.Pix {
		dst.Pix[i] = uint8((uint32(v)*k[i%4] + 127) / 255)
	}
	return dst
}

// Sample returns the texel at normalized coordinates (u, v), clamped to the
// texture edge.
func (s *TextureStore) Sample(id frame.TextureID, u, v float64) (color.RGBA, bool) {
	t, ok := s.textures[id]
	if !ok {
		return color.RGBA{}, false
	}
	b := t.img.Bounds()
	if b.Empty() {
		return color.RGBA{}, false
	}
	x := clampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
	y := clampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
	return t.img.RGBAAt(b.Min.X+x, b.Min.Y+y), true
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
