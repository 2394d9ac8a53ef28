// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/uibridge"
	"github.com/gogpu/uibridge/frame"
)

// DefaultTextSize is the text size used when neither the shape nor the
// painter sets one.
const DefaultTextSize = 14

// Stats counts what one Paint call did.
type Stats struct {
	Drawn   int // shapes drawn
	Culled  int // shapes skipped because their clip was empty
	Skipped int // shapes that could not be drawn (missing texture or font)
}

// Painter rasterizes frame output onto a gg.Context.
//
// The context is expected to be sized in logical points with the viewport
// scale as its device scale, which is how the surface backends create it.
// Shapes are then drawn in logical coordinates and gg maps them to pixels.
type Painter struct {
	Textures *TextureStore

	// Clear is painted over the whole target before any shape.
	// The zero value clears to transparent.
	Clear color.RGBA

	// TextSize is used for text shapes without a size.
	// Zero means DefaultTextSize.
	TextSize float64

	fonts *text.FontSource
	faces map[float64]text.Face
}

// NewPainter creates a Painter with an empty texture store.
func NewPainter() *Painter {
	return &Painter{Textures: NewTextureStore()}
}

// SetFont sets the font used for text shapes. Nil disables text.
func (p *Painter) SetFont(src *text.FontSource) {
	p.fonts = src
	p.faces = nil
}

// HasFont reports whether text shapes can be drawn.
func (p *Painter) HasFont() bool {
	return p.fonts != nil
}

// Paint clears cc and draws every shape of out in order, each inside its clip.
// Texture sets must already be applied. Drawing errors do not stop the frame;
// they are joined into the returned error.
func (p *Painter) Paint(cc *gg.Context, out *frame.Output) (Stats, error) {
	var st Stats
	if cc == nil {
		return st, errors.New("paint: nil context")
	}

	if p.Clear == (color.RGBA{}) {
		cc.Clear()
	} else {
		cc.ClearWithColor(toGG(p.Clear))
	}
	if out == nil {
		return st, nil
	}

	screen := uibridge.RectFromXYWH(0, 0, float64(cc.Width()), float64(cc.Height()))
	var errs []error
	for _, cs := range out.Shapes {
		clip := cs.Clip.Intersect(screen)
		if clip.IsEmpty() || cs.Shape == nil {
			st.Culled++
			continue
		}

		cc.Push()
		cc.ClipRect(clip.Min.X, clip.Min.Y, clip.Width(), clip.Height())
		drawn, err := p.drawShape(cc, cs.Shape)
		cc.Pop()

		if err != nil {
			errs = append(errs, err)
		}
		if drawn {
			st.Drawn++
		} else {
			st.Skipped++
		}
	}
	return st, errors.Join(errs...)
}

func (p *Painter) drawShape(cc *gg.Context, s frame.Shape) (bool, error) {
	switch sh := s.(type) {
	case frame.RectShape:
		if sh.Radius > 0 {
			cc.DrawRoundedRectangle(sh.Rect.Min.X, sh.Rect.Min.Y, sh.Rect.Width(), sh.Rect.Height(), sh.Radius)
		} else {
			cc.DrawRectangle(sh.Rect.Min.X, sh.Rect.Min.Y, sh.Rect.Width(), sh.Rect.Height())
		}
		return true, fillStroke(cc, sh.Fill, sh.Stroke, sh.StrokeWidth)

	case frame.CircleShape:
		cc.DrawCircle(sh.Center.X, sh.Center.Y, sh.Radius)
		return true, fillStroke(cc, sh.Fill, sh.Stroke, sh.StrokeWidth)

	case frame.PathShape:
		if len(sh.Points) < 2 {
			return false, nil
		}
		cc.MoveTo(sh.Points[0].X, sh.Points[0].Y)
		for _, pt := range sh.Points[1:] {
			cc.LineTo(pt.X, pt.Y)
		}
		fill := sh.Fill
		if sh.Closed {
			cc.ClosePath()
		} else {
			fill = color.RGBA{}
		}
		return true, fillStroke(cc, fill, sh.Stroke, sh.StrokeWidth)

	case frame.MeshShape:
		return p.drawMesh(cc, sh)

	case frame.ImageShape:
		return p.drawImage(cc, sh), nil

	case frame.TextShape:
		return p.drawText(cc, sh), nil

	default:
		return false, nil
	}
}

func fillStroke(cc *gg.Context, fill, stroke color.RGBA, width float64) error {
	doFill := fill.A > 0
	doStroke := stroke.A > 0 && width > 0
	switch {
	case doFill && doStroke:
		cc.SetColor(fill)
		if err := cc.FillPreserve(); err != nil {
			cc.ClearPath()
			return err
		}
		cc.SetColor(stroke)
		cc.SetLineWidth(width)
		return cc.Stroke()
	case doFill:
		cc.SetColor(fill)
		return cc.Fill()
	case doStroke:
		cc.SetColor(stroke)
		cc.SetLineWidth(width)
		return cc.Stroke()
	default:
		cc.ClearPath()
		return nil
	}
}

// drawMesh fills each triangle with one flat color: the average of its
// vertex colors, multiplied by the texel at the centroid UV when the mesh
// is textured. Gradients within a triangle are not reproduced.
func (p *Painter) drawMesh(cc *gg.Context, m frame.MeshShape) (bool, error) {
	if len(m.Indices) < 3 {
		return false, nil
	}
	if m.Texture != 0 && !p.Textures.Has(m.Texture) {
		return false, nil
	}
	var errs []error
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := uint32(len(m.Vertices))
		if a >= n || b >= n || c >= n {
			continue
		}
		va, vb, vc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
		col := average(va.Color, vb.Color, vc.Color)
		if m.Texture != 0 {
			u := (va.UV.X + vb.UV.X + vc.UV.X) / 3
			v := (va.UV.Y + vb.UV.Y + vc.UV.Y) / 3
			if texel, ok := p.Textures.Sample(m.Texture, u, v); ok {
				col = multiply(col, texel)
			}
		}
		if col.A == 0 {
			continue
		}
		cc.MoveTo(va.Pos.X, va.Pos.Y)
		cc.LineTo(vb.Pos.X, vb.Pos.Y)
		cc.LineTo(vc.Pos.X, vc.Pos.Y)
		cc.ClosePath()
		cc.SetColor(col)
		if err := cc.Fill(); err != nil {
			errs = append(errs, err)
		}
	}
	return true, errors.Join(errs...)
}

func (p *Painter) drawImage(cc *gg.Context, im frame.ImageShape) bool {
	buf, filter, ok := p.Textures.TintedImageBuf(im.Texture, im.Tint)
	if !ok {
		return false
	}
	opts := gg.DrawImageOptions{
		X:             im.Rect.Min.X,
		Y:             im.Rect.Min.Y,
		DstWidth:      im.Rect.Width(),
		DstHeight:     im.Rect.Height(),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	}
	if filter == frame.FilterNearest {
		opts.Interpolation = gg.InterpNearest
	}
	if im.UV != (uibridge.Rect{}) {
		w, h, _ := p.Textures.Size(im.Texture)
		src := image.Rect(
			int(math.Floor(im.UV.Min.X*float64(w))),
			int(math.Floor(im.UV.Min.Y*float64(h))),
			int(math.Ceil(im.UV.Max.X*float64(w))),
			int(math.Ceil(im.UV.Max.Y*float64(h))),
		)
		opts.SrcRect = &src
	}
	cc.DrawImageEx(buf, opts)
	return true
}

func (p *Painter) drawText(cc *gg.Context, t frame.TextShape) bool {
	if p.fonts == nil || t.Text == "" {
		return false
	}
	size := t.Size
	if size <= 0 {
		size = p.TextSize
	}
	if size <= 0 {
		size = DefaultTextSize
	}
	face, ok := p.faces[size]
	if !ok {
		if p.faces == nil {
			p.faces = make(map[float64]text.Face)
		}
		face = p.fonts.Face(size)
		p.faces[size] = face
	}
	cc.SetFont(face)
	cc.SetColor(t.Color)
	cc.DrawStringAnchored(t.Text, t.Pos.X, t.Pos.Y, 0, 0)
	return true
}

// average averages premultiplied colors.
func average(cs ...color.RGBA) color.RGBA {
	var r, g, b, a int
	for _, c := range cs {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(cs)
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

// multiply multiplies two premultiplied colors channel by channel.
func multiply(x, y color.RGBA) color.RGBA {
	mul := func(a, b uint8) uint8 { return uint8((int(a)*int(b) + 127) / 255) }
	return color.RGBA{R: mul(x.R, y.R), G: mul(x.G, y.G), B: mul(x.B, y.B), A: mul(x.A, y.A)}
}

// toGG converts a premultiplied color to gg's straight-alpha RGBA.
func toGG(c color.RGBA) gg.RGBA {
	if c.A == 0 {
		return gg.RGBA{}
	}
	a := float64(c.A) / 255
	return gg.RGBA{
		R: float64(c.R) / 255 / a,
		G: float64(c.G) / 255 / a,
		B: float64(c.B) / 255 / a,
		A: a,
	}
}
