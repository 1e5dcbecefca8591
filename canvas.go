// seehuhn.de/go/spark - sparkline images over HTTP
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spark

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA pixel buffer with a current draw color.  All drawing
// operations paint with the current color and are clipped to Clip.
//
// Coordinates are given as float64 values.  Every coordinate is rounded
// down to the next integer (math.Floor) before rasterization; this is the
// only place where rounding happens.  Pixel (x, y) covers the unit square
// with top-left corner (x, y), with y increasing downwards.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.  NewCanvas sets Clip to the
	// full canvas.
	Clip rect.Rect

	img *image.RGBA
	src image.Uniform // current draw color, used as the draw source
	col color.RGBA
}

// MaxPixels is the largest number of pixels a canvas may have.
const MaxPixels = 1 << 26

// NewCanvas allocates a width × height canvas.  All pixels start out
// transparent black.  The canvas must have at least one and at most
// MaxPixels pixels.
func NewCanvas(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 || width > MaxPixels/height {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	c := &Canvas{
		Clip: rect.Rect{
			LLx: 0,
			LLy: 0,
			URx: float64(width),
			URy: float64(height),
		},
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	c.SetColor(color.RGBA{})
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the underlying pixel buffer.  The buffer is shared with
// the canvas, later drawing operations are visible through it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SetColor sets the current draw color.
func (c *Canvas) SetColor(col color.RGBA) {
	c.col = col
	c.src.C = col
}

// Color returns the current draw color.
func (c *Canvas) Color() color.RGBA {
	return c.col
}

// FilledRectangle fills the closed rectangle with corners (x0, y0) and
// (x1, y1).  The corners may be given in any order.
func (c *Canvas) FilledRectangle(x0, y0, x1, y1 float64) {
	b := normalize(x0, y0, x1, y1)
	c.fillBox(b)
}

// Rectangle draws the outline of the closed rectangle with corners
// (x0, y0) and (x1, y1).  Only the four border edges are painted.
func (c *Canvas) Rectangle(x0, y0, x1, y1 float64) {
	b := normalize(x0, y0, x1, y1)
	for _, edge := range b.outline() {
		c.fillBox(edge)
	}
}

// Line draws a one pixel wide line from (x0, y0) to (x1, y1), both end
// points included.  Lines with a non-finite end point are not drawn.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	for _, v := range []float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}

	// End points far outside the clip rectangle are moved to its
	// neighbourhood, so that the stroker only visits nearby pixels.
	bounds := rect.Rect{
		LLx: c.Clip.LLx - lineMargin,
		LLy: c.Clip.LLy - lineMargin,
		URx: c.Clip.URx + lineMargin,
		URy: c.Clip.URy + lineMargin,
	}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, bounds)
	if !ok {
		return
	}
	c.strokeLine(floor(x0), floor(y0), floor(x1), floor(y1))
}

// fillBox paints all pixels of b which lie inside the clip rectangle.
func (c *Canvas) fillBox(b box) {
	r, ok := c.clip(b)
	if !ok {
		return
	}
	draw.Draw(c.img, r, &c.src, image.Point{}, draw.Src)
}

// WritePNG encodes the canvas as a non-interlaced 8-bit PNG image.
// Identical pixel buffers always produce identical output.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := pngEncoder.Encode(w, c.img); err != nil {
		return errors.Mark(errors.Wrap(err, "writing PNG"), ErrEncode)
	}
	return nil
}

// PNG returns the PNG encoding of the canvas.
func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var pngEncoder = &png.Encoder{
	CompressionLevel: png.DefaultCompression,
	BufferPool:       &encoderPool{},
}

// encoderPool recycles the PNG encoder's zlib state between images.
// It is safe for concurrent use.
type encoderPool struct {
	pool sync.Pool
}

func (p *encoderPool) Get() *png.EncoderBuffer {
	buf, _ := p.pool.Get().(*png.EncoderBuffer)
	return buf
}

func (p *encoderPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}
