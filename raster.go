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
	"image"
	"math"
)

// box is a closed rectangle of pixels, x0 <= x1 and y0 <= y1.
type box struct {
	x0, y0 int
	x1, y1 int
}

// maxCoord bounds pixel indices.  It is far outside any canvas.
const maxCoord = 1 << 30

// floor converts a device coordinate to a pixel index.  Coordinates
// beyond ±maxCoord are moved to the nearest bound, NaN maps to -maxCoord.
func floor(v float64) int {
	switch {
	case v >= maxCoord:
		return maxCoord
	case v > -maxCoord:
		return int(math.Floor(v))
	default:
		return -maxCoord
	}
}

// normalize rounds the corners of a rectangle to pixel indices and orders
// them so that the first corner is the top-left one.
func normalize(x0, y0, x1, y1 float64) box {
	b := box{
		x0: floor(x0), y0: floor(y0),
		x1: floor(x1), y1: floor(y1),
	}
	if b.x0 > b.x1 {
		b.x0, b.x1 = b.x1, b.x0
	}
	if b.y0 > b.y1 {
		b.y0, b.y1 = b.y1, b.y0
	}
	return b
}

// outline returns the border edges of b as one pixel wide boxes.
// Boxes which are only one or two pixels high or wide produce fewer
// (possibly overlapping) edges, so that no pixel is listed twice
// unnecessarily.
func (b box) outline() []box {
	top := box{b.x0, b.y0, b.x1, b.y0}
	if b.y0 == b.y1 {
		return []box{top}
	}
	bottom := box{b.x0, b.y1, b.x1, b.y1}
	if b.y1-b.y0 == 1 {
		return []box{top, bottom}
	}
	left := box{b.x0, b.y0 + 1, b.x0, b.y1 - 1}
	if b.x0 == b.x1 {
		return []box{top, bottom, left}
	}
	right := box{b.x1, b.y0 + 1, b.x1, b.y1 - 1}
	return []box{top, bottom, left, right}
}

// clip intersects b with the clip rectangle.  The result uses the
// half-open convention of the image package.
func (c *Canvas) clip(b box) (image.Rectangle, bool) {
	clipXMin := int(c.Clip.LLx)
	clipXMax := int(c.Clip.URx)
	clipYMin := int(c.Clip.LLy)
	clipYMax := int(c.Clip.URy)

	xMin := max(b.x0, clipXMin)
	xMax := min(b.x1+1, clipXMax)
	yMin := max(b.y0, clipYMin)
	yMax := min(b.y1+1, clipYMax)

	if xMin >= xMax || yMin >= yMax {
		return image.Rectangle{}, false
	}
	return image.Rect(xMin, yMin, xMax, yMax), true
}

// inClip reports whether pixel (x, y) lies inside the clip rectangle.
func (c *Canvas) inClip(x, y int) bool {
	return x >= int(c.Clip.LLx) && x < int(c.Clip.URx) &&
		y >= int(c.Clip.LLy) && y < int(c.Clip.URy)
}
