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

import "seehuhn.de/go/geom/rect"

// lineMargin is the distance by which line end points may lie outside the
// clip rectangle before they are moved.
const lineMargin = 2

// strokeLine paints the pixels of the line from (x0, y0) to (x1, y1)
// chosen by Bresenham's algorithm.  Both end points are included, pixels
// outside the clip rectangle are skipped.
//
// See https://zingl.github.io/Bresenham.pdf for a derivation.
func (c *Canvas) strokeLine(x0, y0, x1, y1 int) {
	// reject lines which cannot touch the clip rectangle
	if _, ok := c.clip(normalizeInt(x0, y0, x1, y1)); !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		if c.inClip(x0, y0) {
			c.img.SetRGBA(x0, y0, c.col)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment restricts the segment from (x0, y0) to (x1, y1) to the
// rectangle r, using the Liang-Barsky algorithm.  End points inside r are
// returned unchanged.  The last return value is false if the segment
// misses r.
func clipSegment(x0, y0, x1, y1 float64, r rect.Rect) (float64, float64, float64, float64, bool) {
	dx := x1 - x0
	dy := y1 - y0

	t0, t1 := 0.0, 1.0
	edges := [4]struct{ p, q float64 }{
		{-dx, x0 - r.LLx},
		{dx, r.URx - x0},
		{-dy, y0 - r.LLy},
		{dy, r.URy - y0},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}

	cx0, cy0, cx1, cy1 := x0, y0, x1, y1
	if t0 > 0 {
		cx0, cy0 = x0+t0*dx, y0+t0*dy
	}
	if t1 < 1 {
		cx1, cy1 = x0+t1*dx, y0+t1*dy
	}
	return cx0, cy0, cx1, cy1, true
}

// normalizeInt returns the bounding box of two pixels.
func normalizeInt(x0, y0, x1, y1 int) box {
	return box{
		x0: min(x0, x1), y0: min(y0, y1),
		x1: max(x0, x1), y1: max(y0, y1),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
