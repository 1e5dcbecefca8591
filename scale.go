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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// scale maps (index, value) pairs to device coordinates.
//
// The transformation is affine in (index, value-Limits.Min), so that
// larger values end up higher on the canvas.  Values are converted to
// float64 before any arithmetic, so that the full int range can be used
// for the limits.  Points may lie outside the canvas; drawing clips them.
type scale struct {
	m      matrix.Matrix
	min    float64
	bottom float64 // y coordinate of the last pixel row
	flat   bool    // all values map to the bottom row
}

// newScale returns a scale where index i maps to x = x0 + i*dx and
// value lim.Min maps to y = base.  A value range of lim.Max-lim.Min+1
// covers span pixels.
func newScale(dx, x0, base, span float64, lim Limits, height int) scale {
	lim = lim.Normalized()
	lo, hi := float64(lim.Min), float64(lim.Max)
	k := max(span, 0) / (hi - lo + 1)
	return scale{
		m:      matrix.Matrix{dx, 0, 0, -k, x0, base},
		min:    lo,
		bottom: float64(height - 1),
		flat:   lim.Max == lim.Min,
	}
}

// apply returns the device coordinates of value v at index i.
func (s scale) apply(i, v int) vec.Vec2 {
	x := float64(i)
	y := float64(v) - s.min
	p := vec.Vec2{
		X: s.m[0]*x + s.m[2]*y + s.m[4],
		Y: s.m[1]*x + s.m[3]*y + s.m[5],
	}
	if s.flat {
		p.Y = s.bottom
	}
	return p
}
