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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// smooth draws the data as a gray polyline.  Optional markers highlight
// the first minimum, the first maximum and the last value.
func smooth(series []int, opts Options, colors *ColorTable) (*Canvas, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	cols, err := colors.lookupAll("white", "gray", opts.MinColor, opts.MaxColor, opts.LastColor)
	if err != nil {
		return nil, err
	}
	white, gray := cols[0], cols[1]
	minColor, maxColor, lastColor := cols[2], cols[3], cols[4]

	opts.Style = Smooth
	c, err := NewCanvas(Size(len(series), opts))
	if err != nil {
		return nil, err
	}
	step, height := opts.Step, c.Height()
	c.SetColor(white)
	c.FilledRectangle(0, 0, float64(c.Width()-1), float64(c.Height()-1))

	sc := newScale(float64(step), 1, float64(height-3), float64(height-4), opts.Limits, height)
	coords := make([]vec.Vec2, len(series))
	for i, v := range series {
		coords[i] = sc.apply(i, v)
	}

	c.SetColor(gray)
	last := coords[0]
	for _, p := range coords {
		c.Line(last.X, last.Y, p.X, p.Y)
		last = p
	}

	if opts.MinMarker {
		c.SetColor(minColor)
		c.marker(coords[slices.Index(series, slices.Min(series))])
	}
	if opts.MaxMarker {
		c.SetColor(maxColor)
		c.marker(coords[slices.Index(series, slices.Max(series))])
	}
	if opts.LastMarker {
		c.SetColor(lastColor)
		c.marker(coords[len(coords)-1])
	}
	return c, nil
}

// marker outlines the 3x3 square centered on p.
func (c *Canvas) marker(p vec.Vec2) {
	c.Rectangle(p.X-1, p.Y-1, p.X+1, p.Y+1)
}
