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

// discreteGap is the height of the tick marks in discrete plots.
const discreteGap = 4

// discrete draws one tick mark (or bar, if opts.LongLines is set) per
// data value.  Values at or above opts.Upper use opts.AboveColor, all
// others use opts.BelowColor.
func discrete(series []int, opts Options, colors *ColorTable) (*Canvas, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	cols, err := colors.lookupAll("white", opts.BelowColor, opts.AboveColor)
	if err != nil {
		return nil, err
	}
	white, below, above := cols[0], cols[1], cols[2]

	gap := float64(discreteGap)
	if opts.LongLines {
		gap = 0
	}

	opts.Style = Discrete
	c, err := NewCanvas(Size(len(series), opts))
	if err != nil {
		return nil, err
	}
	c.SetColor(white)
	c.FilledRectangle(0, 0, float64(c.Width()-1), float64(c.Height()-1))

	width, height := opts.Width, c.Height()
	lim := opts.Limits.Normalized()
	sc := newScale(float64(width), 0, float64(height), float64(height)-gap, lim, height)

	// Bars start at the row of value 0 if the range contains zero, and at
	// the bottom row otherwise.
	zero := float64(height - 1)
	if lim.Min < 0 && lim.Max > 0 {
		zero = sc.apply(0, 0).Y
	}

	for i, v := range series {
		p := sc.apply(i, v)
		if v >= opts.Upper {
			c.SetColor(above)
		} else {
			c.SetColor(below)
		}
		right := p.X + float64(width-2)
		if opts.LongLines {
			c.FilledRectangle(p.X, zero, right, p.Y)
		} else {
			c.Rectangle(p.X, p.Y-gap, right, p.Y)
		}
	}
	return c, nil
}

// impulse is a discrete plot with long lines.
func impulse(series []int, opts Options, colors *ColorTable) (*Canvas, error) {
	opts.LongLines = true
	return discrete(series, opts, colors)
}
