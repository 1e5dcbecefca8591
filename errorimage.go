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

// Size of the error image.
const (
	errorWidth  = 40
	errorHeight = 15
)

// errorImage draws a red cross on a transparent background.  The data
// and options are ignored.
func errorImage(_ []int, _ Options, colors *ColorTable) (*Canvas, error) {
	red, err := colors.Lookup("red")
	if err != nil {
		return nil, err
	}
	c, err := NewCanvas(errorWidth, errorHeight)
	if err != nil {
		return nil, err
	}
	c.SetColor(red)
	c.Line(0, 0, errorWidth, errorHeight)
	c.Line(0, errorHeight, errorWidth, 0)
	return c, nil
}
