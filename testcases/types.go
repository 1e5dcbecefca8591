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

// Package testcases lists sparklines used for testing the renderers and
// for generating reference images.
package testcases

// TestCase defines a single sparkline.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Series []int  // the data values
	Query  string // plot options, in query string form (without "d")
	Width  int    // expected canvas width in pixels
	Height int    // expected canvas height in pixels
}

// seq returns the integers from a to b in steps of by.
func seq(a, b, by int) []int {
	var res []int
	for v := a; v <= b; v += by {
		res = append(res, v)
	}
	return res
}
