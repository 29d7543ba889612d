// seehuhn.de/go/glyph - a glyph outline rasteriser
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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

var subpathCases = []TestCase{
	{
		// an "O": outer contour plus an opposite-wound hole
		Name:       "ring",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 900, URy: 800},
		Outline:    ring(500, 400, 400, 200),
	},
	{
		// two disjoint filled squares
		Name:       "two_boxes",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 0, URx: 900, URy: 300},
		Outline:    twoBoxes(),
	},
	{
		// nested same-wound squares; the signed areas add up and
		// saturate instead of cancelling
		Name:       "nested_boxes",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 0, URx: 800, URy: 800},
		Outline: (&path.Data{}).
			MoveTo(pt(0, 0)).
			LineTo(pt(800, 0)).
			LineTo(pt(800, 800)).
			LineTo(pt(0, 800)).
			Close().
			MoveTo(pt(200, 200)).
			LineTo(pt(600, 200)).
			LineTo(pt(600, 600)).
			LineTo(pt(200, 600)).
			Close(),
	},
}

// ring builds an annulus from two circles with opposite winding.
func ring(cx, cy, outerR, innerR float64) *path.Data {
	p := circle(&path.Data{}, cx, cy, outerR, false)
	return circle(p, cx, cy, innerR, true)
}

// twoBoxes builds two separate axis-aligned squares.
func twoBoxes() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(300, 0)).
		LineTo(pt(300, 300)).
		LineTo(pt(0, 300)).
		Close().
		MoveTo(pt(600, 0)).
		LineTo(pt(900, 0)).
		LineTo(pt(900, 300)).
		LineTo(pt(600, 300)).
		Close()
}
