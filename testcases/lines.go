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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

var linesCases = []TestCase{
	{
		Name:       "triangle",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 900, URy: 800},
		Outline:    triangle(100, 0, 500, 800, 900, 0),
	},
	{
		Name:       "box",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 700, URy: 800},
		Outline:    rectangle(100, 0, 700, 800),
	},
	{
		Name:       "star",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 100, LLy: 0, URx: 900, URy: 800},
		Outline:    fivePointStar(500, 400, 400),
	},
	{
		Name:       "thin_sliver",
		UnitsPerEm: 1000,
		BBox:       rect.Rect{LLx: 0, LLy: 0, URx: 1000, URy: 30},
		Outline:    triangle(0, 0, 1000, 30, 1000, 0),
	},
}

// triangle builds a triangular outline.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular outline.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}

	// five points, connecting every second point
	order := []int{0, 2, 4, 1, 3}
	for i, idx := range order {
		angle := float64(idx)*2*math.Pi/5 + math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	return p.Close()
}
