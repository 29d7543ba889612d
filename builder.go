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

package glyph

import "seehuhn.de/go/geom/vec"

// segOp identifies the kind of an outline segment.
type segOp uint8

const (
	opLine segOp = iota
	opQuad
	opCube
)

// segment is one piece of a glyph outline.  Coordinates are design
// units, y up, relative to the glyph origin.  p3 is unused for
// quadratics, p2 and p3 for lines.
type segment struct {
	op             segOp
	p0, p1, p2, p3 vec.Vec2
}

// builder assembles an ordered segment list from outline drawing
// directives.  The order of segments determines accumulation order
// during rasterisation and must match the source outline.
//
// Malformed input cannot fail: zero-length segments are recorded as
// given (the canvas ignores them), and a Close without a preceding
// MoveTo is a no-op.
type builder struct {
	segments []segment
	start    vec.Vec2
	last     vec.Vec2
	open     bool
}

// MoveTo starts a new subpath at p.
func (b *builder) MoveTo(p vec.Vec2) {
	b.start = p
	b.last = p
	b.open = true
}

// LineTo appends a straight line from the current point to p.
func (b *builder) LineTo(p vec.Vec2) {
	b.segments = append(b.segments, segment{op: opLine, p0: b.last, p1: p})
	b.last = p
}

// QuadTo appends a quadratic Bézier curve from the current point to p
// with control point c.
func (b *builder) QuadTo(c, p vec.Vec2) {
	b.segments = append(b.segments, segment{op: opQuad, p0: b.last, p1: c, p2: p})
	b.last = p
}

// CubeTo appends a cubic Bézier curve from the current point to p with
// control points c1 and c2.
func (b *builder) CubeTo(c1, c2, p vec.Vec2) {
	b.segments = append(b.segments, segment{op: opCube, p0: b.last, p1: c1, p2: c2, p3: p})
	b.last = p
}

// Close appends the implicit line back to the subpath start point.  The
// line is appended even when it has zero length, so that winding and
// segment order match the source outline exactly.
func (b *builder) Close() {
	if !b.open {
		return
	}
	b.segments = append(b.segments, segment{op: opLine, p0: b.last, p1: b.start})
	b.last = b.start
	b.open = false
}
