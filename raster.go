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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Signed-area accumulation model:
//
// Each edge of the outline contributes, per pixel, the exact signed area
// swept between the edge and the left bitmap border within that pixel
// row.  The sign follows the edge direction, so a clockwise-wound
// contour yields positive coverage and an opposite-wound hole contour
// cancels it.  A final left-to-right prefix sum over the buffer turns
// the per-pixel deltas into coverage values.
//
// This is the classic font-rs accumulation scheme; coverage is exact
// (box-filter) rather than sampled.

// canvas is the scratch accumulation buffer for a single rasterise
// call.  It is discarded after the coverage bytes are produced.
type canvas struct {
	w, h int
	a    []float32 // signed area deltas, length w*h+canvasPadding
}

// newCanvas returns a completely uncovered canvas.  The accumulation
// buffer carries trailing padding so that the one-past-end writes of
// the line drawer stay in bounds without a branch.
func newCanvas(w, h int) *canvas {
	return &canvas{
		w: w,
		h: h,
		a: make([]float32, w*h+canvasPadding),
	}
}

// add accumulates a signed area delta at the given buffer index.
// Out-of-range indices are dropped: edges running along the bitmap
// boundary can overshoot by a sub-pixel amount due to floating point
// rounding, and those writes are clipped rather than reported.
func (c *canvas) add(i int, d float32) {
	if uint(i) < uint(len(c.a)) {
		c.a[i] += d
	}
}

// accumulate converts the signed area deltas into final coverage bytes.
// The prefix sum runs over the whole buffer in row-major order; it does
// not need to restart at row boundaries because the contributions of
// the closed contours cancel to zero at the end of every row.
func (c *canvas) accumulate() []uint8 {
	cov := make([]uint8, c.w*c.h)
	var acc float32
	for i := range cov {
		acc += c.a[i]
		a := acc
		if a < 0 {
			a = -a
		}
		if a > 1 {
			a = 1
		}
		cov[i] = uint8(255 * a)
	}
	return cov
}

// line draws a straight line in bitmap-local pixel coordinates.
//
// For every pixel row the line crosses, the horizontal span [x0,x1]
// occupied during that row is computed and the row's signed vertical
// coverage is distributed over the pixels of the span in exact area
// fractions.  Horizontal lines sweep no area and are skipped.
func (c *canvas) line(p0, p1 vec.Vec2) {
	if math.Abs(p0.Y-p1.Y) <= horizontalEdgeThreshold {
		return
	}

	// Normalise to downward y, remembering the original direction.
	dir := float32(1)
	if p0.Y > p1.Y {
		dir, p0, p1 = -1, p1, p0
	}
	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)

	x := p0.X
	y0 := int(p0.Y)
	if p0.Y < 0 {
		// Start at the y=0 intercept.
		x -= p0.Y * dxdy
		y0 = 0
	}
	yMax := min(c.h, int(math.Ceil(p1.Y)))

	for y := y0; y < yMax; y++ {
		linestart := y * c.w
		dy := min(float64(y+1), p1.Y) - max(float64(y), p0.Y)
		xNext := x + dxdy*dy
		d := dir * float32(dy)

		x0, x1 := x, xNext
		if x > xNext {
			x0, x1 = x1, x0
		}
		x0floor := math.Floor(x0)
		x0i := int(x0floor)
		x1ceil := math.Ceil(x1)
		x1i := int(x1ceil)

		if x1i <= x0i+1 {
			// The span stays within one pixel; split the area
			// about the span midpoint.
			xmf := 0.5*(x+xNext) - x0floor
			c.add(linestart+x0i, d*float32(1-xmf))
			c.add(linestart+x0i+1, d*float32(xmf))
		} else {
			// The span crosses pixel boundaries: triangular
			// partial areas at both ends, a constant slab for
			// interior pixels.
			s := 1 / (x1 - x0)
			x0f := x0 - x0floor
			a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
			x1f := x1 - x1ceil + 1
			am := 0.5 * s * x1f * x1f
			c.add(linestart+x0i, d*float32(a0))
			if x1i == x0i+2 {
				c.add(linestart+x0i+1, d*float32(1-a0-am))
			} else {
				a1 := s * (1.5 - x0f)
				c.add(linestart+x0i+1, d*float32(a1-a0))
				for xi := x0i + 2; xi < x1i-1; xi++ {
					c.add(linestart+xi, d*float32(s))
				}
				a2 := a1 + float64(x1i-x0i-3)*s
				c.add(linestart+x1i-1, d*float32(1-a2-am))
			}
			c.add(linestart+x1i, d*float32(am))
		}

		x = xNext
	}
}

// quad draws a quadratic Bézier curve by flattening it into lines.
func (c *canvas) quad(p0, p1, p2 vec.Vec2) {
	// Squared deviation of the curve from the chord p0-p2.
	devsq := hypot2(p0.Sub(p1.Mul(2)).Add(p2))

	if devsq < flatnessThreshold {
		c.line(p0, p2)
		return
	}

	// Subdivision count; grows with the fourth root of the deviation.
	n := 1 + int(math.Floor(math.Sqrt(math.Sqrt(quadTolerance*devsq))))
	step := 1 / float64(n)

	t := 0.0
	p := p0
	for range n - 1 {
		t += step
		pt := lerp(t, lerp(t, p0, p1), lerp(t, p1, p2))
		c.line(p, pt)
		p = pt
	}
	c.line(p, p2)
}

// cube draws a cubic Bézier curve by reducing it to quadratics, each of
// which is then flattened by quad.  The two-stage reduction keeps the
// flattening error bounded uniformly across all curve kinds.
func (c *canvas) cube(p0, p1, p2, p3 vec.Vec2) {
	// Squared magnitude of the difference of the scaled inner control
	// legs, an upper bound on the cubic/quadratic distance.
	p1x2 := p1.Mul(3).Sub(p0)
	p2x2 := p2.Mul(3).Sub(p3)
	errEst := hypot2(p2x2.Sub(p1x2))

	n := math.Max(1, math.Ceil(math.Pow(errEst/maxCubicError, 1.0/6)))
	step := 1 / n
	step4 := step / 4

	// Control points of the derivative curve.
	dp0 := p1.Sub(p0).Mul(3)
	dp1 := p2.Sub(p1).Mul(3)
	dp2 := p3.Sub(p2).Mul(3)

	t := 0.0
	p := p0
	pd := dp0
	for range int(n) {
		t += step

		// Position at t, by De Casteljau.
		p01 := lerp(t, p0, p1)
		p12 := lerp(t, p1, p2)
		p23 := lerp(t, p2, p3)
		p012 := lerp(t, p01, p12)
		p123 := lerp(t, p12, p23)
		pt := lerp(t, p012, p123)

		// Derivative at t.
		dp01 := lerp(t, dp0, dp1)
		dp12 := lerp(t, dp1, dp2)
		pdt := lerp(t, dp01, dp12)

		// Quadratic control point: matches the cubic's midpoint and
		// its tangent directions at both ends of the step.
		pc := p.Add(pt).Mul(0.5).Add(pd.Sub(pdt).Mul(step4))

		c.quad(p, pc, pt)

		p = pt
		pd = pdt
	}
}

// lerp linearly interpolates between two points.
func lerp(t float64, p1, p2 vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}
}

// hypot2 is the squared distance of a point from the origin.
func hypot2(p vec.Vec2) float64 {
	return p.X*p.X + p.Y*p.Y
}

// Numerical tuning constants for the rasteriser.  The values are part
// of the output contract: changing any of them changes coverage bytes.
const (
	// boundarySlack widens the horizontal pixel bounds of a bitmap
	// before rounding, so that curves lying exactly on a pixel
	// boundary do not lose coverage to floating point rounding.
	boundarySlack = 0.01

	// horizontalEdgeThreshold is the minimum vertical extent for a
	// line to contribute coverage.  Flatter lines sweep no signed
	// area and are skipped.
	horizontalEdgeThreshold = 1e-10

	// flatnessThreshold is the squared deviation below which a
	// quadratic is drawn as a single line.
	flatnessThreshold = 0.333

	// quadTolerance scales the subdivision count when flattening
	// quadratics.
	quadTolerance = 3.0

	// maxCubicError bounds the approximation error of each quadratic
	// produced from a cubic; 432·tol² with tol = 0.333.
	maxCubicError = 432.0 * 0.333 * 0.333

	// canvasPadding is the number of extra accumulator slots past the
	// end of the pixel buffer.  The line drawer may index one pixel
	// past a span; padding absorbs this without a branch on the hot
	// path.
	canvasPadding = 4

	// defaultUnitsPerEm is used when a font does not report its em
	// size.
	defaultUnitsPerEm = 1000
)
