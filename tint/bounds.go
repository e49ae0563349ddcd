package tint

import "math"

// Rect is a rectangle in target coordinates, y growing downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectOf returns the rectangle covering a width x height target.
func RectOf(width, height int) Rect {
	return Rect{Right: float64(width), Bottom: float64(height)}
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

const (
	fullAngleDegrees  = 360.0
	rightAngleDegrees = 90.0

	directionDown  = 0
	directionLeft  = 1
	directionUp    = 2
	directionRight = 3
)

var rightAngleRadians = degreesToRadians(rightAngleDegrees)

// GradientBounds is the axis of a linear gradient fitted to a rectangle: a
// segment through the rectangle's center, rotated by the requested angle
// from the downward 0-degree reference, long enough that the gradient's
// perpendicular projection spans the whole rectangle. The endpoints touch
// the rectangle corners closest to the axis.
type GradientBounds struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// NewGradientBounds solves the axis for the given rectangle and angle in
// degrees. Angles may be negative or exceed 360. Pure function: identical
// inputs yield identical outputs.
func NewGradientBounds(drawBounds Rect, angleDegrees float64) GradientBounds {
	normalized := math.Mod(angleDegrees, fullAngleDegrees)
	if normalized < 0 {
		normalized += fullAngleDegrees
	}
	if math.Mod(normalized, rightAngleDegrees) == 0 {
		return rightAngleBounds(drawBounds, normalized)
	}
	return rotatedBounds(drawBounds, normalized)
}

// rightAngleBounds is the closed form for axis-aligned gradients, midpoint
// to midpoint of the two spanned sides. The general solver's slopes are
// infinite here.
func rightAngleBounds(drawBounds Rect, angleDegrees float64) GradientBounds {
	direction := int(angleDegrees / rightAngleDegrees)
	var b GradientBounds
	if direction == directionUp || direction == directionDown {
		b.StartX = drawBounds.CenterX()
		b.EndX = b.StartX
		if direction == directionUp {
			b.StartY = drawBounds.Bottom
			b.EndY = drawBounds.Top
		} else {
			b.StartY = drawBounds.Top
			b.EndY = drawBounds.Bottom
		}
	} else {
		b.StartY = drawBounds.CenterY()
		b.EndY = b.StartY
		if direction == directionRight {
			b.StartX = drawBounds.Left
			b.EndX = drawBounds.Right
		} else {
			b.StartX = drawBounds.Right
			b.EndX = drawBounds.Left
		}
	}
	return b
}

// rotatedBounds pins the entry and exit corners by the angle's quadrant,
// intersects the gradient axis (through the center) with the perpendicular
// through the entry corner to find the start, and mirrors the offset from
// the exit corner to find the end.
func rotatedBounds(drawBounds Rect, angleDegrees float64) GradientBounds {
	var startCornerX, startCornerY, endCornerX, endCornerY float64
	switch int(angleDegrees / rightAngleDegrees) {
	case directionDown:
		startCornerX, startCornerY = drawBounds.Right, drawBounds.Top
		endCornerX, endCornerY = drawBounds.Left, drawBounds.Bottom
	case directionLeft:
		startCornerX, startCornerY = drawBounds.Right, drawBounds.Bottom
		endCornerX, endCornerY = drawBounds.Left, drawBounds.Top
	case directionUp:
		startCornerX, startCornerY = drawBounds.Left, drawBounds.Bottom
		endCornerX, endCornerY = drawBounds.Right, drawBounds.Top
	default: // directionRight
		startCornerX, startCornerY = drawBounds.Left, drawBounds.Top
		endCornerX, endCornerY = drawBounds.Right, drawBounds.Bottom
	}

	// Down is the 0-degree origin, so the axis itself sits at angle + 90.
	gradientAngle := rightAngleRadians + degreesToRadians(angleDegrees)
	gradientSlope := math.Tan(gradientAngle)
	gradientYIntersection := drawBounds.CenterY() - gradientSlope*drawBounds.CenterX()

	startLineSlope := math.Tan(rightAngleRadians + gradientAngle)
	startLineYIntersection := startCornerY - startLineSlope*startCornerX

	var b GradientBounds
	b.StartX = (startLineYIntersection - gradientYIntersection) / (gradientSlope - startLineSlope)
	b.StartY = gradientSlope*b.StartX + gradientYIntersection
	b.EndX = endCornerX - (b.StartX - startCornerX)
	b.EndY = endCornerY - (b.StartY - startCornerY)
	return b
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
