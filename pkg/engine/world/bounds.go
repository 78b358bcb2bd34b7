package world

import "math"

// Bounds is an axis-aligned box on the XZ plane, stored as centre and half-size
type Bounds struct {
	Center  Vec2 `json:"center"`
	Extents Vec2 `json:"extents"`
}

// NewBounds creates bounds from a centre and a full size
func NewBounds(center, size Vec2) Bounds {
	return Bounds{Center: center, Extents: size.Scale(0.5)}
}

// Min returns the lower corner
func (b Bounds) Min() Vec2 {
	return b.Center.Sub(b.Extents)
}

// Max returns the upper corner
func (b Bounds) Max() Vec2 {
	return b.Center.Add(b.Extents)
}

// Size returns the full size of the box
func (b Bounds) Size() Vec2 {
	return b.Extents.Scale(2)
}

// IsEmpty returns true if the box has no area
func (b Bounds) IsEmpty() bool {
	return b.Extents.X <= 0 || b.Extents.Z <= 0
}

// Translate returns the bounds moved by offset
func (b Bounds) Translate(offset Vec2) Bounds {
	return Bounds{Center: b.Center.Add(offset), Extents: b.Extents}
}

// Shrink scales the extents by factor, keeping the centre
func (b Bounds) Shrink(factor float64) Bounds {
	return Bounds{Center: b.Center, Extents: b.Extents.Scale(factor)}
}

// Encapsulate returns the smallest bounds containing both b and o
func (b Bounds) Encapsulate(o Bounds) Bounds {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	lo := Vec2{X: math.Min(bMin.X, oMin.X), Z: math.Min(bMin.Z, oMin.Z)}
	hi := Vec2{X: math.Max(bMax.X, oMax.X), Z: math.Max(bMax.Z, oMax.Z)}
	return Bounds{
		Center:  lo.Add(hi).Scale(0.5),
		Extents: hi.Sub(lo).Scale(0.5),
	}
}

// Intersects returns true if the interiors of b and o overlap.
// Boxes that only touch along an edge do not intersect.
func (b Bounds) Intersects(o Bounds) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X < oMax.X && oMin.X < bMax.X &&
		bMin.Z < oMax.Z && oMin.Z < bMax.Z
}
