package physics

import "github.com/go-gl/mathgl/mgl64"

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// BoundsAt returns a box of the given size centred on center.
func BoundsAt(center, size mgl64.Vec3) Bounds {
	half := size.Mul(0.5)
	return Bounds{Min: center.Sub(half), Max: center.Add(half)}
}

// FootBounds returns a box standing on feet: centred horizontally, extending
// upward by height.
func FootBounds(feet mgl64.Vec3, width, height float64) Bounds {
	half := width / 2
	return Bounds{
		Min: mgl64.Vec3{feet.X() - half, feet.Y(), feet.Z() - half},
		Max: mgl64.Vec3{feet.X() + half, feet.Y() + height, feet.Z() + half},
	}
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the centre point of the box.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Translate returns the box moved by d.
func (b Bounds) Translate(d mgl64.Vec3) Bounds {
	return Bounds{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Overlaps reports whether the interiors of b and o intersect. Touching faces
// do not count.
func (b Bounds) Overlaps(o Bounds) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] <= o.Min[i] || o.Max[i] <= b.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside b, faces included.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Expand grows the box by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	m := mgl64.Vec3{margin, margin, margin}
	return Bounds{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}
