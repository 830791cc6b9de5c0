package mesh

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box tracked as a min/max corner pair.
// A fresh Bounds holds ±Inf sentinels and tightens monotonically with every
// Extend call.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBounds returns an empty bounds with sentinel corners.
func NewBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Extend widens the bounds to enclose v.
func (b *Bounds) Extend(v mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if v[i] < b.Min[i] {
			b.Min[i] = v[i]
		}
		if v[i] > b.Max[i] {
			b.Max[i] = v[i]
		}
	}
}

// Valid reports whether at least one vertex has been inserted. A sentinel
// bounds must not be used for plane synthesis.
func (b *Bounds) Valid() bool {
	return b.Min.X() <= b.Max.X() && b.Min.Y() <= b.Max.Y() && b.Min.Z() <= b.Max.Z()
}

// Center returns the midpoint of the box.
func (b *Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b *Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// String returns a compact debug representation.
func (b *Bounds) String() string {
	if !b.Valid() {
		return "bounds(empty)"
	}
	return fmt.Sprintf("bounds(%.2f,%.2f,%.2f)-(%.2f,%.2f,%.2f)",
		b.Min.X(), b.Min.Y(), b.Min.Z(), b.Max.X(), b.Max.Y(), b.Max.Z())
}
