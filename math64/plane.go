// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math64

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the normal vector is the unit vector the offset is the distance from the origin.
type Plane struct {
	Norm Vector3
	Off  float64
}

// NewPlane returns a new plane from a normal vector and an offset.
func NewPlane(normal Vector3, offset float64) Plane {
	return Plane{normal, offset}
}

// Set sets this plane normal vector and offset.
func (p *Plane) Set(normal Vector3, offset float64) {
	p.Norm = normal
	p.Off = offset
}

// SetDims sets this plane normal vector dimensions and offset.
func (p *Plane) SetDims(x, y, z, w float64) {
	p.Norm.Set(x, y, z)
	p.Off = w
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// SetFromCoplanarPoints sets this plane from three coplanar points.
func (p *Plane) SetFromCoplanarPoints(a, b, c Vector3) {
	norm := c.Sub(b).Cross(a.Sub(b)).Normal()
	p.SetFromNormalAndCoplanarPoint(norm, a)
}

// Normalize normalizes this plane normal vector and adjusts the offset.
// Note: will lead to a divide by zero if the plane is invalid.
func (p *Plane) Normalize() {
	invLen := 1.0 / p.Norm.Length()
	p.Norm.SetMulScalar(invLen)
	p.Off *= invLen
}

// Negate negates this plane normal and offset.
func (p *Plane) Negate() {
	p.Off = -p.Off
	p.Norm = p.Norm.Negate()
}

// DistanceToPoint returns the signed distance of this plane from point,
// positive on the side the normal points to.
func (p *Plane) DistanceToPoint(point Vector3) float64 {
	return p.Norm.Dot(point) + p.Off
}

// DistanceToSphere returns the signed distance of this plane from the sphere surface.
func (p *Plane) DistanceToSphere(sphere Sphere) float64 {
	return p.DistanceToPoint(sphere.Center) - sphere.Radius
}

// CoplanarPoint returns a point in the plane that is the closest point to the origin.
func (p *Plane) CoplanarPoint() Vector3 {
	return p.Norm.MulScalar(-p.Off)
}

// SetTranslate translates this plane in the direction of its normal by offset.
func (p *Plane) SetTranslate(offset Vector3) {
	p.Off -= offset.Dot(p.Norm)
}

// MulMatrix4 returns this plane multiplied as the row vector
// (Norm.X, Norm.Y, Norm.Z, Off) by the given matrix. If the matrix maps
// points from one space into another, this maps a plane in the destination
// space to the corresponding plane in the source space: clip-space planes
// times a projection matrix yield eye-space planes, and eye-space planes
// times a view matrix yield world-space planes.
func (p Plane) MulMatrix4(m *Matrix4) Plane {
	return Plane{
		Norm: Vec3(
			p.Norm.X*m[0]+p.Norm.Y*m[1]+p.Norm.Z*m[2]+p.Off*m[3],
			p.Norm.X*m[4]+p.Norm.Y*m[5]+p.Norm.Z*m[6]+p.Off*m[7],
			p.Norm.X*m[8]+p.Norm.Y*m[9]+p.Norm.Z*m[10]+p.Off*m[11]),
		Off: p.Norm.X*m[12] + p.Norm.Y*m[13] + p.Norm.Z*m[14] + p.Off*m[15],
	}
}
