// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math64

// Sphere represents a 3D sphere defined by its center point and a radius.
type Sphere struct {
	Center Vector3
	Radius float64
}

// NewSphere returns a new sphere with the specified center and radius.
func NewSphere(center Vector3, radius float64) Sphere {
	return Sphere{center, radius}
}

// Set sets the center and radius of this sphere.
func (s *Sphere) Set(center Vector3, radius float64) {
	s.Center = center
	s.Radius = radius
}

// IsValid returns whether the sphere is valid, i.e., has a positive radius.
// A zero or negative radius marks an empty or unset bound.
func (s *Sphere) IsValid() bool {
	return s.Radius > 0
}

// SetFromPoints sets this sphere to the minimal sphere centered at
// optCenter that contains all of the given points. If optCenter is nil,
// the average of the points is used as the center.
func (s *Sphere) SetFromPoints(points []Vector3, optCenter *Vector3) {
	s.Center.SetZero()
	s.Radius = 0
	if len(points) == 0 {
		return
	}
	if optCenter != nil {
		s.Center = *optCenter
	} else {
		for _, p := range points {
			s.Center.SetAdd(p)
		}
		s.Center.SetDivScalar(float64(len(points)))
	}
	maxDistSq := 0.0
	for _, p := range points {
		maxDistSq = Max(maxDistSq, s.Center.DistanceToSquared(p))
	}
	s.Radius = Sqrt(maxDistSq)
}

// ContainsPoint returns whether this sphere contains the specified point.
func (s *Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// DistanceToPoint returns the distance from the sphere surface to the specified point.
func (s *Sphere) DistanceToPoint(point Vector3) float64 {
	return point.DistanceTo(s.Center) - s.Radius
}

// IntersectSphere returns whether the other sphere intersects this one.
func (s *Sphere) IntersectSphere(other Sphere) bool {
	radiusSum := s.Radius + other.Radius
	return other.Center.DistanceToSquared(s.Center) <= radiusSum*radiusSum
}

// Translate translates this sphere by the specified offset.
func (s *Sphere) Translate(offset Vector3) {
	s.Center.SetAdd(offset)
}
