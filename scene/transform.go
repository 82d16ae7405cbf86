// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math64"
)

// Pose contains the full specification of position and orientation,
// always relative to the parent frame.
type Pose struct {

	// Pos is the position of the center of the element.
	Pos math64.Vector3

	// Quat is the rotation, specified as a quaternion.
	Quat math64.Quat

	// Scale is the scale, per axis.
	Scale math64.Vector3
}

// Defaults sets defaults only if current values are nil,
// so that the zero Pose is the identity.
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Matrix returns the local transform matrix composed from the
// position, rotation, and scale, after applying [Pose.Defaults].
func (ps *Pose) Matrix() math64.Matrix4 {
	ps.Defaults()
	var m math64.Matrix4
	m.SetTransform(ps.Pos, ps.Quat, ps.Scale)
	return m
}

// LookAt points the element at the given target location using the
// given up direction.
func (ps *Pose) LookAt(target, upDir math64.Vector3) {
	ps.Quat.SetFromRotationMatrix(math64.NewLookAt(ps.Pos, target, upDir))
}

// Transform is a [Group] that also establishes a local coordinate
// frame: its [Pose] applies to everything below it.
type Transform struct {
	Group

	// Pose is the position, rotation, and scale of this node
	// relative to its parent frame.
	Pose Pose
}

// Transform returns this node's local-to-world matrix given the
// accumulated local-to-world matrix of the parent frame.
func (tr *Transform) Transform(parent *math64.Matrix4) math64.Matrix4 {
	m := tr.Pose.Matrix()
	return *parent.Mul(&m)
}

// SetPos sets the [Pose.Pos] position of this node.
func (tr *Transform) SetPos(x, y, z float64) *Transform {
	tr.Pose.Pos.Set(x, y, z)
	return tr
}

// SetScale sets the [Pose.Scale] scale of this node.
func (tr *Transform) SetScale(x, y, z float64) *Transform {
	tr.Pose.Scale.Set(x, y, z)
	return tr
}

// SetAxisRotation sets the [Pose.Quat] rotation of this node,
// from the given local axis and angle in degrees.
func (tr *Transform) SetAxisRotation(x, y, z, angle float64) *Transform {
	tr.Pose.Quat.SetFromAxisAngle(math64.Vec3(x, y, z), math64.DegToRad(angle))
	return tr
}

// SetEulerRotation sets the [Pose.Quat] rotation of this node,
// from the given Euler angles in degrees.
func (tr *Transform) SetEulerRotation(x, y, z float64) *Transform {
	tr.Pose.Quat.SetFromEuler(math64.Vec3(x, y, z).MulScalar(math64.DegToRadFactor))
	return tr
}

var _ intersect.Transformer = (*Transform)(nil)
