// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math64"
)

// Camera defines the properties of a viewing camera. Cameras are
// scene resources, not graph nodes: they are registered with a
// [Scene] by name via [Scene.SetCamera]. Camera implements
// [intersect.Camera], computing its matrices on demand so that a
// camera can be shared by concurrent queries.
type Camera struct {

	// Name is the name the camera is registered under in the [Scene].
	Name string

	// Pose is the overall position and orientation of the camera,
	// relative to pointing at the negative Z axis with positive Y up.
	Pose Pose

	// Target is the location the camera is pointing at.
	// It is reset by a call to the [Camera.LookAt] method.
	Target math64.Vector3

	// UpDir is the up direction of the camera.
	// It is reset by a call to the [Camera.LookAt] method.
	UpDir math64.Vector3

	// Ortho makes the camera orthographic instead of the default
	// perspective, in which case the view includes the volume
	// specified by the Near to Far distance.
	Ortho bool

	// FOV is the vertical field of view in degrees.
	FOV float64

	// Aspect is the aspect ratio (width / height).
	Aspect float64

	// Near is the near plane z coordinate.
	Near float64

	// Far is the far plane z coordinate.
	Far float64

	// ReverseDepth makes the projection map the near plane to depth 1
	// and the far plane to depth 0, instead of the default 0 to 1.
	ReverseDepth bool

	// Viewport is the window region and depth range that pick
	// rectangle coordinates are relative to.
	Viewport intersect.Viewport
}

// NewCamera returns a new camera with the given name
// and default parameters.
func NewCamera(name string) *Camera {
	cm := &Camera{Name: name}
	cm.Defaults()
	return cm
}

// Defaults sets default lens parameters and the default pose.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = 0.01
	cm.Far = 1000
	cm.Viewport = intersect.Viewport{MaxDepth: 1}
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to the default location and
// orientation, looking at the origin from (0,0,10) with up Y.
func (cm *Camera) DefaultPose() {
	cm.Pose = Pose{}
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAt(math64.Vector3{}, math64.Vec3(0, 1, 0))
}

// LookAt points the camera at the given target location using the
// given up direction, and saves the Target and UpDir fields for
// future camera movements.
func (cm *Camera) LookAt(target, upDir math64.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math64.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
}

// SetPos sets the camera position and re-points it at the
// current target.
func (cm *Camera) SetPos(x, y, z float64) {
	cm.Pose.Pos.Set(x, y, z)
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewMatrix returns the world-to-eye view matrix,
// the inverse of the camera pose matrix.
func (cm *Camera) ViewMatrix() math64.Matrix4 {
	m := cm.Pose.Matrix()
	return *errors.Log1(m.Inverse())
}

// ProjectionMatrix returns the projection matrix, in the [0,1]
// normalized depth convention. When ReverseDepth is set, the near
// and far planes are swapped so that depth decreases with distance.
func (cm *Camera) ProjectionMatrix() math64.Matrix4 {
	near, far := cm.Near, cm.Far
	if cm.ReverseDepth {
		near, far = far, near
	}
	var proj math64.Matrix4
	if cm.Ortho {
		height := 2 * cm.Far * math64.Tan(math64.DegToRad(cm.FOV*0.5))
		width := cm.Aspect * height
		proj.SetOrthographic(width, height, near, far)
	} else {
		proj.SetPerspective(cm.FOV, cm.Aspect, near, far)
	}
	return proj
}

// PickViewport implements [intersect.Camera].
func (cm *Camera) PickViewport() intersect.Viewport {
	return cm.Viewport
}

// PickProjection implements [intersect.Camera].
func (cm *Camera) PickProjection() math64.Matrix4 {
	return cm.ProjectionMatrix()
}

// PickView implements [intersect.Camera].
func (cm *Camera) PickView() math64.Matrix4 {
	return cm.ViewMatrix()
}

var _ intersect.Camera = (*Camera)(nil)
