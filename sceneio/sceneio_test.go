// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/pick/math64"
	"cogentcore.org/pick/scene"
	"cogentcore.org/pick/shape"
	"github.com/stretchr/testify/assert"
)

func TestLoadReader(t *testing.T) {
	src := `
name = "demo"

[[mesh]]
name = "crate"
kind = "box"
size = {x = 2.0, y = 1.0, z = 1.0}

[[mesh]]
name = "tri"
vertex = [0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0, 0.0]
indexu32 = [0, 1, 2]

[[camera]]
name = "main"
fov = 60.0
pos = {x = 0.0, y = 0.0, z = 5.0}

[[node]]
kind = "transform"
name = "arm"
pos = {x = 5.0, y = 0.0, z = 0.0}
rotaxis = {y = 1.0}
rotangle = 30.0

[[node]]
kind = "geometry"
name = "crate1"
parent = "arm"
mesh = "crate"

[[node]]
kind = "group"
name = "empty"
`
	sc, err := LoadReader(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)

	crate, err := sc.MeshByName("crate")
	assert.NoError(t, err)
	assert.Equal(t, 24, crate.NumVertex())
	assert.Equal(t, 36, crate.NumIndex())

	tri, err := sc.MeshByName("tri")
	assert.NoError(t, err)
	assert.Equal(t, 3, tri.NumVertex())
	assert.Equal(t, []uint32{0, 1, 2}, []uint32(tri.IndexU32))

	cam, err := sc.CameraByName("main")
	assert.NoError(t, err)
	assert.Equal(t, 60.0, cam.FOV)
	assert.Equal(t, 1.5, cam.Aspect) // default
	assert.Equal(t, math64.Vec3(0, 0, 5), cam.Pose.Pos)
	assert.Equal(t, math64.Vector3{}, cam.Target)

	arm, ok := sc.FindPath("arm").(*scene.Transform)
	assert.True(t, ok)
	assert.Equal(t, math64.Vec3(5, 0, 0), arm.Pose.Pos)
	want := math64.NewQuatAxisAngle(math64.Vec3(0, 1, 0), math64.DegToRad(30))
	assert.InDelta(t, want.Y, arm.Pose.Quat.Y, 1.0e-12)
	assert.InDelta(t, want.W, arm.Pose.Quat.W, 1.0e-12)

	ge, ok := sc.FindPath("arm/crate1").(*scene.Geometry)
	assert.True(t, ok)
	assert.Same(t, crate, ge.Mesh)

	_, ok = sc.FindPath("empty").(*scene.Group)
	assert.True(t, ok)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  string
	}{
		{"mesh kind", `[[mesh]]
name = "m"
kind = "torus"`, "unknown shape kind"},
		{"mesh name", `[[mesh]]
kind = "box"`, "must have a name"},
		{"no data", `[[mesh]]
name = "m"`, "no shape kind and no vertex data"},
		{"vertex len", `[[mesh]]
name = "m"
vertex = [0.0, 1.0]`, "not a multiple of 3"},
		{"both indexes", `[[mesh]]
name = "m"
vertex = [0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 1.0, 0.0]
indexu16 = [0, 1, 2]
indexu32 = [0, 1, 2]`, "mutually exclusive"},
		{"index range", `[[mesh]]
name = "m"
vertex = [0.0, 0.0, 0.0]
indexu32 = [0, 1, 2]`, "out of range"},
		{"plane axis", `[[mesh]]
name = "m"
kind = "plane"
normaxis = "Q"`, "unknown plane normal axis"},
		{"camera name", `[[camera]]
fov = 45.0`, "must have a name"},
		{"camera pose", `[[camera]]
name = "c"
pos = {x = 1.0}
target = {x = 1.0}`, "must differ"},
		{"node kind", `[[node]]
kind = "portal"
name = "n"`, "unknown node kind"},
		{"parent path", `[[node]]
kind = "group"
name = "n"
parent = "nowhere"`, "not found"},
		{"mesh ref", `[[node]]
kind = "geometry"
name = "n"
mesh = "missing"`, "not found"},
		{"rot axis", `[[node]]
kind = "transform"
name = "n"
rotangle = 45.0`, "requires a RotAxis"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadReader(strings.NewReader(test.src))
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), test.err)
			}
		})
	}
}

// testScene builds a scene exercising every node kind, both index
// widths, a camera, and non-default draw parameters.
func testScene() *scene.Scene {
	sc := scene.NewScene("rig")
	ball := sc.SetMesh(shape.NewMesh("ball", shape.NewSphere(1, 8)))

	tri := scene.NewMesh("tri16")
	tri.SetVertex([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	tri.IndexU16 = []uint16{0, 1, 2}
	sc.SetMesh(tri)

	cam := scene.NewCamera("main")
	cam.SetPos(0, 2, 8)
	cam.Viewport.Width = 640
	cam.Viewport.Height = 480
	sc.SetCamera(cam)

	arm := scene.NewChild[*scene.Transform](sc, "arm")
	arm.SetPos(1, 2, 3).SetAxisRotation(0, 1, 0, 30).SetScale(2, 2, 2)
	hand := scene.NewChild[*scene.Group](arm, "hand")
	ge := scene.NewChild[*scene.Geometry](hand, "ball1")
	ge.SetMesh(ball)
	ge.InstanceCount = 3
	flat := scene.NewChild[*scene.Geometry](sc, "flat")
	flat.SetMesh(tri)
	flat.FirstInstance = 2
	return sc
}

func scenePaths(sc *scene.Scene) []string {
	paths := []string{}
	sc.WalkDown(func(n scene.Node) bool {
		paths = append(paths, n.AsNodeBase().Path())
		return scene.Continue
	})
	return paths
}

func TestRoundTrip(t *testing.T) {
	sc := testScene()
	var buf bytes.Buffer
	assert.NoError(t, SaveWriter(sc, &buf))

	ld, err := LoadReader(&buf)
	assert.NoError(t, err)
	assert.Equal(t, sc.Name, ld.Name)
	assert.Equal(t, scenePaths(sc), scenePaths(ld))

	for _, ms := range sc.Meshes {
		lms, err := ld.MeshByName(ms.Name)
		assert.NoError(t, err)
		assert.Equal(t, ms.Vertex, lms.Vertex)
		assert.Equal(t, ms.IndexU32, lms.IndexU32)
		assert.Equal(t, ms.IndexU16, lms.IndexU16)
	}

	cam := sc.Cameras[0]
	lcam, err := ld.CameraByName(cam.Name)
	assert.NoError(t, err)
	assert.Equal(t, cam.FOV, lcam.FOV)
	assert.Equal(t, cam.Aspect, lcam.Aspect)
	assert.Equal(t, cam.Near, lcam.Near)
	assert.Equal(t, cam.Far, lcam.Far)
	assert.Equal(t, cam.Pose.Pos, lcam.Pose.Pos)
	assert.Equal(t, cam.Target, lcam.Target)
	assert.Equal(t, cam.UpDir, lcam.UpDir)
	assert.Equal(t, cam.Viewport, lcam.Viewport)

	arm := sc.FindPath("arm").(*scene.Transform)
	larm, ok := ld.FindPath("arm").(*scene.Transform)
	assert.True(t, ok)
	assert.Equal(t, arm.Pose.Pos, larm.Pose.Pos)
	assert.Equal(t, arm.Pose.Scale, larm.Pose.Scale)
	assert.InDelta(t, arm.Pose.Quat.X, larm.Pose.Quat.X, 1.0e-12)
	assert.InDelta(t, arm.Pose.Quat.Y, larm.Pose.Quat.Y, 1.0e-12)
	assert.InDelta(t, arm.Pose.Quat.Z, larm.Pose.Quat.Z, 1.0e-12)
	assert.InDelta(t, arm.Pose.Quat.W, larm.Pose.Quat.W, 1.0e-12)

	ge := sc.FindPath("arm/hand/ball1").(*scene.Geometry)
	lge, ok := ld.FindPath("arm/hand/ball1").(*scene.Geometry)
	assert.True(t, ok)
	assert.Equal(t, ge.InstanceCount, lge.InstanceCount)
	assert.Equal(t, "ball", lge.Mesh.Name)
	lflat := ld.FindPath("flat").(*scene.Geometry)
	assert.Equal(t, uint32(2), lflat.FirstInstance)

	hits := scene.PickRect(sc, cam, 0, 0, 640, 480)
	lhits := scene.PickRect(ld, lcam, 0, 0, 640, 480)
	assert.Equal(t, len(hits), len(lhits))
	assert.Greater(t, len(hits), 0)
	for i := range hits {
		assert.InDelta(t, hits[i].Ratio, lhits[i].Ratio, 1.0e-9)
	}
}

func TestLoadSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rig.toml")
	sc := testScene()
	assert.NoError(t, Save(sc, path))

	ld, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, sc.Name, ld.Name)
	assert.Equal(t, scenePaths(sc), scenePaths(ld))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

type auxNode struct {
	scene.NodeBase
}

func TestDescribeUnknownNode(t *testing.T) {
	sc := scene.NewScene("sc")
	scene.NewChild[*auxNode](sc, "aux")
	_, err := Describe(sc)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "cannot describe")
	}
}
