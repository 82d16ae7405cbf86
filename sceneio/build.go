// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"fmt"
	"strings"

	"cogentcore.org/pick/base/errors"
	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
	"cogentcore.org/pick/scene"
	"cogentcore.org/pick/shape"
)

// ShapeKinds lists the parametric shape kinds a [MeshDef] accepts.
var ShapeKinds = []string{"box", "plane", "sphere"}

// Build constructs the scene a [SceneFile] describes.
func Build(sf *SceneFile) (*scene.Scene, error) {
	name := sf.Name
	if name == "" {
		name = "scene"
	}
	sc := scene.NewScene(name)
	for _, md := range sf.Mesh {
		ms, err := md.Mesh()
		if err != nil {
			return nil, err
		}
		sc.SetMesh(ms)
	}
	for _, cd := range sf.Camera {
		cam, err := cd.Camera()
		if err != nil {
			return nil, err
		}
		sc.SetCamera(cam)
	}
	for _, nd := range sf.Node {
		if err := nd.build(sc); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// Describe builds the [SceneFile] description of the given scene,
// with all meshes written as inline data.
func Describe(sc *scene.Scene) (*SceneFile, error) {
	sf := &SceneFile{Name: sc.Name}
	for _, ms := range sc.Meshes {
		sf.Mesh = append(sf.Mesh, &MeshDef{
			Name:     ms.Name,
			Vertex:   ms.Vertex,
			IndexU32: ms.IndexU32,
			IndexU16: ms.IndexU16,
		})
	}
	for _, cam := range sc.Cameras {
		sf.Camera = append(sf.Camera, &CameraDef{
			Name:         cam.Name,
			Ortho:        cam.Ortho,
			FOV:          cam.FOV,
			Aspect:       cam.Aspect,
			Near:         cam.Near,
			Far:          cam.Far,
			ReverseDepth: cam.ReverseDepth,
			Pos:          cam.Pose.Pos,
			Target:       cam.Target,
			UpDir:        cam.UpDir,
			Viewport:     cam.Viewport,
		})
	}
	rootPath := sc.Path()
	var derr error
	sc.WalkDown(func(n scene.Node) bool {
		if derr != nil {
			return scene.Break
		}
		if n == sc.This {
			return scene.Continue
		}
		nd, err := describeNode(n, rootPath)
		if err != nil {
			derr = err
			return scene.Break
		}
		sf.Node = append(sf.Node, nd)
		return scene.Continue
	})
	if derr != nil {
		return nil, derr
	}
	return sf, nil
}

// Mesh builds the [scene.Mesh] this definition describes.
func (md *MeshDef) Mesh() (*scene.Mesh, error) {
	if md.Name == "" {
		return nil, errors.New("sceneio: mesh must have a name")
	}
	if md.Kind == "" {
		return md.inline()
	}
	sp, err := md.shape()
	if err != nil {
		return nil, err
	}
	return shape.NewMesh(md.Name, sp), nil
}

func (md *MeshDef) shape() (shape.Shape, error) {
	switch md.Kind {
	case "box":
		bx := shape.NewBox(1, 1, 1)
		if md.Size != (math32.Vector3{}) {
			bx.Size = md.Size
		}
		if md.Segs != (math32.Vector3i{}) {
			bx.Segs = md.Segs
		}
		bx.Pos = md.Pos
		return bx, nil
	case "plane":
		axis, err := axisFromName(md.NormAxis)
		if err != nil {
			return nil, fmt.Errorf("sceneio: mesh %q: %w", md.Name, err)
		}
		pl := &shape.Plane{}
		pl.Defaults()
		pl.NormAxis = axis
		pl.NormNeg = md.NormNeg
		pl.Offset = md.Offset
		pl.Pos = md.Pos
		if md.Width != 0 {
			pl.Width = md.Width
		}
		if md.Height != 0 {
			pl.Height = md.Height
		}
		if md.WidthSegs != 0 {
			pl.WidthSegs = md.WidthSegs
		}
		if md.HeightSegs != 0 {
			pl.HeightSegs = md.HeightSegs
		}
		return pl, nil
	case "sphere":
		sp := &shape.Sphere{}
		sp.Defaults()
		sp.AngStart = md.AngStart
		sp.ElevStart = md.ElevStart
		sp.Pos = md.Pos
		if md.Radius != 0 {
			sp.Radius = md.Radius
		}
		if md.WidthSegs != 0 {
			sp.WidthSegs = md.WidthSegs
		}
		if md.HeightSegs != 0 {
			sp.HeightSegs = md.HeightSegs
		}
		if md.AngLen != 0 {
			sp.AngLen = md.AngLen
		}
		if md.ElevLen != 0 {
			sp.ElevLen = md.ElevLen
		}
		return sp, nil
	}
	return nil, fmt.Errorf("sceneio: mesh %q: unknown shape kind %q", md.Name, md.Kind)
}

func (md *MeshDef) inline() (*scene.Mesh, error) {
	if len(md.Vertex) == 0 {
		return nil, fmt.Errorf("sceneio: mesh %q: no shape kind and no vertex data", md.Name)
	}
	if len(md.Vertex)%3 != 0 {
		return nil, fmt.Errorf("sceneio: mesh %q: vertex data length %d is not a multiple of 3", md.Name, len(md.Vertex))
	}
	if len(md.IndexU16) > 0 && len(md.IndexU32) > 0 {
		return nil, fmt.Errorf("sceneio: mesh %q: IndexU16 and IndexU32 are mutually exclusive", md.Name)
	}
	ms := scene.NewMesh(md.Name)
	ms.SetVertex(md.Vertex)
	ms.IndexU16 = md.IndexU16
	ms.IndexU32 = md.IndexU32
	nv := ms.NumVertex()
	for i, ix := range md.IndexU32 {
		if int(ix) >= nv {
			return nil, fmt.Errorf("sceneio: mesh %q: index %d out of range: %d >= %d", md.Name, i, ix, nv)
		}
	}
	for i, ix := range md.IndexU16 {
		if int(ix) >= nv {
			return nil, fmt.Errorf("sceneio: mesh %q: index %d out of range: %d >= %d", md.Name, i, ix, nv)
		}
	}
	return ms, nil
}

// Camera builds the [scene.Camera] this definition describes.
func (cd *CameraDef) Camera() (*scene.Camera, error) {
	if cd.Name == "" {
		return nil, errors.New("sceneio: camera must have a name")
	}
	cam := scene.NewCamera(cd.Name)
	cam.Ortho = cd.Ortho
	cam.ReverseDepth = cd.ReverseDepth
	if cd.FOV != 0 {
		cam.FOV = cd.FOV
	}
	if cd.Aspect != 0 {
		cam.Aspect = cd.Aspect
	}
	if cd.Near != 0 {
		cam.Near = cd.Near
	}
	if cd.Far != 0 {
		cam.Far = cd.Far
	}
	if cd.Viewport != (intersect.Viewport{}) {
		cam.Viewport = cd.Viewport
	}
	if !cd.Pos.IsNil() || !cd.Target.IsNil() {
		if cd.Pos == cd.Target {
			return nil, fmt.Errorf("sceneio: camera %q: Pos and Target must differ", cd.Name)
		}
		cam.Pose.Pos = cd.Pos
		cam.LookAt(cd.Target, cd.UpDir)
	}
	return cam, nil
}

func (nd *NodeDef) build(sc *scene.Scene) error {
	var parent scene.Node = sc
	if nd.Parent != "" {
		parent = sc.FindPath(nd.Parent)
		if parent == nil {
			return fmt.Errorf("sceneio: node %q: parent path %q not found", nd.Name, nd.Parent)
		}
	}
	switch nd.Kind {
	case "group":
		scene.NewChild[*scene.Group](parent, nd.Name)
	case "transform":
		tr := scene.NewChild[*scene.Transform](parent, nd.Name)
		tr.Pose.Pos = nd.Pos
		tr.Pose.Scale = nd.Scale
		if nd.RotAngle != 0 {
			if nd.RotAxis.IsNil() {
				return fmt.Errorf("sceneio: node %q: RotAngle requires a RotAxis", nd.Name)
			}
			tr.Pose.Quat.SetFromAxisAngle(nd.RotAxis.Normal(), math64.DegToRad(nd.RotAngle))
		}
	case "geometry":
		ge := scene.NewChild[*scene.Geometry](parent, nd.Name)
		if nd.Mesh != "" {
			ms, err := sc.MeshByName(nd.Mesh)
			if err != nil {
				return err
			}
			ge.Mesh = ms
		}
		ge.FirstVertex = nd.FirstVertex
		ge.VertexCount = nd.VertexCount
		ge.FirstIndex = nd.FirstIndex
		ge.IndexCount = nd.IndexCount
		ge.FirstInstance = nd.FirstInstance
		ge.InstanceCount = nd.InstanceCount
	default:
		return fmt.Errorf("sceneio: node %q: unknown node kind %q", nd.Name, nd.Kind)
	}
	return nil
}

func describeNode(n scene.Node, rootPath string) (*NodeDef, error) {
	nb := n.AsNodeBase()
	nd := &NodeDef{Name: nb.Name}
	if par := nb.Parent; par != nil {
		pp := strings.TrimPrefix(par.AsNodeBase().Path(), rootPath)
		nd.Parent = strings.TrimPrefix(pp, "/")
	}
	switch nt := n.(type) {
	case *scene.Transform:
		nd.Kind = "transform"
		nd.Pos = nt.Pose.Pos
		nd.Scale = nt.Pose.Scale
		if !nt.Pose.Quat.IsNil() && !nt.Pose.Quat.IsIdentity() {
			axis, ang := nt.Pose.Quat.ToAxisAngle()
			nd.RotAxis = axis
			nd.RotAngle = math64.RadToDeg(ang)
		}
	case *scene.Geometry:
		nd.Kind = "geometry"
		if nt.Mesh != nil {
			nd.Mesh = nt.Mesh.Name
		}
		nd.FirstVertex = nt.FirstVertex
		nd.VertexCount = nt.VertexCount
		nd.FirstIndex = nt.FirstIndex
		nd.IndexCount = nt.IndexCount
		nd.FirstInstance = nt.FirstInstance
		nd.InstanceCount = nt.InstanceCount
	case *scene.Group:
		nd.Kind = "group"
	default:
		return nil, fmt.Errorf("sceneio: node %q: cannot describe node type %T", nb.Path(), n)
	}
	return nd, nil
}

func axisFromName(name string) (math32.Dims, error) {
	switch strings.ToUpper(name) {
	case "", "Y":
		return math32.Y, nil
	case "X":
		return math32.X, nil
	case "Z":
		return math32.Z, nil
	}
	return 0, fmt.Errorf("unknown plane normal axis %q", name)
}
