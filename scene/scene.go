// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a headless scene graph for geometric
// queries: [Group] and [Transform] nodes organize [Geometry] leaves
// that draw shared [Mesh] resources, and [Camera]s define the view
// that screen-space queries are relative to. A [Scene] is traversed
// with [RunIntersector], which drives any [intersect.Intersector];
// [PickRect] is the convenience entry point for rectangle picking.
package scene

import (
	"fmt"

	"cogentcore.org/pick/intersect"
)

// Scene is the root node of a scene graph. In addition to the graph
// itself, it holds the shared mesh and camera resources that graph
// nodes and queries reference by name.
type Scene struct {
	Group

	// Meshes are the meshes registered with the scene,
	// in registration order.
	Meshes []*Mesh `copier:"-"`

	// Cameras are the cameras registered with the scene,
	// in registration order.
	Cameras []*Camera `copier:"-"`
}

// NewScene returns a new initialized scene with the given name.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	InitNode(sc)
	return sc
}

// SetMesh registers the given mesh with the scene,
// replacing any existing mesh with the same name.
func (sc *Scene) SetMesh(ms *Mesh) *Mesh {
	for i, ex := range sc.Meshes {
		if ex.Name == ms.Name {
			sc.Meshes[i] = ms
			return ms
		}
	}
	sc.Meshes = append(sc.Meshes, ms)
	return ms
}

// MeshByName looks for a mesh by name,
// returning an error if it is not found.
func (sc *Scene) MeshByName(name string) (*Mesh, error) {
	for _, ms := range sc.Meshes {
		if ms.Name == name {
			return ms, nil
		}
	}
	return nil, fmt.Errorf("Mesh named: %v not found in Scene: %v", name, sc.Name)
}

// SetCamera registers the given camera with the scene,
// replacing any existing camera with the same name.
func (sc *Scene) SetCamera(cm *Camera) *Camera {
	for i, ex := range sc.Cameras {
		if ex.Name == cm.Name {
			sc.Cameras[i] = cm
			return cm
		}
	}
	sc.Cameras = append(sc.Cameras, cm)
	return cm
}

// CameraByName looks for a camera by name,
// returning an error if it is not found.
func (sc *Scene) CameraByName(name string) (*Camera, error) {
	for _, cm := range sc.Cameras {
		if cm.Name == name {
			return cm, nil
		}
	}
	return nil, fmt.Errorf("Camera named: %v not found in Scene: %v", name, sc.Name)
}

// RunIntersector traverses the graph depth-first from the given
// root, driving the given intersector. Nodes implementing
// [intersect.Transformer] bracket their subtrees with PushTransform
// and PopTransform, so the query region is re-expressed in each
// local frame exactly while the traversal is inside it. [Geometry]
// leaves are bounds-tested and then tested draw call by draw call.
func RunIntersector(root Node, in intersect.Intersector) {
	nb := root.AsNodeBase()
	if nb.This == nil {
		return
	}
	in.PushNode(nb.Name)
	tf, isTransform := nb.This.(intersect.Transformer)
	if isTransform {
		in.PushTransform(tf)
	}
	if ge, ok := nb.This.(*Geometry); ok {
		ge.intersect(in)
	}
	for _, kid := range nb.Children {
		RunIntersector(kid, in)
	}
	if isTransform {
		in.PopTransform()
	}
	in.PopNode()
}

// PickRect runs a box-select query against the scene: the given
// window-space rectangle under the given camera defines a
// sub-frustum, and every triangle of the scene intersecting it
// produces a hit. Hits are returned sorted by ratio along the query
// segment, nearest first.
func PickRect(sc *Scene, cam *Camera, xMin, yMin, xMax, yMax float64) intersect.Intersections {
	pi := intersect.NewPolytopeIntersectorFromCamera(cam, xMin, yMin, xMax, yMax)
	RunIntersector(sc, pi)
	pi.Hits.SortByRatio()
	return pi.Hits
}
