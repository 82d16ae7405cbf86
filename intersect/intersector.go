// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect implements geometric queries against transformed
// triangle geometry: a convex polytope (intersection of half-spaces,
// typically a sub-frustum from a screen-space rectangle) is tested
// against the triangle meshes of a scene graph, correctly re-expressed
// in each nested local coordinate frame as an external traversal
// descends, producing ranked, barycentric-interpolated hit records.
//
// The package depends only on the math packages: the scene graph,
// camera, and vertex storage are consumed through the narrow
// [Camera], [Transformer], and [ArrayState] interfaces, so any
// traversal can drive an [Intersector].
package intersect

import (
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
)

// Viewport describes the rendered window region and depth range
// that screen-space query coordinates are relative to.
type Viewport struct {

	// X and Y are the window coordinates of the viewport origin.
	X, Y float64

	// Width and Height are the viewport size in window coordinates.
	// A zero extent disables the window-to-NDC conversion for the
	// corresponding axis: query coordinates pass through unchanged.
	Width, Height float64

	// MinDepth and MaxDepth bound the normalized depth range,
	// typically 0 and 1.
	MinDepth, MaxDepth float64
}

// Camera is the abstraction of a viewing camera that screen-space
// polytope queries are constructed from.
type Camera interface {

	// PickViewport returns the viewport that query rectangle
	// coordinates are relative to.
	PickViewport() Viewport

	// PickProjection returns the projection matrix,
	// in the [0,1] normalized depth convention.
	PickProjection() math64.Matrix4

	// PickView returns the view matrix (world to eye).
	PickView() math64.Matrix4
}

// Transformer is a node in a scene graph that establishes a local
// coordinate frame for everything below it.
type Transformer interface {

	// Transform returns this node's local-to-world matrix given the
	// accumulated local-to-world matrix of its parent frame.
	Transform(parent *math64.Matrix4) math64.Matrix4
}

// ArrayState exposes the vertex data of the drawable currently being
// traversed. Implementations may return per-instance vertex arrays
// for instanced draws.
type ArrayState interface {

	// Topology returns the primitive topology the arrays are drawn with.
	Topology() Topologies

	// VertexArray returns the vertex position array for the given
	// instance, 3 floats per vertex. A nil return means the drawable
	// has no position data for that instance.
	VertexArray(instance uint32) math32.ArrayF32

	// Arrays returns all vertex attribute arrays of the drawable,
	// for inclusion in intersection records.
	Arrays() []math32.ArrayF32
}

// Intersector is the contract between a scene traversal and an
// intersection query. The traversal brackets transform nodes with
// PushTransform / PopTransform, brackets every node with PushNode /
// PopNode, and at each drawable pushes the array state, binds index
// arrays, and invokes the draw-call entry points.
type Intersector interface {

	// PushTransform enters a local coordinate frame: the query region
	// is re-expressed in the new frame.
	PushTransform(t Transformer)

	// PopTransform leaves the current local coordinate frame,
	// restoring the parent frame. Calling it below the root frame
	// panics: pushes and pops must be balanced by the traversal.
	PopTransform()

	// PushNode appends a node name to the current node path.
	PushNode(name string)

	// PopNode removes the most recently pushed node name.
	PopNode()

	// PushArrayState makes the given array state current for
	// subsequent draw-call tests.
	PushArrayState(as ArrayState)

	// PopArrayState restores the previously current array state.
	PopArrayState()

	// BindIndexes sets the index arrays for subsequent indexed
	// draw-call tests. At most one of the two is non-nil per drawable.
	BindIndexes(u16 math32.ArrayU16, u32 math32.ArrayU32)

	// Intersects reports whether the query region could intersect
	// geometry bounded by the given sphere, in the current local
	// frame. An invalid sphere is never intersected.
	Intersects(sphere math64.Sphere) bool

	// IntersectDraw tests the triangles of a non-indexed draw call
	// and records any hits, returning whether at least one hit
	// was recorded.
	IntersectDraw(firstVertex, vertexCount, firstInstance, instanceCount uint32) bool

	// IntersectDrawIndexed tests the triangles of an indexed draw
	// call and records any hits, returning whether at least one hit
	// was recorded.
	IntersectDrawIndexed(firstIndex, indexCount, firstInstance, instanceCount uint32) bool
}

// IntersectorBase holds the traversal state common to intersector
// implementations: the node path, the array-state stack, the bound
// index arrays, and the parallel local-to-world / world-to-local
// matrix stacks. Concrete intersectors embed it and own the policy
// for when matrices are pushed and popped.
type IntersectorBase struct {

	// NodePath is the ordered list of node names from the root to
	// the node currently being traversed.
	NodePath []string

	arrayStates []ArrayState

	indexes16 math32.ArrayU16
	indexes32 math32.ArrayU32

	localToWorld []math64.Matrix4
	worldToLocal []math64.Matrix4
}

// PushNode appends a node name to the current node path.
func (ib *IntersectorBase) PushNode(name string) {
	ib.NodePath = append(ib.NodePath, name)
}

// PopNode removes the most recently pushed node name.
func (ib *IntersectorBase) PopNode() {
	ib.NodePath = ib.NodePath[:len(ib.NodePath)-1]
}

// PushArrayState makes the given array state current.
func (ib *IntersectorBase) PushArrayState(as ArrayState) {
	ib.arrayStates = append(ib.arrayStates, as)
}

// PopArrayState restores the previously current array state.
func (ib *IntersectorBase) PopArrayState() {
	ib.arrayStates = ib.arrayStates[:len(ib.arrayStates)-1]
}

// ArrayState returns the current array state, or nil if none is set.
func (ib *IntersectorBase) ArrayState() ArrayState {
	if len(ib.arrayStates) == 0 {
		return nil
	}
	return ib.arrayStates[len(ib.arrayStates)-1]
}

// BindIndexes sets the index arrays used by indexed draw-call tests.
// At most one of the two should be non-nil at a time.
func (ib *IntersectorBase) BindIndexes(u16 math32.ArrayU16, u32 math32.ArrayU32) {
	ib.indexes16 = u16
	ib.indexes32 = u32
}

// LocalToWorld returns the accumulated local-to-world matrix of the
// current frame.
func (ib *IntersectorBase) LocalToWorld() *math64.Matrix4 {
	return &ib.localToWorld[len(ib.localToWorld)-1]
}

// WorldToLocal returns the accumulated world-to-local matrix of the
// current frame.
func (ib *IntersectorBase) WorldToLocal() *math64.Matrix4 {
	return &ib.worldToLocal[len(ib.worldToLocal)-1]
}

// Depth returns the current transform stack depth; 1 is the root frame.
func (ib *IntersectorBase) Depth() int {
	return len(ib.localToWorld)
}

// pushMatrices pushes a local-to-world / world-to-local pair.
func (ib *IntersectorBase) pushMatrices(ltw, wtl math64.Matrix4) {
	ib.localToWorld = append(ib.localToWorld, ltw)
	ib.worldToLocal = append(ib.worldToLocal, wtl)
}

// popMatrices pops the top local-to-world / world-to-local pair.
func (ib *IntersectorBase) popMatrices() {
	ib.localToWorld = ib.localToWorld[:len(ib.localToWorld)-1]
	ib.worldToLocal = ib.worldToLocal[:len(ib.worldToLocal)-1]
}
