// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio loads and saves declarative TOML scene
// descriptions: mesh resources (parametric shape kinds or inline
// triangle data), cameras, and the node tree with its transforms
// and draw parameters. Key matching is case-insensitive, so
// hand-written files can use lowercase keys.
package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/pick/intersect"
	"cogentcore.org/pick/math32"
	"cogentcore.org/pick/math64"
	"cogentcore.org/pick/scene"
	"github.com/pelletier/go-toml/v2"
)

// SceneFile is the top-level TOML scene description.
type SceneFile struct {

	// Name of the scene root node. Empty takes "scene".
	Name string `toml:",omitempty"`

	// Mesh lists the mesh resources ([[Mesh]] tables).
	Mesh []*MeshDef `toml:",omitempty"`

	// Camera lists the camera resources ([[Camera]] tables).
	Camera []*CameraDef `toml:",omitempty"`

	// Node lists the scene tree nodes ([[Node]] tables).
	Node []*NodeDef `toml:",omitempty"`
}

// MeshDef describes one mesh resource: either a parametric shape
// kind with its parameters, or inline vertex and index data.
// Zero-valued shape parameters take the shape defaults.
type MeshDef struct {

	// Name of the mesh, referenced by geometry nodes.
	Name string

	// Kind is the parametric shape kind: one of box, plane, or
	// sphere. Empty means inline Vertex and index data.
	Kind string `toml:",omitempty"`

	// Radius of a sphere.
	Radius float32 `toml:",omitempty"`

	// Width of a plane along the first axis it spans.
	Width float32 `toml:",omitempty"`

	// Height of a plane along the second axis it spans.
	Height float32 `toml:",omitempty"`

	// WidthSegs is the number of width segments of a plane or sphere.
	WidthSegs int `toml:",omitempty"`

	// HeightSegs is the number of height segments of a plane or sphere.
	HeightSegs int `toml:",omitempty"`

	// NormAxis is the normal axis of a plane: X, Y, or Z.
	NormAxis string `toml:",omitempty"`

	// NormNeg flips a plane's normal to the negative direction.
	NormNeg bool `toml:",omitempty"`

	// Offset is the distance of a plane from the origin along
	// its normal axis.
	Offset float32 `toml:",omitempty"`

	// AngStart is the starting radial angle of a sphere in degrees.
	AngStart float32 `toml:",omitempty"`

	// AngLen is the total radial angle of a sphere in degrees.
	AngLen float32 `toml:",omitempty"`

	// ElevStart is the starting elevation angle of a sphere in degrees.
	ElevStart float32 `toml:",omitempty"`

	// ElevLen is the total elevation angle of a sphere in degrees.
	ElevLen float32 `toml:",omitempty"`

	// Size of a box along each dimension.
	Size math32.Vector3 `toml:",omitempty"`

	// Segs is the number of box segments along each dimension.
	Segs math32.Vector3i `toml:",omitempty"`

	// Pos is a position offset applied to all shape points,
	// for composing scenes.
	Pos math32.Vector3 `toml:",omitempty"`

	// Vertex is inline vertex data, three floats per point.
	Vertex math32.ArrayF32 `toml:",omitempty"`

	// IndexU32 is inline 32-bit triangle index data,
	// exclusive with IndexU16.
	IndexU32 math32.ArrayU32 `toml:",omitempty"`

	// IndexU16 is inline 16-bit triangle index data,
	// exclusive with IndexU32.
	IndexU16 math32.ArrayU16 `toml:",omitempty"`
}

// CameraDef describes one camera resource. Zero-valued lens and
// viewport fields take the camera defaults, and a camera with zero
// Pos and Target keeps the default pose entirely.
type CameraDef struct {

	// Name of the camera, referenced by pick queries.
	Name string

	// Ortho uses orthographic instead of perspective projection.
	Ortho bool `toml:",omitempty"`

	// FOV is the vertical field of view in degrees.
	FOV float64 `toml:",omitempty"`

	// Aspect is the width over height projection ratio.
	Aspect float64 `toml:",omitempty"`

	// Near is the near plane distance.
	Near float64 `toml:",omitempty"`

	// Far is the far plane distance.
	Far float64 `toml:",omitempty"`

	// ReverseDepth maps the far plane to depth 0 and the near
	// plane to depth 1.
	ReverseDepth bool `toml:",omitempty"`

	// Pos is the camera position.
	Pos math64.Vector3 `toml:",omitempty"`

	// Target is the point the camera looks at.
	Target math64.Vector3 `toml:",omitempty"`

	// UpDir is the camera up direction. Zero takes (0, 1, 0).
	UpDir math64.Vector3 `toml:",omitempty"`

	// Viewport is the window the camera renders to.
	Viewport intersect.Viewport `toml:",omitempty"`
}

// NodeDef describes one node in the scene tree. Nodes are created
// in file order, so a Parent path must refer to a node defined on
// an earlier line.
type NodeDef struct {

	// Kind of node: group, transform, or geometry.
	Kind string

	// Name of the node. Empty takes an automatic name.
	Name string `toml:",omitempty"`

	// Parent is the slash-separated path of the parent node below
	// the scene root, e.g. "arm/hand". Empty parents to the root.
	Parent string `toml:",omitempty"`

	// Mesh is the name of the mesh a geometry node draws.
	Mesh string `toml:",omitempty"`

	// RotAngle is a transform's rotation angle about RotAxis,
	// in degrees.
	RotAngle float64 `toml:",omitempty"`

	// FirstVertex is the first vertex a non-indexed geometry draws.
	FirstVertex uint32 `toml:",omitempty"`

	// VertexCount is the number of vertices a non-indexed geometry
	// draws. Zero draws through the end of the array.
	VertexCount uint32 `toml:",omitempty"`

	// FirstIndex is the first index an indexed geometry draws.
	FirstIndex uint32 `toml:",omitempty"`

	// IndexCount is the number of indices an indexed geometry
	// draws. Zero draws through the end of the array.
	IndexCount uint32 `toml:",omitempty"`

	// FirstInstance is the first instance a geometry draws.
	FirstInstance uint32 `toml:",omitempty"`

	// InstanceCount is the number of instances a geometry draws.
	// Zero draws one instance.
	InstanceCount uint32 `toml:",omitempty"`

	// Pos is a transform's translation.
	Pos math64.Vector3 `toml:",omitempty"`

	// RotAxis is a transform's rotation axis, normalized on load.
	RotAxis math64.Vector3 `toml:",omitempty"`

	// Scale is a transform's scale. Zero takes (1, 1, 1).
	Scale math64.Vector3 `toml:",omitempty"`
}

// Load reads a TOML scene description from the given file and
// builds the scene it describes.
func Load(filename string) (*scene.Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := LoadReader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// LoadReader reads a TOML scene description from the given reader
// and builds the scene it describes.
func LoadReader(r io.Reader) (*scene.Scene, error) {
	sf := &SceneFile{}
	if err := toml.NewDecoder(r).Decode(sf); err != nil {
		return nil, err
	}
	return Build(sf)
}

// Save writes the given scene to the given file as a TOML scene
// description, with all meshes written as inline data.
func Save(sc *scene.Scene, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := SaveWriter(sc, w); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return w.Flush()
}

// SaveWriter writes the given scene to the given writer as a TOML
// scene description, with all meshes written as inline data.
func SaveWriter(sc *scene.Scene, w io.Writer) error {
	sf, err := Describe(sc)
	if err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(sf)
}
