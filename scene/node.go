// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// Continue and Break are used by [NodeBase.WalkDown] functions to
// signal whether the walk should descend into the current branch.
const (
	Continue = true
	Break    = false
)

// Node is the interface that all scene graph nodes satisfy.
// The core functionality is provided by the embedded [NodeBase];
// node types add their own behavior on top of it.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node.
	AsNodeBase() *NodeBase
}

// NodeBase implements the [Node] interface and provides the core
// tree functionality for scene graph nodes. All higher-level node
// types must embed it.
//
// All nodes must be initialized by [InitNode], which is done
// automatically by [NewRoot], [NewChild], and [NodeBase.AddChild].
// This sets the [NodeBase.This] field so that methods defined on
// base types can reach the outer node type.
type NodeBase struct {

	// Name is the name of this node, typically unique relative to
	// other children of the same parent. If not otherwise set, it
	// defaults to the lowercase type name plus a unique number.
	Name string `copier:"-"`

	// This is the value of this node as its true underlying type.
	This Node `copier:"-" json:"-"`

	// Parent is the parent of this node, set automatically when the
	// node is added as a child of a parent. Nodes have at most one
	// parent at a time.
	Parent Node `copier:"-" json:"-"`

	// Children is the list of children of this node, all of which
	// have this node set as their parent.
	Children []Node `copier:"-" json:",omitempty"`

	// numLifetimeChildren is the number of children ever added to
	// this node, used for automatic unique naming.
	numLifetimeChildren uint64
}

// AsNodeBase returns the [NodeBase] for this Node.
func (n *NodeBase) AsNodeBase() *NodeBase {
	return n
}

// String implements the [fmt.Stringer] interface by returning the
// path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// InitNode initializes the node, setting its This field to the node
// itself. It is a no-op if the node is already initialized.
func InitNode(n Node) {
	nb := n.AsNodeBase()
	if nb.This != n {
		nb.This = n
	}
}

// SetParent sets the parent of the given child node, assigning the
// child a default name if it has none. It does not add the child to
// the parent's children; see [NodeBase.AddChild] for a version that
// does.
func SetParent(child, parent Node) {
	cb := child.AsNodeBase()
	cb.Parent = parent
	if parent == nil {
		return
	}
	pb := parent.AsNodeBase()
	pb.numLifetimeChildren++
	if cb.Name == "" {
		cb.Name = typeIDName(child) + "-" + strconv.FormatUint(pb.numLifetimeChildren-1, 10)
	}
}

// typeIDName returns the lowercase type name of the given node,
// used for default node names.
func typeIDName(n Node) string {
	return strings.ToLower(reflect.TypeOf(n).Elem().Name())
}

// New returns a new initialized node of the given type,
// with the given optional name.
func New[T Node](name ...string) T {
	var zv T
	n := reflect.New(reflect.TypeOf(zv).Elem()).Interface().(T)
	InitNode(n)
	if len(name) > 0 {
		n.AsNodeBase().Name = name[0]
	}
	return n
}

// NewRoot returns a new initialized root node of the given type.
// If no name is given, it defaults to the lowercase type name.
func NewRoot[T Node](name ...string) T {
	n := New[T](name...)
	nb := n.AsNodeBase()
	if nb.Name == "" {
		nb.Name = typeIDName(n)
	}
	return n
}

// NewChild returns a new child node of the given type, added to the
// end of the given parent's children. If no name is given, the name
// defaults to the lowercase type name plus a unique number.
func NewChild[T Node](parent Node, name ...string) T {
	n := New[T](name...)
	parent.AsNodeBase().AddChild(n)
	return n
}

// AddChild adds the given node at the end of the children list.
// The node is assumed to not be on another tree, and its name
// should be unique among its new siblings.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index,
// and nil if the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child with the given name,
// and nil if none is found.
func (n *NodeBase) ChildByName(name string) Node {
	for _, kid := range n.Children {
		if kid.AsNodeBase().Name == name {
			return kid
		}
	}
	return nil
}

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root, using node
// names separated by / delimiters. Any existing / characters in
// names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsNodeBase().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node,
// using names separated by / delimiters, consistent with the format
// produced by [NodeBase.Path] relative to this node. It only works
// correctly when names are unique among siblings. It returns nil if
// no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	if n.This == nil {
		return nil
	}
	cur := n.This
	for _, pe := range strings.Split(strings.TrimSpace(path), "/") {
		if len(pe) == 0 {
			continue
		}
		kid := cur.AsNodeBase().ChildByName(UnescapePathName(pe))
		if kid == nil {
			return nil
		}
		cur = kid
	}
	return cur
}

// WalkDown calls the given function on this node and all of its
// children in depth-first order. It stops walking the current
// branch if the function returns [Break], and keeps walking if it
// returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		kid.AsNodeBase().WalkDown(fun)
	}
}

// CopyFrom copies the fields of the given node into this node,
// doing a deep copy of all fields that do not have a `copier:"-"`
// struct tag. The tree structure fields (Name, This, Parent,
// Children) are not copied. Only copying from the same type is
// supported.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("scene.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	err := copier.CopyWithOption(n.This, from.AsNodeBase().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.NodeBase.CopyFrom", "err", err)
	}
}

// NewInstance returns a new uninitialized instance of this node's
// underlying type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}
