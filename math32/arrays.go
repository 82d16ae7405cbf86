// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for other math types that can be stored in the array.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// NumBytes returns the size of the array in bytes
func (a ArrayF32) NumBytes() int {
	return len(a) * 4
}

// NumVector3 returns the number of [Vector3] elements in the array
func (a ArrayF32) NumVector3() int {
	return len(a) / 3
}

// Append appends any number of values to the array
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector3 appends any number of [Vector3] to the array
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// GetVector3 stores in the specified [Vector3] the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector3(pos int, v *Vector3) {
	v.X = a[pos]
	v.Y = a[pos+1]
	v.Z = a[pos+2]
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayF32) Set(pos int, vs ...float32) {
	for i, v := range vs {
		a[pos+i] = v
	}
}

// SetVector3 sets the values of the array at the specified pos
// from the XYZ values of the specified [Vector3]
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	v.ToSlice(a, pos)
}

// ArrayU32 is a slice of uint32 with additional convenience methods.
type ArrayU32 []uint32

// NewArrayU32 creates a returns a new array of uint32
// with the specified initial size and capacity
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// NumBytes returns the size of the array in bytes
func (a ArrayU32) NumBytes() int {
	return len(a) * 4
}

// Append appends any number of values to the array
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayU32) Set(pos int, vs ...uint32) {
	for i, v := range vs {
		a[pos+i] = v
	}
}

// ArrayU16 is a slice of uint16 with additional convenience methods,
// for 16 bit index arrays.
type ArrayU16 []uint16

// NewArrayU16 creates a returns a new array of uint16
// with the specified initial size and capacity
func NewArrayU16(size, capacity int) ArrayU16 {
	return make([]uint16, size, capacity)
}

// NumBytes returns the size of the array in bytes
func (a ArrayU16) NumBytes() int {
	return len(a) * 2
}

// Append appends any number of values to the array
func (a *ArrayU16) Append(v ...uint16) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values
func (a ArrayU16) Set(pos int, vs ...uint16) {
	for i, v := range vs {
		a[pos+i] = v
	}
}
