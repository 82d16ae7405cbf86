// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Group collects nodes in a scene but has no transform or geometry
// of its own: its children live in the same coordinate frame as the
// group itself. Use [Transform] for a group that establishes a
// local frame.
type Group struct {
	NodeBase
}
