// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple verbosity gate over the standard
// log/slog package, so that command-line tools and services can map
// -v / -vv style flags onto slog levels in one place.
package logx

import "log/slog"

// UserLevel is the verbosity level selected by the user, which
// determines what is printed. It defaults to [slog.LevelInfo] and
// is normally set from command-line flags at startup.
var UserLevel = defaultUserLevel

// SetVerbose sets [UserLevel] from the standard two-step verbosity
// flags: verbose selects [slog.LevelDebug] and trace selects a level
// below debug that enables everything.
func SetVerbose(verbose, trace bool) {
	switch {
	case trace:
		UserLevel = slog.LevelDebug - 4
	case verbose:
		UserLevel = slog.LevelDebug
	}
}

// DebugEnabled returns whether [UserLevel] admits debug output.
func DebugEnabled() bool {
	return UserLevel <= slog.LevelDebug
}

// TraceEnabled returns whether [UserLevel] admits trace output
// (the level below debug).
func TraceEnabled() bool {
	return UserLevel <= slog.LevelDebug-4
}
