// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders command manifests for a terminal. A [Renderer]
// owns a lipgloss renderer bound to one writer, so color detection
// follows that writer rather than the process's stdout, and a
// [ColorMode] can force colors on or off.
//
// Layout is plain text with ANSI styling layered on top: stripping the
// escapes from colored output yields exactly the uncolored output.
package tui
