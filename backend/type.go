// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "strings"

// Type identifies a rendering backend.
type Type uint8

const (
	// Accelerated renders through gg with a GPU accelerator.
	Accelerated Type = iota

	// Vector records drawing commands for vector export.
	Vector

	// Raster renders on the CPU into a pixmap.
	Raster
)

// String returns the backend type name.
func (t Type) String() string {
	switch t {
	case Accelerated:
		return "accelerated"
	case Vector:
		return "vector"
	case Raster:
		return "raster"
	default:
		return "unknown"
	}
}

// ParseType converts a configuration string into a Type.
// Besides the canonical names it accepts the aliases "gpu", "webgl", "svg",
// "canvas", "canvas2d" and "software". Anything else yields Accelerated,
// which itself falls back to Raster when no accelerator is present.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vector", "svg":
		return Vector
	case "raster", "canvas", "canvas2d", "software", "cpu":
		return Raster
	default:
		return Accelerated
	}
}
