// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scenefile loads scene descriptions for two surfaces from YAML or
// TOML.
//
// A document configures a surface and lists its shapes:
//
//	surface:
//	  type: raster
//	  width: 400
//	  height: 300
//	  background: "#ffffff"
//	shapes:
//	  - kind: circle
//	    x: 200
//	    y: 150
//	    radius: 50
//	    fill: "#ff8800"
//	  - kind: group
//	    children:
//	      - {kind: rectangle, x: 50, y: 50, width: 40, height: 40}
//	      - {kind: line, x: 0, y: 0, x2: 100, y2: 100, stroke: "#000"}
//
// Kinds are rectangle, ellipse, circle, arc, curve, polygon, line,
// polyline and group.
package scenefile
