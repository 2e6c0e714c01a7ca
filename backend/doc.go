// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend turns flattened two scenes into pixels or vector output.
//
// A [Renderer] receives a [Frame]: an ordered list of draw items, each a
// polyline with an affine transform, an optional fill and an optional
// stroke. The package knows nothing about shapes or groups; the root
// package flattens its scene graph before handing it over.
//
// # Backend Types
//
//   - [Accelerated]: gg with a registered GPU accelerator. Registered by
//     importing github.com/gogpu/two/backend/gpu.
//   - [Vector]: drawing commands captured with gg's recording package and
//     exported through a registered recording backend ("svg" when
//     github.com/gogpu/gg-svg is imported, "raster" otherwise).
//   - [Raster]: gg's CPU rasterizer. Always available.
//
// # Backend Selection
//
// Renderers are created through the registry:
//
//	r, err := backend.New(backend.Accelerated, backend.Options{Width: 640, Height: 480})
//
// Requesting a type that is not registered or not available on this machine
// silently yields the best available renderer instead; only invalid options
// produce an error.
package backend
