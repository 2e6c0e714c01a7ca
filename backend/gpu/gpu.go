// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

// Package gpu registers the accelerated backend.
//
// Importing this package pulls in gg's GPU accelerator. When no adapter can
// be initialized gg logs a warning and keeps rendering on the CPU, and the
// accelerated backend reports itself unavailable so surfaces requesting it
// fall back to raster.
//
//	import _ "github.com/gogpu/two/backend/gpu"
package gpu

import (
	"github.com/gogpu/gg"
	ggpu "github.com/gogpu/gg/gpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/two/backend"
)

// Priority is the registry priority of the accelerated backend.
const Priority = 100

func init() {
	backend.Register(backend.Accelerated, Priority, func(opts backend.Options) (backend.Renderer, error) {
		return backend.NewAccelerated(opts)
	}, Available)
}

// Available reports whether gg has a GPU accelerator registered.
func Available() bool {
	return gg.Accelerator() != nil
}

// SetDeviceProvider shares a window's GPU device with the accelerator.
// Hosts call it once the window exists, before the first frame.
func SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	return ggpu.SetDeviceProvider(provider)
}
