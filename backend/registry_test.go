// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"testing"
)

func testOptions() Options {
	o := DefaultOptions()
	o.Width, o.Height = 32, 32
	return o
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register(Raster, 10, func(opts Options) (Renderer, error) {
		return NewRaster(opts)
	}, nil)

	e, ok := r.Get(Raster)
	if !ok {
		t.Fatal("registered backend not found")
	}
	if e.Priority != 10 {
		t.Errorf("Priority = %d, want 10", e.Priority)
	}
	if !e.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(Vector, 50, func(opts Options) (Renderer, error) {
		return NewVectorRenderer(opts)
	}, nil)
	r.Unregister(Vector)

	if _, ok := r.Get(Vector); ok {
		t.Error("backend should not exist after unregister")
	}
}

func TestRegistryAvailableOrder(t *testing.T) {
	r := NewRegistry()
	factory := func(opts Options) (Renderer, error) { return NewRaster(opts) }
	r.Register(Raster, 10, factory, nil)
	r.Register(Vector, 50, factory, nil)
	r.Register(Accelerated, 100, factory, func() bool { return false })

	got := r.Available()
	want := []Type{Vector, Raster}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRegistryFallback(t *testing.T) {
	r := NewRegistry()
	r.Register(Raster, 10, func(opts Options) (Renderer, error) {
		return NewRaster(opts)
	}, nil)
	r.Register(Accelerated, 100, func(opts Options) (Renderer, error) {
		return NewAccelerated(opts)
	}, func() bool { return false })

	tests := []struct {
		name string
		req  Type
	}{
		{"unavailable accelerated", Accelerated},
		{"unregistered vector", Vector},
		{"raster", Raster},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, err := r.New(tt.req, testOptions())
			if err != nil {
				t.Fatalf("New(%v) error = %v", tt.req, err)
			}
			defer rr.Close()
			if rr.Type() != Raster {
				t.Errorf("New(%v).Type() = %v, want raster", tt.req, rr.Type())
			}
		})
	}
}

func TestRegistryFactoryFailureFallsBack(t *testing.T) {
	r := NewRegistry()
	r.Register(Raster, 10, func(opts Options) (Renderer, error) {
		return NewRaster(opts)
	}, nil)
	r.Register(Vector, 50, func(Options) (Renderer, error) {
		return nil, errors.New("boom")
	}, nil)

	rr, err := r.New(Vector, testOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer rr.Close()
	if rr.Type() != Raster {
		t.Errorf("Type() = %v, want raster", rr.Type())
	}
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()
	_, err := r.New(Raster, testOptions())
	if !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() on empty registry error = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryInvalidSize(t *testing.T) {
	_, err := New(Raster, Options{Width: 0, Height: 10})
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New() error = %v, want ErrInvalidSize", err)
	}
}

func TestGlobalRegistryDefaults(t *testing.T) {
	if !IsAvailable(Raster) {
		t.Error("raster backend should always be registered")
	}
	if !IsAvailable(Vector) {
		t.Error("vector backend should always be registered")
	}
}
