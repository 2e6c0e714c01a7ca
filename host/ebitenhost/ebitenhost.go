// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost shows a two.Surface in an Ebitengine window.
//
// The window's update loop drives the surface's Driver through a
// host.Manual scheduler, so ticks run on the game goroutine at the
// window's TPS. Each Draw copies the surface's last frame into the
// screen image.
//
//	m := host.NewManual()
//	d := two.NewDriver(two.WithScheduler(m))
//	s, _ := two.NewSurface(d, two.WithType(backend.Raster))
//	_ = ebitenhost.Run(s, m, "demo")
package ebitenhost

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/two"
	"github.com/gogpu/two/host"
)

// ErrNoImage is returned when the surface's backend keeps no pixels.
var ErrNoImage = errors.New("ebitenhost: surface renderer has no image")

// Game implements ebiten.Game for one surface.
type Game struct {
	surface *two.Surface
	manual  *host.Manual

	screen  *ebiten.Image
	scratch *image.RGBA
}

// NewGame wraps s. m must be the scheduler of s's driver, or nil when
// the surface is drawn only on demand.
func NewGame(s *two.Surface, m *host.Manual) *Game {
	return &Game{surface: s, manual: m}
}

// Update advances the driver by one tick. Without a scheduler the
// surface is drawn directly.
func (g *Game) Update() error {
	if g.manual != nil {
		g.manual.Step()
		return nil
	}
	return g.surface.Draw()
}

// Draw copies the last frame to screen.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.surface.Image()
	if img == nil {
		return
	}
	rgba := g.rgba(img)
	b := rgba.Bounds()
	if g.screen == nil || g.screen.Bounds().Size() != b.Size() {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.screen.WritePixels(rgba.Pix)
	screen.DrawImage(g.screen, nil)
}

// rgba returns img as a tightly packed *image.RGBA, converting into a
// reused buffer when needed.
func (g *Game) rgba(img image.Image) *image.RGBA {
	b := img.Bounds()
	if r, ok := img.(*image.RGBA); ok && r.Stride == 4*b.Dx() && b.Min == (image.Point{}) {
		return r
	}
	if g.scratch == nil || g.scratch.Bounds().Size() != b.Size() {
		g.scratch = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Copy(g.scratch, image.Point{}, img, b, draw.Src, nil)
	return g.scratch
}

// Layout keeps the logical screen at the surface size. A fullscreen
// surface is fitted to the window instead.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.Fullscreen() && outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.surface.Width() || outsideHeight != g.surface.Height()) {
		if err := g.surface.Fit(outsideWidth, outsideHeight); err != nil {
			two.Logger().Warn("ebitenhost: fit failed", "err", err)
		}
	}
	return g.surface.Width(), g.surface.Height()
}

// Run opens a window titled title and blocks until it is closed.
func Run(s *two.Surface, m *host.Manual, title string) error {
	if s.Image() == nil {
		if err := s.Draw(); err != nil {
			return err
		}
		if s.Image() == nil {
			return ErrNoImage
		}
	}
	ebiten.SetWindowSize(s.Width(), s.Height())
	ebiten.SetWindowTitle(title)
	if s.Fullscreen() {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(NewGame(s, m))
}
