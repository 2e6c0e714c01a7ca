// Command twodemo shows a scene in a gogpu window, painting each frame
// through ggcanvas on the GPU.
//
// Press Space to pause or resume the scene.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/two"
	"github.com/gogpu/two/backend"
	"github.com/gogpu/two/backend/gpu"
	"github.com/gogpu/two/host"
	"github.com/gogpu/two/scenefile"
)

func main() {
	var (
		scene  = flag.String("scene", "", "scene file (.yaml or .toml)")
		width  = flag.Int("width", 800, "window width")
		height = flag.Int("height", 600, "window height")
	)
	flag.Parse()

	doc := &scenefile.Document{Shapes: demoShapes()}
	if *scene != "" {
		var err error
		if doc, err = scenefile.Load(*scene); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	m := host.NewManual()
	d := two.NewDriver(two.WithScheduler(m))
	opts := append(doc.Options(),
		two.WithType(backend.Vector),
		two.WithSize(*width, *height),
		two.WithFullscreen(true))
	s, err := two.NewSurface(d, opts...)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	shapes, err := doc.Build(s)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	s.OnUpdate(func(frame int) {
		for i, sh := range shapes {
			sh.SetRotation(float64(frame) * 0.01 * float64(i%3+1))
		}
	})

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("two").
		WithSize(*width, *height).
		WithContinuousRender(false))

	var (
		canvas *ggcanvas.Canvas
		anim   *gogpu.AnimationToken
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			if err := gpu.SetDeviceProvider(provider); err != nil {
				log.Printf("GPU accelerator unavailable: %v", err)
			}
			if canvas, err = ggcanvas.New(provider, w, h); err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
			anim = app.StartAnimation()
		}
		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				log.Printf("Resize error: %v", err)
			}
			if err := s.Fit(w, h); err != nil {
				log.Printf("Fit error: %v", err)
			}
		}

		if s.Playing() {
			m.Step()
		}
		frame := s.Frame()
		if err := canvas.Draw(func(cc *gg.Context) {
			if err := backend.Paint(cc, frame); err != nil {
				log.Printf("Paint error: %v", err)
			}
		}); err != nil {
			log.Printf("Draw error: %v", err)
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("Render error: %v", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		if s.Playing() {
			s.Pause()
			if anim != nil {
				anim.Stop()
				anim = nil
			}
			return
		}
		s.Play()
		anim = app.StartAnimation()
	})

	app.OnClose(func() {
		if anim != nil {
			anim.Stop()
		}
		_ = d.Dispose()
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

func demoShapes() []scenefile.Shape {
	color := func(hex string) *scenefile.Color {
		var c scenefile.Color
		_ = c.UnmarshalText([]byte(hex))
		return &c
	}
	weight := 4.0
	return []scenefile.Shape{
		{Kind: "rectangle", X: 200, Y: 200, Width: 160, Height: 100, Fill: color("#3b82f6")},
		{Kind: "circle", X: 400, Y: 300, Radius: 80, Fill: color("#f59e0b"), Stroke: color("#ffffff"), Weight: &weight},
		{Kind: "arc", X: 600, Y: 400, Radius: 90, Start: 0, End: 4.5, Fill: color("#10b981")},
		{Kind: "curve", Points: [][2]float64{{100, 500}, {200, 420}, {300, 520}, {400, 440}}, Open: true,
			Fill: color("none"), Stroke: color("#ec4899"), Weight: &weight},
	}
}
