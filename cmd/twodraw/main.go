// Command twodraw renders a scene file, or a built-in demo, to an image
// or a window.
//
//	twodraw -scene scene.yaml -frames 30 -output out.png
//	twodraw -window
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/two"
	"github.com/gogpu/two/backend"
	"github.com/gogpu/two/host"
	"github.com/gogpu/two/host/ebitenhost"
	"github.com/gogpu/two/scenefile"
)

func main() {
	var (
		scene   = flag.String("scene", "", "scene file (.yaml or .toml); empty for the built-in demo")
		output  = flag.String("output", "two.png", "output file (.png, .jpg, .bmp, .tif)")
		frames  = flag.Int("frames", 1, "frames to advance before writing the output")
		kind    = flag.String("type", "", "renderer type (accelerated, vector, raster); overrides the scene")
		width   = flag.Int("width", 0, "surface width; overrides the scene")
		height  = flag.Int("height", 0, "surface height; overrides the scene")
		window  = flag.Bool("window", false, "show the scene in a window instead of writing a file")
		verbose = flag.Bool("v", false, "log renderer selection and frame errors")
	)
	flag.Parse()

	if *verbose {
		two.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	doc := &scenefile.Document{}
	if *scene != "" {
		var err error
		if doc, err = scenefile.Load(*scene); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	opts := doc.Options()
	if *kind != "" {
		opts = append(opts, two.WithType(backend.ParseType(*kind)))
	}
	if *width > 0 && *height > 0 {
		opts = append(opts, two.WithSize(*width, *height))
	}

	m := host.NewManual()
	d := two.NewDriver(two.WithScheduler(m))
	defer func() { _ = d.Dispose() }()

	s, err := two.NewSurface(d, opts...)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	if *scene != "" {
		if _, err := doc.Build(s); err != nil {
			log.Fatalf("Failed to build scene: %v", err)
		}
	} else if err := buildDemo(s); err != nil {
		log.Fatalf("Failed to build demo: %v", err)
	}

	if *window {
		if err := ebitenhost.Run(s, m, "twodraw"); err != nil {
			log.Fatalf("Window: %v", err)
		}
		return
	}

	if err := render(s, m, *frames); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := save(s, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%s, %dx%d, %d frames)\n", *output, s.Type(), s.Width(), s.Height(), *frames)
}

// render advances the driver n frames. A paused surface is drawn once.
func render(s *two.Surface, m *host.Manual, n int) error {
	stepped := 0
	for range n {
		if !m.Step() {
			break
		}
		stepped++
	}
	if stepped == 0 {
		return s.Draw()
	}
	return nil
}

func save(s *two.Surface, path string) error {
	format, err := backend.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// buildDemo adds an animated scene: a ring of circles that turns, a star
// that morphs into a circle, and a spiral line drawn in over time.
func buildDemo(s *two.Surface) error {
	s.SetBackground(gg.RGB(0.1, 0.12, 0.18))
	cx, cy := float64(s.Width())/2, float64(s.Height())/2

	ring := s.MakeGroup()
	for i := range 12 {
		a := 2 * math.Pi * float64(i) / 12
		c := two.NewCircle(cx+150*math.Cos(a), cy+150*math.Sin(a), 14)
		c.SetFill(gg.HSL(float64(i)*30, 0.7, 0.55))
		c.NoStroke()
		ring.Add(c)
	}
	ring.Center()

	points := make([]two.Vector, 10)
	for i := range points {
		r := 90.0
		if i%2 == 1 {
			r = 40
		}
		a := math.Pi*float64(i)/5 - math.Pi/2
		points[i] = two.V(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	star := s.MakePolygon(points, false)
	star.SetFill(gg.Hex("#f5c542"))
	star.SetStroke(gg.White)
	star.SetStrokeWeight(3)

	round := star.Vertices()
	for i, v := range round {
		round[i] = v.Mul(70 / v.Length())
	}
	morph, err := star.AddMorph(round, "round")
	if err != nil {
		return err
	}

	spiral := make([]two.Vector, 0, 120)
	for i := range 120 {
		t := float64(i) / 10
		spiral = append(spiral, two.V(cx+t*18*math.Cos(t), cy+t*18*math.Sin(t)))
	}
	line := s.MakePolyline(spiral)
	line.SetStroke(gg.RGBA{R: 1, G: 1, B: 1, A: 0.5})
	line.SetStrokeWeight(2)

	s.OnUpdate(func(frame int) {
		t := float64(frame) / 60
		ring.SetRotation(t * 0.5)
		morph.SetInfluence((1 - math.Cos(t*2)) / 2)
		line.SetEnding(math.Mod(t/4, 1))
	})
	return nil
}
