package two

import (
	"testing"
	"time"

	"github.com/gogpu/two/backend"
	"github.com/gogpu/two/host"
)

func newTestDriver(t *testing.T) (*Driver, *host.Manual) {
	t.Helper()
	m := host.NewManual()
	d := NewDriver(WithScheduler(m))
	t.Cleanup(func() { _ = d.Dispose() })
	return d, m
}

func driverSurface(t *testing.T, d *Driver, opts ...SurfaceOption) *Surface {
	t.Helper()
	opts = append([]SurfaceOption{WithType(backend.Raster), WithSize(20, 20)}, opts...)
	s, err := NewSurface(d, opts...)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	return s
}

func TestDriverAutoplayStarts(t *testing.T) {
	d, m := newTestDriver(t)
	if d.Running() {
		t.Fatal("new driver should be stopped")
	}

	driverSurface(t, d)
	if !d.Running() {
		t.Error("autoplay surface should start the driver")
	}
	if !m.Pending() {
		t.Error("Start should request a frame")
	}
}

func TestDriverTickOrder(t *testing.T) {
	d, m := newTestDriver(t)

	var calls []string
	d.OnUpdate(func(frame int) { calls = append(calls, "driver") })
	a := driverSurface(t, d)
	a.OnUpdate(func(frame int) { calls = append(calls, "a") })
	b := driverSurface(t, d)
	b.OnUpdate(func(frame int) { calls = append(calls, "b") })

	m.Step()

	want := []string{"driver", "a", "b"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestDriverFrameCounter(t *testing.T) {
	d, m := newTestDriver(t)
	var seen []int
	d.OnUpdate(func(frame int) { seen = append(seen, frame) })
	d.Start()

	for i := 0; i < 3; i++ {
		if !m.Step() {
			t.Fatalf("step %d: no frame requested", i)
		}
	}
	if d.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", d.Frame())
	}
	for i, f := range seen {
		if f != i {
			t.Errorf("update %d saw frame %d", i, f)
		}
	}
}

func TestDriverSkipsPausedSurface(t *testing.T) {
	d, m := newTestDriver(t)
	var playing, paused int
	s1 := driverSurface(t, d)
	s1.OnUpdate(func(int) { playing++ })
	s2 := driverSurface(t, d, WithAutoplay(false))
	s2.OnUpdate(func(int) { paused++ })

	m.Step()
	m.Step()
	if playing != 2 || paused != 0 {
		t.Errorf("playing=%d paused=%d, want 2 and 0", playing, paused)
	}
}

func TestDriverStopAtTickBoundary(t *testing.T) {
	d, m := newTestDriver(t)
	s := driverSurface(t, d)

	var frames int
	s.OnUpdate(func(int) {
		frames++
		d.Stop()
	})

	m.Step()
	if frames != 1 {
		t.Fatalf("frames = %d, want 1", frames)
	}
	if d.Frame() != 1 {
		t.Errorf("Frame() = %d, the stopping tick should complete", d.Frame())
	}
	if m.Pending() {
		t.Error("stopped driver must not request another frame")
	}

	s.OnUpdate(nil)
	s.Play()
	if !d.Running() || !m.Pending() {
		t.Error("Play should restart a stopped driver")
	}
}

func TestDriverDispose(t *testing.T) {
	d, _ := newTestDriver(t)
	s := driverSurface(t, d)

	if err := d.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if d.Running() {
		t.Error("disposed driver should be stopped")
	}
	if len(d.Surfaces()) != 0 {
		t.Error("Dispose should unregister surfaces")
	}
	if err := s.Draw(); err == nil {
		t.Error("surfaces should be disposed with their driver")
	}
	d.Start()
	if d.Running() {
		t.Error("Start after Dispose should do nothing")
	}
}

func TestSurfaceDisposeUnregisters(t *testing.T) {
	d, _ := newTestDriver(t)
	a := driverSurface(t, d)
	b := driverSurface(t, d)

	if err := a.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	got := d.Surfaces()
	if len(got) != 1 || got[0] != b {
		t.Errorf("Surfaces() = %v, want only b", got)
	}
}

func TestDriverOwnTicker(t *testing.T) {
	d := NewDriver(WithFrameInterval(time.Millisecond))
	t.Cleanup(func() { _ = d.Dispose() })

	done := make(chan int, 1)
	d.OnUpdate(func(frame int) {
		if frame == 2 {
			select {
			case done <- frame:
			default:
			}
		}
	})
	d.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker-driven driver did not reach frame 2")
	}
}
