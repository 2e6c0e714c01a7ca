package two

import (
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/two/host"
)

// Driver is the frame loop shared by a set of surfaces.
//
// A Driver is Stopped until Start (or a surface's Play) is called. While
// Running, each tick runs the update callback with the frame counter,
// renders every playing surface, advances the counter and asks the
// scheduler for the next tick. Stop takes effect at the next tick
// boundary; a tick already in progress completes.
//
// Callbacks are not recovered: a panic in one propagates out of Tick.
type Driver struct {
	mu       sync.Mutex
	sched    host.Scheduler
	ticker   *host.Ticker
	opts     driverOptions
	surfaces []*Surface
	frame    int
	running  bool
	disposed bool
	onUpdate func(frame int)
}

// NewDriver creates a stopped driver. Without WithScheduler it starts its
// own host.Ticker on the first Start.
func NewDriver(opts ...DriverOption) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	d.sched = d.opts.scheduler
	return d
}

// scheduler returns the scheduler, starting the owned ticker if needed.
// Must be called with d.mu held.
func (d *Driver) scheduler() host.Scheduler {
	if d.sched == nil {
		d.ticker = host.NewTicker(d.opts.interval)
		d.sched = d.ticker
	}
	return d.sched
}

// Start moves the driver to Running and requests the first tick.
// Starting a running or disposed driver does nothing.
func (d *Driver) Start() {
	d.mu.Lock()
	if d.running || d.disposed {
		d.mu.Unlock()
		return
	}
	d.running = true
	s := d.scheduler()
	d.mu.Unlock()

	Logger().Debug("two: driver started")
	s.RequestFrame(d.Tick)
}

// Stop moves the driver to Stopped. No further tick is requested.
func (d *Driver) Stop() {
	d.mu.Lock()
	was := d.running
	d.running = false
	d.mu.Unlock()

	if was {
		Logger().Debug("two: driver stopped")
	}
}

// Running reports whether the driver is Running.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Frame returns the number of ticks run so far.
func (d *Driver) Frame() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// OnUpdate sets the callback run at the start of every tick, before any
// surface renders. Pass nil to remove it.
func (d *Driver) OnUpdate(fn func(frame int)) {
	d.mu.Lock()
	d.onUpdate = fn
	d.mu.Unlock()
}

// Surfaces returns the registered surfaces in creation order.
func (d *Driver) Surfaces() []*Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.surfaces)
}

// Tick runs one frame. Schedulers call it; hosts with their own loop and
// tests may call it directly. Render errors are logged and do not stop
// the loop.
func (d *Driver) Tick() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	frame := d.frame
	update := d.onUpdate
	surfaces := slices.Clone(d.surfaces)
	d.mu.Unlock()

	if update != nil {
		update(frame)
	}
	for _, s := range surfaces {
		if err := s.Render(frame); err != nil && !errors.Is(err, ErrDisposed) {
			Logger().Warn("two: render failed", "frame", frame, "err", err)
		}
	}

	d.mu.Lock()
	d.frame++
	var next host.Scheduler
	if d.running && !d.disposed {
		next = d.scheduler()
	}
	d.mu.Unlock()

	if next != nil {
		next.RequestFrame(d.Tick)
	}
}

func (d *Driver) register(s *Surface) {
	d.mu.Lock()
	d.surfaces = append(d.surfaces, s)
	d.mu.Unlock()
}

func (d *Driver) unregister(s *Surface) {
	d.mu.Lock()
	if i := slices.Index(d.surfaces, s); i >= 0 {
		d.surfaces = slices.Delete(d.surfaces, i, i+1)
	}
	d.mu.Unlock()
}

// Dispose stops the driver, disposes every registered surface and stops
// the driver's own ticker. It must not be called from a callback running
// on that ticker.
func (d *Driver) Dispose() error {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	surfaces := slices.Clone(d.surfaces)
	ticker := d.ticker
	d.mu.Unlock()

	var errs []error
	for _, s := range surfaces {
		if err := s.Dispose(); err != nil {
			errs = append(errs, err)
		}
	}

	d.mu.Lock()
	d.disposed = true
	d.surfaces = nil
	d.mu.Unlock()

	if ticker != nil {
		ticker.Close()
	}
	return errors.Join(errs...)
}
