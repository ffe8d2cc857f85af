package breath

import (
	"image/color"
	"sync"
	"time"
)

// Options contains runtime options for the Driver.
type Options struct {
	TickInterval time.Duration
}

// Frame is a single rendered sample of the breathing cycle.
type Frame struct {
	Phase     Phase
	Progress  float64
	Scale     float64
	Colour    color.NRGBA
	Completed int
	At        time.Time
}

// Driver advances a Cycle in real time and fans frames out to subscribers.
// It measures the actual wall-clock delta between ticks, so a stalled or
// suspended process lands on the correct phase when ticking resumes.
type Driver struct {
	mu          sync.Mutex
	cycle       *Cycle
	options     Options
	subscribers []chan Frame
	stopCh      chan struct{}
	running     bool
	paused      bool
	lastTick    time.Time
}

// NewDriver creates a Driver that owns the provided cycle.
func NewDriver(cycle *Cycle, options Options) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second / 60
	}
	return &Driver{
		cycle:   cycle,
		options: options,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel. Frames are delivered with
// non-blocking sends; a slow subscriber misses frames instead of stalling
// the loop.
func (driver *Driver) Subscribe(buffer int) <-chan Frame {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Frame, buffer)
	driver.mu.Lock()
	driver.subscribers = append(driver.subscribers, ch)
	driver.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (driver *Driver) Start() {
	driver.mu.Lock()
	if driver.running {
		driver.mu.Unlock()
		return
	}
	driver.running = true
	driver.paused = false
	driver.lastTick = time.Now()
	driver.mu.Unlock()

	go driver.run()
}

// Stop terminates the ticking loop and closes subscriber channels.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	if !driver.running {
		driver.mu.Unlock()
		return
	}
	close(driver.stopCh)
	driver.running = false
	subscribers := driver.subscribers
	driver.subscribers = nil
	driver.mu.Unlock()

	for _, ch := range subscribers {
		close(ch)
	}
}

// Pause freezes the cycle. Wall time spent paused is discarded, not fed to
// the cycle on resume.
func (driver *Driver) Pause() {
	driver.mu.Lock()
	driver.paused = true
	driver.mu.Unlock()
}

// Resume unfreezes the cycle.
func (driver *Driver) Resume() {
	driver.mu.Lock()
	driver.paused = false
	driver.lastTick = time.Now()
	driver.mu.Unlock()
}

// Paused reports whether the driver is currently frozen.
func (driver *Driver) Paused() bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.paused
}

// Snapshot returns the current frame without advancing the cycle.
func (driver *Driver) Snapshot() Frame {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.frameLocked(time.Now())
}

func (driver *Driver) run() {
	ticker := time.NewTicker(driver.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-driver.stopCh:
			return
		case tickTime := <-ticker.C:
			driver.tick(tickTime)
		}
	}
}

func (driver *Driver) tick(tickTime time.Time) {
	driver.mu.Lock()
	if !driver.running || driver.paused {
		driver.lastTick = tickTime
		driver.mu.Unlock()
		return
	}

	delta := tickTime.Sub(driver.lastTick)
	driver.lastTick = tickTime
	driver.cycle.Advance(delta)
	frame := driver.frameLocked(tickTime)
	driver.emitLocked(frame)
	driver.mu.Unlock()
}

func (driver *Driver) frameLocked(at time.Time) Frame {
	return Frame{
		Phase:     driver.cycle.Phase(),
		Progress:  driver.cycle.Progress(),
		Scale:     driver.cycle.Scale(),
		Colour:    driver.cycle.Colour(),
		Completed: driver.cycle.Completed(),
		At:        at,
	}
}

func (driver *Driver) emitLocked(frame Frame) {
	for _, ch := range driver.subscribers {
		select {
		case ch <- frame:
		default:
		}
	}
}
