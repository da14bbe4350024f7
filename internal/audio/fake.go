package audio

import "sync"

// FakeDevice is a test double for Device, mirroring client/audio_test.go's
// mockPAStream: it never touches real hardware, and lets a test drive the
// render callback directly via Pump.
type FakeDevice struct {
	mu      sync.Mutex
	render  RenderFunc
	started bool
	stopped bool

	StartErr error
}

func (d *FakeDevice) Start(render RenderFunc) error {
	if d.StartErr != nil {
		return d.StartErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.render = render
	d.started = true
	return nil
}

func (d *FakeDevice) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	return nil
}

// Pump invokes the registered render callback as the real stream would
// once per period, for tests that need to drive the engine's callback
// without a real device.
func (d *FakeDevice) Pump(out []float32) {
	d.mu.Lock()
	render := d.render
	d.mu.Unlock()
	if render != nil {
		render(out)
	}
}

func (d *FakeDevice) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

func (d *FakeDevice) Stopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}
