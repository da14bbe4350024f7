package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PADevice plays back through the system's default (or selected) output
// device using portaudio's callback stream mode. Where client/audio.go
// opens a stream and drives it from a goroutine doing blocking
// Read/Write calls, the audio engine's render contract (spec.md §6) is
// itself a callback, so PADevice hands RenderFunc straight to
// portaudio.OpenStream as the stream's callback instead of spinning up a
// loop goroutine of its own.
type PADevice struct {
	cfg    Config
	stream *portaudio.Stream
}

// NewPADevice constructs a device bound to cfg. portaudio.Initialize must
// already have been called by the process (mirrors client/app.go's
// startup, which calls portaudio.Initialize once before any AudioEngine
// is started, and portaudio.Terminate on shutdown).
func NewPADevice(cfg Config) *PADevice {
	return &PADevice{cfg: cfg}
}

// Start opens and starts a stereo output stream, resolving the configured
// output device (or the system default), and wires render as the stream's
// callback.
func (d *PADevice) Start(render RenderFunc) error {
	devices, err := portaudio.Devices()
	if err != nil {
		return fmt.Errorf("audio: enumerate devices: %w", err)
	}
	outDev, err := resolveDevice(devices, d.cfg.OutputDevice, portaudio.DefaultOutputDevice)
	if err != nil {
		return fmt.Errorf("audio: resolve output device: %w", err)
	}

	params := portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   outDev,
			Channels: 2,
			Latency:  outDev.DefaultLowOutputLatency,
		},
		SampleRate:      float64(d.cfg.SampleRate),
		FramesPerBuffer: int(d.cfg.BufferFrames),
	}

	stream, err := portaudio.OpenStream(params, func(out []float32) {
		render(out)
	})
	if err != nil {
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("audio: start stream: %w", err)
	}
	d.stream = stream
	return nil
}

// Stop halts and closes the stream. Safe to call when Start was never
// called or already failed.
func (d *PADevice) Stop() error {
	if d.stream == nil {
		return nil
	}
	stream := d.stream
	d.stream = nil
	if err := stream.Stop(); err != nil {
		stream.Close()
		return fmt.Errorf("audio: stop stream: %w", err)
	}
	return stream.Close()
}

// resolveDevice returns the device at idx if valid, otherwise falls back,
// adapted verbatim from client/audio.go's resolveDevice.
func resolveDevice(devices []*portaudio.DeviceInfo, idx int, fallback func() (*portaudio.DeviceInfo, error)) (*portaudio.DeviceInfo, error) {
	if idx >= 0 && idx < len(devices) {
		return devices[idx], nil
	}
	return fallback()
}
