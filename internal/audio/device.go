// Package audio binds the engine's render loop to a physical playback
// device. Grounded on client/audio.go's Start/Stop sequencing
// (github.com/gordonklaus/portaudio), adapted from that file's blocking
// Read/Write stream mode to portaudio's callback stream mode, which matches
// the callback contract spec.md §6 describes: "(device_handle, output*,
// input*, frame_count) → void".
package audio

// RenderFunc is invoked by a Device once per period to fill out with
// exactly len(out)/2 interleaved stereo frames. Implementations (i.e.
// internal/engine) must not block indefinitely and must not allocate.
type RenderFunc func(out []float32)

// Device is the audio engine's view of a physical playback device. It is an
// interface — not a direct dependency on portaudio — so internal/engine and
// its tests depend on a seam instead of real hardware, the same
// dependency-inversion idiom as client/audio.go's paStream interface and
// client/audio_test.go's mockPAStream fake.
type Device interface {
	// Start opens and starts the device, invoking render once per period
	// until Stop is called. Returns an error if the device cannot be
	// opened or started.
	Start(render RenderFunc) error
	// Stop halts and releases the device. Safe to call even if Start
	// failed or was never called.
	Stop() error
}

// Config describes the stream parameters a Device should open with.
type Config struct {
	SampleRate   uint32
	BufferFrames uint32
	OutputDevice int // -1 selects the system default
}
