// Package daw is the public API of the realtime mixing engine: a single
// embeddable handle wrapping transport, track, and master control plus the
// audio-plane render loop (spec.md §§1,5).
//
// The package keeps exactly one live handle at a time, mirroring
// daw_engine.c's single global ctx_t — Init/Shutdown are the Go analogue of
// daw_init/daw_shutdown, guarded here by a package-level mutex instead of
// the C source's lock on a global struct.
package daw

import (
	"sync"

	"daw/internal/engine"
	"daw/internal/protocol"
)

// Result is the engine's numeric status code. OK means success; all other
// values implement error.
type Result = protocol.Result

// Error codes, re-exported from internal/protocol so callers never need to
// import it directly.
const (
	OK              = protocol.OK
	ErrNotInit      = protocol.ErrNotInit
	ErrAlreadyInit  = protocol.ErrAlreadyInit
	ErrAudioDevice  = protocol.ErrAudioDevice
	ErrInvalidTrack = protocol.ErrInvalidTrack
	ErrFileNotFound = protocol.ErrFileNotFound
	ErrOutOfMemory  = protocol.ErrOutOfMemory
	ErrInvalidParam = protocol.ErrInvalidParam
	ErrClipFull     = protocol.ErrClipFull
)

// Strerror returns a short human-readable description of r.
func Strerror(r Result) string { return protocol.Strerror(r) }

// TrackType identifies the kind of channel strip a track is.
type TrackType = protocol.TrackType

const (
	TrackAudio  = protocol.TrackAudio
	TrackMIDI   = protocol.TrackMIDI
	TrackBus    = protocol.TrackBus
	TrackMaster = protocol.TrackMaster
)

// TransportState is the transport's state-machine state.
type TransportState = protocol.TransportState

const (
	Stopped   = protocol.Stopped
	Playing   = protocol.Playing
	Paused    = protocol.Paused
	Recording = protocol.Recording
)

// Config configures Init. Zero-valued fields fall back to engine defaults
// (44100Hz / 24-bit / 512-frame buffer / 120 BPM).
type Config = protocol.Config

// StateSnapshot is the read-only view returned by GetState.
type StateSnapshot = protocol.StateSnapshot

// TrackInfo is the read-only snapshot returned by GetTrackInfo.
type TrackInfo = protocol.TrackInfo

// Decoder turns a file on disk into interleaved stereo f32 samples.
// Decoding formats is out of scope for this module — supply an
// implementation via SetDecoder before calling LoadClip.
type Decoder = engine.Decoder

var (
	mu     sync.Mutex
	handle *engine.Engine
)

// Init brings the engine up with the given config, opening a real
// playback device via portaudio. Returns ErrAlreadyInit if a handle is
// already live.
func Init(cfg Config) Result {
	mu.Lock()
	defer mu.Unlock()
	if handle != nil {
		return ErrAlreadyInit
	}
	e := engine.New()
	if res := e.Init(cfg); res != OK {
		return res
	}
	handle = e
	return OK
}

// Shutdown tears the engine down and releases the device.
func Shutdown() Result {
	mu.Lock()
	defer mu.Unlock()
	if handle == nil {
		return ErrNotInit
	}
	res := handle.Shutdown()
	handle = nil
	return res
}

// SetDecoder installs the Decoder LoadClip uses. Must be called after
// Init; has no effect before it (returns ErrNotInit).
func SetDecoder(d Decoder) Result {
	mu.Lock()
	e := handle
	mu.Unlock()
	if e == nil {
		return ErrNotInit
	}
	e.SetDecoder(d)
	return OK
}

// GetState returns a snapshot of transport, master, and track-count state.
func GetState() (StateSnapshot, Result) {
	mu.Lock()
	e := handle
	mu.Unlock()
	if e == nil {
		return StateSnapshot{}, ErrNotInit
	}
	return e.GetState()
}

func current() (*engine.Engine, Result) {
	mu.Lock()
	defer mu.Unlock()
	if handle == nil {
		return nil, ErrNotInit
	}
	return handle, OK
}
