// Package engine implements the audio engine's control surface: lifecycle,
// the track registry, and the lock discipline serializing control-plane
// calls against the audio-plane render callback (spec.md §5).
//
// Engine plays the same role client/audio.go's AudioEngine plays for voice
// audio — one struct owning a device, guarded by a single mutex, with a
// render/read loop driven from outside — generalized from a fixed
// capture/playback pipeline to an arbitrary number of mixed tracks, and
// from client_audio's sync.Mutex + atomics split to a single coarse lock
// (see DESIGN.md Open Question decision 1: the audio-plane work per period
// is small and bounded, so one mutex held for the whole render call is
// simpler and safe, at the cost of blocking the control plane for that
// call's duration).
package engine

import (
	"log/slog"
	"sync"

	"daw/internal/audio"
	"daw/internal/meter"
	"daw/internal/protocol"
	"daw/internal/track"
	"daw/internal/transport"
)

// MaxTracks bounds the track registry, matching daw_engine.h's
// DAW_MAX_TRACKS fixed-size array.
const MaxTracks = 64

// Default config values applied by Init when the caller leaves a field
// zero, matching daw_engine.c's daw_init defaults.
const (
	DefaultSampleRate   = 44100
	DefaultBitDepth     = 24
	DefaultBufferFrames = 512
	DefaultBPM          = 120.0
)

// Engine is the audio engine singleton's state. Exported methods lock mu for
// their full duration, as does the render callback — except LoadClip, which
// releases it while decoding. There is exactly one lock in this design,
// guarding both control-plane mutation and the audio-plane mix (see
// package doc).
type Engine struct {
	mu    sync.Mutex
	ready bool

	newDevice func(audio.Config) audio.Device
	device    audio.Device
	decoder   Decoder

	transport *transport.Transport
	tracks    [MaxTracks]*track.Track
	nextID    uint32
	anySolo   bool

	masterVolume             float32
	masterPeakL, masterPeakR meter.Peak

	sampleRate   uint32
	bitDepth     uint32
	bufferFrames uint32

	// Scratch buffers, allocated once in Init and reused every render call
	// so the audio thread never allocates (spec.md §5 Property 1 implies
	// a deterministic, allocation-free hot path).
	mixL, mixR []float32
	trackBuf   []*track.Track
}

// New returns an Engine that opens a real portaudio output device on Init.
func New() *Engine {
	return &Engine{
		newDevice:    func(cfg audio.Config) audio.Device { return audio.NewPADevice(cfg) },
		masterVolume: 1.0,
	}
}

// NewWithDevice returns an Engine wired to a fixed device and decoder,
// ignoring whatever audio.Config Init would otherwise build — used by
// tests to substitute audio.FakeDevice and a fake Decoder for real
// hardware and file I/O.
func NewWithDevice(d audio.Device, dec Decoder) *Engine {
	return &Engine{
		newDevice:    func(audio.Config) audio.Device { return d },
		decoder:      dec,
		masterVolume: 1.0,
	}
}

// Init brings the engine up: validates cfg (applying defaults for zero
// fields), opens the output device, and starts the transport at Stopped.
// Returns ErrAlreadyInit if the engine is already running.
func (e *Engine) Init(cfg protocol.Config) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ready {
		return protocol.ErrAlreadyInit
	}

	sr := cfg.SampleRate
	if sr == 0 {
		sr = DefaultSampleRate
	}
	bd := cfg.BitDepth
	if bd == 0 {
		bd = DefaultBitDepth
	}
	bf := cfg.BufferFrames
	if bf == 0 {
		bf = DefaultBufferFrames
	}
	bpm := cfg.BPM
	if bpm == 0 {
		bpm = DefaultBPM
	}
	if bpm <= transport.MinBPM || bpm > transport.MaxBPM {
		return protocol.ErrInvalidParam
	}

	dev := e.newDevice(audio.Config{SampleRate: sr, BufferFrames: bf, OutputDevice: -1})
	if err := dev.Start(e.render); err != nil {
		slog.Error("audio device failed to start", "error", err)
		return protocol.ErrAudioDevice
	}

	e.device = dev
	e.transport = transport.New(bpm)
	e.sampleRate = sr
	e.bitDepth = bd
	e.bufferFrames = bf
	e.mixL = make([]float32, bf)
	e.mixR = make([]float32, bf)
	e.trackBuf = make([]*track.Track, 0, MaxTracks)
	e.masterVolume = 1.0
	e.masterPeakL = meter.Peak{}
	e.masterPeakR = meter.Peak{}
	e.nextID = 0
	e.anySolo = false
	for i := range e.tracks {
		e.tracks[i] = nil
	}
	e.ready = true

	slog.Info("engine initialized", "sample_rate", sr, "bit_depth", bd, "buffer_frames", bf, "bpm", bpm)
	return protocol.OK
}

// Shutdown stops the device and tears the engine down. Returns ErrNotInit
// if the engine was never (or no longer) initialized.
func (e *Engine) Shutdown() protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return protocol.ErrNotInit
	}
	if err := e.device.Stop(); err != nil {
		slog.Error("audio device failed to stop cleanly", "error", err)
	}
	e.ready = false
	e.device = nil
	e.transport = nil
	slog.Info("engine shut down")
	return protocol.OK
}

// GetState returns a snapshot of transport, master, and track-count state.
func (e *Engine) GetState() (protocol.StateSnapshot, protocol.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		return protocol.StateSnapshot{}, protocol.ErrNotInit
	}
	bar, beat := e.transport.BarBeat()
	loopOn, loopStart, loopEnd := e.transport.Loop()
	return protocol.StateSnapshot{
		Transport:       protocol.TransportState(e.transport.State()),
		BPM:             e.transport.BPM(),
		SampleRate:      e.sampleRate,
		BitDepth:        e.bitDepth,
		PositionBeats:   e.transport.PositionBeats(),
		PositionSeconds: e.transport.PositionSeconds(),
		Bar:             bar,
		Beat:            beat,
		MasterVolume:    e.masterVolume,
		MasterPeakL:     e.masterPeakL.Value(),
		MasterPeakR:     e.masterPeakR.Value(),
		TrackCount:      e.countActiveLocked(),
		LoopEnabled:     loopOn,
		LoopStartBeat:   loopStart,
		LoopEndBeat:     loopEnd,
	}, protocol.OK
}

func (e *Engine) countActiveLocked() uint32 {
	var n uint32
	for _, t := range e.tracks {
		if t != nil {
			n++
		}
	}
	return n
}

func (e *Engine) findTrackLocked(id uint32) (*track.Track, bool) {
	for _, t := range e.tracks {
		if t != nil && t.ID == id {
			return t, true
		}
	}
	return nil, false
}
