// Package protocol holds the plain-data shapes shared across the engine's
// internal packages and its public API: the track type enum, the transport
// state enum, and the config/state/track-info snapshots. Keeping these here
// (rather than in internal/engine) mirrors bken/server/internal/protocol,
// which plays the same role between internal/core and the ws/api layers.
package protocol

// TrackType identifies the kind of channel strip a track is.
type TrackType int32

const (
	TrackAudio TrackType = iota
	TrackMIDI
	TrackBus
	TrackMaster
)

// String returns the display name used for auto-generated track names
// ("Audio 1", "Bus 2", ...).
func (t TrackType) String() string {
	switch t {
	case TrackAudio:
		return "Audio"
	case TrackMIDI:
		return "MIDI"
	case TrackBus:
		return "Bus"
	case TrackMaster:
		return "Master"
	default:
		return "Audio"
	}
}

// TransportState is the transport's state-machine state.
type TransportState int32

const (
	Stopped TransportState = iota
	Playing
	Paused
	Recording
)

func (s TransportState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Recording:
		return "Recording"
	default:
		return "Unknown"
	}
}

// Config configures Init. Zero-valued fields fall back to engine defaults
// (see the internal/engine Default* constants).
type Config struct {
	SampleRate   uint32
	BitDepth     uint32 // informational only — render is always f32
	BufferFrames uint32
	BPM          float64
}

// StateSnapshot is the read-only view returned by GetState. Bar/Beat assume
// 4/4 time, matching spec.md's fixed time signature.
type StateSnapshot struct {
	Transport       TransportState
	BPM             float64
	SampleRate      uint32
	BitDepth        uint32
	PositionBeats   float64
	PositionSeconds float64
	Bar             uint32
	Beat            uint32
	MasterVolume    float32
	MasterPeakL     float32
	MasterPeakR     float32
	TrackCount      uint32
	LoopEnabled     bool
	LoopStartBeat   float64
	LoopEndBeat     float64
}

// TrackInfo is the read-only snapshot returned by TrackInfo.
type TrackInfo struct {
	ID        uint32
	Type      TrackType
	Name      string
	Volume    float32
	Pan       float32
	Muted     bool
	Soloed    bool
	Armed     bool
	PeakL     float32
	PeakR     float32
	ClipCount uint32
}

// Result is the engine's numeric error code, kept bit-for-bit compatible
// with original_source/daw_engine.h's daw_result_t so a future FFI host
// binding stays possible. Result implements error so callers can use it
// directly, or compare with errors.Is against the OK/Err* sentinels below.
type Result int32

// Error implements the error interface.
func (r Result) Error() string {
	return Strerror(r)
}

// Error codes, matching original_source/daw_engine.h exactly.
const (
	OK               Result = 0
	ErrNotInit       Result = -1
	ErrAlreadyInit   Result = -2
	ErrAudioDevice   Result = -3
	ErrInvalidTrack  Result = -4
	ErrFileNotFound  Result = -5
	ErrOutOfMemory   Result = -6
	ErrInvalidParam  Result = -7
	ErrClipFull      Result = -8
)

// Strerror returns a short human-readable description of a Result code,
// mirroring original_source/daw_engine.c's daw_strerror.
func Strerror(r Result) string {
	switch r {
	case OK:
		return "OK"
	case ErrNotInit:
		return "engine not initialized"
	case ErrAlreadyInit:
		return "engine already initialized"
	case ErrAudioDevice:
		return "audio device failure"
	case ErrInvalidTrack:
		return "invalid track"
	case ErrFileNotFound:
		return "file not found"
	case ErrOutOfMemory:
		return "out of memory"
	case ErrInvalidParam:
		return "invalid parameter"
	case ErrClipFull:
		return "maximum clip count reached"
	default:
		return "unknown error"
	}
}

// AsError returns nil for OK and r otherwise, letting call sites write
// `return protocol.AsError(protocol.ErrInvalidParam)` style returns that
// read naturally as Go errors.
func AsError(r Result) error {
	if r == OK {
		return nil
	}
	return r
}
