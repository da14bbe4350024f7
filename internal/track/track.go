// Package track implements the per-track mixing strip described in
// spec.md §3/§4.2: volume/pan/mute/solo/armed state, a bounded clip list,
// and the pan-gain/clamp helpers the mixer needs per track.
package track

import (
	"math"
	"strconv"

	"daw/internal/clip"
	"daw/internal/meter"
	"daw/internal/protocol"
)

// MaxClips is the bounded capacity of a track's clip list (spec.md §3).
const MaxClips = 128

// MaxNameLen is the maximum track name length, excluding the NUL the
// original C struct reserved a byte for.
const MaxNameLen = 63

// Track is one channel strip: mixing parameters plus its clips.
//
// Track is not safe for concurrent use; internal/engine serializes access
// to it behind the engine-wide lock, same as the C source's single mutex
// over G.tracks[].
type Track struct {
	Active bool
	ID     uint32
	Type   protocol.TrackType
	Name   string

	Volume float32
	Pan    float32
	Muted  bool
	Soloed bool
	Armed  bool

	PeakL, PeakR meter.Peak

	Clips []*clip.Clip
}

// New returns an initialized, active Track with default mixing parameters
// (volume=1, pan=0, all flags false) and the auto-generated name
// "{TypeName} {position}" from spec.md §4.2.
func New(id uint32, typ protocol.TrackType, position int) *Track {
	return &Track{
		Active: true,
		ID:     id,
		Type:   typ,
		Name:   autoName(typ, position),
		Volume: 1.0,
		Pan:    0.0,
	}
}

func autoName(typ protocol.TrackType, position int) string {
	// Mirrors daw_track_create's snprintf(t->name, 64, "%s %u", tn[type], n+1).
	return typ.String() + " " + strconv.Itoa(position)
}

// SetName truncates name to MaxNameLen bytes, matching the C
// strncpy(t->name, name, 63) + implicit NUL behavior.
func (t *Track) SetName(name string) {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	t.Name = name
}

// SetVolume clamps v to [0,2].
func (t *Track) SetVolume(v float32) {
	t.Volume = Clamp(v, 0, 2)
}

// SetPan clamps p to [-1,1].
func (t *Track) SetPan(p float32) {
	t.Pan = Clamp(p, -1, 1)
}

// Clamp restricts v to [lo,hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PanGains returns the constant-power left/right gains for this track's pan
// and volume: a = (pan+1)*pi/4, gL = cos(a)*volume, gR = sin(a)*volume.
func (t *Track) PanGains() (gl, gr float32) {
	a := float64(t.Pan+1) * (math.Pi / 4.0)
	gl = float32(math.Cos(a)) * t.Volume
	gr = float32(math.Sin(a)) * t.Volume
	return
}

// AddClip appends a clip if the track has capacity. Returns false (caller
// should surface ClipFull) if the track already holds MaxClips clips.
func (t *Track) AddClip(c *clip.Clip) bool {
	if len(t.Clips) >= MaxClips {
		return false
	}
	t.Clips = append(t.Clips, c)
	return true
}

// Info returns the public snapshot of this track's state.
func (t *Track) Info() protocol.TrackInfo {
	return protocol.TrackInfo{
		ID:        t.ID,
		Type:      t.Type,
		Name:      t.Name,
		Volume:    t.Volume,
		Pan:       t.Pan,
		Muted:     t.Muted,
		Soloed:    t.Soloed,
		Armed:     t.Armed,
		PeakL:     t.PeakL.Value(),
		PeakR:     t.PeakR.Value(),
		ClipCount: uint32(len(t.Clips)),
	}
}

// Audible reports whether this track should contribute to the mix given the
// engine-wide any_solo flag: muted tracks never contribute (mute beats
// solo); when any track is soloed, only soloed tracks contribute.
func (t *Track) Audible(anySolo bool) bool {
	if t.Muted {
		return false
	}
	if anySolo && !t.Soloed {
		return false
	}
	return true
}
