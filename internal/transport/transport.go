// Package transport implements the musical playhead: BPM, position (beats
// and derived seconds), loop region, and the Stopped/Playing/Paused/
// Recording state machine described in spec.md §4.1.
//
// Transport is not safe for concurrent use; internal/engine serializes all
// access to it behind its own mutex, the same way daw_engine.c's G.lock
// guards the equivalent C fields.
package transport

// MinBPM and MaxBPM bound SetBPM's accepted range: (0, 999].
const (
	MinBPM = 0.0 // exclusive
	MaxBPM = 999.0
)

// State mirrors protocol.TransportState's values (same order) so callers of
// this package don't need to import internal/protocol just to spell out a
// state constant in tests.
type State = int32

const (
	Stopped State = iota
	Playing
	Paused
	Recording
)

// Transport holds the playhead and loop configuration.
type Transport struct {
	state State
	bpm   float64

	posBeats float64
	posSecs  float64

	loopOn    bool
	loopStart float64
	loopEnd   float64
}

// New returns a Transport stopped at the origin with the given BPM. bpm must
// already be validated by the caller (see SetBPM for the validated setter).
func New(bpm float64) *Transport {
	return &Transport{state: Stopped, bpm: bpm}
}

// State returns the current transport state.
func (t *Transport) State() State { return t.state }

// BPM returns the current tempo.
func (t *Transport) BPM() float64 { return t.bpm }

// PositionBeats returns the current playhead position in beats.
func (t *Transport) PositionBeats() float64 { return t.posBeats }

// PositionSeconds returns the current playhead position in seconds.
func (t *Transport) PositionSeconds() float64 { return t.posSecs }

// Loop returns the loop configuration.
func (t *Transport) Loop() (enabled bool, start, end float64) {
	return t.loopOn, t.loopStart, t.loopEnd
}

// SecondsPerBeat returns 60/BPM, the conversion factor used throughout the
// mixer's beat↔time math.
func (t *Transport) SecondsPerBeat() float64 { return 60.0 / t.bpm }

// Play transitions to Playing from any state without resetting the
// playhead. Safe from any state per spec.md's transition table.
func (t *Transport) Play() { t.state = Playing }

// Record transitions to Recording from any state without resetting the
// playhead.
func (t *Transport) Record() { t.state = Recording }

// Stop transitions to Stopped and resets the playhead to zero. Idempotent.
func (t *Transport) Stop() {
	t.state = Stopped
	t.posBeats = 0
	t.posSecs = 0
}

// Pause transitions Playing->Paused. From any other state (including
// Recording) it is a no-op, not an error — Recording->Paused is
// deliberately unsupported; see DESIGN.md Open Question decision 4.
func (t *Transport) Pause() {
	if t.state == Playing {
		t.state = Paused
	}
}

// Seek sets the playhead to the given beat without changing state. Returns
// false if beat is negative (caller should surface InvalidParam).
func (t *Transport) Seek(beat float64) bool {
	if beat < 0 {
		return false
	}
	t.posBeats = beat
	t.posSecs = beat * t.SecondsPerBeat()
	return true
}

// SetBPM updates the tempo. Returns false if bpm is out of (0, 999].
// Musical position (posBeats) is deliberately left untouched — a tempo
// change does not rescale where the playhead sits, or any clip already
// loaded (see DESIGN.md Open Question decision 3). posSecs is not
// recomputed either; it drifts until the next Advance re-derives it from
// the new BPM, matching source behavior.
func (t *Transport) SetBPM(bpm float64) bool {
	if bpm <= MinBPM || bpm > MaxBPM {
		return false
	}
	t.bpm = bpm
	return true
}

// SetLoop configures the loop region. Returns false if start >= end,
// regardless of whether enabled is true — the source rejects this even
// when disabling the loop, and this implementation replicates that.
func (t *Transport) SetLoop(enabled bool, start, end float64) bool {
	if start >= end {
		return false
	}
	t.loopOn = enabled
	t.loopStart = start
	t.loopEnd = end
	return true
}

// Advance moves the playhead forward by nf frames at the given sample rate,
// applying the loop wrap if configured. This is the end-of-period advance
// from spec.md §4.3 step 6 — distinct from the per-frame loop check the
// mixer performs while rendering (see DESIGN.md decision 5: the two checks
// are intentionally not unified).
func (t *Transport) Advance(nf int, sampleRate uint32) {
	spf := 1.0 / float64(sampleRate)
	spb := t.SecondsPerBeat()
	deltaSecs := float64(nf) * spf

	t.posBeats += deltaSecs / spb
	t.posSecs = t.posBeats * spb

	if t.loopOn && t.posBeats >= t.loopEnd {
		t.posBeats = t.loopStart
		t.posSecs = t.loopStart * spb
	}
}

// BeatAt returns the beat position of frame f within a period starting at
// the current playhead, applying the mixer's per-frame loop wrap. bpf is
// beats-per-frame (spf/spb), precomputed once per period by the caller.
func (t *Transport) BeatAt(f int, bpf float64) float64 {
	beatAt := t.posBeats + float64(f)*bpf
	if t.loopOn && beatAt >= t.loopEnd {
		span := t.loopEnd - t.loopStart
		beatAt = t.loopStart + mod(beatAt-t.loopStart, span)
	}
	return beatAt
}

func mod(a, b float64) float64 {
	m := a - float64(int64(a/b))*b
	if m < 0 {
		m += b
	}
	return m
}

// BarBeat returns the 1-indexed bar and beat (4/4 time) for the current
// position, as used by StateSnapshot.
func (t *Transport) BarBeat() (bar, beat uint32) {
	bar = uint32(t.posBeats/4.0) + 1
	b := t.posBeats - float64(int64(t.posBeats/4.0))*4.0
	beat = uint32(b) + 1
	return
}
