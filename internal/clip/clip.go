// Package clip implements the immutable per-clip sample storage described in
// spec.md §3: a pair of owned, deinterleaved f32 sample buffers plus the
// clip's placement on the beat timeline.
package clip

// Clip is an immutable audio region positioned on a track's beat timeline.
// Once constructed a Clip's sample buffers are never mutated — the audio
// thread reads them without synchronization, relying on that immutability.
type Clip struct {
	L, R      []float32 // deinterleaved samples, equal length
	StartBeat float64
	LenBeats  float64
	Active    bool
}

// New builds a Clip from deinterleaved left/right sample slices. The caller
// owns l and r and must not mutate them afterward; New does not copy them,
// matching the C source's transfer of ownership of the malloc'd buffers into
// the clip struct.
func New(l, r []float32, startBeat, lenBeats float64) *Clip {
	return &Clip{
		L:         l,
		R:         r,
		StartBeat: startBeat,
		LenBeats:  lenBeats,
		Active:    true,
	}
}

// Frames returns the clip's sample count (len(L), which equals len(R)).
func (c *Clip) Frames() int {
	return len(c.L)
}

// End returns the beat at which the clip ends (StartBeat + LenBeats).
func (c *Clip) End() float64 {
	return c.StartBeat + c.LenBeats
}

// SampleIndexAt maps a timeline beat position to a sample index using
// nearest-prior-sample lookup (no interpolation, per spec.md §4.3). ok is
// false if beatAt falls outside [StartBeat, End()) or the computed index is
// out of bounds.
func (c *Clip) SampleIndexAt(beatAt float64) (idx int, ok bool) {
	if beatAt < c.StartBeat || beatAt >= c.End() {
		return 0, false
	}
	offset := (beatAt - c.StartBeat) / c.LenBeats // in [0,1)
	fi := int(offset * float64(len(c.L)))
	if fi >= len(c.L) {
		return 0, false
	}
	return fi, true
}

// LenBeatsForFrames computes a clip's musical length from its recorded
// sample length, the engine's sample rate, and the BPM in effect at load
// time. This freezes the clip's beat-length at load — a later BPM change
// does not rescale it (spec.md §4.2, DESIGN.md decision 3).
func LenBeatsForFrames(frames int, sampleRate uint32, bpm float64) float64 {
	return float64(frames) / (float64(sampleRate) * 60.0 / bpm)
}
