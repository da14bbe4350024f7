// Package mixer implements the per-period render algorithm from spec.md
// §4.3: constant-power panning, nearest-sample clip lookup, loop-aware beat
// mapping, hard clamping, and peak metering — grounded line-for-line on
// original_source/daw_engine.c's audio_cb, and stylistically on
// client/audio.go's playbackLoop (additive per-source mixing into a shared
// buffer, one clamp pass at the end).
//
// Render allocates nothing: mixL/mixR are scratch accumulators owned and
// reused by the caller (internal/engine), sized once to the configured
// buffer_frames and zeroed+reused every period.
package mixer

import (
	"daw/internal/meter"
	"daw/internal/track"
	"daw/internal/transport"
)

// Input bundles the read-only state one Render call needs. All fields are
// read under the engine's lock before Render is called; Render itself does
// not lock anything.
type Input struct {
	Transport    *transport.Transport
	Tracks       []*track.Track // only active tracks need be included
	AnySolo      bool
	MasterVolume float32
	SampleRate   uint32
}

// Render writes nf = len(out)/2 interleaved stereo frames to out, mixing
// every audible track's clips at the transport's current position, then
// advances the transport by nf frames. mixL and mixR are scratch
// accumulators of length nf, provided by the caller and clobbered here.
// masterPeakL/masterPeakR are updated with the final clamped samples.
func Render(in Input, mixL, mixR []float32, out []float32, masterPeakL, masterPeakR *meter.Peak) {
	nf := len(mixL)
	for i := range mixL {
		mixL[i] = 0
		mixR[i] = 0
	}

	spb := in.Transport.SecondsPerBeat()
	spf := 1.0 / float64(in.SampleRate)
	bpf := spf / spb

	for _, tr := range in.Tracks {
		if !tr.Active || !tr.Audible(in.AnySolo) {
			continue
		}
		gl, gr := tr.PanGains()

		for _, c := range tr.Clips {
			if !c.Active {
				continue
			}
			for f := 0; f < nf; f++ {
				beatAt := in.Transport.BeatAt(f, bpf)
				idx, ok := c.SampleIndexAt(beatAt)
				if !ok {
					continue
				}
				sl := c.L[idx] * gl
				sr := c.R[idx] * gr
				mixL[f] += sl
				mixR[f] += sr
				tr.PeakL.Update(sl)
				tr.PeakR.Update(sr)
			}
		}
	}

	mv := in.MasterVolume
	for f := 0; f < nf; f++ {
		l := clamp(mixL[f]*mv, -1, 1)
		r := clamp(mixR[f]*mv, -1, 1)
		out[f*2+0] = l
		out[f*2+1] = r
		masterPeakL.Update(l)
		masterPeakR.Update(r)
	}

	in.Transport.Advance(nf, in.SampleRate)
}

// Silence zeroes out completely, used when the engine is not ready or the
// transport is not Playing/Recording. Per spec.md §4.3 step 1 this does not
// touch the playhead or any meter.
func Silence(out []float32) {
	for i := range out {
		out[i] = 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
