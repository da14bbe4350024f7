package engine

import (
	"daw/internal/mixer"
	"daw/internal/transport"
)

// render is handed to the device as its audio.RenderFunc. It holds mu for
// its full duration: the single coarse lock this package uses also
// serializes the audio thread against every control-plane call (DESIGN.md
// Open Question decision 1).
func (e *Engine) render(out []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready {
		mixer.Silence(out)
		return
	}

	state := e.transport.State()
	if state != transport.Playing && state != transport.Recording {
		mixer.Silence(out)
		return
	}

	nf := len(out) / 2
	mixL, mixR := e.mixL, e.mixR
	if nf > len(mixL) {
		// Should not happen in practice — the device is opened with a
		// fixed FramesPerBuffer equal to bufferFrames — but render must
		// never panic on a larger-than-expected period.
		mixL = make([]float32, nf)
		mixR = make([]float32, nf)
	}

	e.trackBuf = e.trackBuf[:0]
	for _, t := range e.tracks {
		if t != nil {
			e.trackBuf = append(e.trackBuf, t)
		}
	}

	mixer.Render(mixer.Input{
		Transport:    e.transport,
		Tracks:       e.trackBuf,
		AnySolo:      e.anySolo,
		MasterVolume: e.masterVolume,
		SampleRate:   e.sampleRate,
	}, mixL[:nf], mixR[:nf], out, &e.masterPeakL, &e.masterPeakR)
}
