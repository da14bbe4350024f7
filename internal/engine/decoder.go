package engine

// Decoder turns a file on disk into interleaved stereo f32 samples at the
// engine's sample rate. Decoding itself (format sniffing, resampling) is
// explicitly out of scope (spec.md Non-goals) — Decoder is the seam a host
// binding plugs a real decoder into, the same dependency-inversion idiom as
// client/interfaces.go's opusEncoder/opusDecoder.
type Decoder interface {
	// Decode returns interleaved stereo samples (len(interleaved) ==
	// frames*2) resampled to sampleRate if needed.
	Decode(path string, sampleRate int) (interleaved []float32, frames int, err error)
}

// SetDecoder installs the Decoder LoadClip uses.
func (e *Engine) SetDecoder(d Decoder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.decoder = d
}
