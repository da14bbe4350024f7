package engine

import "daw/internal/protocol"

// Play starts or resumes playback from the current position.
func (e *Engine) Play() protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	e.transport.Play()
	return protocol.OK
}

// Record starts recording from the current position.
func (e *Engine) Record() protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	e.transport.Record()
	return protocol.OK
}

// StopTransport halts playback/recording and resets the playhead to zero.
func (e *Engine) StopTransport() protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	e.transport.Stop()
	return protocol.OK
}

// Pause pauses playback. A no-op when not Playing (in particular, pausing
// while Recording leaves the transport Recording — see DESIGN.md Open
// Question decision 4).
func (e *Engine) Pause() protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	e.transport.Pause()
	return protocol.OK
}

// Seek moves the playhead to beat without changing transport state.
func (e *Engine) Seek(beat float64) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	if !e.transport.Seek(beat) {
		return protocol.ErrInvalidParam
	}
	return protocol.OK
}

// SetBPM updates the tempo. It never rescales the playhead or any loaded
// clip's musical length (DESIGN.md Open Question decision 3).
func (e *Engine) SetBPM(bpm float64) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	if !e.transport.SetBPM(bpm) {
		return protocol.ErrInvalidParam
	}
	return protocol.OK
}

// SetLoop configures the loop region. Rejected (ErrInvalidParam) whenever
// start >= end, even when disabling the loop.
func (e *Engine) SetLoop(enabled bool, start, end float64) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	if !e.transport.SetLoop(enabled, start, end) {
		return protocol.ErrInvalidParam
	}
	return protocol.OK
}
