package engine

import (
	"daw/internal/protocol"
)

// SetMasterVolume validates v is within [0,2] and applies it. Unlike track
// volume/pan, which clamp (spec.md §4.2), master volume is validated and
// rejected out of range, matching daw_engine.c's daw_set_master_volume.
func (e *Engine) SetMasterVolume(v float32) protocol.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return protocol.ErrNotInit
	}
	if v < 0 || v > 2 {
		return protocol.ErrInvalidParam
	}
	e.masterVolume = v
	return protocol.OK
}

// MasterVolume returns the current master volume.
func (e *Engine) MasterVolume() (float32, protocol.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return 0, protocol.ErrNotInit
	}
	return e.masterVolume, protocol.OK
}

// GetMasterPeaks returns the current master L/R peak meter readings.
func (e *Engine) GetMasterPeaks() (l, r float32, res protocol.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return 0, 0, protocol.ErrNotInit
	}
	return e.masterPeakL.Value(), e.masterPeakR.Value(), protocol.OK
}
