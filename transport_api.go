package daw

// Play starts or resumes playback from the current position.
func Play() Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.Play()
}

// Record starts recording from the current position.
func Record() Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.Record()
}

// Stop halts playback/recording and resets the playhead to zero.
func Stop() Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.StopTransport()
}

// Pause pauses playback. A no-op when not Playing — in particular,
// pausing while Recording leaves the transport Recording.
func Pause() Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.Pause()
}

// Seek moves the playhead to beat without changing transport state.
func Seek(beat float64) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.Seek(beat)
}

// SetBPM updates the tempo. It never rescales the playhead or any loaded
// clip's musical length.
func SetBPM(bpm float64) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetBPM(bpm)
}

// SetLoop configures the loop region. Rejected whenever start >= end, even
// when disabling the loop.
func SetLoop(enabled bool, startBeat, endBeat float64) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetLoop(enabled, startBeat, endBeat)
}
