package daw

// TrackCreate allocates a new track of the given type. Returns
// ErrOutOfMemory once 64 tracks are active.
func TrackCreate(typ TrackType) (uint32, Result) {
	e, res := current()
	if res != OK {
		return 0, res
	}
	return e.TrackCreate(typ)
}

// TrackDestroy frees a track's registry slot. The id is never reused.
func TrackDestroy(id uint32) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.TrackDestroy(id)
}

// GetTrackInfo returns a snapshot of a track's mixing parameters and
// meters.
func GetTrackInfo(id uint32) (TrackInfo, Result) {
	e, res := current()
	if res != OK {
		return TrackInfo{}, res
	}
	return e.TrackInfo(id)
}

// SetTrackName renames a track, truncating to 63 bytes.
func SetTrackName(id uint32, name string) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackName(id, name)
}

// SetTrackVolume clamps and applies a track's volume ([0,2]).
func SetTrackVolume(id uint32, v float32) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackVolume(id, v)
}

// SetTrackPan clamps and applies a track's pan ([-1,1]).
func SetTrackPan(id uint32, p float32) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackPan(id, p)
}

// SetTrackMute sets a track's mute flag. Mute always wins over solo.
func SetTrackMute(id uint32, muted bool) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackMute(id, muted)
}

// SetTrackSolo sets a track's solo flag.
func SetTrackSolo(id uint32, soloed bool) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackSolo(id, soloed)
}

// SetTrackArmed sets a track's record-armed flag.
func SetTrackArmed(id uint32, armed bool) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetTrackArmed(id, armed)
}

// LoadClip decodes path via the installed Decoder (see SetDecoder) and
// attaches it to the track as a new clip starting at startBeat.
func LoadClip(id uint32, path string, startBeat float64) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.LoadClip(id, path, startBeat)
}
