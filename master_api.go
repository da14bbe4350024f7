package daw

// SetMasterVolume applies v, rejecting it with ErrInvalidParam if it falls
// outside [0,2].
func SetMasterVolume(v float32) Result {
	e, res := current()
	if res != OK {
		return res
	}
	return e.SetMasterVolume(v)
}

// GetMasterVolume returns the current master volume.
func GetMasterVolume() (float32, Result) {
	e, res := current()
	if res != OK {
		return 0, res
	}
	return e.MasterVolume()
}

// GetMasterPeaks returns the current master L/R peak meter readings.
func GetMasterPeaks() (l, r float32, res Result) {
	e, res := current()
	if res != OK {
		return 0, 0, res
	}
	return e.GetMasterPeaks()
}
