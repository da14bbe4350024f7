package track

import (
	"math"
	"testing"

	"daw/internal/clip"
	"daw/internal/protocol"
)

func TestNewDefaults(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	if tr.Volume != 1 || tr.Pan != 0 {
		t.Fatalf("defaults vol=%v pan=%v, want 1,0", tr.Volume, tr.Pan)
	}
	if tr.Name != "Audio 1" {
		t.Fatalf("Name = %q, want %q", tr.Name, "Audio 1")
	}
	if !tr.Active {
		t.Fatal("new track should be active")
	}
}

func TestAutoNameByType(t *testing.T) {
	cases := []struct {
		typ  protocol.TrackType
		want string
	}{
		{protocol.TrackAudio, "Audio 2"},
		{protocol.TrackMIDI, "MIDI 2"},
		{protocol.TrackBus, "Bus 2"},
		{protocol.TrackMaster, "Master 2"},
	}
	for _, c := range cases {
		tr := New(1, c.typ, 2)
		if tr.Name != c.want {
			t.Fatalf("type %v: Name = %q, want %q", c.typ, tr.Name, c.want)
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	tr.SetVolume(-1)
	if tr.Volume != 0 {
		t.Fatalf("SetVolume(-1) = %v, want 0", tr.Volume)
	}
	tr.SetVolume(5)
	if tr.Volume != 2 {
		t.Fatalf("SetVolume(5) = %v, want 2", tr.Volume)
	}
}

func TestSetPanClamps(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	tr.SetPan(-5)
	if tr.Pan != -1 {
		t.Fatalf("SetPan(-5) = %v, want -1", tr.Pan)
	}
	tr.SetPan(5)
	if tr.Pan != 1 {
		t.Fatalf("SetPan(5) = %v, want 1", tr.Pan)
	}
}

func TestSetNameTruncates(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	tr.SetName(string(long))
	if len(tr.Name) != MaxNameLen {
		t.Fatalf("Name length = %d, want %d", len(tr.Name), MaxNameLen)
	}
}

// Property 4: pan law — gL^2+gR^2 = v^2 within 1e-6, constant power.
func TestPanLawConstantPower(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	tr.SetVolume(1.5)
	for _, pan := range []float32{-1, -0.5, 0, 0.3, 1} {
		tr.SetPan(pan)
		gl, gr := tr.PanGains()
		sumSq := float64(gl)*float64(gl) + float64(gr)*float64(gr)
		want := float64(tr.Volume) * float64(tr.Volume)
		if math.Abs(sumSq-want) > 1e-6 {
			t.Fatalf("pan=%v: gl^2+gr^2=%v, want %v", pan, sumSq, want)
		}
	}
}

func TestPanGainsAtCenter(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	gl, gr := tr.PanGains()
	want := float32(math.Cos(math.Pi / 4))
	if math.Abs(float64(gl-want)) > 1e-6 || math.Abs(float64(gr-want)) > 1e-6 {
		t.Fatalf("center pan gains = %v,%v, want %v,%v", gl, gr, want, want)
	}
}

func TestAddClipRespectsCapacity(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)
	for i := 0; i < MaxClips; i++ {
		if !tr.AddClip(clip.New(nil, nil, 0, 1)) {
			t.Fatalf("AddClip failed before reaching capacity at i=%d", i)
		}
	}
	if tr.AddClip(clip.New(nil, nil, 0, 1)) {
		t.Fatal("AddClip succeeded past MaxClips")
	}
}

func TestAudiblePrecedence(t *testing.T) {
	tr := New(1, protocol.TrackAudio, 1)

	if !tr.Audible(false) {
		t.Fatal("unmuted, unsoloed track should be audible with no solo active")
	}

	tr.Soloed = true
	tr.Muted = true
	// Mute beats solo.
	if tr.Audible(true) {
		t.Fatal("a muted soloed track must not be audible")
	}

	tr.Muted = false
	if !tr.Audible(true) {
		t.Fatal("soloed unmuted track should be audible when any_solo is set")
	}

	tr.Soloed = false
	if tr.Audible(true) {
		t.Fatal("non-soloed track must be silent when any_solo is set")
	}
}

func TestInfoSnapshot(t *testing.T) {
	tr := New(7, protocol.TrackBus, 1)
	tr.SetVolume(0.5)
	info := tr.Info()
	if info.ID != 7 || info.Type != protocol.TrackBus || info.Volume != 0.5 {
		t.Fatalf("unexpected info snapshot: %+v", info)
	}
}
