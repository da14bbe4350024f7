package transport

import "testing"

func TestStateMachineTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    State
		event   func(*Transport)
		want    State
		posZero bool
	}{
		{"stopped-play", Stopped, (*Transport).Play, Playing, false},
		{"stopped-stop", Stopped, (*Transport).Stop, Stopped, true},
		{"stopped-record", Stopped, (*Transport).Record, Recording, false},
		{"playing-pause", Playing, (*Transport).Pause, Paused, false},
		{"playing-stop", Playing, (*Transport).Stop, Stopped, true},
		{"paused-play", Paused, (*Transport).Play, Playing, false},
		{"paused-stop", Paused, (*Transport).Stop, Stopped, true},
		{"recording-pause-noop", Recording, (*Transport).Pause, Recording, false},
		{"recording-stop", Recording, (*Transport).Stop, Stopped, true},
		{"recording-play", Recording, (*Transport).Play, Playing, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := New(120)
			tr.state = c.from
			tr.Seek(10)
			c.event(tr)
			if tr.State() != c.want {
				t.Fatalf("state = %v, want %v", tr.State(), c.want)
			}
			if c.posZero && tr.PositionBeats() != 0 {
				t.Fatalf("expected position reset to 0, got %v", tr.PositionBeats())
			}
		})
	}
}

func TestPauseFromStoppedIsNoop(t *testing.T) {
	tr := New(120)
	tr.Pause()
	if tr.State() != Stopped {
		t.Fatalf("state = %v, want Stopped", tr.State())
	}
}

// S6: stop after seek(10) resets both beats and seconds to zero.
func TestS6StopAfterSeekResetsPosition(t *testing.T) {
	tr := New(120)
	tr.Seek(10)
	tr.Stop()
	if tr.PositionBeats() != 0 || tr.PositionSeconds() != 0 {
		t.Fatalf("after stop: beats=%v secs=%v, want 0,0", tr.PositionBeats(), tr.PositionSeconds())
	}
}

func TestSeekRejectsNegative(t *testing.T) {
	tr := New(120)
	if tr.Seek(-1) {
		t.Fatal("Seek(-1) succeeded, want rejection")
	}
}

// S5: set_bpm(0) -> InvalidParam; set_bpm(500) -> OK; set_loop(5,5) -> InvalidParam.
func TestS5ValidationBoundaries(t *testing.T) {
	tr := New(120)
	if tr.SetBPM(0) {
		t.Fatal("SetBPM(0) succeeded, want rejection")
	}
	if !tr.SetBPM(500) {
		t.Fatal("SetBPM(500) failed, want success")
	}
	if tr.SetBPM(999.0001) {
		t.Fatal("SetBPM(999.0001) succeeded, want rejection")
	}
	if !tr.SetBPM(999) {
		t.Fatal("SetBPM(999) failed, want success at upper boundary")
	}
	if tr.SetLoop(true, 5, 5) {
		t.Fatal("SetLoop(5,5) succeeded, want rejection (start must be < end)")
	}
	if tr.SetLoop(false, 5, 5) {
		t.Fatal("SetLoop(5,5) disabled succeeded, want rejection regardless of enabled")
	}
}

func TestSetBPMDoesNotRescalePosition(t *testing.T) {
	tr := New(120)
	tr.Seek(16)
	tr.SetBPM(240)
	if tr.PositionBeats() != 16 {
		t.Fatalf("position_beats changed on BPM change: %v, want 16", tr.PositionBeats())
	}
}

// Property 2: playhead monotonicity while Playing and loop disabled.
func TestPlayheadMonotonicity(t *testing.T) {
	const sr = 44100
	const nf = 512
	tr := New(120)
	tr.Play()

	bpf := (1.0 / float64(sr)) / tr.SecondsPerBeat()
	for k := 1; k <= 100; k++ {
		tr.Advance(nf, sr)
		want := float64(k) * float64(nf) * bpf
		got := tr.PositionBeats()
		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-9 {
			t.Fatalf("period %d: position_beats=%v, want %v (diff %v)", k, got, want, diff)
		}
	}
}

// S2: BPM=60, loop enabled [0,1), pos_beats always < 1 after many periods.
func TestS2LoopKeepsPositionInRange(t *testing.T) {
	const sr = 44100
	tr := New(60)
	tr.SetLoop(true, 0, 1)
	tr.Play()
	for i := 0; i < 1000; i++ {
		tr.Advance(64, sr)
		if tr.PositionBeats() >= 1 || tr.PositionBeats() < 0 {
			t.Fatalf("iteration %d: pos_beats=%v escaped [0,1)", i, tr.PositionBeats())
		}
	}
}

// Property 3: loop wrap law — starting before the loop, eventually position
// enters [s,e) and stays there. The per-period progression inside the loop
// is not asserted here.
func TestLoopWrapLaw(t *testing.T) {
	const sr = 44100
	const nf = 512
	tr := New(120)
	tr.SetLoop(true, 4, 8)
	tr.Seek(0) // p < s
	tr.Play()

	entered := false
	for i := 0; i < 2000; i++ {
		tr.Advance(nf, sr)
		pos := tr.PositionBeats()
		if pos >= 4 && pos < 8 {
			entered = true
		}
		if entered && (pos < 4 || pos >= 8) {
			t.Fatalf("iteration %d: position left [4,8) after entering: %v", i, pos)
		}
	}
	if !entered {
		t.Fatal("position never entered the loop region [4,8)")
	}
}

func TestBarBeatComputation(t *testing.T) {
	tr := New(120)
	tr.Seek(0)
	if bar, beat := tr.BarBeat(); bar != 1 || beat != 1 {
		t.Fatalf("at 0: bar=%d beat=%d, want 1,1", bar, beat)
	}
	tr.Seek(5.5)
	if bar, beat := tr.BarBeat(); bar != 2 || beat != 2 {
		t.Fatalf("at 5.5: bar=%d beat=%d, want 2,2", bar, beat)
	}
}
