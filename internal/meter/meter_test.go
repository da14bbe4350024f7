package meter

import "testing"

func TestUpdateTracksAbsolutePeak(t *testing.T) {
	var p Peak
	if got := p.Update(0.5); got != 0.5 {
		t.Fatalf("Update(0.5) = %v, want 0.5", got)
	}
	if got := p.Update(-0.8); got != 0.8 {
		t.Fatalf("Update(-0.8) = %v, want 0.8 (abs)", got)
	}
}

func TestUpdateDecaysWhenQuieter(t *testing.T) {
	var p Peak
	p.Update(1.0)
	got := p.Update(0.0)
	want := float32(1.0 * DecayFactor)
	if got != want {
		t.Fatalf("decayed peak = %v, want %v", got, want)
	}
}

func TestResetZeroes(t *testing.T) {
	var p Peak
	p.Update(1.0)
	p.Reset()
	if got := p.Value(); got != 0 {
		t.Fatalf("Value() after Reset = %v, want 0", got)
	}
}

func TestDecayNeverResetsOnSilenceAlone(t *testing.T) {
	// Update(0) still decays rather than snapping to zero - only Reset zeroes.
	var p Peak
	p.Update(1.0)
	for i := 0; i < 1000; i++ {
		p.Update(0)
	}
	if p.Value() == 0 {
		t.Fatalf("peak reached exactly zero through decay alone; expected asymptotic approach")
	}
}
