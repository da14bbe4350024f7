package clip

import "testing"

func TestSampleIndexAtNearestSampleNoInterpolation(t *testing.T) {
	c := New([]float32{1, 2, 3, 4}, []float32{1, 2, 3, 4}, 0, 4.0/22050.0)

	// S1-shaped clip: 4 frames, start=0, len_beats = 4/22050.
	// Exactly at start.
	if idx, ok := c.SampleIndexAt(0); !ok || idx != 0 {
		t.Fatalf("SampleIndexAt(start) = %d,%v want 0,true", idx, ok)
	}
	// At end (exclusive) — out of range.
	if _, ok := c.SampleIndexAt(c.End()); ok {
		t.Fatal("SampleIndexAt(end) should be out of range (half-open interval)")
	}
	// Before start.
	if _, ok := c.SampleIndexAt(-0.001); ok {
		t.Fatal("SampleIndexAt before start should be out of range")
	}
}

func TestSampleIndexAtScalesAcrossLength(t *testing.T) {
	c := New(make([]float32, 10), make([]float32, 10), 2, 1.0)
	// Midpoint of the clip's beat span should map near the middle sample.
	idx, ok := c.SampleIndexAt(2.5)
	if !ok {
		t.Fatal("expected in-range lookup")
	}
	if idx != 5 {
		t.Fatalf("SampleIndexAt(mid) = %d, want 5", idx)
	}
}

func TestLenBeatsForFrames(t *testing.T) {
	got := LenBeatsForFrames(4, 44100, 120)
	want := 4.0 / 22050.0
	if got != want {
		t.Fatalf("LenBeatsForFrames = %v, want %v", got, want)
	}
}

func TestEnd(t *testing.T) {
	c := New(nil, nil, 3, 2)
	if got := c.End(); got != 5 {
		t.Fatalf("End() = %v, want 5", got)
	}
}
