package audio

import "testing"

func TestFakeDeviceStartStopPump(t *testing.T) {
	d := &FakeDevice{}
	var got []float32
	if err := d.Start(func(out []float32) {
		got = out
	}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !d.Started() {
		t.Fatal("expected Started() true after Start")
	}

	buf := make([]float32, 4)
	d.Pump(buf)
	if len(got) != 4 {
		t.Fatalf("render not invoked by Pump, got len=%d", len(got))
	}

	if err := d.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !d.Stopped() {
		t.Fatal("expected Stopped() true after Stop")
	}
}

func TestFakeDeviceStartErr(t *testing.T) {
	d := &FakeDevice{StartErr: errTest}
	if err := d.Start(func([]float32) {}); err != errTest {
		t.Fatalf("Start err = %v, want %v", err, errTest)
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
