package audio

import "testing"

func makeOut() [][]float32 {
	return [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
}

func TestBellRingsOnNextCallback(t *testing.T) {
	e := NewEngine()
	out := makeOut()

	e.process(out)
	if e.bellEnv != 0 {
		t.Fatalf("expected silent bell before trigger, got env %v", e.bellEnv)
	}

	e.Bell()
	e.process(out)
	if e.bellEnv < 0.5 {
		t.Errorf("expected ringing bell after trigger, got env %v", e.bellEnv)
	}
	if e.bellPending {
		t.Error("expected pending trigger to be consumed")
	}
}

func TestBellBetweenCallbacksIsNotLost(t *testing.T) {
	e := NewEngine()
	out := makeOut()

	// let the envelope of a first chime decay some
	e.Bell()
	for i := 0; i < 20; i++ {
		e.process(out)
	}
	decayed := e.bellEnv

	e.Bell()
	e.process(out)
	if e.bellEnv <= decayed {
		t.Errorf("expected retrigger to restart envelope, got %v (was %v)", e.bellEnv, decayed)
	}
}

func TestControlAndCallbackConcurrently(t *testing.T) {
	e := NewEngine()
	out := makeOut()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			e.Bell()
			e.SetSpread(float64(i%11) / 10)
		}
	}()
	for i := 0; i < 500; i++ {
		e.process(out)
	}
	<-done
}

func TestSetSpreadClamps(t *testing.T) {
	e := NewEngine()
	e.SetSpread(-2)
	if e.spread != 0 {
		t.Errorf("expected spread clamped to 0, got %v", e.spread)
	}
	e.SetSpread(3)
	if e.spread != 1 {
		t.Errorf("expected spread clamped to 1, got %v", e.spread)
	}
}
