// pkg/event/signal_test.go
package event

import "testing"

func TestSignal_Emit_RegistrationOrder(t *testing.T) {
	var s Signal[string]
	var got []string

	s.Subscribe(func(v string) { got = append(got, "a:"+v) })
	s.Subscribe(func(v string) { got = append(got, "b:"+v) })

	s.Emit("x")

	if len(got) != 2 || got[0] != "a:x" || got[1] != "b:x" {
		t.Errorf("Emit() calls = %v, expected [a:x b:x]", got)
	}
}

func TestSignal_UnsubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	calls := map[string]int{}

	var first *Subscription
	first = s.Subscribe(func(int) {
		calls["first"]++
		first.Cancel()
	})
	s.Subscribe(func(int) { calls["second"]++ })

	s.Emit(1)
	s.Emit(2)

	if calls["first"] != 1 {
		t.Errorf("first callback ran %d times, expected 1", calls["first"])
	}
	if calls["second"] != 2 {
		t.Errorf("second callback ran %d times, expected 2", calls["second"])
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSignal_SubscribeDuringEmit(t *testing.T) {
	var s Signal[int]
	late := 0

	s.Subscribe(func(int) {
		s.Subscribe(func(int) { late++ })
	})

	s.Emit(1)
	if late != 0 {
		t.Errorf("callback added during Emit ran %d times in the same Emit", late)
	}

	s.Clear()
	s.Emit(2)
	if late != 0 {
		t.Error("Clear() should drop every callback")
	}
}
