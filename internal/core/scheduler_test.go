package core

import "testing"

func TestSchedulerRunsTaskWhenDue(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.After(3, func() { ran++ })

	for i := 0; i < 2; i++ {
		s.Advance()
	}
	if ran != 0 {
		t.Fatalf("task ran after 2 ticks, want 3")
	}

	s.Advance()
	if ran != 1 {
		t.Fatalf("task ran %d times after 3 ticks, want 1", ran)
	}

	s.Advance()
	if ran != 1 {
		t.Errorf("one-shot task ran again")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.After(1, func() { ran = true })
	s.Cancel(id)
	s.Advance()

	if ran {
		t.Error("cancelled task ran")
	}

	// Unknown IDs are ignored
	s.Cancel(TaskID(999))
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	count := 0
	for i := 1; i <= 5; i++ {
		s.After(i, func() { count++ })
	}
	s.CancelAll()

	for i := 0; i < 10; i++ {
		s.Advance()
	}
	if count != 0 {
		t.Errorf("%d tasks ran after CancelAll", count)
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(2, func() { order = append(order, 2) })
	s.After(1, func() { order = append(order, 1) })
	s.After(2, func() { order = append(order, 3) })

	s.Advance()
	s.Advance()

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestSchedulerTaskCancelsSibling(t *testing.T) {
	s := NewScheduler()
	var second TaskID
	secondRan := false
	s.After(1, func() { s.Cancel(second) })
	second = s.After(1, func() { secondRan = true })

	s.Advance()
	if secondRan {
		t.Error("task cancelled by an earlier task in the same tick still ran")
	}
}

func TestSchedulerNestedScheduleWaits(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.After(1, func() {
		s.After(0, func() { inner = true })
	})

	s.Advance()
	if inner {
		t.Fatal("task scheduled during Advance ran in the same tick")
	}
	s.Advance()
	if !inner {
		t.Error("nested task did not run on the following tick")
	}
}

func TestRuntimeConfigTicks(t *testing.T) {
	tests := []struct {
		rate int
		ms   int
		want int
	}{
		{rate: 30, ms: 1000, want: 30},
		{rate: 30, ms: 3000, want: 90},
		{rate: 30, ms: 200, want: 6},
		{rate: 10, ms: 50, want: 1}, // rounds up to one tick
		{rate: 0, ms: 1000, want: DefaultTickRate},
		{rate: 60, ms: 0, want: 0},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.Ticks(tt.ms); got != tt.want {
			t.Errorf("Ticks(%d) at %d tps = %d, want %d", tt.ms, tt.rate, got, tt.want)
		}
	}
}

func TestInputFrameFirstHole(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.FirstHole(); ok {
		t.Fatal("empty frame reported a hole")
	}

	f.Set(HoleAction(4))
	f.Set(HoleAction(2))
	hole, ok := f.FirstHole()
	if !ok || hole != 2 {
		t.Errorf("FirstHole() = %d, %v; want 2, true", hole, ok)
	}

	f.Clear()
	if f.Has(HoleAction(2)) {
		t.Error("Clear() left actions set")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionHole3.String(); got != "Hole3" {
		t.Errorf("ActionHole3.String() = %q", got)
	}
	if got := ActionReplay.String(); got != "Replay" {
		t.Errorf("ActionReplay.String() = %q", got)
	}
}
