package core

import "sort"

// TaskID identifies a task scheduled on a Scheduler.
type TaskID uint64

type task struct {
	id  TaskID
	due uint64
	fn  func()
}

// Scheduler runs one-shot callbacks after a number of simulation ticks.
// It is not safe for concurrent use: the owner advances it from its Step.
type Scheduler struct {
	now    uint64
	nextID TaskID
	tasks  map[TaskID]*task
}

// NewScheduler creates an empty scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[TaskID]*task)}
}

// After schedules fn to run once, ticks ticks from now.
// A non-positive delay runs fn on the next Advance.
func (s *Scheduler) After(ticks int, fn func()) TaskID {
	if ticks < 1 {
		ticks = 1
	}
	s.nextID++
	id := s.nextID
	s.tasks[id] = &task{id: id, due: s.now + uint64(ticks), fn: fn}
	return id
}

// Cancel removes a pending task. Cancelling an unknown or finished task is a no-op.
func (s *Scheduler) Cancel(id TaskID) {
	delete(s.tasks, id)
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for id := range s.tasks {
		delete(s.tasks, id)
	}
}

// Pending returns the number of tasks not yet run.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Advance moves the clock one tick forward and runs every task that is due,
// in due-then-creation order. Tasks scheduled by a running task are not run
// in the same Advance.
func (s *Scheduler) Advance() {
	s.now++

	var due []*task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	for _, t := range due {
		// A previous task in this batch may have cancelled it.
		if _, ok := s.tasks[t.id]; !ok {
			continue
		}
		delete(s.tasks, t.id)
		t.fn()
	}
}
