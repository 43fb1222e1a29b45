// Package schedule runs delayed and repeating callbacks against a game clock
// that only moves when Advance is called.
package schedule

import (
	"container/heap"
	"time"
)

// EventID identifies a scheduled event. The zero value is never issued.
type EventID uint64

type event struct {
	id       EventID
	due      time.Duration
	seq      uint64
	interval time.Duration // zero for one-shot events
	fn       func()
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Scheduler is not safe for concurrent use. It is polled once per frame.
type Scheduler struct {
	now    time.Duration
	lastID EventID
	seq    uint64
	queue  eventQueue
	live   map[EventID]*event
}

func New() *Scheduler {
	return &Scheduler{
		live: make(map[EventID]*event),
	}
}

// Now is the game clock: the sum of every Advance so far
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d from now
func (s *Scheduler) After(d time.Duration, fn func()) EventID {
	return s.schedule(d, 0, fn)
}

// Every runs fn each interval, first at now+interval.
// Intervals below a millisecond are raised to one.
func (s *Scheduler) Every(interval time.Duration, fn func()) EventID {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(delay, interval time.Duration, fn func()) EventID {
	if delay < 0 {
		delay = 0
	}
	s.lastID++
	e := &event{
		id:       s.lastID,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
	}
	s.push(e)
	s.live[e.id] = e
	return e.id
}

func (s *Scheduler) push(e *event) {
	s.seq++
	e.seq = s.seq
	heap.Push(&s.queue, e)
}

// Cancel removes an event that has not fired yet. Cancelling a repeating
// event stops all future runs. Returns false for unknown or spent ids.
func (s *Scheduler) Cancel(id EventID) bool {
	if _, ok := s.live[id]; !ok {
		return false
	}
	delete(s.live, id)
	return true
}

// Pending reports whether id will still fire
func (s *Scheduler) Pending(id EventID) bool {
	_, ok := s.live[id]
	return ok
}

// Len is the number of events that will still fire
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Advance moves the clock by dt and fires every due event, ordered by due
// time then by scheduling order. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		e := heap.Pop(&s.queue).(*event)
		if _, ok := s.live[e.id]; !ok {
			continue
		}
		if e.interval == 0 {
			delete(s.live, e.id)
		}

		e.fn()
		fired++

		if e.interval > 0 {
			if _, ok := s.live[e.id]; ok {
				e.due += e.interval
				s.push(e)
			}
		}
	}
	return fired
}

// Clear drops every event without running it
func (s *Scheduler) Clear() {
	s.queue = s.queue[:0]
	clear(s.live)
}
