package scheduler

import "time"

// Manual is a Scheduler driven by a virtual clock. Nothing fires until
// Advance is called.
type Manual struct {
	now   time.Duration
	next  Handle
	tasks map[Handle]*manualTask
}

type manualTask struct {
	interval time.Duration
	due      time.Duration
	fn       func()
}

var _ Scheduler = (*Manual)(nil)

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{tasks: make(map[Handle]*manualTask)}
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of live tasks.
func (m *Manual) Pending() int { return len(m.tasks) }

func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	mustPositive(interval)
	m.next++
	m.tasks[m.next] = &manualTask{interval: interval, due: m.now + interval, fn: fn}
	return m.next
}

func (m *Manual) Cancel(h Handle) {
	delete(m.tasks, h)
}

// Advance moves the clock forward by d, firing every task that comes due
// in time order. Ties fire in handle order. A task scheduled from inside a
// callback counts its first interval from that callback's instant.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.earliest(target)
		if t == nil {
			break
		}
		m.now = t.due
		t.due += t.interval
		t.fn()
	}
	m.now = target
}

// earliest returns the next task due at or before limit, or nil.
func (m *Manual) earliest(limit time.Duration) *manualTask {
	var (
		best  Handle
		bestT *manualTask
	)
	for h, t := range m.tasks {
		if t.due > limit {
			continue
		}
		if bestT == nil || t.due < bestT.due || (t.due == bestT.due && h < best) {
			best, bestT = h, t
		}
	}
	return bestT
}
