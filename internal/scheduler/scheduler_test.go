package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_FiresOnInterval(t *testing.T) {
	m := NewManual()
	count := 0
	m.Every(100*time.Millisecond, func() { count++ })

	m.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, count)

	m.Advance(time.Millisecond)
	assert.Equal(t, 1, count)

	m.Advance(time.Second)
	assert.Equal(t, 11, count)
	assert.Equal(t, 1100*time.Millisecond, m.Now())
}

func TestManual_CancelledTaskNeverFires(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.Every(time.Second, func() { fired = true })
	m.Cancel(h)

	m.Advance(10 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelFromInsideCallback(t *testing.T) {
	m := NewManual()
	count := 0
	var h Handle
	h = m.Every(time.Second, func() {
		count++
		if count == 3 {
			m.Cancel(h)
		}
	})

	m.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}

func TestManual_TimeOrderAndTies(t *testing.T) {
	m := NewManual()
	var order []string
	m.Every(300*time.Millisecond, func() { order = append(order, "slow") })
	m.Every(100*time.Millisecond, func() { order = append(order, "fast") })

	m.Advance(300 * time.Millisecond)
	// At 300ms both are due; the earlier handle wins the tie.
	assert.Equal(t, []string{"fast", "fast", "slow", "fast"}, order)
}

func TestManual_TaskScheduledInCallbackStartsThen(t *testing.T) {
	m := NewManual()
	var innerAt []time.Duration
	var outer Handle
	outer = m.Every(time.Second, func() {
		m.Cancel(outer)
		m.Every(250*time.Millisecond, func() { innerAt = append(innerAt, m.Now()) })
	})

	m.Advance(1500 * time.Millisecond)
	assert.Equal(t, []time.Duration{1250 * time.Millisecond, 1500 * time.Millisecond}, innerAt)
}

func TestManual_RejectsNonPositiveInterval(t *testing.T) {
	assert.Panics(t, func() { NewManual().Every(0, func() {}) })
}

func TestTea_HandleRunsLiveTasks(t *testing.T) {
	s := NewTea()
	count := 0
	h := s.Every(time.Millisecond, func() { count++ })
	require.NotNil(t, s.Drain())
	assert.Nil(t, s.Drain(), "drain empties the queue")

	s.Handle(TickMsg{ID: h})
	assert.Equal(t, 1, count)
	assert.NotNil(t, s.Drain(), "live task re-arms")

	s.Cancel(h)
	assert.False(t, s.Live(h))
	s.Handle(TickMsg{ID: h})
	assert.Equal(t, 1, count, "stale tick must be dropped")
	assert.Nil(t, s.Drain())
}

func TestTea_NoRearmAfterCancelInCallback(t *testing.T) {
	s := NewTea()
	var h Handle
	h = s.Every(time.Millisecond, func() { s.Cancel(h) })
	s.Drain()

	s.Handle(TickMsg{ID: h})
	assert.Nil(t, s.Drain())
}

func TestTea_TickCommandDeliversMsg(t *testing.T) {
	s := NewTea()
	h := s.Every(time.Millisecond, func() {})

	cmd := s.pending[0]
	msg := cmd()
	tick, ok := msg.(TickMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, h, tick.ID)
}
