package scheduler

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is delivered by the bubbletea runtime when a Tea task's interval
// elapses. Route it back to (*Tea).Handle from the model's Update.
type TickMsg struct {
	ID Handle
	At time.Time
}

// Tea is a Scheduler backed by tea.Tick commands. Every and re-arming
// queue commands; the owner returns Drain() from Update so the runtime
// runs them. Callbacks fire inside Update, on the program goroutine.
type Tea struct {
	next    Handle
	tasks   map[Handle]*teaTask
	pending []tea.Cmd
}

type teaTask struct {
	interval time.Duration
	fn       func()
}

var _ Scheduler = (*Tea)(nil)

// NewTea returns an empty Tea scheduler.
func NewTea() *Tea {
	return &Tea{tasks: make(map[Handle]*teaTask)}
}

func (t *Tea) Every(interval time.Duration, fn func()) Handle {
	mustPositive(interval)
	t.next++
	t.tasks[t.next] = &teaTask{interval: interval, fn: fn}
	t.arm(t.next, interval)
	return t.next
}

func (t *Tea) Cancel(h Handle) {
	delete(t.tasks, h)
}

// Live reports whether h is still scheduled.
func (t *Tea) Live(h Handle) bool {
	_, ok := t.tasks[h]
	return ok
}

// Handle runs the task for msg if it is still live and re-arms it.
// Ticks for cancelled tasks are dropped.
func (t *Tea) Handle(msg TickMsg) {
	task, ok := t.tasks[msg.ID]
	if !ok {
		return
	}
	task.fn()
	if _, ok := t.tasks[msg.ID]; ok {
		t.arm(msg.ID, task.interval)
	}
}

// Drain returns the queued tick commands as one batch, or nil.
func (t *Tea) Drain() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}

func (t *Tea) arm(h Handle, interval time.Duration) {
	t.pending = append(t.pending, tea.Tick(interval, func(at time.Time) tea.Msg {
		return TickMsg{ID: h, At: at}
	}))
}
