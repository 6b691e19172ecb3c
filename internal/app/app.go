package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/router"
	"github.com/abhisek/mathblitz/internal/scheduler"
	"github.com/abhisek/mathblitz/internal/screen"
	"github.com/abhisek/mathblitz/internal/screens/home"
	"github.com/abhisek/mathblitz/internal/screens/play"
	"github.com/abhisek/mathblitz/internal/screens/welcome"
	"github.com/abhisek/mathblitz/internal/session"
	"github.com/abhisek/mathblitz/internal/ui/layout"
)

// Options configures the interactive game.
type Options struct {
	Rand       problemgen.Rand
	AnswerMode answer.Mode
	Logger     *zap.Logger

	// Splash shows the welcome animation before the home screen.
	Splash bool

	// Start, when set, skips the menus and opens directly into a game.
	Start *Start
}

// Start names the game to open with.
type Start struct {
	Mode problemgen.Mode
	Key  string
}

// eventQueue collects engine notifications until the model drains them.
type eventQueue struct {
	events []session.Event
}

func (q *eventQueue) push(ev session.Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []session.Event {
	evs := q.events
	q.events = nil
	return evs
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *session.Engine
	sched  *scheduler.Tea
	queue  *eventQueue
	width  int
	height int
}

// newAppModel wires an engine to the Bubble Tea scheduler and opens the
// home screen, or a game on top of it when opts.Start is set.
func newAppModel(opts Options) (AppModel, error) {
	sched := scheduler.NewTea()
	queue := &eventQueue{}
	engine := session.NewEngine(session.Options{
		Scheduler:  sched,
		Rand:       opts.Rand,
		Logger:     opts.Logger,
		AnswerMode: opts.AnswerMode,
		Notify:     queue.push,
	})
	var root screen.Screen = home.New(engine)
	if opts.Splash && opts.Start == nil {
		root = welcome.New(func() screen.Screen { return home.New(engine) })
	}

	m := AppModel{
		router: router.New(root),
		engine: engine,
		sched:  sched,
		queue:  queue,
	}

	if st := opts.Start; st != nil {
		if err := engine.OpenModeSelect(); err != nil {
			return m, err
		}
		if err := engine.SelectMode(st.Mode); err != nil {
			return m, err
		}
		if err := engine.StartGame(st.Mode, st.Key); err != nil {
			return m, err
		}
		queue.drain()
		m.router.Push(play.New(engine))
	}
	return m, nil
}

// Init starts the root screen and arms any countdown a quick-start game
// registered.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.sched.Drain())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.engine.EndGame()
			return m, tea.Quit
		}
		cmds = append(cmds, m.router.Update(msg))

	case scheduler.TickMsg:
		m.sched.Handle(msg)

	default:
		cmds = append(cmds, m.router.Update(msg))
	}

	if evs := m.queue.drain(); len(evs) > 0 {
		cmds = append(cmds, m.router.Update(screen.EngineEventsMsg{Events: evs}))
	}
	cmds = append(cmds, m.sched.Drain())

	return m, tea.Batch(cmds...)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var hud *layout.HUD
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.HUDProvider); ok {
			hud = hp.HUD()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	header := layout.RenderHeader(title, hud, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
