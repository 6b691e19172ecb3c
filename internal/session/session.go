package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/profile"
	"github.com/abhisek/mathblitz/internal/scheduler"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed
	// from the current screen.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInactive is returned when an answer is submitted with no game running.
	ErrInactive = errors.New("no active game")
)

// QuestionSource produces questions. *problemgen.Generator satisfies it.
type QuestionSource interface {
	Generate(mode problemgen.Mode, key string) (*problemgen.Question, error)
}

// Options configures an Engine. Scheduler is required; everything else
// has a default.
type Options struct {
	Scheduler scheduler.Scheduler

	// Rand drives answer presentation, and question generation when
	// Generator is nil.
	Rand problemgen.Rand

	Generator QuestionSource
	Scorer    Scorer

	// Notify receives every event synchronously.
	Notify func(Event)

	Logger *zap.Logger

	AnswerMode        answer.Mode
	QuestionsPerLevel int
	GlobalSeconds     int

	// Now reads the wall clock for summary durations.
	Now func() time.Time
}

// Engine is the game state machine. It is not safe for concurrent use;
// scheduler callbacks must run on the goroutine that calls its methods.
type Engine struct {
	sched  scheduler.Scheduler
	rng    problemgen.Rand
	gen    QuestionSource
	scorer Scorer
	notify func(Event)
	now    func() time.Time

	baseLog *zap.Logger
	log     *zap.Logger

	globalSeconds int

	state   SessionState
	summary *Summary

	questionTimer scheduler.Handle
	globalTimer   scheduler.Handle

	// questionGen and sessionGen tag countdown callbacks so that a tick
	// armed for an earlier question or game is ignored.
	questionGen uint64
	sessionGen  uint64
}

// NewEngine creates an Engine on the main menu.
func NewEngine(opts Options) *Engine {
	if opts.Scheduler == nil {
		panic("session: Options.Scheduler is required")
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Generator == nil {
		opts.Generator = problemgen.New(opts.Rand, problemgen.DefaultConfig())
	}
	if opts.Scorer == nil {
		opts.Scorer = DefaultScorer()
	}
	if opts.Notify == nil {
		opts.Notify = func(Event) {}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AnswerMode == "" {
		opts.AnswerMode = answer.ModeMultiple
	}
	if opts.QuestionsPerLevel < 1 {
		opts.QuestionsPerLevel = DefaultQuestionsPerLevel
	}
	if opts.GlobalSeconds < 1 {
		opts.GlobalSeconds = DefaultGlobalSeconds
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		sched:         opts.Scheduler,
		rng:           opts.Rand,
		gen:           opts.Generator,
		scorer:        opts.Scorer,
		notify:        opts.Notify,
		now:           opts.Now,
		baseLog:       opts.Logger,
		log:           opts.Logger,
		globalSeconds: opts.GlobalSeconds,
		state: SessionState{
			Screen:            ScreenMainMenu,
			AnswerMode:        opts.AnswerMode,
			QuestionsPerLevel: opts.QuestionsPerLevel,
		},
	}
}

// State returns a copy of the current state.
func (e *Engine) State() SessionState {
	return e.state
}

// Summary returns the stats of the last finished game, or nil.
func (e *Engine) Summary() *Summary {
	return e.summary
}

// OpenModeSelect moves from the main menu to mode selection.
func (e *Engine) OpenModeSelect() error {
	if e.state.Screen != ScreenMainMenu {
		return e.invalid("open mode select")
	}
	e.setScreen(ScreenModeSelect)
	return nil
}

// SelectMode records the generation mode and moves to key selection.
func (e *Engine) SelectMode(mode problemgen.Mode) error {
	if e.state.Screen != ScreenModeSelect {
		return e.invalid("select mode")
	}
	if mode != problemgen.ModeDifficulty && mode != problemgen.ModeCurriculum {
		return fmt.Errorf("%w: mode %q", problemgen.ErrUnknownGenerator, string(mode))
	}
	e.state.Mode = mode
	e.setScreen(ScreenKeySelect)
	return nil
}

// Back steps one screen toward the main menu. From Playing the running
// game is discarded.
func (e *Engine) Back() error {
	switch e.state.Screen {
	case ScreenModeSelect, ScreenGameOver:
		e.setScreen(ScreenMainMenu)
	case ScreenKeySelect:
		e.setScreen(ScreenModeSelect)
	case ScreenPlaying:
		e.QuitToMenu()
	default:
		return e.invalid("back")
	}
	return nil
}

// SetAnswerMode changes the answer mode for subsequent games.
func (e *Engine) SetAnswerMode(mode answer.Mode) error {
	if e.state.Screen == ScreenPlaying {
		return e.invalid("set answer mode")
	}
	m, err := answer.ParseMode(string(mode))
	if err != nil {
		return err
	}
	e.state.AnswerMode = m
	return nil
}

// StartGame begins a new game from key selection, or from the game-over
// screen to play again. An empty difficulty key falls back to normal.
// Curriculum games use the normal profile's lives and pacing.
func (e *Engine) StartGame(mode problemgen.Mode, key string) error {
	if e.state.Screen != ScreenKeySelect && e.state.Screen != ScreenGameOver {
		return e.invalid("start game")
	}

	var (
		p          profile.Profile
		err        error
		timeAttack bool
	)
	switch mode {
	case problemgen.ModeDifficulty:
		p, err = profile.Resolve(profile.Key(key))
		if err != nil {
			return err
		}
		key = string(p.Key)
		timeAttack = p.Key == profile.TimeAttack
	case problemgen.ModeCurriculum:
		c, err := problemgen.ParseCurriculum(key)
		if err != nil {
			return err
		}
		key = string(c)
		p, _ = profile.Lookup(profile.Normal)
	default:
		return fmt.Errorf("%w: mode %q", problemgen.ErrUnknownGenerator, string(mode))
	}

	e.cancelTimers()
	e.sessionGen++
	e.summary = nil

	e.state = SessionState{
		Screen:            ScreenPlaying,
		Mode:              mode,
		Key:               key,
		AnswerMode:        e.state.AnswerMode,
		Level:             1,
		Lives:             p.Lives,
		QuestionsPerLevel: e.state.QuestionsPerLevel,
		Timer:             TimerMax,
		TimerTick:         p.TimerTick,
		TimeAttack:        timeAttack,
		Active:            true,
		SessionID:         uuid.New().String(),
		StartTime:         e.now(),
	}
	if timeAttack {
		e.state.Lives = profile.UnlimitedLives
		e.state.GlobalTimer = e.globalSeconds
	}

	e.log = e.baseLog.With(zap.String("session_id", e.state.SessionID))
	e.log.Info("session started",
		zap.String("mode", string(mode)),
		zap.String("key", key),
		zap.String("answer_mode", string(e.state.AnswerMode)),
		zap.Bool("time_attack", timeAttack),
	)

	e.notify(ScreenEvent{Screen: ScreenPlaying})
	e.notify(ScoreEvent{Score: 0})
	e.notify(LevelEvent{Level: 1})
	e.notify(ComboEvent{Combo: 0})
	e.notify(LivesEvent{Lives: e.state.Lives, Unlimited: timeAttack})

	if timeAttack {
		e.notify(TimerEvent{Value: e.state.GlobalTimer, Global: true})
		gen := e.sessionGen
		e.globalTimer = e.sched.Every(time.Second, func() { e.globalTick(gen) })
	}

	if err := e.nextQuestion(); err != nil {
		e.EndGame()
		return err
	}
	return nil
}

// SubmitAnswer evaluates raw against the current question. Input that is
// not a number is simply incorrect.
func (e *Engine) SubmitAnswer(raw string) (bool, error) {
	if !e.state.Active || e.state.CurrentArtifact == nil {
		return false, ErrInactive
	}
	e.cancelQuestionTimer()

	correct := e.state.CurrentArtifact.Check(raw)
	e.resolve(correct, false)
	return correct, nil
}

// EndGame stops the running game and publishes its summary. It does
// nothing when no game is active.
func (e *Engine) EndGame() {
	if !e.state.Active {
		return
	}
	e.cancelTimers()

	e.state.Active = false
	e.state.CurrentQuestion = nil
	e.state.CurrentArtifact = nil
	e.state.EndTime = e.now()
	e.setScreen(ScreenGameOver)

	e.summary = BuildSummary(&e.state)
	e.log.Info("game over",
		zap.Int("score", e.summary.Score),
		zap.Int("level", e.summary.Level),
		zap.Int("max_combo", e.summary.MaxCombo),
		zap.Int("correct", e.summary.CorrectCount),
		zap.Int("answered", e.summary.TotalAnswered),
	)
	e.notify(GameOverEvent{Summary: e.summary})
}

// QuitToMenu discards any game and returns to the main menu.
func (e *Engine) QuitToMenu() {
	e.cancelTimers()
	e.sessionGen++
	e.questionGen++
	if e.state.Active {
		e.log.Info("session abandoned")
	}

	e.state = SessionState{
		Screen:            ScreenMainMenu,
		AnswerMode:        e.state.AnswerMode,
		QuestionsPerLevel: e.state.QuestionsPerLevel,
	}
	e.log = e.baseLog
	e.notify(ScreenEvent{Screen: ScreenMainMenu})
}

// nextQuestion replaces the current question and re-arms the per-question
// countdown unless the game is in time attack.
func (e *Engine) nextQuestion() error {
	if !e.state.Active {
		return nil
	}
	e.cancelQuestionTimer()
	e.questionGen++

	q, err := e.gen.Generate(e.state.Mode, e.state.Key)
	if err != nil {
		return fmt.Errorf("generating question: %w", err)
	}
	art, err := answer.Present(q, e.state.AnswerMode, e.rng)
	if err != nil {
		return fmt.Errorf("presenting question: %w", err)
	}

	e.state.CurrentQuestion = q
	e.state.CurrentArtifact = art
	e.state.Timer = TimerMax

	e.log.Debug("question",
		zap.String("text", q.Text),
		zap.String("kind", q.Kind),
		zap.String("artifact", string(art.Kind())),
	)
	e.notify(QuestionEvent{Question: q, Artifact: art})

	if !e.state.TimeAttack {
		e.notify(TimerEvent{Value: TimerMax})
		gen := e.questionGen
		e.questionTimer = e.sched.Every(e.state.TimerTick, func() { e.questionTick(gen) })
	}
	return nil
}

func (e *Engine) questionTick(gen uint64) {
	if gen != e.questionGen || !e.state.Active {
		e.log.Debug("stale question tick dropped", zap.Uint64("generation", gen))
		return
	}

	e.state.Timer--
	e.notify(TimerEvent{Value: e.state.Timer})
	if e.state.Timer <= 0 {
		e.cancelQuestionTimer()
		e.log.Info("timeout", zap.String("question", e.state.CurrentQuestion.Text))
		e.resolve(false, true)
	}
}

func (e *Engine) globalTick(gen uint64) {
	if gen != e.sessionGen || !e.state.Active {
		e.log.Debug("stale global tick dropped", zap.Uint64("generation", gen))
		return
	}

	e.state.GlobalTimer--
	e.notify(TimerEvent{Value: e.state.GlobalTimer, Global: true})
	if e.state.GlobalTimer <= 0 {
		e.EndGame()
	}
}

// resolve applies the correct-answer or wrong-answer transition.
func (e *Engine) resolve(correct, timedOut bool) {
	s := &e.state
	s.TotalAnswered++

	expected := s.CurrentArtifact.Correct()
	e.notify(AnswerEvent{Correct: correct, TimedOut: timedOut, Expected: expected})
	e.log.Info("answer",
		zap.String("question", s.CurrentQuestion.Text),
		zap.Bool("correct", correct),
		zap.Bool("timed_out", timedOut),
	)

	if correct {
		e.onCorrect()
	} else {
		e.onWrong()
	}

	if !s.Active {
		return
	}
	if err := e.nextQuestion(); err != nil {
		e.log.Error("next question failed", zap.Error(err))
		e.EndGame()
	}
}

func (e *Engine) onCorrect() {
	s := &e.state
	s.CorrectCount++
	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)

	points := e.scorer.Points(ScoreInput{
		Level:      s.Level,
		Combo:      s.Combo,
		TimeAttack: s.TimeAttack,
		Question:   s.CurrentQuestion,
	})
	points = max(points, 0)
	s.Score += points

	e.notify(ScoreEvent{Score: s.Score, Delta: points})
	e.notify(ComboEvent{Combo: s.Combo, Big: s.Combo >= BigComboThreshold})

	s.QuestionsThisLevel++
	if s.QuestionsThisLevel >= s.QuestionsPerLevel {
		s.Level++
		s.QuestionsThisLevel = 0
		e.log.Info("level up", zap.Int("level", s.Level))
		e.notify(LevelEvent{Level: s.Level})
	}
}

func (e *Engine) onWrong() {
	s := &e.state
	s.Combo = 0
	e.notify(ComboEvent{Combo: 0})

	if s.TimeAttack {
		return
	}
	s.Lives--
	e.notify(LivesEvent{Lives: s.Lives})
	if s.Lives <= 0 {
		e.EndGame()
	}
}

func (e *Engine) setScreen(s Screen) {
	e.state.Screen = s
	e.notify(ScreenEvent{Screen: s})
}

func (e *Engine) cancelQuestionTimer() {
	if e.questionTimer != 0 {
		e.sched.Cancel(e.questionTimer)
		e.questionTimer = 0
	}
}

func (e *Engine) cancelTimers() {
	e.cancelQuestionTimer()
	if e.globalTimer != 0 {
		e.sched.Cancel(e.globalTimer)
		e.globalTimer = 0
	}
}

func (e *Engine) invalid(op string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, e.state.Screen)
}
