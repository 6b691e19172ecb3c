package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/scheduler"
	"github.com/abhisek/mathblitz/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions without starting the TUI",
	Long: `Generate questions for a difficulty key or curriculum code and print
them with their answer artifacts.

With --simulate, a headless game runs on a virtual clock instead and every
engine event is printed. The simulated player answers correctly except for
every --miss-every question, which is left to time out.`,
	Example: `  mathblitz preview --mode curriculum --key smk --count 3
  mathblitz preview --key hard --simulate --seed 42`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", string(problemgen.ModeDifficulty), "Question mode: difficulty or curriculum")
	previewCmd.Flags().String("key", "normal", "Difficulty key or curriculum code")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate or answer")
	previewCmd.Flags().Bool("simulate", false, "Play a headless game and print engine events")
	previewCmd.Flags().Int("miss-every", 4, "With --simulate, let every Nth question time out (0 never)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	key, _ := cmd.Flags().GetString("key")
	count, _ := cmd.Flags().GetInt("count")
	simulate, _ := cmd.Flags().GetBool("simulate")
	missEvery, _ := cmd.Flags().GetInt("miss-every")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ansMode, err := answer.ParseMode(cfg.AnswerMode)
	if err != nil {
		return err
	}
	mode, err := problemgen.ParseMode(modeVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	rng := newRand(cfg.Seed)
	out := cmd.OutOrStdout()
	if simulate {
		return simulateGame(out, rng, mode, key, ansMode, count, missEvery)
	}
	return previewQuestions(out, rng, mode, key, ansMode, count)
}

// previewQuestions prints count generated questions with their artifacts.
func previewQuestions(out io.Writer, rng problemgen.Rand, mode problemgen.Mode, key string, ansMode answer.Mode, count int) error {
	gen := problemgen.New(rng, problemgen.DefaultConfig())

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(mode, key)
		if err != nil {
			return err
		}
		art, err := answer.Present(q, ansMode, rng)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "── Question %d/%d (%s) ──\n", i, count, q.Kind)
		fmt.Fprintln(out, q.Text)
		if mc, ok := art.(*answer.MultipleChoice); ok {
			for j, label := range mc.Labels() {
				marker := " "
				if j == mc.CorrectIndex {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %d) %s\n", marker, j+1, label)
			}
		}
		fmt.Fprintf(out, "Answer: %s\n\n", problemgen.FormatNumber(q.Answer))
	}
	return nil
}

// simulateGame plays a headless game on a virtual clock and prints every
// event the engine emits.
func simulateGame(out io.Writer, rng problemgen.Rand, mode problemgen.Mode, key string, ansMode answer.Mode, count, missEvery int) error {
	sched := scheduler.NewManual()
	start := time.Now()
	engine := session.NewEngine(session.Options{
		Scheduler:  sched,
		Rand:       rng,
		AnswerMode: ansMode,
		Now:        func() time.Time { return start.Add(sched.Now()) },
		Notify: func(ev session.Event) {
			fmt.Fprintf(out, "[%6.2fs] %s\n", sched.Now().Seconds(), describeEvent(ev))
		},
	})

	if err := engine.OpenModeSelect(); err != nil {
		return err
	}
	if err := engine.SelectMode(mode); err != nil {
		return err
	}
	if err := engine.StartGame(mode, key); err != nil {
		return err
	}

	for i := 1; i <= count && engine.State().Active; i++ {
		// Think for a second before answering.
		sched.Advance(time.Second)
		state := engine.State()
		if !state.Active {
			break
		}

		if missEvery > 0 && i%missEvery == 0 {
			if state.TimeAttack {
				if _, err := engine.SubmitAnswer("?"); err != nil {
					return err
				}
				continue
			}
			sched.Advance(time.Duration(state.Timer) * state.TimerTick)
			continue
		}

		if _, err := engine.SubmitAnswer(correctInput(state.CurrentArtifact)); err != nil {
			return err
		}
	}
	engine.EndGame()
	return nil
}

// correctInput returns what a perfect player would submit for art.
func correctInput(art answer.Artifact) string {
	if mc, ok := art.(*answer.MultipleChoice); ok {
		return mc.Labels()[mc.CorrectIndex]
	}
	return problemgen.FormatNumber(art.Correct())
}

func describeEvent(ev session.Event) string {
	switch ev := ev.(type) {
	case session.ScreenEvent:
		return "screen " + ev.Screen.String()
	case session.ScoreEvent:
		return fmt.Sprintf("score %d (+%d)", ev.Score, ev.Delta)
	case session.LevelEvent:
		return fmt.Sprintf("level %d", ev.Level)
	case session.ComboEvent:
		if ev.Big {
			return fmt.Sprintf("combo %d BIG", ev.Combo)
		}
		return fmt.Sprintf("combo %d", ev.Combo)
	case session.LivesEvent:
		if ev.Unlimited {
			return "lives ∞"
		}
		return fmt.Sprintf("lives %d", ev.Lives)
	case session.TimerEvent:
		if ev.Global {
			return fmt.Sprintf("clock %ds", ev.Value)
		}
		return fmt.Sprintf("timer %d", ev.Value)
	case session.QuestionEvent:
		return fmt.Sprintf("question %q [%s]", ev.Question.Text, ev.Artifact.Kind())
	case session.AnswerEvent:
		switch {
		case ev.Correct:
			return "answer correct"
		case ev.TimedOut:
			return "answer timed out, expected " + problemgen.FormatNumber(ev.Expected)
		default:
			return "answer wrong, expected " + problemgen.FormatNumber(ev.Expected)
		}
	case session.GameOverEvent:
		s := ev.Summary
		return fmt.Sprintf("game over: score %d, level %d, max combo %d, %d/%d correct",
			s.Score, s.Level, s.MaxCombo, s.CorrectCount, s.TotalAnswered)
	}
	return fmt.Sprintf("%T", ev)
}
