package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/problemgen"
	"github.com/abhisek/mathblitz/internal/session"
)

func TestPrintProfiles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printProfiles(&buf))

	out := buf.String()
	for _, want := range []string{"easy", "normal", "hard", "timeattack", "∞", "1-100", "smk", "S3 (Doctorate)"} {
		assert.Contains(t, out, want)
	}
}

func TestPreviewQuestions(t *testing.T) {
	var buf bytes.Buffer
	err := previewQuestions(&buf, newRand(42), problemgen.ModeCurriculum, "smp", answer.ModeMultiple, 3)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "── Question"))
	assert.Equal(t, 3, strings.Count(out, "  * "), "one marked option per question")
	assert.Equal(t, 3, strings.Count(out, "Answer: "))
}

func TestPreviewQuestionsUnknownKey(t *testing.T) {
	var buf bytes.Buffer
	err := previewQuestions(&buf, newRand(1), problemgen.ModeCurriculum, "phd", answer.ModeEssay, 1)
	assert.ErrorIs(t, err, problemgen.ErrUnknownGenerator)
}

func TestSimulateGame(t *testing.T) {
	var buf bytes.Buffer
	err := simulateGame(&buf, newRand(7), problemgen.ModeDifficulty, "easy", answer.ModeEssay, 6, 3)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "screen playing")
	assert.Equal(t, 2, strings.Count(out, "answer timed out"))
	assert.Equal(t, 4, strings.Count(out, "answer correct"))
	assert.Contains(t, out, "lives 3")
	assert.Contains(t, out, "game over: score")
}

func TestSimulateTimeAttack(t *testing.T) {
	var buf bytes.Buffer
	err := simulateGame(&buf, newRand(7), problemgen.ModeDifficulty, "timeattack", answer.ModeMultiple, 4, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "lives ∞")
	assert.Contains(t, out, "clock 59s")
	assert.Equal(t, 2, strings.Count(out, "answer wrong"))
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		ev   session.Event
		want string
	}{
		{session.ScoreEvent{Score: 30, Delta: 20}, "score 30 (+20)"},
		{session.ComboEvent{Combo: 3, Big: true}, "combo 3 BIG"},
		{session.LivesEvent{Lives: 2}, "lives 2"},
		{session.TimerEvent{Value: 42, Global: true}, "clock 42s"},
		{session.AnswerEvent{TimedOut: true, Expected: 12.5}, "answer timed out, expected 12.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeEvent(tt.ev))
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := newRand(99), newRand(99)
	for range 5 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
