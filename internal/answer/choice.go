package answer

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/mathblitz/internal/problemgen"
)

// NumOptions is the size of every multiple-choice set.
const NumOptions = 4

// minOffset is the floor of the distractor offset bound, so answers near
// zero still yield distinct distractors.
const minOffset = 5

// MultipleChoice holds four distinct options, one of them correct, in
// display order.
type MultipleChoice struct {
	Options      [NumOptions]float64
	CorrectIndex int
	Answer       float64
}

// NewMultipleChoice builds a shuffled option set around correct.
func NewMultipleChoice(correct float64, rng Rand) *MultipleChoice {
	opts := make([]float64, 0, NumOptions)
	opts = append(opts, correct)
	opts = append(opts, distractors(correct, NumOptions-1, rng)...)
	shuffle(opts, rng)

	mc := &MultipleChoice{Answer: correct}
	copy(mc.Options[:], opts)
	for i, o := range mc.Options {
		if sameValue(o, correct) {
			mc.CorrectIndex = i
			break
		}
	}
	return mc
}

func (m *MultipleChoice) Kind() Mode       { return ModeMultiple }
func (m *MultipleChoice) Correct() float64 { return m.Answer }

// Check accepts the numeric value of an option. Use Choose for an index.
func (m *MultipleChoice) Check(raw string) bool {
	return matches(raw, m.Answer, Tolerance)
}

// Choose reports whether the option at index i is the correct one.
func (m *MultipleChoice) Choose(i int) bool {
	return i == m.CorrectIndex
}

// Labels renders the options for display.
func (m *MultipleChoice) Labels() []string {
	labels := make([]string, NumOptions)
	for i, o := range m.Options {
		labels[i] = problemgen.FormatNumber(o)
	}
	return labels
}

// OffsetBound returns the integer bound of the distractor variation for
// correct: floor(max(|correct|·0.3, 5)).
func OffsetBound(correct float64) int {
	return int(math.Floor(math.Max(math.Abs(correct)*0.3, minOffset)))
}

// distractors draws n values distinct from correct and from each other.
// With a bound of at least 5 there are 10 non-zero variations available,
// so the loop always terminates for n ≤ 3.
func distractors(correct float64, n int, rng Rand) []float64 {
	bound := OffsetBound(correct)
	out := make([]float64, 0, n)
	for len(out) < n {
		variation := rng.IntN(2*bound+1) - bound
		d := problemgen.Round2(correct + float64(variation))
		if sameValue(d, correct) || containsValue(out, d) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// shuffle is an unbiased Fisher-Yates shuffle.
func shuffle(xs []float64, rng Rand) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func sameValue(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func containsValue(xs []float64, v float64) bool {
	for _, x := range xs {
		if sameValue(x, v) {
			return true
		}
	}
	return false
}

// String renders the option list, e.g. "[81 74 90 69] correct=0".
func (m *MultipleChoice) String() string {
	return fmt.Sprintf("[%s] correct=%d", strings.Join(m.Labels(), " "), m.CorrectIndex)
}
