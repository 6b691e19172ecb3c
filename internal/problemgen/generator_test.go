package problemgen

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/abhisek/mathblitz/internal/profile"
)

// scriptedRand replays vals in order, reducing each modulo n. Once the
// script runs out it returns 0.
type scriptedRand struct {
	vals []int
	pos  int
}

func (s *scriptedRand) IntN(n int) int {
	if s.pos >= len(s.vals) {
		return 0
	}
	v := s.vals[s.pos] % n
	s.pos++
	return v
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerate_EasyProfile(t *testing.T) {
	// randInt(1,20) = 1 + IntN(20): 6 -> 7, 2 -> 3; op index 0 -> "+".
	g := New(&scriptedRand{vals: []int{6, 2, 0}}, DefaultConfig())

	q, err := g.Generate(ModeDifficulty, string(profile.Easy))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Text != "7 + 3" {
		t.Errorf("Text = %q, want %q", q.Text, "7 + 3")
	}
	if q.Answer != 10 || !q.IsInteger {
		t.Errorf("Answer = %v (integer=%v), want 10 (integer)", q.Answer, q.IsInteger)
	}
	if q.Mode != ModeDifficulty || q.Key != "easy" {
		t.Errorf("Mode/Key = %q/%q", q.Mode, q.Key)
	}
}

func TestGenerate_LowerSecondarySquare(t *testing.T) {
	// Sub-generator index 1 is the square; randInt(2,15) = 2 + 7 = 9.
	g := New(&scriptedRand{vals: []int{1, 7}}, DefaultConfig())

	q, err := g.Generate(ModeCurriculum, string(CurriculumLowerSecondary))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Text != "9²" {
		t.Errorf("Text = %q, want %q", q.Text, "9²")
	}
	if q.Answer != 81 {
		t.Errorf("Answer = %v, want 81", q.Answer)
	}
	if q.Kind != "square" {
		t.Errorf("Kind = %q, want square", q.Kind)
	}
}

var binaryTextRe = regexp.MustCompile(`^(\d+) ([+\-×÷]) (\d+)$`)

func parseBinary(t *testing.T, text string) (int, string, int) {
	t.Helper()
	m := binaryTextRe.FindStringSubmatch(text)
	if m == nil {
		t.Fatalf("unexpected question text %q", text)
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	return a, m[2], b
}

func TestGenerate_OperandsWithinProfile(t *testing.T) {
	for _, key := range profile.Keys() {
		t.Run(string(key), func(t *testing.T) {
			p, _ := profile.Lookup(key)
			g := New(seeded(uint64(len(key))), DefaultConfig())

			for i := 0; i < 500; i++ {
				q, err := g.Generate(ModeDifficulty, string(key))
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if q.Kind == "pow" {
					if !slicesContains(p.Operators, profile.OpPow) {
						t.Fatalf("power question for profile without ^: %q", q.Text)
					}
					continue
				}

				left, op, right := parseBinary(t, q.Text)
				if !slicesContains(p.Operators, profile.Operator(op)) {
					t.Fatalf("operator %q not in profile %v", op, p.Operators)
				}

				// Recover the drawn operands (a, b).
				var a, b int
				switch profile.Operator(op) {
				case profile.OpAdd, profile.OpMul:
					a, b = left, right
				case profile.OpSub:
					a, b = left-right, right
				case profile.OpDiv:
					a, b = left/right, right
				}
				for _, n := range []int{a, b} {
					if n < p.Range.Min || n > p.Range.Max {
						t.Fatalf("%q: operand %d outside [%d,%d]", q.Text, n, p.Range.Min, p.Range.Max)
					}
				}
			}
		})
	}
}

func TestGenerate_SubtractionAnswerIsFirstOperand(t *testing.T) {
	g := New(seeded(7), DefaultConfig())
	seen := 0
	for i := 0; i < 500; i++ {
		q, err := g.Generate(ModeDifficulty, string(profile.Easy))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Kind != "sub" {
			continue
		}
		seen++
		left, _, right := parseBinary(t, q.Text)
		a := int(q.Answer)
		if left != a+right {
			t.Errorf("%q: displayed minuend %d != a+b (%d+%d)", q.Text, left, a, right)
		}
		if q.Answer < 1 {
			t.Errorf("%q: answer %v should be a positive operand", q.Text, q.Answer)
		}
	}
	if seen == 0 {
		t.Fatal("no subtraction questions generated")
	}
}

func TestGenerate_DivisionIsExact(t *testing.T) {
	g := New(seeded(11), DefaultConfig())
	seen := 0
	for i := 0; i < 500; i++ {
		q, err := g.Generate(ModeDifficulty, string(profile.Normal))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Kind != "div" {
			continue
		}
		seen++
		dividend, _, divisor := parseBinary(t, q.Text)
		if divisor < 1 {
			t.Fatalf("%q: divisor %d", q.Text, divisor)
		}
		if dividend%divisor != 0 {
			t.Errorf("%q: not exactly divisible", q.Text)
		}
		if float64(dividend/divisor) != q.Answer {
			t.Errorf("%q: answer %v, want %d", q.Text, q.Answer, dividend/divisor)
		}
	}
	if seen == 0 {
		t.Fatal("no division questions generated")
	}
}

func TestGenerate_PowerUsesNarrowRanges(t *testing.T) {
	// Operands 0,0; op index 4 -> "^"; base 2+8=10; exponent 2+1=3.
	g := New(&scriptedRand{vals: []int{0, 0, 4, 8, 1}}, DefaultConfig())
	q, err := g.Generate(ModeDifficulty, string(profile.Hard))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Text != "10^3" || q.Answer != 1000 {
		t.Errorf("got %q = %v, want 10^3 = 1000", q.Text, q.Answer)
	}
}

func TestGenerate_AllCurriculaValid(t *testing.T) {
	g := New(seeded(3), DefaultConfig())
	for _, c := range AllCurricula() {
		t.Run(string(c), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				q, err := g.Generate(ModeCurriculum, string(c))
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if verr := (&StructuralValidator{}).Validate(q); verr != nil {
					t.Fatalf("%q: %v", q.Text, verr)
				}
				if q.Key != string(c) || q.Mode != ModeCurriculum {
					t.Fatalf("Mode/Key = %q/%q", q.Mode, q.Key)
				}
			}
		})
	}
}

func TestCurriculumGenerators(t *testing.T) {
	tests := []struct {
		name   string
		gen    curriculumHandler
		vals   []int
		text   string
		answer float64
	}{
		{"early childhood", genEarlyChildhood, []int{2, 4}, "3 + 5", 8},
		{"signed sum", genSignedSum, []int{16, 11}, "-4 + (-9)", -13},
		{"fraction", genFractionSum, []int{0, 2, 1}, "1/4 + 2/4", 0.75},
		{"sqrt", genSquareRoot, []int{11}, "√144", 12},
		{"linear", genLinear, []int{1, 4, 3}, "3x + 5 = 17, x = ?", 4},
		{"sine", genSine, []int{2}, "sin(45°) ≈ ?", 0.71},
		{"mean", genMean, []int{0, 1, 2, 3, 5}, "Mean of 1, 2, 3, 4, 6?", 3.2},
		{"probability", genProbability, []int{10, 2}, "P(A) = 7/30, as a decimal?", 0.23},
		{"limit", genLimit, []int{3}, "lim(x→5) (x² - 5²)/(x - 5)", 10},
		{"derivative", genDerivative, []int{1, 0}, "f(x) = 3x² + 1x, coefficient of x in f'(x)?", 6},
		{"determinant", genDeterminant, []int{0, 1, 2, 3}, "det |1 2; 3 4|", -2},
		{"integral", genIntegral, []int{0}, "∫x^2 dx, coefficient?", 0.33},
		{"partial", genPartial, []int{0, 1}, "f(x,y) = 2xy + 3y², coefficient of y in ∂f/∂y?", 6},
		{"compound", genCompound, []int{5, 1, 0}, "(10² - 3³) × 10", 730},
		{"mixed", genMixed, []int{0, 0, 0}, "5 × 2 - 3²", 1},
		{"percent chain", genPercentChain, []int{0, 0, 0}, "1000 +10% -10%", 990},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.gen(&scriptedRand{vals: tt.vals})
			if q.Text != tt.text {
				t.Errorf("Text = %q, want %q", q.Text, tt.text)
			}
			if q.Answer != tt.answer {
				t.Errorf("Answer = %v, want %v", q.Answer, tt.answer)
			}
		})
	}
}

func TestCurriculumVocational_CurrencyFormatting(t *testing.T) {
	// price 50+0 -> Rp 5.000; discount index 2 -> 20%.
	q := genDiscount(&scriptedRand{vals: []int{0, 2}})
	if q.Text != "Rp 5.000 with 20% off, amount to pay?" {
		t.Errorf("Text = %q", q.Text)
	}
	if q.Answer != 4000 {
		t.Errorf("Answer = %v, want 4000", q.Answer)
	}

	// cost 50+10 -> Rp 6.000; profit index 4 -> 50%.
	q = genMarkup(&scriptedRand{vals: []int{10, 4}})
	if q.Text != "Cost Rp 6.000, 50% profit, selling price?" {
		t.Errorf("Text = %q", q.Text)
	}
	if q.Answer != 9000 {
		t.Errorf("Answer = %v, want 9000", q.Answer)
	}
}

func TestGenerate_UnknownKeys(t *testing.T) {
	g := New(seeded(1), DefaultConfig())

	_, err := g.Generate(ModeDifficulty, "impossible")
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
	if !errors.Is(err, profile.ErrUnknownDifficulty) {
		t.Errorf("expected wrapped ErrUnknownDifficulty, got %v", err)
	}

	_, err = g.Generate(ModeCurriculum, "phd")
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}

	_, err = g.Generate(Mode("arcade"), "easy")
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

type countingValidator struct {
	calls     int
	failFirst int
	retryable bool
}

func (v *countingValidator) Name() string { return "counting" }

func (v *countingValidator) Validate(q *Question) *ValidationError {
	v.calls++
	if v.calls <= v.failFirst {
		return &ValidationError{Validator: v.Name(), Message: "rejected", Retryable: v.retryable}
	}
	return nil
}

func TestGenerate_RetriesRetryableFailures(t *testing.T) {
	v := &countingValidator{failFirst: 2, retryable: true}
	g := New(seeded(5), Config{Validators: []Validator{v}, MaxAttempts: 3})

	if _, err := g.Generate(ModeDifficulty, "easy"); err != nil {
		t.Fatalf("expected success on third attempt, got %v", err)
	}
	if v.calls != 3 {
		t.Errorf("validator calls = %d, want 3", v.calls)
	}
}

func TestGenerate_GivesUpAfterMaxAttempts(t *testing.T) {
	v := &countingValidator{failFirst: 10, retryable: true}
	g := New(seeded(5), Config{Validators: []Validator{v}, MaxAttempts: 3})

	_, err := g.Generate(ModeDifficulty, "easy")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if v.calls != 3 {
		t.Errorf("validator calls = %d, want 3", v.calls)
	}
}

func TestGenerate_NonRetryableStopsImmediately(t *testing.T) {
	v := &countingValidator{failFirst: 10}
	g := New(seeded(5), Config{Validators: []Validator{v}, MaxAttempts: 5})

	if _, err := g.Generate(ModeDifficulty, "easy"); err == nil {
		t.Fatal("expected error")
	}
	if v.calls != 1 {
		t.Errorf("validator calls = %d, want 1", v.calls)
	}
}

func TestParseCurriculum(t *testing.T) {
	c, err := ParseCurriculum(" SMP ")
	if err != nil || c != CurriculumLowerSecondary {
		t.Errorf("ParseCurriculum(SMP) = %q, %v", c, err)
	}
	if _, err := ParseCurriculum("kuliah"); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("expected ErrUnknownGenerator, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Curriculum")
	if err != nil || m != ModeCurriculum {
		t.Errorf("ParseMode = %q, %v", m, err)
	}
	if _, err := ParseMode("arcade"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func slicesContains(ops []profile.Operator, op profile.Operator) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}
