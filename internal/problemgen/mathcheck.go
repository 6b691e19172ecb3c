package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer of simple binary
// expressions ("a + b", "a ÷ b", "a + (b)", "a^b", "n²") from the question
// text. Questions it cannot parse pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := computeAnswer(q.Text)
	if err != nil {
		return nil
	}
	if math.Abs(Round2(computed)-q.Answer) > 1e-9 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %s but question claims %s", FormatNumber(computed), FormatNumber(q.Answer)),
			Retryable: true,
		}
	}
	return nil
}

var (
	// Binary arithmetic: "7 + 3", "10 - 3", "7 × 3", "21 ÷ 3", "-4 + (-9)".
	binaryArithRe = regexp.MustCompile(`^(-?\d+) ([+\-×÷]) \(?(-?\d+)\)?$`)

	// Powers: "2^3".
	powerRe = regexp.MustCompile(`^(\d+)\^(\d+)$`)

	// Squares: "9²".
	squareRe = regexp.MustCompile(`^(-?\d+)²$`)
)

// computeAnswer extracts and evaluates an expression from the question text.
func computeAnswer(text string) (float64, error) {
	if m := binaryArithRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		switch m[2] {
		case "+":
			return a + b, nil
		case "-":
			return a - b, nil
		case "×":
			return a * b, nil
		case "÷":
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return a / b, nil
		}
	}
	if m := powerRe.FindStringSubmatch(text); m != nil {
		base, _ := strconv.ParseFloat(m[1], 64)
		exp, _ := strconv.ParseFloat(m[2], 64)
		return math.Pow(base, exp), nil
	}
	if m := squareRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n * n, nil
	}
	return 0, fmt.Errorf("not computable")
}
