package problemgen

import (
	"fmt"
	"math"
)

// StructuralValidator checks that the question text is present and the
// answer is a finite number that obeys the rounding rule.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 200 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text exceeds 200 bytes",
			Retryable: true,
		}
	}
	if math.IsNaN(q.Answer) || math.IsInf(q.Answer, 0) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %v is not a finite number", q.Answer),
			Retryable: true,
		}
	}
	if q.IsInteger != isInteger(q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("IsInteger=%v disagrees with answer %v", q.IsInteger, q.Answer),
		}
	}
	if Round2(q.Answer) != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %v has more than 2 decimals", q.Answer),
		}
	}
	return nil
}
