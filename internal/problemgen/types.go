package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGenerator is returned when no generator exists for a mode/key pair.
var ErrUnknownGenerator = errors.New("unknown generator")

// Rand is the randomness source used by every generator.
// *math/rand/v2.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

// Mode selects how questions are generated.
type Mode string

const (
	// ModeDifficulty draws operands and operators from a difficulty profile.
	ModeDifficulty Mode = "difficulty"

	// ModeCurriculum uses the fixed rule of a curriculum level.
	ModeCurriculum Mode = "curriculum"
)

// ParseMode normalizes s and returns the matching mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDifficulty:
		return ModeDifficulty, nil
	case ModeCurriculum:
		return ModeCurriculum, nil
	}
	return "", fmt.Errorf("%w: mode %q", ErrUnknownGenerator, s)
}

// Curriculum is one of the nine fixed education-stage codes.
type Curriculum string

const (
	CurriculumEarlyChildhood Curriculum = "tk"
	CurriculumPrimary        Curriculum = "sd"
	CurriculumLowerSecondary Curriculum = "smp"
	CurriculumScience        Curriculum = "sma"
	CurriculumVocational     Curriculum = "smk"
	CurriculumDiploma        Curriculum = "d3"
	CurriculumBachelor       Curriculum = "s1"
	CurriculumMaster         Curriculum = "s2"
	CurriculumDoctorate      Curriculum = "s3"
)

// AllCurricula returns the curriculum codes from youngest to most advanced.
func AllCurricula() []Curriculum {
	return []Curriculum{
		CurriculumEarlyChildhood,
		CurriculumPrimary,
		CurriculumLowerSecondary,
		CurriculumScience,
		CurriculumVocational,
		CurriculumDiploma,
		CurriculumBachelor,
		CurriculumMaster,
		CurriculumDoctorate,
	}
}

// DisplayName returns a human-readable label for the curriculum code.
func (c Curriculum) DisplayName() string {
	switch c {
	case CurriculumEarlyChildhood:
		return "TK (Kindergarten)"
	case CurriculumPrimary:
		return "SD (Primary)"
	case CurriculumLowerSecondary:
		return "SMP (Lower Secondary)"
	case CurriculumScience:
		return "SMA (Upper Secondary, Science)"
	case CurriculumVocational:
		return "SMK (Vocational)"
	case CurriculumDiploma:
		return "D3 (Diploma)"
	case CurriculumBachelor:
		return "S1 (Bachelor)"
	case CurriculumMaster:
		return "S2 (Master)"
	case CurriculumDoctorate:
		return "S3 (Doctorate)"
	default:
		return string(c)
	}
}

// ParseCurriculum normalizes s and returns the matching curriculum code.
func ParseCurriculum(s string) (Curriculum, error) {
	c := Curriculum(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := curriculumHandlers[c]; !ok {
		return "", fmt.Errorf("%w: curriculum %q", ErrUnknownGenerator, s)
	}
	return c, nil
}

// Question is a generated problem ready for presentation.
type Question struct {
	// Text is the expression shown to the player, e.g. "21 ÷ 3" or "9²".
	Text string

	// Answer is the correct result, rounded to 2 decimals when non-integral.
	Answer float64

	// IsInteger is true when Answer has no fractional part.
	IsInteger bool

	// Mode and Key record what the question was generated for.
	Mode Mode
	Key  string

	// Kind names the sub-generator that produced the question ("add",
	// "square", "discount", ...).
	Kind string
}

// newQuestion builds a Question with the rounding rule applied.
func newQuestion(kind, text string, answer float64) *Question {
	answer = Round2(answer)
	return &Question{
		Text:      text,
		Answer:    answer,
		IsInteger: isInteger(answer),
		Kind:      kind,
	}
}
