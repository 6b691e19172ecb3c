package problemgen

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/mathblitz/internal/profile"
)

// curriculumHandler builds one question for a curriculum level.
type curriculumHandler func(r Rand) *Question

// curriculumHandlers is the single dispatch table for curriculum levels.
var curriculumHandlers = map[Curriculum]curriculumHandler{
	CurriculumEarlyChildhood: genEarlyChildhood,
	CurriculumPrimary:        genPrimary,
	CurriculumLowerSecondary: oneOf(genSignedSum, genSquare, genFractionSum),
	CurriculumScience:        oneOf(genSquareRoot, genLinear, genSine),
	CurriculumVocational:     oneOf(genDiscount, genMarkup),
	CurriculumDiploma:        oneOf(genMean, genProbability),
	CurriculumBachelor:       oneOf(genLimit, genDerivative, genDeterminant),
	CurriculumMaster:         oneOf(genIntegral, genPartial),
	CurriculumDoctorate:      oneOf(genCompound, genMixed, genPercentChain),
}

// oneOf picks one of the sub-generators uniformly per question.
func oneOf(gens ...curriculumHandler) curriculumHandler {
	return func(r Rand) *Question {
		return pick(r, gens)(r)
	}
}

// rupiah formats currency amounts with Indonesian digit grouping.
var rupiah = message.NewPrinter(language.Indonesian)

// primaryRange is the operand range for the primary level.
var primaryRange = profile.Range{Min: 1, Max: 30}

// sineTable holds sin(θ) for the angles asked at upper-secondary level,
// rounded to 2 decimals.
var sineTable = map[int]float64{0: 0, 30: 0.5, 45: 0.71, 60: 0.87, 90: 1}

var sineAngles = []int{0, 30, 45, 60, 90}

func genEarlyChildhood(r Rand) *Question {
	a := randInt(r, 1, 10)
	b := randInt(r, 1, 10)
	return newQuestion("add", fmt.Sprintf("%d + %d", a, b), float64(a+b))
}

func genPrimary(r Rand) *Question {
	return arithmetic(r, primaryRange, []profile.Operator{
		profile.OpAdd, profile.OpSub, profile.OpMul, profile.OpDiv,
	})
}

func genSignedSum(r Rand) *Question {
	a := randInt(r, -20, 20)
	b := randInt(r, -20, 20)
	return newQuestion("signed-add", fmt.Sprintf("%d + (%d)", a, b), float64(a+b))
}

func genSquare(r Rand) *Question {
	n := randInt(r, 2, 15)
	return newQuestion("square", fmt.Sprintf("%d²", n), float64(n*n))
}

func genFractionSum(r Rand) *Question {
	a := randInt(r, 1, 10)
	d := randInt(r, 2, 12)
	c := randInt(r, 1, 10)
	return newQuestion("fraction", fmt.Sprintf("%d/%d + %d/%d", a, d, c, d), float64(a+c)/float64(d))
}

func genSquareRoot(r Rand) *Question {
	n := randInt(r, 1, 15)
	return newQuestion("sqrt", fmt.Sprintf("√%d", n*n), float64(n))
}

func genLinear(r Rand) *Question {
	a := randInt(r, 2, 10)
	b := randInt(r, 1, 20)
	x := randInt(r, 1, 10)
	return newQuestion("linear", fmt.Sprintf("%dx + %d = %d, x = ?", a, b, a*x+b), float64(x))
}

func genSine(r Rand) *Question {
	angle := pick(r, sineAngles)
	return newQuestion("sine", fmt.Sprintf("sin(%d°) ≈ ?", angle), sineTable[angle])
}

func genDiscount(r Rand) *Question {
	price := randInt(r, 50, 500) * 100
	discount := pick(r, []int{10, 15, 20, 25, 30})
	text := rupiah.Sprintf("Rp %d with %d%% off, amount to pay?", price, discount)
	return newQuestion("discount", text, float64(price*(100-discount))/100)
}

func genMarkup(r Rand) *Question {
	cost := randInt(r, 50, 200) * 100
	profit := pick(r, []int{10, 20, 30, 40, 50})
	text := rupiah.Sprintf("Cost Rp %d, %d%% profit, selling price?", cost, profit)
	return newQuestion("markup", text, float64(cost*(100+profit))/100)
}

func genMean(r Rand) *Question {
	nums := make([]string, 5)
	sum := 0
	for i := range nums {
		n := randInt(r, 1, 20)
		sum += n
		nums[i] = fmt.Sprint(n)
	}
	return newQuestion("mean", fmt.Sprintf("Mean of %s?", strings.Join(nums, ", ")), float64(sum)/5)
}

func genProbability(r Rand) *Question {
	total := randInt(r, 20, 50)
	success := randInt(r, 5, 15)
	return newQuestion("probability", fmt.Sprintf("P(A) = %d/%d, as a decimal?", success, total), float64(success)/float64(total))
}

func genLimit(r Rand) *Question {
	a := randInt(r, 2, 10)
	return newQuestion("limit", fmt.Sprintf("lim(x→%d) (x² - %d²)/(x - %d)", a, a, a), float64(2*a))
}

func genDerivative(r Rand) *Question {
	a := randInt(r, 2, 10)
	b := randInt(r, 1, 10)
	return newQuestion("derivative", fmt.Sprintf("f(x) = %dx² + %dx, coefficient of x in f'(x)?", a, b), float64(2*a))
}

func genDeterminant(r Rand) *Question {
	a := randInt(r, 1, 5)
	b := randInt(r, 1, 5)
	c := randInt(r, 1, 5)
	d := randInt(r, 1, 5)
	return newQuestion("determinant", fmt.Sprintf("det |%d %d; %d %d|", a, b, c, d), float64(a*d-b*c))
}

func genIntegral(r Rand) *Question {
	n := randInt(r, 2, 5)
	return newQuestion("integral", fmt.Sprintf("∫x^%d dx, coefficient?", n), 1/float64(n+1))
}

func genPartial(r Rand) *Question {
	a := randInt(r, 2, 5)
	b := randInt(r, 2, 5)
	return newQuestion("partial", fmt.Sprintf("f(x,y) = %dxy + %dy², coefficient of y in ∂f/∂y?", a, b), float64(2*b))
}

func genCompound(r Rand) *Question {
	a := randInt(r, 5, 15)
	b := randInt(r, 2, 8)
	c := randInt(r, 10, 30)
	return newQuestion("compound", fmt.Sprintf("(%d² - %d³) × %d", a, b, c), float64((a*a-b*b*b)*c))
}

func genMixed(r Rand) *Question {
	p := randInt(r, 5, 20)
	q := randInt(r, 2, 10)
	s := randInt(r, 3, 12)
	return newQuestion("mixed", fmt.Sprintf("%d × %d - %d²", p, q, s), float64(p*q-s*s))
}

func genPercentChain(r Rand) *Question {
	base := randInt(r, 100, 500) * 10
	inc := pick(r, []int{10, 20, 30})
	dec := pick(r, []int{10, 15, 20})
	answer := float64(base*(100+inc)*(100-dec)) / 10000
	return newQuestion("percent-chain", fmt.Sprintf("%d +%d%% -%d%%", base, inc, dec), answer)
}
