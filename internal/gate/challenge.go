package gate

import (
	"fmt"
	"math/rand"
)

// Factor bounds for the arithmetic challenge.
const (
	MinFactor = 1
	MaxFactor = 12
)

var numerals = []string{"零", "壹", "貳", "叁", "肆", "伍", "陸", "柒", "捌", "玖", "拾", "拾壹", "拾貳"}

// Numeral renders n (0..12) in traditional Chinese numerals.
func Numeral(n int) string {
	if n < 0 || n >= len(numerals) {
		return fmt.Sprint(n)
	}
	return numerals[n]
}

// Challenge is the multiplication question guarding a starting-scope change.
// It keeps unsupervised players from skipping ahead; it is not a lock.
type Challenge struct {
	A, B int
}

// NewChallenge draws two factors from rng.
func NewChallenge(rng *rand.Rand) Challenge {
	span := MaxFactor - MinFactor + 1
	return Challenge{
		A: MinFactor + rng.Intn(span),
		B: MinFactor + rng.Intn(span),
	}
}

// Prompt renders the question.
func (c Challenge) Prompt() string {
	return fmt.Sprintf("%s × %s = ?  (%d × %d)", Numeral(c.A), Numeral(c.B), c.A, c.B)
}

// Answer returns the expected product.
func (c Challenge) Answer() int {
	return c.A * c.B
}

// Check reports whether answer is correct.
func (c Challenge) Check(answer int) bool {
	return answer == c.Answer()
}
