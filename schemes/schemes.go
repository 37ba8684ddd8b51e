// Package schemes evaluates the security of multivariate signature schemes
// (Rainbow, UOV and the HFEv- family GeMSS) against the known attacks,
// expressed as floor(log2) of the attack cost.
package schemes

import (
	"errors"
	"math"
	"math/big"
	"math/bits"

	"mq-estimator/cost"
	"mq-estimator/estimator"
	"mq-estimator/series"
)

// ErrUnsupported is returned for attacks that do not apply to a parameter
// set, such as layer-separation attacks on a single-layer scheme.
var ErrUnsupported = errors.New("schemes: unsupported attack")

// Setting selects the attacker model of a complexity query.
type Setting struct {
	// Quantum costs exhaustive guesses with Grover search.
	Quantum bool
	// Operations reports field multiplications instead of gates.
	Operations bool
}

var (
	Classical = Setting{}
	Quantum   = Setting{Quantum: true}
)

func floorLog2(c cost.Cost) int {
	return int(math.Floor(c.Log2()))
}

// bitCost converts a count of F_q multiplications to the reported bits.
func bitCost(q int, nmul cost.Cost, s Setting) int {
	if s.Operations {
		return floorLog2(nmul)
	}
	g, err := estimator.NGates(q, nmul)
	if err != nil {
		return floorLog2(nmul)
	}
	return floorLog2(g)
}

// ceilLog2 returns ceil(log2 x) for x >= 2.
func ceilLog2(x int) int { return bits.Len(uint(x - 1)) }

// binomialTable memoises C(n, k) within one computation.
type binomialTable map[[2]int]*big.Int

func (t binomialTable) get(n, k int) *big.Int {
	key := [2]int{n, k}
	if c, ok := t[key]; ok {
		return c
	}
	c := series.Binomial(n, k)
	t[key] = c
	return c
}
