package schemes

import (
	"math/big"

	"mq-estimator/cost"
)

// supportMinors returns the multiplications of the support minors modelling
// of MinRank with K matrices, target rank r and m rows, minimised over the
// degree b and the number of kept columns n' < nmax. The linearised system
// must have at least as many independent equations as monomials.
func supportMinors(K, r, m, nmax int) cost.Cost {
	C := binomialTable{}
	best := cost.PowInt(2, 512)
	one := big.NewInt(1)
	for b := 1; b <= r+1; b++ {
		for np := r + b; np < nmax; np++ {
			monomials := new(big.Int).Mul(C.get(np, r), C.get(K+b-1, b))
			equations := new(big.Int)
			term := new(big.Int)
			for i := 1; i <= b; i++ {
				term.Mul(C.get(np, r+i), C.get(m+i-1, i))
				term.Mul(term, C.get(K+b-i-1, b-i))
				if i%2 == 1 {
					equations.Add(equations, term)
				} else {
					equations.Sub(equations, term)
				}
			}
			if new(big.Int).Sub(monomials, one).Cmp(equations) > 0 {
				continue
			}
			c := new(big.Int).Mul(monomials, monomials)
			c.Mul(c, big.NewInt(int64(K*(r+1))))
			if v := cost.Int(c); v.Less(best) {
				best = v
			}
		}
	}
	return best
}
