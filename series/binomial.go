package series

import "math/big"

// Binomial returns C(n, k), zero outside 0 <= k <= n.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// SumOfBinomialCoefficients returns sum_{i=0..l} C(n, i).
func SumOfBinomialCoefficients(n, l int) *big.Int {
	out := new(big.Int)
	if l > n {
		l = n
	}
	for i := 0; i <= l; i++ {
		out.Add(out, Binomial(n, i))
	}
	return out
}
