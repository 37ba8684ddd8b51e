// Package field describes the finite fields GF(q) an MQ instance can be
// defined over. Only the order matters to the estimators: q must be a prime
// power p^d, and a few cost models branch on the characteristic p, the
// extension degree d or on q being a power of two.
package field

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// ErrNotPrimePower is returned when an order is not of the form p^d.
var ErrNotPrimePower = errors.New("field: q must be a prime power")

// Order is a validated field order q = P^Degree.
type Order struct {
	Q      int
	P      int
	Degree int
}

// New factors q and returns its descriptor.
func New(q int) (Order, error) {
	p, d, ok := Factor(q)
	if !ok {
		return Order{}, fmt.Errorf("%w (got %d)", ErrNotPrimePower, q)
	}
	return Order{Q: q, P: p, Degree: d}, nil
}

// Factor returns (p, d) with q = p^d when q is a prime power. Every exact
// d-th root of q is a candidate and primality is decided by ring.IsPrime.
func Factor(q int) (p, d int, ok bool) {
	if q < 2 {
		return 0, 0, false
	}
	for d = 1; d < bits.Len(uint(q)); d++ {
		r, exact := root(q, d)
		if !exact {
			continue
		}
		if ring.IsPrime(uint64(r)) {
			return r, d, true
		}
	}
	return 0, 0, false
}

// IsPrimePower reports whether q = p^d for a prime p and d >= 1.
func IsPrimePower(q int) bool {
	_, _, ok := Factor(q)
	return ok
}

// IsPowerOfTwo reports whether q = 2^d with d >= 1.
func IsPowerOfTwo(q int) bool {
	return q >= 2 && q&(q-1) == 0
}

// IsEven reports whether the field has characteristic two.
func (o Order) IsEven() bool { return o.P == 2 }

// root returns r = ⌊q^(1/d)⌋ and whether r^d == q.
func root(q, d int) (int, bool) {
	r := int(math.Round(math.Pow(float64(q), 1/float64(d))))
	for r > 1 && pow(r, d) > q {
		r--
	}
	for pow(r+1, d) <= q {
		r++
	}
	return r, pow(r, d) == q
}

// pow returns b^e, saturating at math.MaxInt.
func pow(b, e int) int {
	out := 1
	for ; e > 0; e-- {
		hi, lo := bits.Mul64(uint64(out), uint64(b))
		if hi != 0 || lo > math.MaxInt {
			return math.MaxInt
		}
		out = int(lo)
	}
	return out
}
