package algorithms

import (
	"fmt"
	"math/big"
	"strings"
)

// Parameter is one named optimisation knob. Value is an int, a string, a
// *big.Rat, or nil when no admissible value exists.
type Parameter struct {
	Name  string
	Value any
}

// Parameters is an ordered list of named values.
type Parameters []Parameter

// Get returns the value stored under name.
func (ps Parameters) Get(name string) (any, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// String renders "k: 4, variant: deterministic"; absent values print "-".
func (ps Parameters) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, formatValue(p.Value))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case *big.Rat:
		if x == nil {
			return "-"
		}
		return x.RatString()
	default:
		return fmt.Sprint(x)
	}
}

// Int is a convenience constructor for an integer parameter.
func Int(name string, v int) Parameter { return Parameter{Name: name, Value: v} }

// String is a convenience constructor for a string parameter.
func String(name, v string) Parameter { return Parameter{Name: name, Value: v} }

// Rat is a convenience constructor for a rational parameter a/b.
func Rat(name string, a, b int64) Parameter {
	return Parameter{Name: name, Value: big.NewRat(a, b)}
}

// lookupInt returns the int stored under name, or def when missing.
func lookupInt(ps Parameters, name string, def int) (int, error) {
	v, ok := ps.Get(name)
	if !ok {
		return def, nil
	}
	i, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidParameter, name, v)
	}
	return i, nil
}

// lookupString returns the string stored under name, or def when missing.
func lookupString(ps Parameters, name, def string) (string, error) {
	v, ok := ps.Get(name)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParameter, name, v)
	}
	return s, nil
}

// lookupRat returns the rational stored under name, or def when missing.
// Integers are accepted and converted.
func lookupRat(ps Parameters, name string, def *big.Rat) (*big.Rat, error) {
	v, ok := ps.Get(name)
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case *big.Rat:
		if x == nil {
			return nil, fmt.Errorf("%w: %s is nil", ErrInvalidParameter, name)
		}
		return x, nil
	case int:
		return new(big.Rat).SetInt64(int64(x)), nil
	}
	return nil, fmt.Errorf("%w: %s must be a rational, got %T", ErrInvalidParameter, name, v)
}

// checkNames rejects parameters the estimator does not know about.
func checkNames(ps Parameters, known ...string) error {
	for _, p := range ps {
		found := false
		for _, k := range known {
			if p.Name == k {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: unknown parameter %q", ErrInvalidParameter, p.Name)
		}
	}
	return nil
}

// floorMul returns ⌊r·n⌋ for a non-negative rational r.
func floorMul(r *big.Rat, n int) int {
	num := new(big.Int).Mul(r.Num(), big.NewInt(int64(n)))
	return int(new(big.Int).Div(num, r.Denom()).Int64())
}
