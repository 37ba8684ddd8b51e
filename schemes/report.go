package schemes

import (
	"fmt"
	"sort"
	"strings"
)

// NoQuantum marks an attack without a quantum variant.
const NoQuantum = -1

// Attack is one line of a security report, in bits.
type Attack struct {
	Name      string
	Classical int
	Quantum   int
}

// Report lists the attacks on one parameter set and the resulting
// security levels.
type Report struct {
	Scheme    string
	Attacks   []Attack
	Classical int
	Quantum   int
}

// Scheme is implemented by every evaluator of this package.
type Scheme interface {
	Report() (Report, error)
	String() string
}

// Report evaluates every attack on r.
func (r *Rainbow) Report() (Report, error) {
	rep := Report{Scheme: r.String()}
	dc, err := r.Direct(Classical)
	if err != nil {
		return rep, err
	}
	dq, err := r.Direct(Quantum)
	if err != nil {
		return rep, err
	}
	rep.Attacks = []Attack{
		{"direct", dc, dq},
		{"high rank", r.HighRank(Classical), r.HighRank(Quantum)},
		{"uov", r.UOVAttack(Classical), r.UOVAttack(Quantum)},
	}
	if r.NLayers() >= 2 {
		mr, err := r.MinRank(Classical)
		if err != nil {
			return rep, err
		}
		rbs, err := r.BandSeparation(Classical)
		if err != nil {
			return rep, err
		}
		rep.Attacks = append(rep.Attacks, Attack{"minrank", mr, mr}, Attack{"band separation", rbs, rbs})
	}
	rep.Classical, rep.Quantum = rep.Attacks[0].Classical, rep.Attacks[0].Quantum
	for _, a := range rep.Attacks[1:] {
		rep.Classical = min(rep.Classical, a.Classical)
		rep.Quantum = min(rep.Quantum, a.Quantum)
	}
	return rep, nil
}

func (u *UOV) Report() (Report, error) {
	rep, err := u.rainbow.Report()
	rep.Scheme = u.String()
	return rep, err
}

// Report evaluates every attack on g. The distinguishing attack is listed
// but does not enter the security levels.
func (g *GeMSS) Report() (Report, error) {
	return Report{
		Scheme: g.String(),
		Attacks: []Attack{
			{"exhaustive search", g.ExhaustiveSearch(), g.QuantumExhaustiveSearchGates(false)},
			{"boolean solve", g.BooleanSolve(), g.QuantumBooleanSolve()},
			{"approximation", g.ApproximationAlgorithm(), NoQuantum},
			{"minrank kipnis-shamir", g.MinRankKipnisShamir(), NoQuantum},
			{"minrank projections", g.MinRankWithProjections(), NoQuantum},
			{"minrank support minors", g.MinRankWithSupportMinors(), NoQuantum},
			{"grobner bases", g.GrobnerBases(), NoQuantum},
			{"distinguishing", g.Distinguishing(Classical), g.Distinguishing(Quantum)},
		},
		Classical: g.SecurityLevel(Classical),
		Quantum:   g.SecurityLevel(Quantum),
	}, nil
}

var presets = map[string]func() Scheme{
	"rainbow128":   func() Scheme { return Rainbow128() },
	"rainbow192":   func() Scheme { return Rainbow192() },
	"rainbow256":   func() Scheme { return Rainbow256() },
	"gemss128":     func() Scheme { return GeMSS128() },
	"gemss192":     func() Scheme { return GeMSS192() },
	"gemss256":     func() Scheme { return GeMSS256() },
	"bluegemss128": func() Scheme { return BlueGeMSS128() },
	"bluegemss192": func() Scheme { return BlueGeMSS192() },
	"bluegemss256": func() Scheme { return BlueGeMSS256() },
	"redgemss128":  func() Scheme { return RedGeMSS128() },
	"redgemss192":  func() Scheme { return RedGeMSS192() },
	"redgemss256":  func() Scheme { return RedGeMSS256() },
}

// Presets returns the names accepted by Preset, sorted.
func Presets() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Preset returns a standard parameter set by case-insensitive name.
func Preset(name string) (Scheme, error) {
	f, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrUnsupported, name)
	}
	return f(), nil
}
