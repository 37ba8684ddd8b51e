package schemes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mq-estimator/algorithms"
)

func TestRainbow128(t *testing.T) {
	r := Rainbow128()
	assert.Equal(t, 100, r.NVariables())
	assert.Equal(t, 64, r.NPolynomials())
	assert.Equal(t, 2, r.NLayers())

	assert.Equal(t, 150, r.HighRank(Classical))
	assert.Equal(t, 86, r.HighRank(Quantum))
	assert.Equal(t, 145, r.HighRank(Setting{Operations: true}))
	assert.Equal(t, 165, r.UOVAttack(Classical))
	assert.Equal(t, 95, r.UOVAttack(Quantum))

	direct, err := r.Direct(Classical)
	require.NoError(t, err)
	assert.Equal(t, 152, direct)
	direct, err = r.Direct(Quantum)
	require.NoError(t, err)
	assert.Equal(t, 111, direct)
	direct, err = r.Direct(Setting{Operations: true})
	require.NoError(t, err)
	assert.Equal(t, 146, direct)

	minrank, err := r.MinRank(Classical)
	require.NoError(t, err)
	assert.Equal(t, 165, minrank)
	minrank, err = r.MinRank(Setting{Operations: true})
	require.NoError(t, err)
	assert.Equal(t, 160, minrank)

	rbs, err := r.BandSeparation(Classical)
	require.NoError(t, err)
	assert.Equal(t, 146, rbs)
	rbs, err = r.BandSeparation(Setting{Operations: true})
	require.NoError(t, err)
	assert.Equal(t, 141, rbs)

	sec, err := r.SecurityLevel(Classical)
	require.NoError(t, err)
	assert.Equal(t, 146, sec)
	sec, err = r.SecurityLevel(Quantum)
	require.NoError(t, err)
	assert.Equal(t, 86, sec)
}

func TestRainbowLayers(t *testing.T) {
	r := Rainbow192()
	v, err := r.NVinegarAtLayer(1)
	require.NoError(t, err)
	assert.Equal(t, 100, v)
	o, err := r.NOilAtLayer(0)
	require.NoError(t, err)
	assert.Equal(t, 32, o)

	_, err = r.NOilAtLayer(2)
	require.ErrorIs(t, err, algorithms.ErrOutOfRange)
	assert.Equal(t, "Rainbow signature over GF(256) with 148 variables and 80 polynomials", r.String())
}

func TestRainbowInvalid(t *testing.T) {
	_, err := NewRainbow(16, 10, 4, 10)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "strictly less than n")

	_, err = NewRainbow(6, 10, 4)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)

	_, err = NewRainbow(16, 10)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)

	_, err = NewRainbow(16, 10, 5, 3)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
}

func TestUOV(t *testing.T) {
	u, err := NewUOV(16, 25, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, u.NVinegarVars())
	assert.Equal(t, 10, u.NOilVars())
	assert.Equal(t, "UOV signature over GF(16) with 25 variables and 10 polynomials", u.String())

	assert.Equal(t, 56, u.HighRank(Classical))
	assert.Equal(t, 36, u.HighRank(Quantum))
	assert.Equal(t, 34, u.UOVAttack(Classical))
	assert.Equal(t, 26, u.UOVAttack(Quantum))

	direct, err := u.Direct(Classical)
	require.NoError(t, err)
	assert.Equal(t, 33, direct)

	sec, err := u.SecurityLevel(Classical)
	require.NoError(t, err)
	assert.Equal(t, 33, sec)
	sec, err = u.SecurityLevel(Quantum)
	require.NoError(t, err)
	assert.Equal(t, 24, sec)

	_, err = u.rainbow.MinRank(Classical)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = NewUOV(16, 20, 10)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
}

func TestGeMSS128(t *testing.T) {
	g := GeMSS128()
	assert.Equal(t, 162, g.NPolynomials())
	assert.Equal(t, 186, g.NVariables())

	assert.Equal(t, 166, g.ExhaustiveSearch())
	assert.Equal(t, 104, g.QuantumExhaustiveSearchGates(false))
	assert.Equal(t, 105, g.QuantumExhaustiveSearchGates(true))
	assert.Equal(t, 328, g.QuantumExhaustiveSearchQubits(false))
	assert.Equal(t, 174, g.QuantumExhaustiveSearchQubits(true))
	assert.Equal(t, 141, g.ApproximationAlgorithm())
	assert.Equal(t, 128, g.BooleanSolve())
	assert.Equal(t, 74, g.QuantumBooleanSolve())
	assert.Equal(t, 521, g.MinRankKipnisShamir())
	assert.Equal(t, 13, g.DegreeOfRegularity())
	assert.Equal(t, 124, g.GrobnerBases())
	assert.Equal(t, 295, g.MinRankWithProjections())
	assert.Equal(t, 153, g.MinRankWithSupportMinors())
	assert.Equal(t, 226, g.Distinguishing(Classical))
	assert.Equal(t, 175, g.Distinguishing(Quantum))

	assert.Equal(t, 124, g.SecurityLevel(Classical))
	assert.Equal(t, 74, g.SecurityLevel(Quantum))
}

func TestGeMSSVariants(t *testing.T) {
	blue := BlueGeMSS128()
	assert.Equal(t, 536, blue.MinRankKipnisShamir())
	assert.Equal(t, 14, blue.DegreeOfRegularity())
	assert.Equal(t, 131, blue.GrobnerBases())
	assert.Equal(t, 299, blue.MinRankWithProjections())
	assert.Equal(t, 240, blue.Distinguishing(Classical))

	red := RedGeMSS128()
	assert.Equal(t, 537, red.MinRankKipnisShamir())
	assert.Equal(t, 298, red.MinRankWithProjections())
	assert.Equal(t, 155, red.MinRankWithSupportMinors())
	assert.Equal(t, 239, red.Distinguishing(Classical))
	assert.Equal(t, 186, red.Distinguishing(Quantum))

	g := GeMSS192()
	assert.Equal(t, 247, g.ExhaustiveSearch())
	assert.Equal(t, 146, g.QuantumExhaustiveSearchGates(false))
	assert.Equal(t, 192, g.BooleanSolve())
	assert.Equal(t, 853, g.MinRankKipnisShamir())
	assert.Equal(t, 185, g.GrobnerBases())
	assert.Equal(t, 346, g.Distinguishing(Classical))
	assert.Equal(t, 265, g.Distinguishing(Quantum))
	assert.Equal(t, 112, g.SecurityLevel(Quantum))
}

func TestGeMSSInvalid(t *testing.T) {
	for _, args := range [][4]int{{1, 10, 1, 1}, {17, 1, 0, 1}, {17, 10, 9, 1}, {17, 10, 1, 0}} {
		_, err := NewGeMSS(args[0], args[1], args[2], args[3])
		require.ErrorIs(t, err, algorithms.ErrInvalidParameter, "%v", args)
	}
}

func TestReports(t *testing.T) {
	s, err := Preset("GeMSS128")
	require.NoError(t, err)
	rep, err := s.Report()
	require.NoError(t, err)
	assert.Equal(t, 124, rep.Classical)
	assert.Equal(t, 74, rep.Quantum)
	require.Len(t, rep.Attacks, 8)
	assert.Equal(t, Attack{"distinguishing", 226, 175}, rep.Attacks[7])
	assert.Equal(t, NoQuantum, rep.Attacks[2].Quantum)

	s, err = Preset("rainbow128")
	require.NoError(t, err)
	rep, err = s.Report()
	require.NoError(t, err)
	assert.Equal(t, 146, rep.Classical)
	assert.Equal(t, 86, rep.Quantum)
	assert.Len(t, rep.Attacks, 5)

	u, err := NewUOV(16, 25, 10)
	require.NoError(t, err)
	rep, err = u.Report()
	require.NoError(t, err)
	assert.Equal(t, []Attack{{"direct", 33, 24}, {"high rank", 56, 36}, {"uov", 34, 26}}, rep.Attacks)
	assert.Equal(t, 33, rep.Classical)
	assert.Equal(t, 24, rep.Quantum)

	_, err = Preset("sphincs")
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Len(t, Presets(), 12)
	assert.Equal(t, "bluegemss128", Presets()[0])
}
