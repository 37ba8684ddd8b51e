package estimator

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"mq-estimator/algorithms"
	"mq-estimator/cost"
	"mq-estimator/prof"
)

func TestIncludedAlgorithms(t *testing.T) {
	cases := []struct {
		n, m, q int
		names   []string
	}{
		{10, 15, 2, []string{"F5", "HybridF5", "DinurFirst", "DinurSecond", "ExhaustiveSearch",
			"Bjorklund", "Lokshtanov", "BooleanSolveFXL", "Crossbred"}},
		{10, 15, 3, []string{"F5", "HybridF5", "ExhaustiveSearch", "Lokshtanov", "BooleanSolveFXL", "Crossbred"}},
		{183, 12, 4, []string{"F5", "HybridF5", "ExhaustiveSearch", "Lokshtanov", "Crossbred", "CGMTA", "KPG", "MHT"}},
		{10, 15, 0, []string{"F5"}},
	}
	for _, c := range cases {
		var opts []Option
		if c.q != 0 {
			opts = append(opts, WithField(c.q))
		}
		e, err := New(c.n, c.m, opts...)
		require.NoError(t, err)
		assert.Equal(t, len(c.names), e.Len(), "n=%d m=%d q=%d", c.n, c.m, c.q)
		assert.Equal(t, c.names, e.Names())
	}
}

func TestInvalidProblem(t *testing.T) {
	_, err := New(0, 5, WithField(2))
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)

	_, err = New(5, 5, WithField(6))
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
}

func TestExcluded(t *testing.T) {
	e, err := New(10, 15, WithField(2), WithExcluded("F5", "Crossbred"))
	require.NoError(t, err)
	assert.Equal(t, 7, e.Len())
	assert.NotContains(t, e.Names(), "F5")
	assert.NotContains(t, e.Names(), "Crossbred")

	_, err = New(10, 15, WithField(2), WithExcluded("Grover"))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestTableAndFastest(t *testing.T) {
	var logs bytes.Buffer
	rec := prof.NewRecorder()
	e, err := New(10, 12, WithField(7),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithRecorder(rec),
	)
	require.NoError(t, err)

	rows := e.Table(false)
	require.Len(t, rows, 6)
	best := math.Inf(1)
	for i, r := range rows {
		assert.Equal(t, e.Names()[i], r.Name)
		best = math.Min(best, r.Time)
	}
	assert.Equal(t, "k: 4, variant: deterministic", rows[4].Parameters)
	assert.InDelta(t, 27.599017, rows[4].Time, 1e-5)

	fastest := e.Fastest(false)
	require.NotNil(t, fastest)
	assert.InDelta(t, best, fastest.TimeComplexity().Log2(), 1e-9)

	assert.NotEmpty(t, rec.SnapshotAndReset())
	assert.Contains(t, logs.String(), "algorithm evaluated")
	assert.Contains(t, logs.String(), "algorithm skipped")
}

func TestFastestEmpty(t *testing.T) {
	e, err := New(10, 15, WithExcluded("F5"))
	require.NoError(t, err)
	assert.Zero(t, e.Len())
	assert.Nil(t, e.Fastest(false))
	assert.Empty(t, e.Table(true))
}

func TestDigest(t *testing.T) {
	rows := []Row{
		{Name: "F5", Time: 30.5, Memory: 20, Parameters: ""},
		{Name: "Lokshtanov", Time: math.Inf(1), Memory: math.Inf(1), Parameters: "δ: -"},
	}
	d := Digest(rows)
	require.Len(t, d, DigestSize)
	assert.Equal(t, d, Digest(rows))

	changed := append([]Row(nil), rows...)
	changed[0].Time = 30.25
	assert.NotEqual(t, d, Digest(changed))
	assert.NotEqual(t, d, Digest(rows[:1]))
}

func TestDigestEncoding(t *testing.T) {
	want := make([]byte, DigestSize)
	sha3.ShakeSum256(want, []byte{1, 0, 0, 0, 2, 0, 0, 0, 'F', '5',
		0, 0, 0, 0, 0, 0, 0xf0, 0x3f, // 1.0
		0, 0, 0, 0, 0, 0, 0, 0x40, // 2.0
		0, 0, 0, 0})
	assert.Equal(t, want, Digest([]Row{{Name: "F5", Time: 1, Memory: 2}}))
}

func TestMinNPolynomials(t *testing.T) {
	cases := []struct{ level, q, want int }{
		{80, 16, 33},
		{80, 31, 32},
		{80, 256, 28},
	}
	for _, c := range cases {
		m, err := MinNPolynomials(c.level, c.q, 2)
		require.NoError(t, err)
		assert.Equal(t, c.want, m, "level=%d q=%d", c.level, c.q)
	}
	m, err := MinNVariables(80, 16, 2)
	require.NoError(t, err)
	assert.Equal(t, 33, m)

	_, err = MinNPolynomials(90, 16, 2)
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
}

func TestMinNPolynomialsBounded(t *testing.T) {
	saved := maxPolynomials
	t.Cleanup(func() { maxPolynomials = saved })
	maxPolynomials = 20

	_, err := MinNPolynomials(80, 16, 2)
	require.ErrorIs(t, err, algorithms.ErrOutOfRange)

	maxPolynomials = 33
	m, err := MinNPolynomials(80, 16, 2)
	require.NoError(t, err)
	assert.Equal(t, 33, m)
}

func TestNGates(t *testing.T) {
	g, err := NGates(16, cost.PowInt(2, 16))
	require.NoError(t, err)
	assert.Equal(t, 2359296.0, g.Float64())

	_, err = NGates(6, cost.Int64(10))
	require.ErrorIs(t, err, algorithms.ErrInvalidParameter)
}
