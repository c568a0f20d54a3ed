package rast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(p *Path) []CommandKind {
	ks := make([]CommandKind, len(p.Commands()))
	for i, c := range p.Commands() {
		ks[i] = c.Kind
	}
	return ks
}

func TestParseBasic(t *testing.T) {
	p, err := ParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	require.NoError(t, err)
	assert.Equal(t, []CommandKind{CmdMove, CmdLine, CmdLine, CmdLine, CmdClose}, kinds(p))
}

func TestParseImplicitLineAfterMove(t *testing.T) {
	p, err := ParsePath("M0 0 10 0 10 10")
	require.NoError(t, err)
	assert.Equal(t, []CommandKind{CmdMove, CmdLine, CmdLine}, kinds(p))

	p, err = ParsePath("m5 5 1 1")
	require.NoError(t, err)
	assert.Equal(t, []CommandKind{CmdRMove, CmdRLine}, kinds(p))
}

func TestParseImplicitRepeat(t *testing.T) {
	p, err := ParsePath("L1 2 3 4 5 6")
	require.NoError(t, err)
	assert.Equal(t, []CommandKind{CmdLine, CmdLine, CmdLine}, kinds(p))
	assert.Equal(t, 5.0, p.Commands()[2].Args[0])
}

func TestParseRelativeArc(t *testing.T) {
	p, err := ParsePath("M0 0 a 5 5 0 0 1 10 0")
	require.NoError(t, err)
	require.Equal(t, []CommandKind{CmdMove, CmdRArc}, kinds(p))

	arc := p.Commands()[1]
	assert.Equal(t, [7]float64{5, 5, 0, 0, 1, 10, 0}, arc.Args)
}

func TestParseCompressedArcFlags(t *testing.T) {
	// Flags are single digits: "0 0110 0" reads as flags 0,1 then 10,0.
	p, err := ParsePath("M0 0 a5 5 0 0110 0")
	require.NoError(t, err)
	require.Equal(t, []CommandKind{CmdMove, CmdRArc}, kinds(p))
	assert.Equal(t, [7]float64{5, 5, 0, 0, 1, 10, 0}, p.Commands()[1].Args)
}

func TestParseSignDelimitsNumbers(t *testing.T) {
	p, err := ParsePath("M1-2L-3+4")
	require.NoError(t, err)
	require.Equal(t, []CommandKind{CmdMove, CmdLine}, kinds(p))
	assert.Equal(t, 1.0, p.Commands()[0].Args[0])
	assert.Equal(t, -2.0, p.Commands()[0].Args[1])
	assert.Equal(t, -3.0, p.Commands()[1].Args[0])
	assert.Equal(t, 4.0, p.Commands()[1].Args[1])
}

func TestParseExponent(t *testing.T) {
	p, err := ParsePath("M1e2 -1.5e-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Commands()[0].Args[0])
	assert.Equal(t, -0.15, p.Commands()[0].Args[1])
}

func TestParseLeadingZero(t *testing.T) {
	// A bare leading zero before another digit is a complete number.
	p, err := ParsePath("M05")
	require.NoError(t, err)
	assert.Equal(t, [7]float64{0, 5}, truncateArgs(p.Commands()[0]))

	// But a fraction continues the zero.
	p, err = ParsePath("M0.5 1")
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.Commands()[0].Args[0])
}

func truncateArgs(c Command) [7]float64 {
	var a [7]float64
	copy(a[:], c.Args[:c.Kind.Arity()])
	return a
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown command", "X1 2"},
		{"missing numbers", "M"},
		{"bad arc flag", "M0 0 A5 5 0 2 1 10 0"},
		{"bare sign", "M+ 1"},
		{"garbage after number", "M1 2 #"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.text)
			require.ErrorIs(t, err, ErrMalformedPath)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := ParsePath("   ")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"M0 0 L10 0 L10 10 L0 10 Z",
		"M0 0 a 5 5 0 0 1 10 0",
		"m1 2 l3 4 h5 v6 H7 V8",
		"M0 0 C1 2 3 4 5 6 S7 8 9 10",
		"M0 0 Q1 2 3 4 T5 6 t1 1",
		"M0 0 A10 20 0.5 1 0 30 40 Z",
		"M1-2-3-4",
		"M0.5.25.75 1",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			p, err := ParsePath(text)
			require.NoError(t, err)

			q, err := ParsePath(p.String())
			require.NoError(t, err, "serialized form must reparse: %q", p.String())

			require.Equal(t, len(p.Commands()), len(q.Commands()))
			for i := range p.Commands() {
				assert.True(t, p.Commands()[i].Equal(q.Commands()[i]),
					"command %d differs: %v vs %v", i, p.Commands()[i], q.Commands()[i])
			}
		})
	}
}

func TestParsePenTracking(t *testing.T) {
	p, err := ParsePath("M10 10 l5 0 v5 h-5 z")
	require.NoError(t, err)
	assert.Equal(t, Pt(10, 10), p.At(), "close returns the pen to the subpath start")
}
