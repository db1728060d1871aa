package chemgraph

import (
	"testing"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/internal/molecules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenzene(Te *testing.T) {
	for _, arom := range []bool{false, true} {
		S := molecules.Benzene(arom)
		rings := Perceive(S)
		require.Len(Te, rings, 1)
		assert.Equal(Te, 6, rings[0].Len())
		assert.True(Te, rings[0].Aromatic)
		for i := 0; i < 6; i++ {
			p := S.Particles[i]
			assert.True(Te, p.Aromatic)
			assert.Equal(Te, 6, p.RingSize)
			assert.Equal(Te, 1, p.AromaticRings)
		}
		for _, p := range S.Particles[6:] {
			assert.False(Te, p.Aromatic)
			assert.Zero(Te, p.RingSize)
		}
		for _, b := range S.Bonds[:6] {
			assert.Equal(Te, 6, b.RingSize)
		}
		assert.Zero(Te, S.Bonds[6].RingSize)
	}
}

func TestSmallRings(Te *testing.T) {
	S := molecules.Cyclobutane()
	rings := Perceive(S)
	require.Len(Te, rings, 1)
	assert.Equal(Te, 4, rings[0].Len())
	assert.False(Te, rings[0].Aromatic)
	assert.Equal(Te, 4, S.Particles[0].RingSize)

	S = molecules.Cyclopropane()
	rings = Perceive(S)
	require.Len(Te, rings, 1)
	assert.Equal(Te, 3, S.Particles[2].RingSize)

	S = molecules.Butane()
	assert.Empty(Te, Perceive(S))
}

func TestNaphthalene(Te *testing.T) {
	S := molecules.Naphthalene()
	rings := Perceive(S)
	require.Len(Te, rings, 2)
	for _, r := range rings {
		assert.True(Te, r.Aromatic)
		assert.Equal(Te, 6, r.Len())
	}
	for i := 0; i < 10; i++ {
		want := 1
		if i == 4 || i == 9 {
			want = 2
		}
		assert.Equal(Te, want, S.Particles[i].AromaticRings, "particle %d", i)
		assert.Equal(Te, want, S.Particles[i].Rings, "particle %d", i)
	}
}

func TestHeteroaromatic(Te *testing.T) {
	S := molecules.Pyridine()
	rings := Perceive(S)
	require.Len(Te, rings, 1)
	assert.True(Te, rings[0].Aromatic)

	S = molecules.Pyrrole()
	rings = Perceive(S)
	require.Len(Te, rings, 1)
	assert.Equal(Te, 5, rings[0].Len())
	assert.True(Te, rings[0].Aromatic)
	assert.True(Te, S.Particles[0].Aromatic)
}

func TestBiphenylBridge(Te *testing.T) {
	S := molecules.Biphenyl()
	rings := Perceive(S)
	require.Len(Te, rings, 2)
	bridge := S.Particles[0].BondTo(S.Particles[6])
	require.NotNil(Te, bridge)
	assert.Zero(Te, bridge.RingSize)
	assert.True(Te, S.Particles[0].Aromatic)
	assert.True(Te, S.Particles[6].Aromatic)
}

func TestPerceiveResets(Te *testing.T) {
	S := molecules.Benzene(false)
	Perceive(S)
	//break the ring
	S2 := simm.NewSystem("hexatriene")
	for _, p := range S.Particles {
		S2.AddParticle(p.Element, p.Pos)
	}
	for _, b := range S.Bonds {
		if b.Index == 5 {
			continue
		}
		S2.AddBond(b.P1.Index, b.P2.Index, b.Order)
	}
	S2.Particles[0].Aromatic = true
	S2.Particles[0].RingSize = 6
	assert.Empty(Te, Perceive(S2))
	assert.False(Te, S2.Particles[0].Aromatic)
	assert.Zero(Te, S2.Particles[0].RingSize)
}

func TestFragments(Te *testing.T) {
	S := molecules.Water()
	off := S.Len()
	for _, p := range molecules.Methane().Particles {
		S.AddParticle(p.Element, p.Pos)
	}
	S.AddBond(off, off+1, simm.Single)
	S.AddBond(off, off+2, simm.Single)
	S.AddBond(off, off+3, simm.Single)
	S.AddBond(off, off+4, simm.Single)
	S.AddParticle("Na", [3]float64{9, 9, 9})
	frags := Fragments(S)
	require.Len(Te, frags, 3)
	assert.Equal(Te, []int{0, 1, 2}, frags[0])
	assert.Equal(Te, []int{3, 4, 5, 6, 7}, frags[1])
	assert.Equal(Te, []int{8}, frags[2])
}

func TestGraphDuplicateBonds(Te *testing.T) {
	S := molecules.Water()
	S.AddBond(1, 0, simm.Single)
	g := Graph(S)
	assert.Equal(Te, 2, g.Edges().Len())
	e := g.Edge(1, 0)
	require.NotNil(Te, e)
	assert.Equal(Te, int64(1), e.From().ID())
}
