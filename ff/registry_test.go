package ff

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIntern(Te *testing.T) {
	R := NewRegistry()
	a := R.InternParticleType(ParticleType{Name: "c3", Element: "C", Mass: 12.01})
	b := R.InternParticleType(ParticleType{Name: "hc", Element: "H"})
	c := R.InternParticleType(ParticleType{Name: "c3", Element: "C", Mass: 99})
	assert.Same(Te, a, c)
	assert.Equal(Te, 1, a.ID)
	assert.Equal(Te, 2, b.ID)
	assert.InDelta(Te, 12.01, c.Mass, 1e-9, "the first record is kept")

	b1 := R.InternBondType(BondType{Names: [2]string{"c3", "hc"}})
	b2 := R.InternBondType(BondType{Names: [2]string{"hc", "c3"}})
	assert.Same(Te, b1, b2)
	got, ok := R.BondType("hc", "c3")
	require.True(Te, ok)
	assert.Same(Te, b1, got)

	an := R.InternAngleType(AngleType{Names: [3]string{"hc", "c3", "hc"}, Members: [][3]int{{9, 9, 9}}})
	assert.Empty(Te, an.Members)
	R.AddAngleMember(an, [3]int{1, 0, 2})
	R.AddAngleMember(an, [3]int{1, 0, 3})
	assert.Equal(Te, [][3]int{{1, 0, 2}, {1, 0, 3}}, an.Members)

	d2 := R.InternDihedralType(DihedralType{Names: [4]string{"c3", "c3", "c3", "c3"}, Multiplicity: 2})
	d4 := R.InternDihedralType(DihedralType{Names: [4]string{"c3", "c3", "c3", "c3"}, Multiplicity: 4})
	assert.NotSame(Te, d2, d4)
	assert.Len(Te, R.DihedralTypes(), 2)

	i1 := R.InternImproperType(ImproperType{Names: [4]string{"ca", "ca", "ha", "ca"}, Multiplicity: 2})
	i2 := R.InternImproperType(ImproperType{Names: [4]string{"ca", "ha", "ca", "ca"}, Multiplicity: 2})
	assert.Same(Te, i1, i2)
	assert.Len(Te, R.ImproperTypes(), 1)
}

func TestRegistryConcurrent(Te *testing.T) {
	R := NewRegistry()
	names := make([]string, 20)
	for i := range names {
		names[i] = fmt.Sprintf("t%02d", i)
	}
	var wg sync.WaitGroup
	results := make([][]*ParticleType, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range names {
				n := names[(i+w)%len(names)]
				results[w] = append(results[w], R.InternParticleType(ParticleType{Name: n}))
				R.InternBondType(BondType{Names: [2]string{n, "hc"}})
			}
		}(w)
	}
	wg.Wait()
	pts := R.ParticleTypes()
	require.Len(Te, pts, len(names))
	assert.Len(Te, R.BondTypes(), len(names))
	ids := make(map[int]bool)
	for i, t := range pts {
		assert.Equal(Te, i+1, t.ID)
		ids[t.ID] = true
	}
	assert.Len(Te, ids, len(names))
	for _, r := range results {
		for _, t := range r {
			got, ok := R.ParticleType(t.Name)
			require.True(Te, ok)
			assert.Same(Te, got, t)
		}
	}
}
