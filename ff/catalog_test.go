package ff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dihedral(a, b, c, d string, n int, k float64) DihedralType {
	return DihedralType{Names: [4]string{a, b, c, d}, Multiplicity: n, K: k}
}

func TestBondAngleLookup(Te *testing.T) {
	C := NewCatalog("t")
	require.NoError(Te, C.AddBondType(BondType{Names: [2]string{"c3", "hc"}, K: 347, R0: 1.09}))
	require.NoError(Te, C.AddAngleType(AngleType{Names: [3]string{"c3", "c3", "hc"}, K: 46.37, Theta0: 110}))
	b, ok := C.BondType("hc", "c3")
	require.True(Te, ok)
	assert.Equal(Te, "c3,hc", b.Name())
	_, ok = C.BondType("hc", "hc")
	assert.False(Te, ok)
	a, ok := C.AngleType("hc", "c3", "c3")
	require.True(Te, ok)
	assert.Equal(Te, [3]string{"c3", "c3", "hc"}, a.Names)
	//same names, different center
	_, ok = C.AngleType("c3", "hc", "c3")
	assert.False(Te, ok)
	assert.True(Te, errors.Is(C.AddBondType(BondType{Names: [2]string{"X", "hc"}}), ErrBadWildcard))
	assert.True(Te, errors.Is(C.AddAngleType(AngleType{Names: [3]string{"hc", "c3", "c3"}}), ErrDuplicateType))
}

func TestDihedralTieBreak(Te *testing.T) {
	C := NewCatalog("t")
	require.NoError(Te, C.AddDihedralType(dihedral("c3", "c3", "c3", "c3", 4, 0.18)))
	require.NoError(Te, C.AddDihedralType(dihedral("c3", "c3", "c3", "c3", 2, 0.25)))
	require.NoError(Te, C.AddDihedralType(dihedral("X", "c3", "c3", "X", 1, 0.15)))
	for i := 0; i < 10; i++ {
		d, ok := C.DihedralType("c3", "c3", "c3", "c3")
		require.True(Te, ok)
		assert.Equal(Te, 2, d.Multiplicity)
	}
	m := C.DihedralTypes("c3", "c3", "c3", "c3")
	require.Len(Te, m, 3)
	assert.Equal(Te, []int{0, 0, 2}, []int{m[0].Wildcards, m[1].Wildcards, m[2].Wildcards})
	assert.Equal(Te, 4, m[1].Type.Multiplicity)
	assert.True(Te, errors.Is(C.AddDihedralType(dihedral("c3", "c3", "c3", "c3", 2, 1)), ErrDuplicateType))
}

func TestDihedralWildcards(Te *testing.T) {
	C := NewCatalog("t")
	require.NoError(Te, C.AddDihedralType(dihedral("X", "c3", "c3", "X", 3, 0.1556)))
	require.NoError(Te, C.AddDihedralType(dihedral("X", "c3", "c3", "hc", 1, 0.10)))
	require.NoError(Te, C.AddDihedralType(dihedral("hc", "c3", "c3", "hc", 3, 0.15)))

	//an exact entry exists: no wildcard entry is picked, whatever its multiplicity
	d, ok := C.DihedralType("hc", "c3", "c3", "hc")
	require.True(Te, ok)
	assert.Equal(Te, 0, d.Wildcards())

	//one-wildcard entries win over two-wildcard ones, in either orientation
	d, ok = C.DihedralType("hc", "c3", "c3", "oh")
	require.True(Te, ok)
	assert.Equal(Te, "X,c3,c3,hc", d.Name())
	d, ok = C.DihedralType("oh", "c3", "c3", "hc")
	require.True(Te, ok)
	assert.Equal(Te, "X,c3,c3,hc", d.Name())

	d, ok = C.DihedralType("oh", "c3", "c3", "oh")
	require.True(Te, ok)
	assert.Equal(Te, 2, d.Wildcards())

	_, ok = C.DihedralType("hc", "c3", "ca", "hc")
	assert.False(Te, ok)

	for _, bad := range []DihedralType{dihedral("c3", "X", "c3", "c3", 3, 1), dihedral("c3", "c3", "X", "c3", 3, 1)} {
		assert.True(Te, errors.Is(C.AddDihedralType(bad), ErrBadWildcard), bad.Name())
	}
}

func TestImproperPermutations(Te *testing.T) {
	C := NewCatalog("t")
	require.NoError(Te, C.AddImproperType(ImproperType{Names: [4]string{"ca", "X", "X", "ha"}, K: 1.1, Multiplicity: 2}))
	require.NoError(Te, C.AddImproperType(ImproperType{Names: [4]string{"ca", "ca", "ca", "X"}, K: 1.1, Multiplicity: 2}))
	require.NoError(Te, C.AddImproperType(ImproperType{Names: [4]string{"c", "c3", "o", "n"}, K: 10.5, Multiplicity: 2}))
	perms := [][3]string{
		{"ca", "ca", "ha"}, {"ca", "ha", "ca"}, {"ha", "ca", "ca"},
		{"ha", "ca", "ca"}, {"ca", "ha", "ca"}, {"ca", "ca", "ha"},
	}
	var first *ImproperType
	for _, p := range perms {
		t, ok := C.ImproperType("ca", p[0], p[1], p[2])
		require.True(Te, ok)
		if first == nil {
			first = t
		}
		assert.Same(Te, first, t)
	}
	assert.Equal(Te, "ca,ca,ca,X", first.Name(), "fewer wildcards first")

	exact := [][3]string{{"c3", "o", "n"}, {"c3", "n", "o"}, {"o", "c3", "n"}, {"o", "n", "c3"}, {"n", "c3", "o"}, {"n", "o", "c3"}}
	for _, p := range exact {
		t, ok := C.ImproperType("c", p[0], p[1], p[2])
		require.True(Te, ok)
		assert.Equal(Te, 0, t.Wildcards())
	}
	_, ok := C.ImproperType("c3", "hc", "hc", "hc")
	assert.False(Te, ok)
	assert.True(Te, errors.Is(C.AddImproperType(ImproperType{Names: [4]string{"X", "ca", "ca", "ca"}}), ErrBadWildcard))
}

func TestBaseName(Te *testing.T) {
	assert.Equal(Te, "c3", BaseName("HL@c3"))
	assert.Equal(Te, "c3", BaseName("TL@c3"))
	assert.Equal(Te, "ca", BaseName("L@ca"))
	assert.Equal(Te, "hc", BaseName("hc"))
}
