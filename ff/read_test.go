package ff

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCatalogFile(Te *testing.T) {
	C, err := ReadCatalogFile("testdata/base.ff", true)
	require.NoError(Te, err)
	assert.Equal(Te, "base", C.Name)
	assert.Len(Te, C.ParticleTypes(), 3)
	_, ok := C.ParticleType("oh")
	assert.True(Te, ok, "#else branch should be read")
	_, ok = C.ParticleType("ow")
	assert.False(Te, ok)
	hc, ok := C.ParticleType("hc")
	require.True(Te, ok)
	assert.Equal(Te, "H", hc.Element)
	assert.InDelta(Te, 2.6002, hc.Sigma, 1e-9)
	assert.Equal(Te, "H on aliphatic C", hc.Desc)
	assert.Len(Te, C.BondTypes(), 2)
	assert.Len(Te, C.AngleTypes(), 2, "angles come from the included file")
	assert.Len(Te, C.AllDihedralTypes(), 4)
}

func TestReadDefines(Te *testing.T) {
	C, err := ReadCatalogFile("testdata/base.ff", false, "WATER")
	require.NoError(Te, err)
	_, ok := C.ParticleType("ow")
	assert.True(Te, ok)
	_, ok = C.ParticleType("oh")
	assert.False(Te, ok)
	assert.Empty(Te, C.AngleTypes(), "includes are not followed")
}

func TestReadC6C12(Te *testing.T) {
	C, err := ReadCatalogFile("testdata/c6c12.ff", false)
	require.NoError(Te, err)
	ar, ok := C.ParticleType("ar")
	require.True(Te, ok)
	c6, c12 := 0.0062, 9.69e-6
	assert.InDelta(Te, math.Pow(c12/c6, 1.0/6.0), ar.Sigma, 1e-9)
	assert.InDelta(Te, c6*c6/(4*c12), ar.Epsilon, 1e-9)
	rc6, rc12 := sigmaEpsilonToC6C12(ar.Sigma, ar.Epsilon)
	assert.InDelta(Te, c6, rc6, 1e-9)
	assert.InDelta(Te, c12, rc12, 1e-12)

	//writing keeps every digit
	path := filepath.Join(Te.TempDir(), "sigma.ff")
	require.NoError(Te, WriteCatalogFile(C, path))
	C2, err := ReadCatalogFile(path, false)
	require.NoError(Te, err)
	ar2, ok := C2.ParticleType("ar")
	require.True(Te, ok)
	assert.Equal(Te, ar.Sigma, ar2.Sigma)
	assert.Equal(Te, ar.Epsilon, ar2.Epsilon)
	assert.Equal(Te, ar.Mass, ar2.Mass)
}

func TestReadErrors(Te *testing.T) {
	_, err := ReadCatalogFile("testdata/badwild.ff", false)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrBadWildcard))
	var perr *ParseError
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 2, perr.Line)
	assert.Equal(Te, "dihedraltypes", perr.Section)

	_, err = ReadCatalogFile("testdata/badline.ff", false)
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, 3, perr.Line)
	assert.Equal(Te, "bondtypes", perr.Section)

	bad := map[string]string{
		"unterminated": "[ atomtypes ]\n#ifdef A\nc3 C 12.01 0 3.4 0.1\n",
		"stray endif":  "#endif\n",
		"no section":   "c3 c3 232.5 1.535\n",
		"unknown":      "[ moleculetype ]\n",
		"directive":    "#pragma once\n",
		"duplicate":    "[ bondtypes ]\nc3 hc 1 1\nhc c3 2 2\n",
		"short":        "[ angletypes ]\nc3 c3 c3 63.21\n",
	}
	for name, text := range bad {
		_, err := ReadCatalog(strings.NewReader(text), name, false)
		assert.Error(Te, err, name)
	}
	_, err = ReadCatalog(strings.NewReader("[ bondtypes ]\nc3 hc 1 1\nhc c3 2 2\n"), "dup", false)
	assert.True(Te, errors.Is(err, ErrDuplicateType))
}

func TestReadNoTrailingNewline(Te *testing.T) {
	C, err := ReadCatalog(strings.NewReader("[ bondtypes ]\nc3 hc 347.0 1.0969"), "x", false)
	require.NoError(Te, err)
	assert.Len(Te, C.BondTypes(), 1)
}

func TestWriteCompressed(Te *testing.T) {
	C, err := ReadCatalogFile("testdata/base.ff", true)
	require.NoError(Te, err)
	dir := Te.TempDir()
	for _, name := range []string{"copy.ff", "copy.ff.zst", "copy.ff.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, WriteCatalogFile(C, path), name)
		C2, err := ReadCatalogFile(path, false)
		require.NoError(Te, err, name)
		assert.Equal(Te, "copy", C2.Name)
		assert.Len(Te, C2.ParticleTypes(), len(C.ParticleTypes()), name)
		assert.Len(Te, C2.BondTypes(), len(C.BondTypes()), name)
		assert.Len(Te, C2.AngleTypes(), len(C.AngleTypes()), name)
		assert.Len(Te, C2.AllDihedralTypes(), len(C.AllDihedralTypes()), name)
		hc, ok := C2.ParticleType("hc")
		require.True(Te, ok)
		assert.Equal(Te, "H on aliphatic C", hc.Desc)
		d, ok := C2.DihedralType("c3", "c3", "c3", "c3")
		require.True(Te, ok)
		assert.Equal(Te, 2, d.Multiplicity)
	}
	plain, err := os.ReadFile(filepath.Join(dir, "copy.ff"))
	require.NoError(Te, err)
	zst, err := os.ReadFile(filepath.Join(dir, "copy.ff.zst"))
	require.NoError(Te, err)
	assert.NotEqual(Te, plain, zst)
}
