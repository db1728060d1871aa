package chemyaml

import (
	"bytes"
	"context"
	"strings"
	"testing"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/gaff2"
	"github.com/rmera/gosimm/internal/molecules"
	"github.com/rmera/gosimm/typer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadSystemFile(Te *testing.T) {
	S, err := ReadSystemFile("testdata/water.yaml")
	require.NoError(Te, err)
	assert.Equal(Te, "water", S.Name)
	require.Equal(Te, 3, S.Len())
	assert.Equal(Te, "H", S.Particles[2].Element, "elements are normalized")
	assert.Equal(Te, simm.HeadLinker, S.Particles[2].Linker)
	assert.InDelta(Te, 0.927, S.Particles[2].Pos[1], 1e-9)
	require.Len(Te, S.Bonds, 2)
	assert.Equal(Te, simm.Single, S.Bonds[1].Order)
	assert.Equal(Te, 2, S.Bonds[1].P2.Index)
}

func TestReadSystemFileDefaults(Te *testing.T) {
	S, err := ReadSystemFile("testdata/acetate.yaml")
	require.NoError(Te, err)
	assert.Equal(Te, "testdata/acetate.yaml", S.Name)
	assert.Equal(Te, -1, S.Charge())
	assert.Equal(Te, simm.Double, S.Bonds[1].Order)
	_, err = ReadSystemFile("testdata/nothere.yaml")
	assert.Error(Te, err)
}

func TestReadSystemErrors(Te *testing.T) {
	cases := map[string]string{
		"unknown key": "particles:\n  - {element: C, pos: [0, 0, 0], mass: 12}\n",
		"bad order":   "particles:\n  - {element: C}\n  - {element: C}\nbonds:\n  - {a: 0, b: 1, order: 7}\n",
		"order list":  "particles:\n  - {element: C}\n  - {element: C}\nbonds:\n  - {a: 0, b: 1, order: [1]}\n",
		"range":       "particles:\n  - {element: C}\nbonds:\n  - {a: 0, b: 1, order: 1}\n",
		"self bond":   "particles:\n  - {element: C}\nbonds:\n  - {a: 0, b: 0, order: 1}\n",
		"no element":  "particles:\n  - {pos: [0, 0, 0]}\n",
		"bad linker":  "particles:\n  - {element: C, linker: middle}\n",
	}
	for name, doc := range cases {
		_, err := ReadSystem(strings.NewReader(doc))
		assert.Error(Te, err, name)
	}
	_, err := ReadSystem(strings.NewReader("particles:\n  - {element: C}\n  - {element: O}\nbonds:\n  - {a: 0, b: 1, order: ar}\n"))
	assert.NoError(Te, err)
}

func TestOrderMarshal(Te *testing.T) {
	out, err := yaml.Marshal(Bond{A: 0, B: 1, Order: Order(simm.Aromatic)})
	require.NoError(Te, err)
	var b Bond
	require.NoError(Te, yaml.Unmarshal(out, &b))
	assert.Equal(Te, Order(simm.Aromatic), b.Order)
}

func TestWriteReport(Te *testing.T) {
	S := molecules.Water()
	C, err := gaff2.Catalog()
	require.NoError(Te, err)
	rep, runErr := typer.New(C, gaff2.New()).Run(context.Background(), S)
	require.NoError(Te, runErr)
	S.Particles[0].Charge = -0.8
	S.Particles[1].Charge = 0.4
	S.Particles[2].Charge = 0.4

	R := NewReport(S, rep, nil, "gasteiger")
	assert.True(Te, R.OK)
	assert.InDelta(Te, 0, R.NetCharge, 1e-9)
	require.Len(Te, R.Phases, 5)
	assert.Equal(Te, typer.Completed, R.Phases[2].Status)
	require.Len(Te, R.Types.Angles, 1)
	assert.Equal(Te, 1, R.Types.Angles[0].Angles)

	var buf bytes.Buffer
	require.NoError(Te, WriteReport(&buf, R))
	out := buf.String()
	assert.Contains(Te, out, "system: water")
	assert.Contains(Te, out, "status: completed")
	assert.Contains(Te, out, "type: ow")
	assert.NotContains(Te, out, "error:")

	var back map[string]interface{}
	require.NoError(Te, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(Te, true, back["ok"])
}

func TestReportFailure(Te *testing.T) {
	S := simm.NewSystem("xx")
	S.AddParticle("Xx", [3]float64{})
	C, err := gaff2.Catalog()
	require.NoError(Te, err)
	rep, runErr := typer.New(C, gaff2.New()).Run(context.Background(), S)
	require.Error(Te, runErr)
	R := NewReport(S, rep, runErr, "")
	assert.False(Te, R.OK)
	assert.Contains(Te, R.Error, "unclassifiable particle")
	assert.Equal(Te, typer.Failed, R.Phases[0].Status)
	assert.Equal(Te, typer.Skipped, R.Phases[1].Status)
	assert.Equal(Te, "", R.Particles[0].Type)

	var buf bytes.Buffer
	require.NoError(Te, WriteReport(&buf, R))
	assert.Contains(Te, buf.String(), "status: failed")
	assert.Contains(Te, buf.String(), "status: skipped")
}
