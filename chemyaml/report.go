/*
 * report.go, part of gosimm.
 *
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemyaml

import (
	"fmt"
	"io"

	simm "github.com/rmera/gosimm"
	"github.com/rmera/gosimm/typer"
	"gopkg.in/yaml.v3"
)

// Report is a YAML summary of a typing run.
type Report struct {
	System    string          `yaml:"system"`
	OK        bool            `yaml:"ok"`
	Error     string          `yaml:"error,omitempty"`
	Charges   string          `yaml:"charges,omitempty"`
	NetCharge float64         `yaml:"net_charge"`
	Phases    []PhaseReport   `yaml:"phases"`
	Particles []ParticleEntry `yaml:"particles"`
	Types     TypeTables      `yaml:"types"`
}

// PhaseReport is the outcome of one typing phase.
type PhaseReport struct {
	Name     string       `yaml:"name"`
	Status   typer.Status `yaml:"status"`
	Count    int          `yaml:"count"`
	Wildcard int          `yaml:"wildcard,omitempty"`
	Elapsed  string       `yaml:"elapsed"`
}

// ParticleEntry is one particle with its type and charge.
type ParticleEntry struct {
	Index   int     `yaml:"index"`
	Element string  `yaml:"element"`
	Type    string  `yaml:"type"`
	Charge  float64 `yaml:"charge"`
}

// TypeTables lists the types in the registry of the system, in the order
// they were registered.
type TypeTables struct {
	Particles []string     `yaml:"particles,omitempty"`
	Bonds     []string     `yaml:"bonds,omitempty"`
	Angles    []AngleEntry `yaml:"angles,omitempty"`
	Dihedrals []string     `yaml:"dihedrals,omitempty"`
	Impropers []string     `yaml:"impropers,omitempty"`
}

// AngleEntry is an angle type and the number of angles bound to it.
type AngleEntry struct {
	Type   string `yaml:"type"`
	Angles int    `yaml:"angles"`
}

// NewReport builds a report for S. rep and runErr are what typer.Typer.Run
// returned. charges is the charge method used, if any.
func NewReport(S *simm.System, rep *typer.Report, runErr error, charges string) *Report {
	R := &Report{System: S.Name, Charges: charges}
	if rep != nil {
		R.OK = rep.OK() && runErr == nil
		for _, ph := range rep.Phases() {
			R.Phases = append(R.Phases, PhaseReport{
				Name:     ph.Name,
				Status:   ph.Status,
				Count:    ph.Count,
				Wildcard: ph.Wildcard,
				Elapsed:  ph.Elapsed.String(),
			})
		}
	}
	if runErr != nil {
		R.Error = runErr.Error()
	}
	for _, p := range S.Particles {
		R.Particles = append(R.Particles, ParticleEntry{Index: p.Index, Element: p.Element, Type: p.TypeName(), Charge: p.Charge})
		R.NetCharge += p.Charge
	}
	for _, t := range S.Types.ParticleTypes() {
		R.Types.Particles = append(R.Types.Particles, fmt.Sprintf("%s %s mass=%.3f sigma=%.4f epsilon=%.4f", t.Name, t.Element, t.Mass, t.Sigma, t.Epsilon))
	}
	for _, t := range S.Types.BondTypes() {
		R.Types.Bonds = append(R.Types.Bonds, t.String())
	}
	for _, t := range S.Types.AngleTypes() {
		R.Types.Angles = append(R.Types.Angles, AngleEntry{Type: t.String(), Angles: len(t.Members)})
	}
	for _, t := range S.Types.DihedralTypes() {
		R.Types.Dihedrals = append(R.Types.Dihedrals, t.String())
	}
	for _, t := range S.Types.ImproperTypes() {
		R.Types.Impropers = append(R.Types.Impropers, t.String())
	}
	return R
}

// WriteReport encodes R as YAML to w.
func WriteReport(w io.Writer, R *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(R); err != nil {
		return fmt.Errorf("chemyaml: %w", err)
	}
	return enc.Close()
}
