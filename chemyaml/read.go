/*
 * read.go, part of gosimm.
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

// Package chemyaml reads topologies from, and writes typing reports to,
// YAML documents. A topology looks like this:
//
//	name: water
//	particles:
//	  - {element: O, pos: [0.000, 0.000, 0.000]}
//	  - {element: H, pos: [0.957, 0.000, 0.000]}
//	  - {element: H, pos: [-0.240, 0.927, 0.000], linker: head}
//	bonds:
//	  - {a: 0, b: 1, order: 1}
//	  - {a: 0, b: 2, order: 1}
//
// Bond orders can be 1, 2, 3 or ar. Particles are referred to by their
// 0-based position in the list.
package chemyaml

import (
	"fmt"
	"io"
	"os"

	simm "github.com/rmera/gosimm"
	"gopkg.in/yaml.v3"
)

// Topology is the document read by ReadSystem.
type Topology struct {
	Name      string     `yaml:"name"`
	Particles []Particle `yaml:"particles"`
	Bonds     []Bond     `yaml:"bonds"`
}

// Particle is one entry of the particles list.
type Particle struct {
	Element      string     `yaml:"element"`
	Pos          [3]float64 `yaml:"pos,flow"`
	Linker       string     `yaml:"linker,omitempty"`
	FormalCharge int        `yaml:"formal_charge,omitempty"`
}

// Bond is one entry of the bonds list.
type Bond struct {
	A     int   `yaml:"a"`
	B     int   `yaml:"b"`
	Order Order `yaml:"order"`
}

// Order is a bond order that can be written as a number or as a word.
type Order simm.BondOrder

// UnmarshalYAML parses the scalar with simm.ParseBondOrder.
func (o *Order) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: bond order must be a scalar", n.Line)
	}
	bo, err := simm.ParseBondOrder(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*o = Order(bo)
	return nil
}

// MarshalYAML writes the order as simm.BondOrder.String does.
func (o Order) MarshalYAML() (interface{}, error) {
	return simm.BondOrder(o).String(), nil
}

// System builds a simm.System from the topology.
func (T *Topology) System() (*simm.System, error) {
	S := simm.NewSystem(T.Name)
	for i, p := range T.Particles {
		if p.Element == "" {
			return nil, fmt.Errorf("chemyaml: particle %d has no element", i)
		}
		l, err := simm.ParseLinker(p.Linker)
		if err != nil {
			return nil, fmt.Errorf("chemyaml: particle %d: %w", i, err)
		}
		P := S.AddParticle(p.Element, p.Pos)
		P.Linker = l
		P.FormalCharge = p.FormalCharge
	}
	for i, b := range T.Bonds {
		if b.A < 0 || b.B < 0 || b.A >= S.Len() || b.B >= S.Len() {
			return nil, fmt.Errorf("chemyaml: bond %d refers to a particle out of range (%d-%d, %d particles)", i, b.A, b.B, S.Len())
		}
		if b.A == b.B {
			return nil, fmt.Errorf("chemyaml: bond %d joins particle %d to itself", i, b.A)
		}
		S.AddBond(b.A, b.B, simm.BondOrder(b.Order))
	}
	return S, nil
}

// ReadSystem decodes a topology from r and builds a System with it.
// Unknown keys are an error.
func ReadSystem(r io.Reader) (*simm.System, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var T Topology
	if err := dec.Decode(&T); err != nil {
		return nil, fmt.Errorf("chemyaml: %w", err)
	}
	return T.System()
}

// ReadSystemFile reads a topology from the named file. A system without a
// name gets the file name.
func ReadSystemFile(name string) (*simm.System, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := ReadSystem(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if S.Name == "" {
		S.Name = name
	}
	return S, nil
}
