/*
 * rules.go, part of gosimm.
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

package gaff2

import (
	"strings"

	simm "github.com/rmera/gosimm"
)

// Matcher returns a type name and true if it applies to the environment.
type Matcher func(e *Env) (string, bool)

// Rule is a named matcher. Names only matter for logs and tests.
type Rule struct {
	Name  string
	Match Matcher
}

// Rules is a set of per-element rule families. Within a family, rules are
// tried in order and the first one that matches wins.
type Rules struct {
	families map[string][]Rule
}

// New returns the GAFF2 rules.
func New() *Rules {
	R := &Rules{families: make(map[string][]Rule)}
	R.families["H"] = hydrogenRules
	R.families["C"] = carbonRules
	R.families["N"] = nitrogenRules
	R.families["O"] = oxygenRules
	R.families["P"] = phosphorusRules
	R.families["S"] = sulfurRules
	for _, h := range []string{"F", "Cl", "Br", "I"} {
		R.families[h] = []Rule{{"halogen", halogen}}
	}
	return R
}

// Family returns the rules for the element, in priority order.
func (R *Rules) Family(element string) []Rule {
	return R.families[element]
}

// SetFamily replaces the rules for an element.
func (R *Rules) SetFamily(element string, rules []Rule) {
	R.families[element] = rules
}

// Classify returns the GAFF2 type name of p, and false if no rule matches.
// It only reads p and its neighbors, so it can be called concurrently for
// different particles.
func (R *Rules) Classify(p *simm.Particle) (string, bool) {
	return R.classify(NewEnv(p))
}

func (R *Rules) classify(e *Env) (string, bool) {
	for _, r := range R.families[e.Element] {
		if name, ok := r.Match(e); ok {
			return name, true
		}
	}
	return "", false
}

func halogen(e *Env) (string, bool) {
	return strings.ToLower(e.Element), true
}

var hydrogenRules = []Rule{
	{"water", func(e *Env) (string, bool) {
		o := e.sole()
		if o == nil || o.Element != "O" {
			return "", false
		}
		return "hw", len(o.Bonds) == 2 && countH(o) == 2
	}},
	{"on-heteroatom", func(e *Env) (string, bool) {
		q := e.sole()
		if q == nil {
			return "", false
		}
		switch q.Element {
		case "O":
			return "ho", true
		case "N":
			return "hn", true
		case "P":
			return "hp", true
		case "S":
			return "hs", true
		}
		return "", false
	}},
	{"on-carbon", func(e *Env) (string, bool) {
		q := e.sole()
		if q == nil || q.Element != "C" {
			return "", false
		}
		c := NewEnv(q)
		ew := c.Electronegative()
		switch {
		case c.P.Aromatic || c.Valence == 3:
			return [...]string{"ha", "h4", "h5"}[min(ew, 2)], true
		case c.Valence == 4:
			return [...]string{"hc", "h1", "h2", "h3"}[min(ew, 3)], true
		case c.Valence == 2:
			return "ha", true
		}
		return "", false
	}},
}

var oxygenRules = []Rule{
	{"terminal", func(e *Env) (string, bool) {
		return "o", e.Valence == 1
	}},
	{"two-bonds", func(e *Env) (string, bool) {
		if e.Valence != 2 {
			return "", false
		}
		switch e.Count("H") {
		case 2:
			return "ow", true
		case 1:
			return "oh", true
		}
		return "os", true
	}},
}

var nitrogenRules = []Rule{
	{"sp", func(e *Env) (string, bool) {
		return "n1", e.Valence == 1 || (e.Valence == 2 && e.Bonds(simm.Triple) > 0)
	}},
	{"two-bonds", func(e *Env) (string, bool) {
		if e.Valence != 2 {
			return "", false
		}
		if e.P.Aromatic {
			return "nb", true
		}
		return "n2", e.Bonds(simm.Double) > 0
	}},
	{"three-bonds", func(e *Env) (string, bool) {
		if e.Valence != 3 {
			return "", false
		}
		if e.P.Aromatic {
			return "na", true
		}
		if e.Count("O") >= 2 {
			return "no", true
		}
		for _, q := range e.Neighbors {
			if carbonyl(q) {
				return "n", true
			}
		}
		for _, q := range e.Neighbors {
			if q.Aromatic {
				return "nh", true
			}
		}
		return "n3", true
	}},
	{"four-bonds", func(e *Env) (string, bool) {
		return "n4", e.Valence == 4
	}},
}

var phosphorusRules = []Rule{
	{"by-valence", func(e *Env) (string, bool) {
		switch e.Valence {
		case 2:
			return "p2", true
		case 3:
			return "p3", true
		case 4:
			return "p5", true
		}
		return "", false
	}},
}

var sulfurRules = []Rule{
	{"by-valence", func(e *Env) (string, bool) {
		switch e.Valence {
		case 1:
			return "s", true
		case 2:
			if e.Has("H") {
				return "sh", true
			}
			return "ss", true
		case 3:
			return "s4", true
		case 4:
			return "s6", true
		}
		return "", false
	}},
}

// carbonRules, in priority order. The halogen rule types the carbon with
// the remaining rules and appends the heaviest halogen.
var carbonRules = append([]Rule{{"halogenated", halogenated}}, carbonBase...)

var carbonBase = []Rule{
	{"carbonyl", func(e *Env) (string, bool) {
		return "c", carbonyl(e.P)
	}},
	{"aromatic", func(e *Env) (string, bool) {
		if !e.P.Aromatic {
			return "", false
		}
		if e.P.AromaticRings >= 2 {
			return "cb", true
		}
		for i, q := range e.Neighbors {
			//an aromatic neighbor reached through a non-ring bond: biaryl bridge
			if q.Aromatic && e.P.Bonds[i].RingSize == 0 {
				return "cp", true
			}
		}
		return "ca", true
	}},
	{"sp3", func(e *Env) (string, bool) {
		if e.Valence != 4 {
			return "", false
		}
		switch e.P.RingSize {
		case 3:
			return "cx", true
		case 4:
			return "cy", true
		}
		return "c3", true
	}},
	{"sp2", func(e *Env) (string, bool) {
		if e.Valence != 3 {
			return "", false
		}
		switch e.P.RingSize {
		case 3:
			return "cu", true
		case 4:
			return "cv", true
		}
		return "c2", true
	}},
	{"sp", func(e *Env) (string, bool) {
		return "c1", e.Valence == 2
	}},
}

func halogenated(e *Env) (string, bool) {
	x := e.Heaviest()
	if x == "" {
		return "", false
	}
	for _, r := range carbonBase {
		if base, ok := r.Match(e); ok {
			return base + strings.ToLower(x), true
		}
	}
	return "", false
}
