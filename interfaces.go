/*
 * interfaces.go, part of gosimm.
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

package simm

// Particler is the basic interface for a topology.
type Particler interface {
	//Particle returns the Particle corresponding to the index i
	//of the Particle slice in the topology. Should panic if
	//out of range.
	Particle(i int) *Particle
	Len() int
}

// ParticleCharger is Particler but also gives the total
// formal charge.
type ParticleCharger interface {
	Particler
	//Charge gets the total formal charge of the topology
	Charge() int
}

// Masser can return a slice with the masses of each particle in the reference.
type Masser interface {
	Masses() ([]float64, error)
}

var (
	_ ParticleCharger = (*System)(nil)
	_ Masser          = (*System)(nil)
)
