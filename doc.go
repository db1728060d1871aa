/*
 * doc.go, part of gosimm.
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

/*
Package simm is the main package of the gosimm library. It provides the topology
that force-field typing works on: particles, bonds, and the angles, dihedrals and
impropers derived from them, plus the element data and errors shared by the
rest of the library.

	**gosimm Capabilities**

	Builds a bonded topology (particles with element, position, formal charge and
	linker role; bonds with order).

	Perceives rings, aromatic rings and fragments over the bond graph (package chemgraph).

	Reads force-field type catalogs from text files, optionally compressed
	with zstd or gzip, with #include and #ifdef support (package ff).

	Assigns GAFF2 particle types with per-element rule families (package gaff2).

	Assigns bond, angle, dihedral and improper types, with wildcard dihedral and
	permutation-invariant improper lookups (package typer).

	Assigns Gasteiger-Marsili or QEq partial charges, conserving the charge of
	each fragment (package charge).

The gosimm command (cmd/gosimm) types a YAML topology from the command line.
*/
package simm
