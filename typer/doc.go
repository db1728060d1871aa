/*
 * doc.go, part of gosimm.
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

// Package typer assigns force field types to a simm.System.
//
// A Typer runs five phases, each one starting only after the previous one
// is done: particles, bonds, angles, dihedrals and impropers. Particle types
// come from a Classifier (gaff2.Rules is the one shipped with the library),
// and all parameters from a reference ff.Catalog. The records actually used
// are copied into the system's own ff.Registry, so each system ends up with
// a small catalog of its own.
//
//	cat, err := gaff2.Catalog()
//	if err != nil {
//		panic(err)
//	}
//	T := typer.New(cat, gaff2.New(), typer.WithWorkers(4))
//	report, err := T.Run(ctx, system)
//
// Within a phase, work can be split among several goroutines. Results are
// bound to the system in index order afterwards, so the outcome does not
// depend on the number of workers.
package typer
