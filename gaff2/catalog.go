/*
 * catalog.go, part of gosimm.
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
	_ "embed"
	"strings"
	"sync"

	"github.com/rmera/gosimm/ff"
)

//go:embed gaff2.ff
var gaff2Data string

var catalog = sync.OnceValues(func() (*ff.Catalog, error) {
	return ff.ReadCatalog(strings.NewReader(gaff2Data), "gaff2", false)
})

// Catalog returns the GAFF2 subset shipped with the library. The catalog is
// parsed once and shared, so it must not be modified.
func Catalog() (*ff.Catalog, error) {
	return catalog()
}
