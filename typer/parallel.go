/*
 * parallel.go, part of gosimm.
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

package typer

import (
	"context"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of items handed to one goroutine.
const minChunk = 64

// each calls fn for every index in [0,n). With more than one worker the
// indexes are split in contiguous chunks run on an errgroup. The errors
// returned by fn are combined in index order. A cancelled context stops
// the work and its error is returned instead.
func (T *Typer) each(ctx context.Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	errs := make([]error, n)
	run := func(ctx context.Context, start, end int) error {
		for i := start; i < end; i++ {
			if (i-start)%minChunk == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			errs[i] = fn(i)
		}
		return nil
	}
	if T.workers <= 1 || n <= minChunk {
		if err := run(ctx, 0, n); err != nil {
			return err
		}
		return multierr.Combine(errs...)
	}
	chunk := (n + T.workers - 1) / T.workers
	if chunk < minChunk {
		chunk = minChunk
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(T.workers)
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error { return run(gctx, start, end) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return multierr.Combine(errs...)
}
