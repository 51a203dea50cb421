// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nbr

import (
	"golang.org/x/sync/errgroup"
)

// ForEach calls fn for each owned point index i ∈ [0, Nowned). Points are split in
// contiguous chunks, one per worker. fn must only write to slots of point i and of
// the bonds of point i
//  workers -- number of goroutines; values < 2 run serially
func (o *List) ForEach(workers int, fn func(i int) error) error {
	n := len(o.Owned)
	if workers < 2 || n < 2*workers {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo := lo
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
