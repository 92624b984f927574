// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// chunks splits [0, n) into nworkers contiguous ranges. Returns the bounds of each range
func chunks(n, nworkers int) (bounds [][2]int) {
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > n {
		nworkers = n
	}
	if nworkers == 0 {
		return
	}
	size, rest := n/nworkers, n%nworkers
	start := 0
	for w := 0; w < nworkers; w++ {
		end := start + size
		if w < rest {
			end++
		}
		bounds = append(bounds, [2]int{start, end})
		start = end
	}
	return
}

// parallelFor runs fcn for contiguous ranges of [0, n) using one goroutine per range.
// w is the index of the range. The error of the range with the smallest index is returned
func parallelFor(n, nworkers int, fcn func(w, start, end int) error) error {
	bounds := chunks(n, nworkers)
	if len(bounds) == 1 {
		return fcn(0, bounds[0][0], bounds[0][1])
	}
	errs := make([]error, len(bounds))
	done := make(chan int, len(bounds))
	for w, b := range bounds {
		go func(w, start, end int) {
			errs[w] = fcn(w, start, end)
			done <- 1
		}(w, b[0], b[1])
	}
	for range bounds {
		<-done
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// reduce computes fcn over contiguous ranges of [0, n) in parallel and combines the partial
// results in range order, starting with init. The result depends on n and nworkers only
func reduce(n, nworkers int, init float64, fcn func(start, end int) float64, combine func(a, b float64) float64) float64 {
	bounds := chunks(n, nworkers)
	partial := make([]float64, len(bounds))
	parallelFor(n, nworkers, func(w, start, end int) error {
		partial[w] = fcn(start, end)
		return nil
	})
	res := init
	for _, p := range partial {
		res = combine(res, p)
	}
	return res
}
