// Package rowpool distributes per-row image work across goroutines.
//
// Elementwise image operations have no cross-pixel dependency, so rows
// can be processed in any order on any goroutine without changing the
// result. The pool splits the row range into contiguous chunks, one
// per worker, which keeps each worker on adjacent memory.
package rowpool

import (
	"runtime"
	"sync"
)

// Workers returns the number of workers used for n rows: GOMAXPROCS,
// capped at one worker per row.
func Workers(rows int) int {
	w := runtime.GOMAXPROCS(0)
	if w > rows {
		w = rows
	}
	return w
}

// For calls fn(y) for every y in [0, rows), spread across Workers(rows)
// goroutines, and blocks until all calls have returned.
//
// fn must not assume any ordering between rows. If rows <= 1 or only
// one worker is available, fn runs on the calling goroutine.
func For(rows int, fn func(y int)) {
	workers := Workers(rows)
	if workers <= 1 {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}

	// Contiguous chunks, front-loading the remainder one row at a time.
	chunk := rows / workers
	rem := rows % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := start + chunk
		if i < rem {
			end++
		}
		go func(lo, hi int) {
			defer wg.Done()
			for y := lo; y < hi; y++ {
				fn(y)
			}
		}(start, end)
		start = end
	}
	wg.Wait()
}
