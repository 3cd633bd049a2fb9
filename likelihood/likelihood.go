// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import "fmt"

// A Likelihood is a benchmark log-density over a fixed-dimensional
// real vector. Implementations are immutable values: evaluation is a
// pure function of the input and may run concurrently from any number
// of goroutines.
type Likelihood interface {
	// Dim returns the dimensionality of the input vector.
	Dim() int

	// LogLike returns the (possibly unnormalized) log-density at
	// x. It panics if len(x) != Dim(). The result may be -Inf but
	// is never NaN for finite inputs.
	LogLike(x []float64) float64

	// LogLikeEach returns LogLike(xs[i]) for each i. The batch may
	// be empty; the result is then empty but non-nil. Rows are
	// evaluated independently, so batch and single-point
	// evaluation agree exactly.
	LogLikeEach(xs [][]float64) []float64

	// MaxLogLike returns the maximum of LogLike over the region
	// returned by SampleRange. The rejection sampler relies on
	// this being a true upper bound: an understated maximum
	// silently biases or stalls sampling.
	MaxLogLike() float64

	// SampleRange returns the componentwise lower and upper bounds
	// of the axis-aligned box the density is sampled over. Both
	// slices have length Dim() and lo[i] <= hi[i] for all i.
	SampleRange() (lo, hi []float64)
}

// checkDim panics with a descriptive message unless x has exactly dim
// components.
func checkDim(name string, x []float64, dim int) {
	if len(x) != dim {
		panic(fmt.Sprintf("likelihood: %s expects a %d-dimensional point, got %d", name, dim, len(x)))
	}
}

// logLikeEach maps fn over the rows of xs. The result is non-nil even
// for an empty batch.
func logLikeEach(fn func([]float64) float64, xs [][]float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// constRange returns dim-length bound slices with every component set
// to lo and hi, respectively.
func constRange(dim int, lo, hi float64) ([]float64, []float64) {
	l := make([]float64, dim)
	h := make([]float64, dim)
	for i := range l {
		l[i] = lo
		h[i] = hi
	}
	return l, h
}
