// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

// Rosenbrock is the negated Rosenbrock function interpreted as an
// unnormalized log-density,
//
//	log ƒ(x) = -Σ [100(x[i+1] - x[i]²)² + (1 - x[i])²]
//
// summed over consecutive coordinate pairs. The global maximum, 0, is
// at the all-ones vector, deep inside a narrow curved valley, which
// makes this a standard stress test for samplers.
type Rosenbrock struct {
	// Dims is the dimensionality of the input vector. Dims >= 1.
	Dims int
}

func (r Rosenbrock) Dim() int { return r.Dims }

func (r Rosenbrock) LogLike(x []float64) float64 {
	checkDim("Rosenbrock", x, r.Dims)
	var sum float64
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return -sum
}

func (r Rosenbrock) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(r.LogLike, xs)
}

func (r Rosenbrock) MaxLogLike() float64 {
	ones := make([]float64, r.Dims)
	for i := range ones {
		ones[i] = 1
	}
	return r.LogLike(ones)
}

func (r Rosenbrock) SampleRange() (lo, hi []float64) {
	return constRange(r.Dims, -2, 12)
}
