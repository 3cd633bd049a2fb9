// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import "math"

// GaussianShell is an unnormalized log-density concentrated on a thin
// spherical shell,
//
//	log ƒ(x) = -(‖x‖ - R)² / (2σ²)
//
// The density is constant (and maximal, at 0) everywhere on the shell
// of radius R; the declared maximizer is the point at distance R along
// the first axis.
//
// The zero value of R and Sigma selects the conventional benchmark
// shape R = 2, Sigma = 0.1.
type GaussianShell struct {
	// Dims is the dimensionality of the input vector. Dims >= 1.
	Dims int

	// R is the shell radius. 0 means 2.
	R float64

	// Sigma is the shell width. 0 means 0.1.
	Sigma float64
}

func (g GaussianShell) params() (r, sigma float64) {
	r, sigma = g.R, g.Sigma
	if r == 0 {
		r = 2
	}
	if sigma == 0 {
		sigma = 0.1
	}
	return
}

func (g GaussianShell) Dim() int { return g.Dims }

func (g GaussianShell) LogLike(x []float64) float64 {
	checkDim("GaussianShell", x, g.Dims)
	r, sigma := g.params()
	var ss float64
	for _, v := range x {
		ss += v * v
	}
	d := math.Sqrt(ss) - r
	return -(d * d) / (2 * sigma * sigma)
}

func (g GaussianShell) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(g.LogLike, xs)
}

func (g GaussianShell) MaxLogLike() float64 {
	r, _ := g.params()
	x := make([]float64, g.Dims)
	x[0] = r
	return g.LogLike(x)
}

func (g GaussianShell) SampleRange() (lo, hi []float64) {
	r, sigma := g.params()
	return constRange(g.Dims, -r-5*sigma, r+5*sigma)
}
