// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Gaussian is a normalized zero-mean multivariate normal log-density
// with unit variances and a constant correlation corr between every
// pair of distinct coordinates. The maximum is at the origin.
type Gaussian struct {
	dims int
	corr float64
	norm *distmv.Normal
}

// NewGaussian returns a Gaussian over dims dimensions with pairwise
// correlation corr. It fails if dims < 1 or if corr makes the
// covariance matrix non-positive-definite (for dims coordinates this
// requires -1/(dims-1) < corr < 1).
func NewGaussian(dims int, corr float64) (*Gaussian, error) {
	if dims < 1 {
		return nil, fmt.Errorf("likelihood: dimension must be positive, got %d", dims)
	}
	cov := mat.NewSymDense(dims, nil)
	for i := 0; i < dims; i++ {
		cov.SetSym(i, i, 1)
		for j := i + 1; j < dims; j++ {
			cov.SetSym(i, j, corr)
		}
	}
	norm, ok := distmv.NewNormal(make([]float64, dims), cov, nil)
	if !ok {
		return nil, fmt.Errorf("likelihood: correlation %v gives a non-positive-definite covariance in %d dimensions", corr, dims)
	}
	return &Gaussian{dims: dims, corr: corr, norm: norm}, nil
}

func (g *Gaussian) Dim() int { return g.dims }

// Corr returns the pairwise correlation coefficient.
func (g *Gaussian) Corr() float64 { return g.corr }

func (g *Gaussian) LogLike(x []float64) float64 {
	checkDim("Gaussian", x, g.dims)
	return g.norm.LogProb(x)
}

func (g *Gaussian) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(g.LogLike, xs)
}

func (g *Gaussian) MaxLogLike() float64 {
	return g.LogLike(make([]float64, g.dims))
}

func (g *Gaussian) SampleRange() (lo, hi []float64) {
	return constRange(g.dims, -5, 5)
}
