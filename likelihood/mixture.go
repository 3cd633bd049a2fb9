// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import (
	"fmt"
	"math"

	"github.com/likebench/go-likebench/mathx"
	"gonum.org/v1/gonum/floats"
)

// defaultMixWeights is the conventional four-component weighting.
var defaultMixWeights = []float64{0.4, 0.3, 0.2, 0.1}

// GaussianMix is a normalized mixture of up to four weighted isotropic
// Gaussian components, combined in log space with logsumexp. The
// components sit in the plane of the first two coordinates at
// (0, sep), (0, -sep), (sep, 0) and (-sep, 0), in weight order. The
// declared maximizer is the position of the heaviest component.
type GaussianMix struct {
	dims      int
	sep       float64
	weights   []float64
	sigma     float64
	positions [][2]float64
}

// NewGaussianMix returns a GaussianMix over dims >= 2 dimensions with
// component separation sep, mixture weights and common component
// standard deviation sigma. Zero values select the conventional
// benchmark shape: sep = 4, sigma = 1 and, for a nil weights slice,
// weights (0.4, 0.3, 0.2, 0.1).
//
// It fails unless the weights are 2 to 4 positive values summing to 1
// (within 1e-8).
func NewGaussianMix(dims int, sep float64, weights []float64, sigma float64) (*GaussianMix, error) {
	if dims < 2 {
		return nil, fmt.Errorf("likelihood: mixture needs at least 2 dimensions, got %d", dims)
	}
	if sep == 0 {
		sep = 4
	}
	if sigma == 0 {
		sigma = 1
	}
	if weights == nil {
		weights = defaultMixWeights
	}
	if len(weights) < 2 || len(weights) > 4 {
		return nil, fmt.Errorf("likelihood: mixture must have 2, 3 or 4 weights, got %d (%v)", len(weights), weights)
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("likelihood: mixture weights must be positive, got %v", weights)
		}
	}
	if sum := floats.Sum(weights); math.Abs(sum-1) > 1e-8 {
		return nil, fmt.Errorf("likelihood: mixture weights must sum to 1, got %v (sum %v)", weights, sum)
	}

	positions := [][2]float64{{0, sep}, {0, -sep}, {sep, 0}, {-sep, 0}}
	return &GaussianMix{
		dims:      dims,
		sep:       sep,
		weights:   append([]float64(nil), weights...),
		sigma:     sigma,
		positions: positions[:len(weights)],
	}, nil
}

func (g *GaussianMix) Dim() int { return g.dims }

// Weights returns a copy of the mixture weights.
func (g *GaussianMix) Weights() []float64 {
	return append([]float64(nil), g.weights...)
}

func (g *GaussianMix) LogLike(x []float64) float64 {
	checkDim("GaussianMix", x, g.dims)
	shifted := make([]float64, g.dims)
	logls := make([]float64, len(g.weights))
	for i, pos := range g.positions {
		copy(shifted, x)
		shifted[0] -= pos[0]
		shifted[1] -= pos[1]
		logls[i] = mathx.LogGaussianPDF(shifted, g.sigma, 0) + math.Log(g.weights[i])
	}
	return floats.LogSumExp(logls)
}

func (g *GaussianMix) LogLikeEach(xs [][]float64) []float64 {
	return logLikeEach(g.LogLike, xs)
}

func (g *GaussianMix) MaxLogLike() float64 {
	pos := g.positions[floats.MaxIdx(g.weights)]
	x := make([]float64, g.dims)
	x[0], x[1] = pos[0], pos[1]
	return g.LogLike(x)
}

func (g *GaussianMix) SampleRange() (lo, hi []float64) {
	return constRange(g.dims, -g.sep-5*g.sigma, g.sep+5*g.sigma)
}
