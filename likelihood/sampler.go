// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likelihood

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Sampler represents options for rejection sampling from a
// Likelihood. Candidates are drawn uniformly from the likelihood's
// SampleRange box and accepted with probability
// exp(LogLike(x) - MaxLogLike()).
//
// The default (zero) value of Sampler is a reasonable default
// configuration.
type Sampler struct {
	// BatchSize is the number of candidates drawn and evaluated
	// per iteration. 0 means 1000.
	BatchSize int

	// MaxBatches caps the number of candidate batches drawn for a
	// single Sample call. When the cap is reached before enough
	// candidates have been accepted, Sample fails rather than loop
	// forever on a density with a vanishing acceptance rate (or a
	// variant whose declared maximum is wrong). 0 means 10000.
	MaxBatches int

	// Src is the source of randomness. nil means the shared global
	// source.
	Src rand.Source
}

const (
	defaultBatchSize  = 1000
	defaultMaxBatches = 10000
)

// Sample draws numSamples approximately independent points
// distributed according to l's density, as a numSamples×l.Dim()
// row-major batch. Every returned point lies within l.SampleRange().
// The order of the returned points carries no meaning.
//
// Sample fails if the MaxBatches cap is exhausted first. Note that
// correctness also depends on l.MaxLogLike() being a true upper
// bound over the range: candidates whose acceptance ratio exceeds 1
// are simply always accepted, which biases the result toward the
// understated region.
func (s Sampler) Sample(l Likelihood, numSamples int) ([][]float64, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("likelihood: negative sample count %d", numSamples)
	}
	batchSize := s.BatchSize
	if batchSize == 0 {
		batchSize = defaultBatchSize
	}
	maxBatches := s.MaxBatches
	if maxBatches == 0 {
		maxBatches = defaultMaxBatches
	}

	lo, hi := l.SampleRange()
	bounds := make([]r1.Interval, len(lo))
	for i := range bounds {
		bounds[i] = r1.Interval{Min: lo[i], Max: hi[i]}
	}
	proposal := distmv.NewUniform(bounds, s.Src)
	unif := rand.Float64
	if s.Src != nil {
		unif = rand.New(s.Src).Float64
	}

	max := l.MaxLogLike()
	samples := make([][]float64, 0, numSamples)
	cand := make([][]float64, batchSize)
	for i := range cand {
		cand[i] = make([]float64, l.Dim())
	}
	for batch := 0; len(samples) < numSamples; batch++ {
		if batch == maxBatches {
			return nil, fmt.Errorf("likelihood: rejection sampling failed to converge: %d of %d samples accepted after %d batches",
				len(samples), numSamples, maxBatches)
		}
		for _, x := range cand {
			proposal.Rand(x)
		}
		for i, ll := range l.LogLikeEach(cand) {
			if math.Exp(ll-max) > unif() {
				samples = append(samples, append([]float64(nil), cand[i]...))
			}
		}
	}
	return samples[:numSamples], nil
}
