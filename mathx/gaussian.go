// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special math functions shared by the
// likelihood variants.
package mathx

import "math"

// LogGaussianPDF returns the normalized log-density at theta of an
// isotropic normal distribution with mean mu and standard deviation
// sigma in each of the len(theta) dimensions. A scalar argument is a
// one-element slice.
func LogGaussianPDF(theta []float64, sigma, mu float64) float64 {
	var ss float64
	for _, t := range theta {
		d := t - mu
		ss += d * d
	}
	n := float64(len(theta))
	return -ss/(2*sigma*sigma) - n/2*math.Log(2*math.Pi*sigma*sigma)
}
