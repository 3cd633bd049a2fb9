// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// likelihood provides a family of closed-form benchmark densities for
// exercising sampling and inference algorithms, plus a shared
// rejection sampler that can draw from any of them.
package likelihood // import "github.com/likebench/go-likebench/likelihood"
