// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// QDelta computes the preconditioner matrix approximating the full
// integration matrix of c. The result has the same (M+1)x(M+1) layout as
// Qmat. Available kinds:
//  "IE" -- implicit Euler; lower triangular node spacings
//  "EE" -- explicit Euler; strictly lower triangular, includes the left
//          endpoint column
//  "LU" -- transpose of U from the LU decomposition of Qmat transposed
func QDelta(c *Collocation, kind string) (qd [][]float64, err error) {
	m := c.M
	qd = utl.Alloc(m+1, m+1)
	switch kind {

	case "IE":
		for i := 1; i <= m; i++ {
			for j := 1; j <= i; j++ {
				qd[i][j] = c.Tau[j] - c.Tau[j-1]
			}
		}

	case "EE":
		for i := 1; i <= m; i++ {
			for j := 0; j < i; j++ {
				qd[i][j] = c.Tau[j+1] - c.Tau[j]
			}
		}

	case "LU":
		// Doolittle decomposition of Qmat[1:][1:] transposed; no pivoting is
		// needed for the tabulated node families
		qt := utl.Alloc(m, m)
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				qt[i][j] = c.Qmat[j+1][i+1]
			}
		}
		lower := utl.Alloc(m, m)
		upper := utl.Alloc(m, m)
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				s := qt[i][j]
				for k := 0; k < i; k++ {
					s -= lower[i][k] * upper[k][j]
				}
				upper[i][j] = s
			}
			lower[i][i] = 1
			for j := i + 1; j < m; j++ {
				s := qt[j][i]
				for k := 0; k < i; k++ {
					s -= lower[j][k] * upper[k][i]
				}
				if upper[i][i] == 0 {
					err = chk.Err("LU decomposition of Q failed: zero pivot at %d", i)
					return
				}
				lower[j][i] = s / upper[i][i]
			}
		}
		for i := 1; i <= m; i++ {
			for j := 1; j <= m; j++ {
				qd[i][j] = upper[j-1][i-1]
			}
		}

	default:
		err = chk.Err("unknown qdelta kind %q", kind)
	}
	return
}
