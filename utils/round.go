// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"strconv"
)

// Round rounds x to places decimal digits.
//
// Rounding is performed on the exact binary value of x, and exact ties go to
// the even digit. That means Round(0.125, 2) == 0.12 and Round(2.675, 2) ==
// 2.67, because the literal 2.675 is stored as 2.67499999...
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}

	return v
}
