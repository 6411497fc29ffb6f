// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample of
// bitDepth bits. The positive maximum (2^(bitDepth-1) - 1) is used for both
// signs so the mapping stays symmetric.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	maxVal := float64(int(1)<<(bitDepth-1) - 1)

	return int(x * maxVal)
}
