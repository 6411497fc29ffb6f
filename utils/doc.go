// SPDX-License-Identifier: EPL-2.0

// Package utils holds the small numeric helpers shared by the decoder and the
// exporters: fixed-precision rounding, cubic interpolation and PCM scaling.
package utils
