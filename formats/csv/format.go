// SPDX-License-Identifier: EPL-2.0

package csv

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/ddalog/telemetry"
)

// FormatFloat prints x in the shortest form that parses back to x.
// Integral values keep a ".0" suffix. Magnitudes below 1e-4 or from 1e16
// up use exponent notation with a signed, two digit minimum exponent.
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(x, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if x != 0 && (exp < -4 || exp >= 16) {
		return e
	}

	f := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(f, '.') {
		f += ".0"
	}
	return f
}

// FormatValue renders field f of s as a cell.
func FormatValue(s telemetry.Sample, f telemetry.Field) string {
	v, ok := s.Value(f)
	if !ok {
		return ""
	}
	if f.Integral() {
		return strconv.FormatInt(int64(v), 10)
	}
	return FormatFloat(v)
}

// FormatRow fills row with the cells of s in header order. row must hold
// at least one cell per field.
func FormatRow(row []string, s telemetry.Sample) {
	for i, f := range telemetry.Fields() {
		row[i] = FormatValue(s, f)
	}
}
