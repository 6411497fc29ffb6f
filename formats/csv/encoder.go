// SPDX-License-Identifier: EPL-2.0

package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"

	"github.com/ik5/ddalog/telemetry"
)

// Encoder writes a Source as a CSV table. The zero value writes comma
// separated, CRLF terminated rows.
type Encoder struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// LF terminates rows with \n instead of \r\n.
	LF bool
}

func (Encoder) Extension() string { return "csv" }

// Encode writes the header and one row per sample until src is exhausted.
// It returns the number of rows written, excluding the header.
func (e Encoder) Encode(w io.Writer, src telemetry.Source) (int, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	cw := stdcsv.NewWriter(w)
	cw.UseCRLF = !e.LF
	if e.Comma != 0 {
		cw.Comma = e.Comma
	}

	if err := cw.Write(telemetry.Header()); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(telemetry.Header()))
	n := 0

	for s, err := range telemetry.All(src) {
		if err != nil {
			cw.Flush()
			return n, err
		}

		FormatRow(row, s)
		if err := cw.Write(row); err != nil {
			return n, fmt.Errorf("writing row %d: %w", n, err)
		}
		n++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("flushing rows: %w", err)
	}

	return n, nil
}
