// SPDX-License-Identifier: EPL-2.0

package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ik5/ddalog/telemetry"
)

// DefaultSheet names the sheet when Encoder.Sheet is empty.
const DefaultSheet = "Telemetry"

// Encoder writes a Source as a single sheet workbook.
type Encoder struct {
	// Sheet is the worksheet name. Empty means DefaultSheet.
	Sheet string
}

func (Encoder) Extension() string { return "xlsx" }

func (e Encoder) sheet() string {
	if e.Sheet == "" {
		return DefaultSheet
	}
	return e.Sheet
}

// Encode streams every sample of src into a new workbook and writes it to
// w. It returns the number of data rows.
func (e Encoder) Encode(w io.Writer, src telemetry.Source) (int, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.sheet()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidSheet, sheet, err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return 0, fmt.Errorf("creating stream writer: %w", err)
	}

	if err := writeHeader(f, sw); err != nil {
		return 0, err
	}

	fields := telemetry.Fields()
	row := make([]any, len(fields))
	n := 0

	for s, err := range telemetry.All(src) {
		if err != nil {
			return n, err
		}

		fillRow(row, fields, s)

		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return n, fmt.Errorf("row %d: %w", n, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return n, fmt.Errorf("writing row %d: %w", n, err)
		}
		n++
	}

	if err := sw.Flush(); err != nil {
		return n, fmt.Errorf("flushing sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return n, fmt.Errorf("writing workbook: %w", err)
	}

	return n, nil
}

func writeHeader(f *excelize.File, sw *excelize.StreamWriter) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	// panes and widths must precede the first row
	if err := sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	header := telemetry.Header()
	if err := sw.SetColWidth(1, len(header), 18); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	cells := make([]any, len(header))
	for i, name := range header {
		cells[i] = excelize.Cell{StyleID: bold, Value: name}
	}

	if err := sw.SetRow("A1", cells); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

// fillRow stores the typed cell values of s. Absent values are nil, which
// leaves the cell blank.
func fillRow(row []any, fields []telemetry.Field, s telemetry.Sample) {
	for i, f := range fields {
		v, ok := s.Value(f)
		switch {
		case !ok:
			row[i] = nil
		case f.Integral():
			row[i] = int(v)
		default:
			row[i] = v
		}
	}
}
