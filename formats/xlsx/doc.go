// SPDX-License-Identifier: EPL-2.0

// Package xlsx writes telemetry samples to an Excel workbook.
//
// The workbook holds a single sheet laid out like the csv package output:
// a bold, frozen header row followed by one row per sample. Whole number
// channels are stored as integers and the rest as floats; absent values
// are left blank. Rows are streamed, so memory use does not grow with the
// log, but a sheet is limited to 1,048,575 samples below the header.
package xlsx
