// Package table: CSV exchange. Header row carries feature IDs, first
// column carries sample IDs; the top-left cell is ignored on read and
// written as "sample".
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV parses a table from CSV.
//
// Layout: first record is "<anything>,feat1,feat2,…"; every following
// record is "<sampleID>,v1,v2,…". Parse failures and ragged records
// wrap ErrBadCSV with the offending position.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // raggedness reported with context below

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one sample", ErrBadCSV)
	}

	features := records[0][1:]
	samples := make([]string, 0, len(records)-1)
	data := make([]float64, 0, (len(records)-1)*len(features))
	for li, rec := range records[1:] {
		if len(rec) != len(features)+1 {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d",
				ErrBadCSV, li+2, len(rec), len(features)+1)
		}
		samples = append(samples, rec[0])
		for fi, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: record %d, field %q: %v",
					ErrBadCSV, li+2, features[fi], perr)
			}
			data = append(data, v)
		}
	}

	return New(samples, features, data)
}

// WriteCSV serializes the table in the layout ReadCSV accepts.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(append([]string{"sample"}, t.features...)); err != nil {
		return fmt.Errorf("table: write csv: %w", err)
	}
	rec := make([]string, len(t.features)+1)
	for i, sample := range t.samples {
		rec[0] = sample
		for j := range t.features {
			rec[j+1] = strconv.FormatFloat(t.data.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("table: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("table: write csv: %w", err)
	}

	return nil
}
