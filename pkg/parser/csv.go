// Package parser turns the raw snapshot export files into tables of named
// columns. It is deliberately tolerant: mixed encodings, ragged rows, and
// lazy quoting are all recovered with warnings instead of failing the run.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Warning represents a non-fatal issue encountered while parsing a table.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Table is one named tabular dataset: an ordered header plus rows keyed by
// column name. Empty cells are nulls.
type Table struct {
	Name     string              `json:"name"`
	Columns  []string            `json:"columns"`
	Rows     []map[string]string `json:"rows"`
	Warnings []Warning           `json:"warnings"`
	Encoding string              `json:"encoding"`
}

// ParseTable parses CSV bytes into a Table. It handles mismatched column
// counts (pad/truncate), detects encoding, and records warnings for rows it
// had to repair or skip. A file with a header but no data rows is a valid
// empty table.
func ParseTable(name string, data []byte) (*Table, error) {
	decoded, encName, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed for %s: %w", name, err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Variable field counts are handled below with padding/truncation.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("table %s: empty file, no header row found", name)
		}
		return nil, fmt.Errorf("table %s: failed to read header row: %w", name, err)
	}

	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	headerCount := len(headers)
	table := &Table{
		Name:     name,
		Columns:  headers,
		Encoding: encName,
	}
	rowNum := 1 // 1-indexed, header is row 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			table.Warnings = append(table.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if len(row) != headerCount {
			if len(row) < headerCount {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), headerCount),
				})
				padded := make([]string, headerCount)
				copy(padded, row)
				row = padded
			} else {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), headerCount),
				})
				row = row[:headerCount]
			}
		}

		record := make(map[string]string, headerCount)
		for i, h := range headers {
			record[h] = strings.TrimSpace(row[i])
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}
