package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/temporal"
)

// ProfileRow is one line of the column-level profiling summary.
type ProfileRow struct {
	TableName     string
	ColumnName    string
	DataType      string
	RowCount      int
	NullCount     int
	DistinctCount int
}

// profileHeader matches the profiling summary's fixed column set.
var profileHeader = []string{
	"table_name", "column_name", "data_type", "row_count", "null_count", "distinct_count",
}

// inferColumnType infers a column's physical type from its non-null values.
// Precedence: int64, float64, bool, timestamp, string. A column with no
// non-null values is string.
func inferColumnType(values []string) string {
	nonNull := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			nonNull = append(nonNull, v)
		}
	}
	if len(nonNull) == 0 {
		return "string"
	}

	kinds := []struct {
		name string
		ok   func(string) bool
	}{
		{"int64", func(s string) bool {
			_, err := strconv.ParseInt(s, 10, 64)
			return err == nil
		}},
		{"float64", func(s string) bool {
			_, err := strconv.ParseFloat(s, 64)
			return err == nil
		}},
		{"bool", func(s string) bool {
			l := strings.ToLower(s)
			return l == "true" || l == "false"
		}},
		{"timestamp", func(s string) bool {
			return temporal.ParseInstant(s) != nil
		}},
	}

	for _, kind := range kinds {
		all := true
		for _, v := range nonNull {
			if !kind.ok(v) {
				all = false
				break
			}
		}
		if all {
			return kind.name
		}
	}
	return "string"
}

// columnValues extracts a column in row order.
func columnValues(t *parser.Table, col string) []string {
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, row[col])
	}
	return out
}

func countNulls(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			n++
		}
	}
	return n
}

func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// ProfileTables computes the profiling summary across all loaded tables,
// preserving table load order and column order.
func ProfileTables(ts *parser.TableSet) []ProfileRow {
	var rows []ProfileRow
	for _, t := range ts.Tables {
		for _, col := range t.Columns {
			values := columnValues(t, col)
			rows = append(rows, ProfileRow{
				TableName:     t.Name,
				ColumnName:    col,
				DataType:      inferColumnType(values),
				RowCount:      len(t.Rows),
				NullCount:     countNulls(values),
				DistinctCount: countDistinct(values),
			})
		}
	}
	return rows
}

// WriteProfileCSV writes the profiling summary to path.
func WriteProfileCSV(path string, rows []ProfileRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating profile file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(profileHeader); err != nil {
		return fmt.Errorf("writing profile header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.TableName,
			r.ColumnName,
			r.DataType,
			strconv.Itoa(r.RowCount),
			strconv.Itoa(r.NullCount),
			strconv.Itoa(r.DistinctCount),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing profile row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing profile: %w", err)
	}
	return f.Close()
}
