package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Akashnaireruvattu0611/springer-capital-data-engineer-test/pkg/parser"
)

// DictionaryRow is one line of the descriptive data dictionary.
// BusinessDescription is left blank for analysts to fill in.
type DictionaryRow struct {
	TableName           string
	ColumnName          string
	DataType            string
	SemanticType        string
	NullCount           int
	DistinctCount       int
	ExampleValue        string
	BusinessDescription string
}

var dictionaryHeader = []string{
	"table_name", "column_name", "data_type", "semantic_type",
	"null_count", "distinct_count", "example_value", "business_description",
}

// semanticType maps a physical column type to its semantic name.
func semanticType(dataType string) string {
	switch dataType {
	case "int64":
		return "integer"
	case "float64":
		return "decimal"
	case "bool":
		return "boolean"
	case "timestamp":
		return "timestamp"
	default:
		return "string"
	}
}

// exampleValue returns the first non-null value, truncated to 200 characters.
func exampleValue(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if len(v) > 200 {
			return v[:200]
		}
		return v
	}
	return ""
}

// BuildDictionary computes the data dictionary across all loaded tables,
// sorted by (table_name, column_name).
func BuildDictionary(ts *parser.TableSet) []DictionaryRow {
	var rows []DictionaryRow
	for _, t := range ts.Tables {
		for _, col := range t.Columns {
			values := columnValues(t, col)
			dataType := inferColumnType(values)
			rows = append(rows, DictionaryRow{
				TableName:     t.Name,
				ColumnName:    col,
				DataType:      dataType,
				SemanticType:  semanticType(dataType),
				NullCount:     countNulls(values),
				DistinctCount: countDistinct(values),
				ExampleValue:  exampleValue(values),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TableName != rows[j].TableName {
			return rows[i].TableName < rows[j].TableName
		}
		return rows[i].ColumnName < rows[j].ColumnName
	})
	return rows
}

// WriteDictionaryCSV writes the data dictionary to path.
func WriteDictionaryCSV(path string, rows []DictionaryRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dictionary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(dictionaryHeader); err != nil {
		return fmt.Errorf("writing dictionary header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.TableName,
			r.ColumnName,
			r.DataType,
			r.SemanticType,
			strconv.Itoa(r.NullCount),
			strconv.Itoa(r.DistinctCount),
			r.ExampleValue,
			r.BusinessDescription,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing dictionary row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing dictionary: %w", err)
	}
	return f.Close()
}
