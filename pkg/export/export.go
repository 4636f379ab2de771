// Package export serializes a filtered record set into downloadable
// artifacts: CSV with a fixed header row, JSON of the full object graph,
// and HTML snapshots. Filenames follow <artifact-kind>-<iso-date>.<ext>.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"
)

// CSV renders the header row followed by one row per record. Fields are
// RFC 4180 quoted by encoding/csv, so values containing the delimiter,
// quotes, or newlines survive intact.
func CSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("csv row %d has %d fields, header has %d", i, len(row), len(header))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// JSON serializes the record graph with indentation. Struct field order
// gives stable key order, and the output round-trips back to a deep-equal
// value for any store free of circular references.
func JSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Filename builds the artifact filename for kind at the given time,
// e.g. "audit-logs-2024-01-15.csv".
func Filename(kind, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", kind, t.UTC().Format("2006-01-02"), ext)
}
