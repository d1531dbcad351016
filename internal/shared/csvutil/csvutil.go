// Package csvutil implements the CSV wire formats used by the import and
// export endpoints.
//
// Export follows the contract expected by downstream spreadsheets: every
// field is wrapped in double quotes with embedded quotes doubled, rows are
// joined by "\n", output is UTF-8. The stdlib csv.Writer quotes only when
// necessary and terminates rows with "\r\n", so encoding is done by hand.
//
// Import uses the stdlib RFC-4180 reader, which correctly handles quoted
// fields containing commas and newlines.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Encode renders a header row plus data rows in the export wire format.
func Encode(headers []string, rows [][]string) []byte {
	var buf bytes.Buffer
	writeRow(&buf, headers)
	for _, row := range rows {
		buf.WriteByte('\n')
		writeRow(&buf, row)
	}
	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
}

// ReadAll parses CSV input into records. Rows may have varying field counts;
// callers validate row shape themselves so that a single malformed row does
// not abort the whole import.
func ReadAll(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return records, nil
}
