// Package csvstore keeps user records in a single delimiter-separated text file.
//
// The format is deliberately naive: values are written verbatim with no quoting.
// Only the last column may contain the delimiter, since decoding lets it absorb
// whatever remains of the line.
package csvstore

import (
	"bytes"
	"strings"
)

// Row is one decoded line, keyed by header column name.
type Row struct {
	Line   int // 1-based line number in the decoded blob, zero for rows built in memory
	Values map[string]string
}

// Get returns the value of a column, or "" when the row lacks it.
func (r Row) Get(column string) string {
	return r.Values[column]
}

// Codec converts between rows and the flat-text table format.
type Codec struct {
	columns   []string
	delimiter string
}

// NewCodec creates a codec writing the given columns in order.
func NewCodec(delimiter string, columns ...string) *Codec {
	return &Codec{
		columns:   columns,
		delimiter: delimiter,
	}
}

// Header returns the header line, without a line terminator.
func (c *Codec) Header() string {
	return strings.Join(c.columns, c.delimiter)
}

// Encode writes the header line followed by one line per row.
// Missing values encode as empty fields. Every line ends with a newline.
func (c *Codec) Encode(rows []Row) []byte {
	var buf bytes.Buffer
	buf.WriteString(c.Header())
	buf.WriteByte('\n')

	fields := make([]string, len(c.columns))
	for _, row := range rows {
		for i, column := range c.columns {
			fields[i] = row.Values[column]
		}
		buf.WriteString(strings.Join(fields, c.delimiter))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Decode parses a blob. The first line names the columns; blank lines are skipped.
// A line is split into at most as many fields as there are columns and short
// lines are padded with empty values. An empty or header-only blob decodes to nil.
func (c *Codec) Decode(blob []byte) []Row {
	text := strings.TrimRight(string(blob), "\r\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	header := strings.Split(strings.TrimSuffix(lines[0], "\r"), c.delimiter)

	var rows []Row
	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, c.delimiter, len(header))
		values := make(map[string]string, len(header))
		for j, column := range header {
			if j < len(parts) {
				values[column] = parts[j]
			} else {
				values[column] = ""
			}
		}

		rows = append(rows, Row{Line: i + 2, Values: values})
	}

	return rows
}
