package tokens

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	cellSeparator  = " | "
	headerDivider  = "---"
	minTableRows   = 2
	recordsKindErr = "records must be a sequence of mappings"
)

// Table returns a pipe table. The first row is the header and the rest are
// the body. Fewer than two rows yield the empty string.
func Table(rows ...[]string) string {
	if len(rows) < minTableRows {
		return ""
	}

	header := rows[0]
	divider := make([]string, len(header))
	for i := range divider {
		divider[i] = headerDivider
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, cellSeparator), strings.Join(divider, cellSeparator))
	for _, row := range rows[1:] {
		lines = append(lines, strings.Join(row, cellSeparator))
	}

	return strings.Join(lines, "\n")
}

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered mapping from column name to cell text.
type Record []Field

// Keys returns the keys of r in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the values of r in order.
func (r Record) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = f.Value
	}
	return values
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// TableFromRecords returns a pipe table with one body row per record.
// An empty header uses the keys of the first record. Each row lists the
// record's values in its own order. No records yield the empty string.
func TableFromRecords(records []Record, header []string) string {
	if len(records) == 0 {
		return ""
	}

	if len(header) == 0 {
		header = records[0].Keys()
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)
	for _, rec := range records {
		rows = append(rows, rec.Values())
	}

	return Table(rows...)
}

// RecordsFromYAML decodes a YAML sequence of mappings into records, keeping
// the key order of every mapping. Scalar values are used verbatim.
func RecordsFromYAML(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}

	if doc.Kind == 0 {
		return nil, nil
	}

	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) == 1 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: %s (line %d)", ErrInvalidArgument, recordsKindErr, seq.Line)
	}

	records := make([]Record, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s (line %d)", ErrInvalidArgument, recordsKindErr, item.Line)
		}

		rec := make(Record, 0, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], item.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: value of %q must be a scalar (line %d)",
					ErrInvalidArgument, key.Value, value.Line)
			}
			rec = append(rec, Field{Key: key.Value, Value: value.Value})
		}
		records = append(records, rec)
	}

	return records, nil
}
