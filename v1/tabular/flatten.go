package tabular

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned when the input to FlattenValue is not a
// list of records. It marks a local contract violation at the package
// boundary, as opposed to the network and server conditions surfaced
// through result envelopes.
var ErrInvalidArgument = errors.New("tabular: invalid argument")

// IsInvalidArgumentError checks if the error is a flatten contract violation.
func IsInvalidArgumentError(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// Flatten converts a list of generic records into a Table.
//
// An empty or nil input produces a table with zero rows and zero columns.
// Nested records expand one level into "<key>_<nestedKey>" columns; see the
// package documentation for the full policy.
func Flatten(items []map[string]any) (*Table, error) {
	columns := scanColumns(items)

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, buildRow(item, columns))
	}

	return &Table{columns: columns, rows: rows}, nil
}

// FlattenValue is the boundary-validating form of Flatten for untyped JSON
// trees. The value must be a list whose elements are records
// (map[string]any); anything else yields ErrInvalidArgument.
func FlattenValue(v any) (*Table, error) {
	switch list := v.(type) {
	case []map[string]any:
		return Flatten(list)
	case []any:
		items := make([]map[string]any, 0, len(list))
		for i, el := range list {
			rec, ok := el.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, expected a record", ErrInvalidArgument, i, el)
			}
			items = append(items, rec)
		}
		return Flatten(items)
	default:
		return nil, fmt.Errorf("%w: got %T, expected a list of records", ErrInvalidArgument, v)
	}
}

// scanColumns walks all items once and derives the deterministic column
// order: top-level scalar columns in first-seen order, then one group per
// nested parent, groups in parent first-seen order and nested columns in
// nested-key first-seen order within each group.
func scanColumns(items []map[string]any) []string {
	var (
		scalarCols []string
		scalarSeen = map[string]bool{}
		parents    []string
		parentSeen = map[string]bool{}
		nestedCols = map[string][]string{}
		nestedSeen = map[string]map[string]bool{}
	)

	for _, item := range items {
		for _, key := range sortedKeys(item) {
			nested, ok := item[key].(map[string]any)
			if !ok {
				if !scalarSeen[key] {
					scalarSeen[key] = true
					scalarCols = append(scalarCols, key)
				}
				continue
			}

			if !parentSeen[key] {
				parentSeen[key] = true
				parents = append(parents, key)
				nestedSeen[key] = map[string]bool{}
			}
			for _, nk := range sortedKeys(nested) {
				if !nestedSeen[key][nk] {
					nestedSeen[key][nk] = true
					nestedCols[key] = append(nestedCols[key], key+"_"+nk)
				}
			}
		}
	}

	// A nested expansion may collide with a literal top-level key of the
	// same spelling; the column is kept once.
	columns := make([]string, 0, len(scalarCols))
	added := map[string]bool{}
	for _, c := range scalarCols {
		if !added[c] {
			added[c] = true
			columns = append(columns, c)
		}
	}
	for _, p := range parents {
		for _, c := range nestedCols[p] {
			if !added[c] {
				added[c] = true
				columns = append(columns, c)
			}
		}
	}
	return columns
}

// buildRow projects one record onto the full column set, filling columns
// the record does not provide with explicit nils.
func buildRow(item map[string]any, columns []string) Row {
	row := make(Row, len(columns))
	for _, c := range columns {
		row[c] = nil
	}

	for key, val := range item {
		nested, ok := val.(map[string]any)
		if !ok {
			row[key] = val
			continue
		}
		for nk, nv := range nested {
			// One level only: nv stays opaque even when it is itself
			// a record.
			row[key+"_"+nk] = nv
		}
	}
	return row
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
