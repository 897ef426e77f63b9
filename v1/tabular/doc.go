// Package tabular converts lists of loosely-typed JSON records into
// uniform row/column tables.
//
// API responses in this library are generic JSON trees (map[string]any,
// []any, scalars). Lists of result records — query matches, reranked
// documents, import jobs — are often easier to consume as a table: one row
// per record, one column per field, nested sub-records widened into
// namespaced sibling columns.
//
// # Flattening Policy
//
// Flattening is "one level, namespaced":
//
//   - a scalar value (or list of scalars) keeps its own key as column name;
//   - a nested record expands into one column per nested key, named
//     "<parentKey>_<nestedKey>";
//   - values nested deeper than one level stay opaque inside their
//     one-level column and are not unpacked further.
//
// The column set is the union across all input records. Rows missing a
// column hold an explicit nil, so every row of a table carries the same
// column set. Row order matches input order. Column order is first-seen
// across the scan: top-level scalar columns first, then one group per
// nested parent. Within a single record, keys are visited in lexicographic
// order so the output is deterministic regardless of Go's randomized map
// iteration.
//
// # Usage
//
//	items := []map[string]any{
//	    {"id": "a", "score": 0.9, "metadata": map[string]any{"genre": "doc"}},
//	    {"id": "b", "score": 0.5},
//	}
//	table, err := tabular.Flatten(items)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// table.Columns() == ["id", "score", "metadata_genre"]
//	// table.Row(1)["metadata_genre"] == nil
//
// Flatten is a pure function with no shared state; it is safe to call from
// multiple goroutines.
package tabular
