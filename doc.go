// Package htmltable builds, styles, and renders HTML tables.
//
// A [Table] owns a header section and a body section, each a [Rows] holding
// [Row] values of [Cell] values. Tables are built from "raw rows": every
// cell may be a bare value, a map of attribute names (value, width, height,
// header, align, font, size, bold, borders, css), or a pre-built [Cell]:
//
//	t, err := htmltable.New([]any{
//		[]any{"a", 1},
//		[]any{map[string]any{"value": "b", "width": 2}},
//	}, htmltable.Options{Header: []any{"Letter", "Count"}})
//
// # Styling
//
// Every level owns a [Style]: alignment, font, size, boldness, a border
// set, and arbitrary CSS overrides. Styles cascade at render time: a Rows
// or Row attribute applies to a child cell only when the cell left that
// attribute unset, so section-wide styling (the bold header default, say)
// never clobbers a cell's own choices. [Table.DeepApply] pushes attributes
// directly onto every cell instead.
//
// # Rendering
//
// [Table.HTML] produces an indented <table> fragment with <thead> and
// <tbody> sections; header cells render as <th scope="col">, and colspan,
// rowspan, and style attributes appear only when they carry information.
// [Table.Text] produces tab-delimited text with a blank line between the
// sections. Cell content is never HTML-escaped; escape untrusted values
// before handing them over. Rendering reads but never mutates.
//
// # Frequency tables
//
// [MakeFreqTable] turns a value-to-count map into a ready-made table:
// ranked rows sorted by descending count, thousands-separated counts,
// percentages with adaptive precision, optional truncation with an ellipsis
// row, and a total row.
//
// # Limitations
//
// Column positions are computed by summing declared cell widths, so a
// rowspan reaching down from an earlier row throws off [Table.Width] and
// the column arithmetic of [Table.AddBorder]. The geometry of irregular
// span combinations is the caller's problem; this package only writes the
// markup it is told to.
//
// # Errors
//
// Configuration mistakes surface as sentinel errors wrapped with context:
//
//   - [ErrUnknownAttribute] — attribute name outside the allow-list
//   - [ErrInvalidCSS] — css statement without a colon
//   - [ErrInvalidValue] — attribute value of the wrong shape
//   - [ErrEmptyFreqs] — frequency map with no entries
//   - [ErrSplitterColumns] — splitter arity mismatch
package htmltable
