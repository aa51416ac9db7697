package htmltable

import (
	"strings"
)

// Row is an ordered sequence of cells. Index order is visual left-to-right
// order; declared widths are additive and assumed non-overlapping. The Row's
// Style cascades to cells at render time, and its Header flag supplies the
// header flag for cells that left their own unset.
type Row struct {
	cells  []*Cell
	Header Flag
	Style  Style
}

// NewRow builds a Row from raw cells: scalars, attribute maps, or Cells.
func NewRow(rawCells []any) (*Row, error) {
	r := &Row{}
	for _, raw := range rawCells {
		if err := r.Append(raw); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Append normalizes one raw cell and adds it to the end of the row.
func (r *Row) Append(raw any) error {
	cell, err := toCell(raw)
	if err != nil {
		return err
	}
	r.cells = append(r.cells, cell)
	return nil
}

// AppendCell adds an already-built cell to the end of the row.
func (r *Row) AppendCell(c *Cell) {
	r.cells = append(r.cells, c)
}

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Cell returns the cell at index i, panicking if i is out of range.
func (r *Row) Cell(i int) *Cell { return r.cells[i] }

// Cells returns the row's cells. The slice is shared with the row.
func (r *Row) Cells() []*Cell { return r.cells }

// Extend appends every cell of other onto this row.
func (r *Row) Extend(other *Row) {
	r.cells = append(r.cells, other.cells...)
}

// Copy returns an independent Row with copied cells and style.
func (r *Row) Copy() *Row {
	clone := &Row{Header: r.Header, Style: r.Style.Copy()}
	clone.cells = make([]*Cell, len(r.cells))
	for i, cell := range r.cells {
		clone.cells[i] = cell.Copy()
	}
	return clone
}

// DeepApply applies the attributes to every cell in the row.
func (r *Row) DeepApply(overwrite bool, attrs map[string]any) error {
	for _, cell := range r.cells {
		if err := cell.Apply(overwrite, attrs); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the row's cells joined by delim.
func (r *Row) Text(delim string) string {
	parts := make([]string, len(r.cells))
	for i, cell := range r.cells {
		parts[i] = cell.String()
	}
	return strings.Join(parts, delim)
}

// Rows is the header or body section of a Table: an ordered sequence of Row
// with a section-wide header flag and a Style that cascades to contained
// rows and cells.
type Rows struct {
	rows   []*Row
	Header bool
	Style  Style
}

// NewRows builds a section from raw rows. Raw rows may be nil (an empty
// section), a single flat row (detected when the first element is a scalar,
// an attribute map, or a Cell), or a sequence of rows, each a []any or a
// *Row.
func NewRows(rawRows []any, header bool) (*Rows, error) {
	rs := &Rows{Header: header}
	if len(rawRows) == 0 {
		return rs, nil
	}
	if isFlatRow(rawRows) {
		if err := rs.Append(rawRows); err != nil {
			return nil, err
		}
		return rs, nil
	}
	for _, raw := range rawRows {
		switch v := raw.(type) {
		case *Row:
			rs.AppendRow(v)
		case []any:
			if err := rs.Append(v); err != nil {
				return nil, err
			}
		default:
			// A stray scalar among row sequences still means one cell row.
			if err := rs.Append([]any{v}); err != nil {
				return nil, err
			}
		}
	}
	return rs, nil
}

// isFlatRow reports whether rawRows looks like a single row rather than a
// sequence of rows: its first element is anything but a row.
func isFlatRow(rawRows []any) bool {
	switch rawRows[0].(type) {
	case *Row, []any:
		return false
	default:
		return true
	}
}

// Append normalizes one raw row and adds it to the section.
func (rs *Rows) Append(rawCells []any) error {
	row, err := NewRow(rawCells)
	if err != nil {
		return err
	}
	rs.rows = append(rs.rows, row)
	return nil
}

// AppendRow adds an already-built row to the section.
func (rs *Rows) AppendRow(r *Row) {
	rs.rows = append(rs.rows, r)
}

// Len returns the number of rows.
func (rs *Rows) Len() int { return len(rs.rows) }

// Row returns the row at index i, panicking if i is out of range.
func (rs *Rows) Row(i int) *Row { return rs.rows[i] }

// Rows returns the section's rows. The slice is shared with the section.
func (rs *Rows) Rows() []*Row { return rs.rows }

// Copy returns an independent section with copied rows and style.
func (rs *Rows) Copy() *Rows {
	clone := &Rows{Header: rs.Header, Style: rs.Style.Copy()}
	clone.rows = make([]*Row, len(rs.rows))
	for i, row := range rs.rows {
		clone.rows[i] = row.Copy()
	}
	return clone
}

// DeepApply applies the attributes to every cell in the section.
func (rs *Rows) DeepApply(overwrite bool, attrs map[string]any) error {
	for _, row := range rs.rows {
		if err := row.DeepApply(overwrite, attrs); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the section's rows joined by rowDelim, cells by delim.
func (rs *Rows) Text(delim, rowDelim string) string {
	parts := make([]string, len(rs.rows))
	for i, row := range rs.rows {
		parts[i] = row.Text(delim)
	}
	return strings.Join(parts, rowDelim)
}

// headerFlag resolves a cell's effective header flag against its row and
// section.
func (rs *Rows) headerFlag(row *Row, cell *Cell) Flag {
	if cell.Header != FlagUnset {
		return cell.Header
	}
	if row.Header != FlagUnset {
		return row.Header
	}
	return FlagOf(rs.Header)
}
