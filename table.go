package htmltable

import (
	"fmt"
	"strings"
)

// Direction selects how Extend merges two tables.
type Direction int

const (
	// ExtendDown appends the other table's rows below this table's body.
	ExtendDown Direction = iota
	// ExtendRight appends the other table's cells onto each row, widening
	// the table.
	ExtendRight
)

// Options configures New. The zero value gives a header-less table with the
// default header styling in place for any header added later.
type Options struct {
	// Header holds raw header rows, in the same shape as the body argument.
	Header []any
	// HeaderLen splits the first N body rows into the header when Header is
	// empty.
	HeaderLen int
	// HeaderStyle cascades over every header cell that hasn't set the same
	// attribute itself. Nil means DefaultHeaderStyle.
	HeaderStyle *Style
	// Style is the table-wide style, emitted on the <table> tag.
	Style Style
}

// DefaultHeaderStyle returns the style cascaded over header cells when the
// caller doesn't supply one: bold text.
func DefaultHeaderStyle() Style {
	return Style{Bold: FlagOn}
}

// Table is an HTML table: a header section and a body section sharing one
// addressable row sequence, plus a table-wide style. Build it once from raw
// rows, optionally mutate it (Extend, AddBorder, DeepApply), then render it
// any number of times.
type Table struct {
	header *Rows
	body   *Rows
	Style  Style
}

// New builds a Table from raw body rows. Each row is a []any (or *Row) whose
// elements are bare values, attribute maps, or Cells; a flat sequence of
// such elements is treated as a single row. See Options for the header
// arguments.
func New(body []any, opts Options) (*Table, error) {
	rawHeader := opts.Header
	if len(rawHeader) == 0 && opts.HeaderLen > 0 && len(body) > 0 {
		rows, err := NewRows(body, false)
		if err != nil {
			return nil, err
		}
		n := min(opts.HeaderLen, rows.Len())
		header := &Rows{Header: true, rows: rows.rows[:n:n]}
		rows.rows = rows.rows[n:]
		header.Style = headerStyle(opts)
		return &Table{header: header, body: rows, Style: opts.Style}, nil
	}
	header, err := NewRows(rawHeader, true)
	if err != nil {
		return nil, err
	}
	header.Style = headerStyle(opts)
	rows, err := NewRows(body, false)
	if err != nil {
		return nil, err
	}
	return &Table{header: header, body: rows, Style: opts.Style}, nil
}

func headerStyle(opts Options) Style {
	if opts.HeaderStyle != nil {
		return opts.HeaderStyle.Copy()
	}
	return DefaultHeaderStyle()
}

// Header returns the header section.
func (t *Table) Header() *Rows { return t.header }

// Body returns the body section.
func (t *Table) Body() *Rows { return t.body }

// Len returns the total number of rows: header rows plus body rows.
func (t *Table) Len() int { return t.header.Len() + t.body.Len() }

// Height is the number of rows. Like Width, this ignores rowspans.
func (t *Table) Height() int { return t.Len() }

// Row returns the i'th row of the whole table, header rows first, then body
// rows. It panics if i is out of range.
func (t *Table) Row(i int) *Row {
	if i < t.header.Len() {
		return t.header.Row(i)
	}
	return t.body.Row(i - t.header.Len())
}

// Rows returns all rows, header first. The rows are shared with the table.
func (t *Table) Rows() []*Row {
	rows := make([]*Row, 0, t.Len())
	rows = append(rows, t.header.Rows()...)
	rows = append(rows, t.body.Rows()...)
	return rows
}

// Width returns the sum of cell widths over the first row, or 0 for an
// empty table. This is not always the true column count: a rowspan > 1 in an
// earlier row shrinks a later row's declared widths without shrinking its
// effective span.
func (t *Table) Width() int {
	if t.Len() == 0 {
		return 0
	}
	width := 0
	for _, cell := range t.Row(0).Cells() {
		width += cell.Width
	}
	return width
}

// DeepApply applies the attributes directly to every cell in the table.
func (t *Table) DeepApply(overwrite bool, attrs map[string]any) error {
	if err := t.header.DeepApply(overwrite, attrs); err != nil {
		return err
	}
	return t.body.DeepApply(overwrite, attrs)
}

// Extend merges other into this table. ExtendDown appends all of other's
// rows (header and body) to this table's body. ExtendRight appends other's
// cells onto each corresponding row, padding whichever table is shorter with
// nil-valued filler cells first; rows created by the padding always land in
// the body.
func (t *Table) Extend(other *Table, direction Direction) error {
	switch direction {
	case ExtendDown:
		for _, row := range other.Rows() {
			t.body.AppendRow(row)
		}
	case ExtendRight:
		origWidth := t.Width()
		otherWidth := other.Width()
		maxLen := max(t.Len(), other.Len())
		for i := 0; i < maxLen; i++ {
			var row *Row
			if i < t.Len() {
				row = t.Row(i)
			} else {
				row = fillerRow(origWidth)
				t.body.AppendRow(row)
			}
			var otherRow *Row
			if i < other.Len() {
				otherRow = other.Row(i)
			} else {
				otherRow = fillerRow(otherWidth)
			}
			row.Extend(otherRow)
		}
	default:
		return fmt.Errorf("%w: %d", ErrBadDirection, direction)
	}
	return nil
}

func fillerRow(width int) *Row {
	row := &Row{}
	for i := 0; i < width; i++ {
		row.AppendCell(NewCell(nil))
	}
	return row
}

// BorderOptions configures AddBorder. The zero value applies the default
// border to a position counted over the whole table.
type BorderOptions struct {
	// Section restricts the border to "header" or "body"; position then
	// counts within that section. Empty means the whole table.
	Section string
	// Style is the CSS border value. When it differs from DefaultBorderCSS
	// the border is written as an explicit border-top/border-left CSS
	// override instead of a named border.
	Style string
}

// AddBorder overlays a border along one row or column edge. dim selects the
// dimension by prefix: "row"/"hor..." marks the top edge of the row at
// position, "col"/"vert..." marks the left edge of the column at position.
// Column positions are found by accumulating cell widths left to right in
// each row; a rowspan originating in an earlier row is not accounted for, so
// positions after such a span land one cell early.
func (t *Table) AddBorder(dim string, position int, opts BorderOptions) error {
	var byRow bool
	switch {
	case strings.HasPrefix(dim, "row") || strings.HasPrefix(dim, "hor"):
		byRow = true
	case strings.HasPrefix(dim, "col") || strings.HasPrefix(dim, "vert"):
		byRow = false
	default:
		return fmt.Errorf("%w: %q", ErrBadDimension, dim)
	}
	var rows []*Row
	switch opts.Section {
	case "header":
		rows = t.header.Rows()
	case "body":
		rows = t.body.Rows()
	case "":
		rows = t.Rows()
	default:
		return fmt.Errorf("%w: section %q", ErrInvalidValue, opts.Section)
	}
	style := opts.Style
	if style == "" {
		style = DefaultBorderCSS
	}
	for r, row := range rows {
		colPos := 0
		for _, cell := range row.Cells() {
			if byRow && r == position {
				setBorder(cell, Top, style)
			} else if !byRow && colPos == position {
				setBorder(cell, Left, style)
			}
			colPos += cell.Width
		}
	}
	return nil
}

func setBorder(cell *Cell, side Side, style string) {
	if style == DefaultBorderCSS {
		cell.Style.Borders = cell.Style.Borders.Add(side)
	} else {
		cell.Style.SetCSS("border-"+side.String(), style)
	}
}

// Rotate returns a new table with rows and columns swapped. All of the
// original's rows end up in the new table's body. It fails unless every cell
// has width and height 1 and all rows are the same length.
func (t *Table) Rotate() (*Table, error) {
	rows := t.Rows()
	if len(rows) == 0 {
		return New(nil, Options{Style: t.Style.Copy()})
	}
	width := rows[0].Len()
	for _, row := range rows {
		if row.Len() != width {
			return nil, fmt.Errorf("%w: rows have unequal lengths (%d != %d)",
				ErrCannotRotate, row.Len(), width)
		}
		for _, cell := range row.Cells() {
			if cell.Width != 1 || cell.Height != 1 {
				return nil, fmt.Errorf("%w: cell spans must all be 1", ErrCannotRotate)
			}
		}
	}
	rotated := &Table{
		header: &Rows{Header: true, Style: DefaultHeaderStyle()},
		body:   &Rows{},
		Style:  t.Style.Copy(),
	}
	for col := 0; col < width; col++ {
		row := &Row{}
		for _, oldRow := range rows {
			row.AppendCell(oldRow.Cell(col).Copy())
		}
		rotated.body.AppendRow(row)
	}
	return rotated, nil
}
