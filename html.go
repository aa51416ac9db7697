package htmltable

import (
	"fmt"
	"io"
	"strings"
)

// Indent is the per-level indentation of the HTML output.
const Indent = "  "

// HTML renders the table as a newline-joined, two-space-indented HTML
// fragment. Cell content is emitted verbatim; pre-escape untrusted values.
func (t *Table) HTML() string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = t.WriteHTML(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}

// WriteHTML renders the table to w: a <table> element wrapping an optional
// <thead> and an optional <tbody>. Header cells render as <th scope="col">.
// Rendering reads but never mutates, so the same table can be rendered any
// number of times; the Row/Rows style cascade and header flags are resolved
// on the fly.
func (t *Table) WriteHTML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<table%s>\n", t.Style.AttrString()); err != nil {
		return err
	}
	if t.header.Len() > 0 {
		if err := t.header.writeHTML(w, 1); err != nil {
			return err
		}
	}
	if t.body.Len() > 0 {
		if err := t.body.writeHTML(w, 1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func (rs *Rows) writeHTML(w io.Writer, indents int) error {
	tag := "tbody"
	if rs.Header {
		tag = "thead"
	}
	pad := strings.Repeat(Indent, indents)
	if _, err := fmt.Fprintf(w, "%s<%s>\n", pad, tag); err != nil {
		return err
	}
	for _, row := range rs.rows {
		if err := rs.writeRowHTML(w, row, indents+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", pad, tag)
	return err
}

func (rs *Rows) writeRowHTML(w io.Writer, row *Row, indents int) error {
	pad := strings.Repeat(Indent, indents)
	if _, err := fmt.Fprintf(w, "%s<tr>\n", pad); err != nil {
		return err
	}
	sectionStyle := rs.Style
	for _, cell := range row.cells {
		header := rs.headerFlag(row, cell)
		style := cell.Style.merged(row.Style.merged(sectionStyle))
		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, Indent, cell.html(header, style)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</tr>\n", pad)
	return err
}
