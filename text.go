package htmltable

import (
	"io"
	"strings"
)

// Text renders the table as tab-delimited cells and newline-delimited rows,
// with a blank line between the header and body sections when both are
// present.
func (t *Table) Text() string {
	return t.TextDelim("\t", "\n")
}

// TextDelim is Text with caller-chosen cell and row delimiters. Sections
// are separated by a doubled row delimiter.
func (t *Table) TextDelim(delim, rowDelim string) string {
	var sections []string
	for _, section := range []*Rows{t.header, t.body} {
		if section.Len() > 0 {
			sections = append(sections, section.Text(delim, rowDelim))
		}
	}
	return strings.Join(sections, rowDelim+rowDelim)
}

// WriteText writes the tab-delimited rendering to w with a trailing newline.
func (t *Table) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, t.Text()+"\n")
	return err
}
