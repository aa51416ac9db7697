package htmltable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// tableDoc is the YAML shape accepted by FromYAML.
type tableDoc struct {
	Style     map[string]any `yaml:"style"`
	Header    []any          `yaml:"header"`
	HeaderLen int            `yaml:"header_len"`
	Body      []any          `yaml:"body"`
}

// FromYAML builds a Table from a YAML document:
//
//	style: {font: monospace}
//	header:
//	  - [Name, Count]
//	body:
//	  - - value: subtotal
//	      width: 2
//	      align: center
//	  - [a, 1]
//
// Rows are sequences of cells; a cell is a scalar or a mapping of cell
// attributes (value, width, height, header, align, font, size, bold,
// borders, css). header_len may be given instead of header to split the
// first N body rows off as the header.
func FromYAML(data []byte) (*Table, error) {
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing table yaml: %w", err)
	}
	var style Style
	if doc.Style != nil {
		parsed, err := StyleFromMap(doc.Style)
		if err != nil {
			return nil, err
		}
		style = parsed
	}
	return New(doc.Body, Options{
		Header:    doc.Header,
		HeaderLen: doc.HeaderLen,
		Style:     style,
	})
}
