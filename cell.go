package htmltable

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Copier lets a cell value provide its own deep copy. Cell.Copy uses it when
// the value implements it, and assigns the value directly otherwise.
type Copier interface {
	Copy() any
}

// Cell is one table cell: a displayable value plus layout attributes and an
// owned Style. A nil Value renders as empty content. Width and Height become
// the colspan and rowspan. Header is a tri-state flag; when unset the cell
// defers to its Row's (and then its section's) header flag.
type Cell struct {
	Value  any
	Width  int
	Height int
	Header Flag
	Style  Style
}

// cellAttrs is the allow-list of keys accepted by CellFromMap, beyond the
// style attributes.
var cellAttrs = []string{"value", "width", "height", "header"}

// NewCell wraps a bare value in a Cell with default layout. Numeric-looking
// values are right-aligned.
func NewCell(value any) *Cell {
	c := &Cell{Value: value, Width: 1, Height: 1}
	if isNumber(value) {
		c.Style.Align = AlignRight
	}
	return c
}

// CellFromMap builds a Cell from a mapping of attribute names to values.
// Recognized keys are value, width, height, header, and the style attributes
// (align, font, size, bold, borders, css). Unknown keys fail with an error
// naming every offender.
func CellFromMap(attrs map[string]any) (*Cell, error) {
	var unknown []string
	for key := range attrs {
		if !isStyleAttr(key) && !slices.Contains(cellAttrs, key) {
			unknown = append(unknown, strconv.Quote(key))
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, strings.Join(unknown, ", "))
	}
	c := &Cell{Value: attrs["value"], Width: 1, Height: 1}
	if raw, ok := attrs["width"]; ok {
		width, err := spanValue("width", raw)
		if err != nil {
			return nil, err
		}
		c.Width = width
	}
	if raw, ok := attrs["height"]; ok {
		height, err := spanValue("height", raw)
		if err != nil {
			return nil, err
		}
		c.Height = height
	}
	if raw, ok := attrs["header"]; ok {
		switch v := raw.(type) {
		case bool:
			c.Header = FlagOf(v)
		case Flag:
			c.Header = v
		default:
			return nil, fmt.Errorf("%w: header value %v (%T)", ErrInvalidValue, raw, raw)
		}
	}
	for _, key := range styleAttrs {
		if raw, ok := attrs[key]; ok {
			if err := c.Style.Set(key, raw); err != nil {
				return nil, err
			}
		}
	}
	// The numeric default only kicks in when the caller didn't pick an
	// alignment.
	if _, aligned := attrs["align"]; !aligned && isNumber(c.Value) {
		c.Style.Align = AlignRight
	}
	return c, nil
}

func spanValue(name string, raw any) (int, error) {
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s value %v", ErrInvalidValue, name, raw)
		}
		n = int(v)
	default:
		return 0, fmt.Errorf("%w: %s value %v (%T)", ErrInvalidValue, name, raw, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, name, n)
	}
	return n, nil
}

// toCell normalizes a raw cell: a *Cell passes through, a map goes through
// CellFromMap, anything else is wrapped as a value.
func toCell(raw any) (*Cell, error) {
	switch v := raw.(type) {
	case *Cell:
		return v, nil
	case Cell:
		return &v, nil
	case map[string]any:
		return CellFromMap(v)
	default:
		return NewCell(raw), nil
	}
}

// Apply batch-sets style attributes. With overwrite false only attributes
// currently at their default are changed, so section-wide styling never
// clobbers a cell's own explicit choices; css entries merge key-by-key under
// the same rule.
func (c *Cell) Apply(overwrite bool, attrs map[string]any) error {
	return c.Style.applyFrom(attrs, overwrite)
}

// Copy returns an independent Cell. The Style is always duplicated; the
// value is duplicated only when it implements Copier.
func (c *Cell) Copy() *Cell {
	clone := &Cell{
		Value:  c.Value,
		Width:  c.Width,
		Height: c.Height,
		Header: c.Header,
		Style:  c.Style.Copy(),
	}
	if copier, ok := c.Value.(Copier); ok {
		clone.Value = copier.Copy()
	}
	return clone
}

// String returns the cell's text form: "" for a nil value, otherwise the
// value's default formatting.
func (c *Cell) String() string {
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value)
}

// HTML renders the cell as a <th scope="col"> or <td> element. The colspan
// and rowspan attributes appear only when they differ from 1, and the style
// attribute only when non-empty. The value is emitted verbatim: callers must
// pre-escape untrusted content.
func (c *Cell) HTML() string {
	return c.html(c.Header, c.Style)
}

// html renders with an already-resolved header flag and effective style, so
// the cascade can be applied without mutating the cell.
func (c *Cell) html(header Flag, style Style) string {
	var attrs []string
	tag := "td"
	if header.On() {
		tag = "th"
		attrs = append(attrs, `scope="col"`)
	}
	if c.Width != 1 {
		attrs = append(attrs, "colspan="+strconv.Itoa(c.Width))
	}
	if c.Height != 1 {
		attrs = append(attrs, "rowspan="+strconv.Itoa(c.Height))
	}
	if str := style.String(); str != "" {
		attrs = append(attrs, str)
	}
	attrStr := ""
	if len(attrs) > 0 {
		attrStr = " " + strings.Join(attrs, " ")
	}
	return "<" + tag + attrStr + ">" + c.String() + "</" + tag + ">"
}

// isNumber reports whether a value displays as a number: any numeric type,
// or a string that parses as one.
func isNumber(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}
