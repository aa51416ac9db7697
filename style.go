package htmltable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrInvalidCSS       = errors.New("invalid css statement")
	ErrInvalidValue     = errors.New("invalid attribute value")
	ErrEmptyFreqs       = errors.New("empty frequency map")
	ErrSplitterColumns  = errors.New("splitter returned inconsistent number of columns")
	ErrBadDimension     = errors.New("unknown border dimension")
	ErrBadDirection     = errors.New("unknown extend direction")
	ErrCannotRotate     = errors.New("table cannot be rotated")
)

// DefaultBorderCSS is the CSS value used for borders added by side name.
const DefaultBorderCSS = "1px solid black"

// Alignment controls the text-align of a cell's content.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the CSS value for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center", or "right".
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: alignment %q", ErrInvalidValue, s)
	}
}

// Flag is a tri-state boolean. The zero value means "unset", which lets a
// value cascade in from an enclosing Row, Rows, or default.
type Flag int

const (
	FlagUnset Flag = iota
	FlagOn
	FlagOff
)

// FlagOf converts a plain bool to a Flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagOn
	}
	return FlagOff
}

// On reports whether the flag is explicitly on.
func (f Flag) On() bool { return f == FlagOn }

// Side names one side of a cell for border purposes.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
	numSides
)

var sideNames = [numSides]string{"top", "bottom", "left", "right"}

// String returns the side name as used in border-<side> CSS properties.
func (s Side) String() string {
	if s < 0 || s >= numSides {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// ParseSide parses a side name ("top", "bottom", "left", "right").
func ParseSide(s string) (Side, error) {
	for i, name := range sideNames {
		if name == s {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("%w: border side %q", ErrInvalidValue, s)
}

// BorderSet is a set of cell sides. The zero value is the empty set, and
// assignment copies the whole set, so BorderSets are never shared.
type BorderSet uint8

// Add returns the set with the given side included.
func (b BorderSet) Add(s Side) BorderSet { return b | 1<<uint(s) }

// Has reports whether the side is in the set.
func (b BorderSet) Has(s Side) bool { return b&(1<<uint(s)) != 0 }

// Empty reports whether no sides are set.
func (b BorderSet) Empty() bool { return b == 0 }

// Sides returns the sides in the set in declaration order.
func (b BorderSet) Sides() []Side {
	var sides []Side
	for s := Side(0); s < numSides; s++ {
		if b.Has(s) {
			sides = append(sides, s)
		}
	}
	return sides
}

// Declaration is a single CSS property-value pair.
type Declaration struct {
	Property string
	Value    string
}

// Style is the set of display attributes a Table, Rows, Row, or Cell can
// carry. The zero value renders nothing. CSS holds arbitrary overrides in
// insertion order; on a property collision with a derived attribute the CSS
// entry wins.
type Style struct {
	Align   Alignment
	Font    string
	Size    string
	Bold    Flag
	Borders BorderSet
	CSS     []Declaration
}

// styleAttrs is the allow-list of attribute names accepted by Set and the
// map-shaped constructors.
var styleAttrs = []string{"align", "font", "size", "bold", "borders", "css"}

func isStyleAttr(name string) bool {
	for _, attr := range styleAttrs {
		if attr == name {
			return true
		}
	}
	return false
}

// StyleFromMap builds a Style from attribute names to raw values, validating
// every key against the attribute allow-list.
func StyleFromMap(attrs map[string]any) (Style, error) {
	var s Style
	for key, value := range attrs {
		if err := s.Set(key, value); err != nil {
			return Style{}, err
		}
	}
	return s, nil
}

// Set assigns one attribute by name. Raw values are normalized: alignment
// accepts an Alignment or its name, bold accepts a bool or Flag, borders
// accept a Side, a side name, or a list of either, and css accepts a
// semicolon-delimited statement string, a statement list, a property map, or
// a Declaration list.
func (s *Style) Set(attr string, value any) error {
	switch attr {
	case "align":
		switch v := value.(type) {
		case Alignment:
			s.Align = v
		case string:
			align, err := ParseAlignment(v)
			if err != nil {
				return err
			}
			s.Align = align
		default:
			return fmt.Errorf("%w: align value %v (%T)", ErrInvalidValue, value, value)
		}
	case "font":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: font value %v (%T)", ErrInvalidValue, value, value)
		}
		s.Font = v
	case "size":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: size value %v (%T)", ErrInvalidValue, value, value)
		}
		s.Size = v
	case "bold":
		switch v := value.(type) {
		case bool:
			s.Bold = FlagOf(v)
		case Flag:
			s.Bold = v
		default:
			return fmt.Errorf("%w: bold value %v (%T)", ErrInvalidValue, value, value)
		}
	case "borders":
		borders, err := parseBorders(value)
		if err != nil {
			return err
		}
		s.Borders = borders
	case "css":
		css, err := ParseCSS(value)
		if err != nil {
			return err
		}
		s.CSS = css
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	return nil
}

// SetCSS sets one CSS property, replacing the value in place if the property
// is already present and appending otherwise.
func (s *Style) SetCSS(property, value string) {
	for i, decl := range s.CSS {
		if decl.Property == property {
			s.CSS[i].Value = value
			return
		}
	}
	s.CSS = append(s.CSS, Declaration{Property: property, Value: value})
}

// GetCSS returns the value of a CSS property and whether it is set.
func (s *Style) GetCSS(property string) (string, bool) {
	for _, decl := range s.CSS {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

func parseBorders(value any) (BorderSet, error) {
	var borders BorderSet
	add := func(item any) error {
		switch v := item.(type) {
		case Side:
			borders = borders.Add(v)
		case string:
			side, err := ParseSide(v)
			if err != nil {
				return err
			}
			borders = borders.Add(side)
		default:
			return fmt.Errorf("%w: border side %v (%T)", ErrInvalidValue, item, item)
		}
		return nil
	}
	switch v := value.(type) {
	case BorderSet:
		borders = v
	case []string:
		for _, item := range v {
			if err := add(item); err != nil {
				return 0, err
			}
		}
	case []Side:
		for _, item := range v {
			if err := add(item); err != nil {
				return 0, err
			}
		}
	case []any:
		for _, item := range v {
			if err := add(item); err != nil {
				return 0, err
			}
		}
	default:
		if err := add(value); err != nil {
			return 0, err
		}
	}
	return borders, nil
}

// ParseCSS normalizes a raw css value into an ordered declaration list.
// Strings are split on semicolons into "property: value" statements; a
// statement without a colon is an error naming the statement.
func ParseCSS(value any) ([]Declaration, error) {
	var css []Declaration
	put := func(property, val string) {
		for i, decl := range css {
			if decl.Property == property {
				css[i].Value = val
				return
			}
		}
		css = append(css, Declaration{Property: property, Value: val})
	}
	parse := func(statement string) error {
		property, val, err := parseCSSStatement(statement)
		if err != nil {
			return err
		}
		put(property, val)
		return nil
	}
	switch v := value.(type) {
	case []Declaration:
		for _, decl := range v {
			put(decl.Property, decl.Value)
		}
	case string:
		for _, statement := range strings.Split(v, ";") {
			if strings.TrimSpace(statement) == "" {
				continue
			}
			if err := parse(statement); err != nil {
				return nil, err
			}
		}
	case []string:
		for _, statement := range v {
			if err := parse(statement); err != nil {
				return nil, err
			}
		}
	case map[string]string:
		// Map input has no inherent order; sort keys for stable output.
		for _, key := range sortedMapKeys(v) {
			put(key, v[key])
		}
	case map[string]any:
		for _, key := range sortedMapKeys(v) {
			put(key, fmt.Sprint(v[key]))
		}
	default:
		if value != nil {
			return nil, fmt.Errorf("%w: css value %v (%T)", ErrInvalidValue, value, value)
		}
	}
	return css, nil
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func parseCSSStatement(statement string) (string, string, error) {
	property, value, found := strings.Cut(statement, ":")
	if !found {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCSS, statement)
	}
	return strings.TrimSpace(property), strings.TrimSpace(value), nil
}

// Copy returns an independent Style. The CSS list is duplicated so mutating
// the copy never alters the original.
func (s Style) Copy() Style {
	clone := s
	if len(s.CSS) > 0 {
		clone.CSS = make([]Declaration, len(s.CSS))
		copy(clone.CSS, s.CSS)
	}
	return clone
}

// IsZero reports whether every attribute is at its default.
func (s Style) IsZero() bool {
	return s.Align == AlignLeft && s.Font == "" && s.Size == "" &&
		s.Bold == FlagUnset && s.Borders.Empty() && len(s.CSS) == 0
}

// declarations folds the declared attributes into CSS declarations in a
// fixed order, then layers the raw CSS entries on top. A raw entry whose
// property collides with a derived one replaces the derived value in place;
// otherwise raw entries keep their insertion order at the end.
func (s Style) declarations() []Declaration {
	var decls []Declaration
	put := func(property, value string) {
		for i, decl := range decls {
			if decl.Property == property {
				decls[i].Value = value
				return
			}
		}
		decls = append(decls, Declaration{Property: property, Value: value})
	}
	if s.Align != AlignLeft {
		put("text-align", s.Align.String())
	}
	if s.Font != "" {
		put("font-family", s.Font)
	}
	if s.Size != "" {
		put("font-size", s.Size)
	}
	switch s.Bold {
	case FlagOn:
		put("font-weight", "bold")
	case FlagOff:
		put("font-weight", "normal")
	}
	for _, side := range s.Borders.Sides() {
		put("border-"+side.String(), DefaultBorderCSS)
	}
	for _, decl := range s.CSS {
		put(decl.Property, decl.Value)
	}
	return decls
}

// String serializes the style as an HTML style attribute without the leading
// space, or "" if nothing is declared.
func (s Style) String() string {
	decls := s.declarations()
	if len(decls) == 0 {
		return ""
	}
	statements := make([]string, len(decls))
	for i, decl := range decls {
		statements[i] = decl.Property + ": " + decl.Value
	}
	return `style="` + strings.Join(statements, "; ") + `"`
}

// AttrString returns the style attribute with a leading space, ready to
// append to a tag, or "" if nothing is declared.
func (s Style) AttrString() string {
	str := s.String()
	if str == "" {
		return ""
	}
	return " " + str
}

// merged fills every unset attribute of s from parent and returns the
// result. This is the cascade rule: a parent attribute applies to a child
// only when the child left it at its default.
func (s Style) merged(parent Style) Style {
	out := s.Copy()
	if out.Align == AlignLeft {
		out.Align = parent.Align
	}
	if out.Font == "" {
		out.Font = parent.Font
	}
	if out.Size == "" {
		out.Size = parent.Size
	}
	if out.Bold == FlagUnset {
		out.Bold = parent.Bold
	}
	if out.Borders.Empty() {
		out.Borders = parent.Borders
	}
	for _, decl := range parent.CSS {
		if _, ok := out.GetCSS(decl.Property); !ok {
			out.CSS = append(out.CSS, decl)
		}
	}
	return out
}

// applyFrom batch-sets style attributes from attrs. With overwrite false,
// only attributes currently at their default are changed, and CSS entries
// merge key-by-key under the same rule.
func (s *Style) applyFrom(attrs map[string]any, overwrite bool) error {
	for key := range attrs {
		if !isStyleAttr(key) {
			return fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
		}
	}
	for _, key := range styleAttrs {
		value, ok := attrs[key]
		if !ok {
			continue
		}
		if key == "css" {
			incoming, err := ParseCSS(value)
			if err != nil {
				return err
			}
			for _, decl := range incoming {
				if _, set := s.GetCSS(decl.Property); set && !overwrite {
					continue
				}
				s.SetCSS(decl.Property, decl.Value)
			}
			continue
		}
		if !overwrite && !s.attrUnset(key) {
			continue
		}
		if err := s.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Style) attrUnset(attr string) bool {
	switch attr {
	case "align":
		return s.Align == AlignLeft
	case "font":
		return s.Font == ""
	case "size":
		return s.Size == ""
	case "bold":
		return s.Bold == FlagUnset
	case "borders":
		return s.Borders.Empty()
	default:
		return false
	}
}
