package htmltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickSto/htmltable"
)

func TestNewCellNumericAlignsRight(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  htmltable.Alignment
	}{
		"int":            {value: 42, want: htmltable.AlignRight},
		"float":          {value: 4.2, want: htmltable.AlignRight},
		"numeric string": {value: "42.5", want: htmltable.AlignRight},
		"word":           {value: "forty-two", want: htmltable.AlignLeft},
		"nil":            {value: nil, want: htmltable.AlignLeft},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, htmltable.NewCell(tc.value).Style.Align)
		})
	}
}

func TestCellFromMap(t *testing.T) {
	t.Parallel()
	c, err := htmltable.CellFromMap(map[string]any{
		"value":  "x",
		"width":  3,
		"height": 2,
		"header": true,
		"align":  "center",
	})
	require.NoError(t, err)
	assert.Equal(t, "x", c.Value)
	assert.Equal(t, 3, c.Width)
	assert.Equal(t, 2, c.Height)
	assert.Equal(t, htmltable.FlagOn, c.Header)
	assert.Equal(t, htmltable.AlignCenter, c.Style.Align)
}

func TestCellFromMapExplicitAlignBeatsNumericDefault(t *testing.T) {
	t.Parallel()
	c, err := htmltable.CellFromMap(map[string]any{"value": 42, "align": "left"})
	require.NoError(t, err)
	assert.Equal(t, htmltable.AlignLeft, c.Style.Align)

	c, err = htmltable.CellFromMap(map[string]any{"value": 42})
	require.NoError(t, err)
	assert.Equal(t, htmltable.AlignRight, c.Style.Align)
}

func TestCellFromMapUnknownKeys(t *testing.T) {
	t.Parallel()
	_, err := htmltable.CellFromMap(map[string]any{"value": 1, "vlaue": 2, "widht": 3})
	require.ErrorIs(t, err, htmltable.ErrUnknownAttribute)
	require.ErrorContains(t, err, `"vlaue"`)
	require.ErrorContains(t, err, `"widht"`)
}

func TestCellFromMapRejectsBadSpans(t *testing.T) {
	t.Parallel()
	_, err := htmltable.CellFromMap(map[string]any{"value": "x", "width": 0})
	require.ErrorIs(t, err, htmltable.ErrInvalidValue)
	_, err = htmltable.CellFromMap(map[string]any{"value": "x", "height": -1})
	require.ErrorIs(t, err, htmltable.ErrInvalidValue)
}

func TestCellHTML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell *htmltable.Cell
		want string
	}{
		"plain": {
			cell: htmltable.NewCell("a"),
			want: "<td>a</td>",
		},
		"nil value renders empty": {
			cell: htmltable.NewCell(nil),
			want: "<td></td>",
		},
		"numeric gets alignment style": {
			cell: htmltable.NewCell(7),
			want: `<td style="text-align: right">7</td>`,
		},
		"default spans are omitted": {
			cell: &htmltable.Cell{Value: "a", Width: 1, Height: 1},
			want: "<td>a</td>",
		},
		"colspan": {
			cell: &htmltable.Cell{Value: "a", Width: 3, Height: 1},
			want: "<td colspan=3>a</td>",
		},
		"rowspan": {
			cell: &htmltable.Cell{Value: "a", Width: 1, Height: 2},
			want: "<td rowspan=2>a</td>",
		},
		"header": {
			cell: &htmltable.Cell{Value: "a", Width: 1, Height: 1, Header: htmltable.FlagOn},
			want: `<th scope="col">a</th>`,
		},
		"content is not escaped": {
			cell: &htmltable.Cell{Value: "<b>&amp;</b>", Width: 1, Height: 1},
			want: "<td><b>&amp;</b></td>",
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.cell.HTML())
		})
	}
}

// copyable tracks whether Cell.Copy used its Copy method.
type copyable struct {
	n int
}

func (c *copyable) Copy() any { return &copyable{n: c.n} }

func TestCellCopyIndependence(t *testing.T) {
	t.Parallel()
	orig, err := htmltable.CellFromMap(map[string]any{"value": "a", "css": "color: red"})
	require.NoError(t, err)

	clone := orig.Copy()
	clone.Style.SetCSS("color", "blue")
	clone.Style.Borders = clone.Style.Borders.Add(htmltable.Top)

	value, _ := orig.Style.GetCSS("color")
	assert.Equal(t, "red", value)
	assert.True(t, orig.Style.Borders.Empty())
}

func TestCellCopyUsesValueCopier(t *testing.T) {
	t.Parallel()
	value := &copyable{n: 1}
	orig := htmltable.NewCell(value)
	clone := orig.Copy()

	copied, ok := clone.Value.(*copyable)
	require.True(t, ok)
	assert.NotSame(t, value, copied)
	assert.Equal(t, 1, copied.n)

	// Values without a Copy method are assigned directly.
	plain := htmltable.NewCell("a").Copy()
	assert.Equal(t, "a", plain.Value)
}

func TestCellApplyOverwrite(t *testing.T) {
	t.Parallel()
	c, err := htmltable.CellFromMap(map[string]any{"value": "a", "align": "right"})
	require.NoError(t, err)
	require.NoError(t, c.Apply(true, map[string]any{"align": "center", "bold": true}))
	assert.Equal(t, htmltable.AlignCenter, c.Style.Align)
	assert.Equal(t, htmltable.FlagOn, c.Style.Bold)
}

func TestCellApplyNoOverwriteKeepsExplicitChoices(t *testing.T) {
	t.Parallel()
	c, err := htmltable.CellFromMap(map[string]any{
		"value": "a",
		"align": "right",
		"css":   "color: red",
	})
	require.NoError(t, err)

	err = c.Apply(false, map[string]any{
		"align": "center",
		"bold":  true,
		"css":   "color: blue; padding: 1px",
	})
	require.NoError(t, err)

	assert.Equal(t, htmltable.AlignRight, c.Style.Align, "explicit align kept")
	assert.Equal(t, htmltable.FlagOn, c.Style.Bold, "unset bold filled in")
	color, _ := c.Style.GetCSS("color")
	assert.Equal(t, "red", color, "existing css key kept")
	padding, _ := c.Style.GetCSS("padding")
	assert.Equal(t, "1px", padding, "missing css key merged")
}

func TestCellApplyUnknownAttribute(t *testing.T) {
	t.Parallel()
	c := htmltable.NewCell("a")
	err := c.Apply(true, map[string]any{"wdith": 2})
	require.ErrorIs(t, err, htmltable.ErrUnknownAttribute)
}

func TestCellString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", htmltable.NewCell(nil).String())
	assert.Equal(t, "42", htmltable.NewCell(42).String())
	assert.Equal(t, "a b", htmltable.NewCell("a b").String())
}
