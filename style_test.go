package htmltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickSto/htmltable"
)

func TestStyleAttrStringEmptyByDefault(t *testing.T) {
	t.Parallel()
	var s htmltable.Style
	assert.Equal(t, "", s.AttrString())
	assert.True(t, s.IsZero())
}

func TestStyleAttrString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style htmltable.Style
		want  string
	}{
		"explicit left is default": {
			style: htmltable.Style{Align: htmltable.AlignLeft},
			want:  "",
		},
		"align": {
			style: htmltable.Style{Align: htmltable.AlignRight},
			want:  ` style="text-align: right"`,
		},
		"font and size": {
			style: htmltable.Style{Font: "monospace", Size: "12pt"},
			want:  ` style="font-family: monospace; font-size: 12pt"`,
		},
		"bold on": {
			style: htmltable.Style{Bold: htmltable.FlagOn},
			want:  ` style="font-weight: bold"`,
		},
		"bold off": {
			style: htmltable.Style{Bold: htmltable.FlagOff},
			want:  ` style="font-weight: normal"`,
		},
		"borders in declaration order": {
			style: htmltable.Style{
				Borders: htmltable.BorderSet(0).Add(htmltable.Left).Add(htmltable.Top),
			},
			want: ` style="border-top: 1px solid black; border-left: 1px solid black"`,
		},
		"css only": {
			style: htmltable.Style{CSS: []htmltable.Declaration{{Property: "padding", Value: "1px"}}},
			want:  ` style="padding: 1px"`,
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := tc.style.AttrString()
			assert.Equal(t, tc.want, got)
			if tc.want != "" {
				assert.True(t, len(got) > 9)
				assert.Equal(t, ` style="`, got[:8])
				assert.Equal(t, `"`, got[len(got)-1:])
			}
		})
	}
}

func TestStyleCSSOverridesDerived(t *testing.T) {
	t.Parallel()
	// An explicit css entry for a property a declared attribute also derives
	// wins, keeping the derived property's position.
	s := htmltable.Style{Align: htmltable.AlignCenter}
	require.NoError(t, s.Set("css", "text-align: left; padding: 1px"))
	assert.Equal(t, ` style="text-align: left; padding: 1px"`, s.AttrString())
}

func TestStyleSet(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		attr    string
		value   any
		wantErr require.ErrorAssertionFunc
		check   func(t *testing.T, s htmltable.Style)
	}{
		"align by name": {
			attr: "align", value: "center", wantErr: require.NoError,
			check: func(t *testing.T, s htmltable.Style) {
				assert.Equal(t, htmltable.AlignCenter, s.Align)
			},
		},
		"align bad name": {
			attr: "align", value: "middle",
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, htmltable.ErrInvalidValue)
			},
		},
		"bold from bool": {
			attr: "bold", value: true, wantErr: require.NoError,
			check: func(t *testing.T, s htmltable.Style) {
				assert.Equal(t, htmltable.FlagOn, s.Bold)
			},
		},
		"borders single name": {
			attr: "borders", value: "left", wantErr: require.NoError,
			check: func(t *testing.T, s htmltable.Style) {
				assert.True(t, s.Borders.Has(htmltable.Left))
				assert.False(t, s.Borders.Has(htmltable.Top))
			},
		},
		"borders list": {
			attr: "borders", value: []string{"top", "bottom"}, wantErr: require.NoError,
			check: func(t *testing.T, s htmltable.Style) {
				assert.True(t, s.Borders.Has(htmltable.Top))
				assert.True(t, s.Borders.Has(htmltable.Bottom))
			},
		},
		"borders bad side": {
			attr: "borders", value: "middle",
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, htmltable.ErrInvalidValue)
			},
		},
		"css statement string": {
			attr: "css", value: "padding: 1px", wantErr: require.NoError,
			check: func(t *testing.T, s htmltable.Style) {
				value, ok := s.GetCSS("padding")
				assert.True(t, ok)
				assert.Equal(t, "1px", value)
			},
		},
		"css missing colon": {
			attr: "css", value: "padding 1px",
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, htmltable.ErrInvalidCSS)
				require.ErrorContains(t, err, "padding 1px")
			},
		},
		"unknown attribute": {
			attr: "colour", value: "red",
			wantErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, htmltable.ErrUnknownAttribute)
				require.ErrorContains(t, err, "colour")
			},
		},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var s htmltable.Style
			err := s.Set(tc.attr, tc.value)
			tc.wantErr(t, err)
			if tc.check != nil {
				tc.check(t, s)
			}
		})
	}
}

func TestStyleFromMapValidatesKeys(t *testing.T) {
	t.Parallel()
	_, err := htmltable.StyleFromMap(map[string]any{"align": "right", "wide": 3})
	require.ErrorIs(t, err, htmltable.ErrUnknownAttribute)
	require.ErrorContains(t, err, "wide")
}

func TestStyleCopyIndependent(t *testing.T) {
	t.Parallel()
	var s htmltable.Style
	require.NoError(t, s.Set("css", "color: red"))
	s.Borders = s.Borders.Add(htmltable.Top)

	clone := s.Copy()
	clone.SetCSS("color", "blue")
	clone.Borders = clone.Borders.Add(htmltable.Left)

	value, _ := s.GetCSS("color")
	assert.Equal(t, "red", value)
	assert.False(t, s.Borders.Has(htmltable.Left))
}

func TestParseCSSMultipleStatements(t *testing.T) {
	t.Parallel()
	decls, err := htmltable.ParseCSS("padding: 1px; margin: 2px;")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, htmltable.Declaration{Property: "padding", Value: "1px"}, decls[0])
	assert.Equal(t, htmltable.Declaration{Property: "margin", Value: "2px"}, decls[1])
}
