package htmltable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickSto/htmltable"
)

func TestFromYAML(t *testing.T) {
	t.Parallel()
	doc := `
style: {font: monospace}
header:
  - [Letter, Count]
body:
  - [a, 1]
  - - value: subtotal
      width: 2
      align: center
`
	table, err := htmltable.FromYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "monospace", table.Style.Font)
	assert.Equal(t, 1, table.Header().Len())
	assert.Equal(t, 2, table.Body().Len())
	assert.Equal(t, "Letter", table.Header().Row(0).Cell(0).Value)

	subtotal := table.Body().Row(1).Cell(0)
	assert.Equal(t, "subtotal", subtotal.Value)
	assert.Equal(t, 2, subtotal.Width)
	assert.Equal(t, htmltable.AlignCenter, subtotal.Style.Align)
}

func TestFromYAMLHeaderLen(t *testing.T) {
	t.Parallel()
	doc := `
header_len: 1
body:
  - [Letter]
  - [a]
`
	table, err := htmltable.FromYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Header().Len())
	assert.Equal(t, 1, table.Body().Len())
	assert.Equal(t, "Letter", table.Header().Row(0).Cell(0).Value)
}

func TestFromYAMLBadCellAttribute(t *testing.T) {
	t.Parallel()
	doc := `
body:
  - - value: a
      widht: 2
`
	_, err := htmltable.FromYAML([]byte(doc))
	require.ErrorIs(t, err, htmltable.ErrUnknownAttribute)
}

func TestFromYAMLNotYAML(t *testing.T) {
	t.Parallel()
	_, err := htmltable.FromYAML([]byte(":\t:"))
	require.Error(t, err)
}
