package yamladapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToValuePreservesMappingKeyOrder(t *testing.T) {
	v, err := ParseToValue("z: 1\na: 2\nm: 3\n")
	require.Nil(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Object().Keys())
}

func TestParseToValueNestedSequenceAndMapping(t *testing.T) {
	text := "items:\n  - name: a\n    qty: 1\n  - name: b\n    qty: 2\n"
	v, err := ParseToValue(text)
	require.Nil(t, err)
	items, ok := v.Object().Get("items")
	require.True(t, ok)
	require.Len(t, items.Array(), 2)
	name0, _ := items.Array()[0].Object().Get("name")
	assert.Equal(t, "a", name0.String_())
}

func TestParseToValueScalarTypes(t *testing.T) {
	text := "flag: true\ncount: 3\nratio: 1.5\nlabel: hi\nempty: null\n"
	v, err := ParseToValue(text)
	require.Nil(t, err)

	flag, _ := v.Object().Get("flag")
	assert.Equal(t, true, flag.Bool())

	count, _ := v.Object().Get("count")
	assert.Equal(t, float64(3), count.Number())

	ratio, _ := v.Object().Get("ratio")
	assert.Equal(t, 1.5, ratio.Number())

	empty, _ := v.Object().Get("empty")
	assert.Equal(t, "null", empty.Kind().String())
}

func TestParseToValueEmptyDocumentIsNull(t *testing.T) {
	v, err := ParseToValue("")
	require.Nil(t, err)
	assert.Equal(t, "null", v.Kind().String())
}

func TestParseToValueInvalidYAML(t *testing.T) {
	_, err := ParseToValue("a: [unclosed")
	assert.NotNil(t, err)
}
