package tomladapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToValueScalarsAndNesting(t *testing.T) {
	text := `
name = "widget"
count = 3
active = true

[owner]
email = "a@b.com"
`
	v, err := ParseToValue(text)
	require.Nil(t, err)

	name, ok := v.Object().Get("name")
	require.True(t, ok)
	assert.Equal(t, "widget", name.String_())

	count, _ := v.Object().Get("count")
	assert.Equal(t, float64(3), count.Number())

	owner, ok := v.Object().Get("owner")
	require.True(t, ok)
	email, _ := owner.Object().Get("email")
	assert.Equal(t, "a@b.com", email.String_())
}

func TestParseToValueArrays(t *testing.T) {
	v, err := ParseToValue(`tags = ["a", "b", "c"]`)
	require.Nil(t, err)
	tags, ok := v.Object().Get("tags")
	require.True(t, ok)
	assert.Len(t, tags.Array(), 3)
}

func TestParseToValueInvalidTOML(t *testing.T) {
	_, err := ParseToValue(`this is not = = toml`)
	assert.NotNil(t, err)
}
