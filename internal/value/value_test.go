package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", Number(1))
	obj.Set("a", Number(2))
	obj.Set("m", Number(3))

	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestObjectSetOverwriteKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Number(1))
	obj.Set("b", Number(2))
	obj.Set("a", Number(99))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(99), v.Number())
}

func TestEqualIgnoresObjectKeyOrder(t *testing.T) {
	a := NewObject()
	a.Set("x", Number(1))
	a.Set("y", String("hi"))

	b := NewObject()
	b.Set("y", String("hi"))
	b.Set("x", Number(1))

	assert.True(t, Equal(ObjectOf(a), ObjectOf(b)))
}

func TestEqualArraysAreOrderSensitive(t *testing.T) {
	a := Array(Number(1), Number(2))
	b := Array(Number(2), Number(1))
	assert.False(t, Equal(a, b))
}

func TestDeepCopyIsIndependent(t *testing.T) {
	obj := NewObject()
	obj.Set("k", Array(Number(1)))
	original := ObjectOf(obj)

	copied := DeepCopy(original)
	copied.Object().Set("k", Array(Number(99)))

	v, _ := original.Object().Get("k")
	assert.Equal(t, float64(1), v.Array()[0].Number())
}

func TestIsInteger(t *testing.T) {
	assert.True(t, Number(4).IsInteger())
	assert.False(t, Number(4.5).IsInteger())
}

func TestSerializePreservesKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Number(1))
	obj.Set("a", Number(2))
	got := Serialize(ObjectOf(obj))
	assert.Equal(t, `{"b":1,"a":2}`, got)
}

func TestParseSerializeRoundTrip(t *testing.T) {
	obj := NewObject()
	obj.Set("name", String("Ada"))
	obj.Set("age", Number(12))
	obj.Set("tags", Array(String("x"), String("y")))
	original := ObjectOf(obj)

	text := Serialize(original)
	parsed, err := FromJSON(text)
	require.NoError(t, err)
	assert.True(t, Equal(original, parsed))
}

func TestCanonicalString(t *testing.T) {
	s, err := CanonicalString(Number(42))
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = CanonicalString(Array())
	assert.Error(t, err)
}
