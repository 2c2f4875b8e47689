package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_PreservesOrder(t *testing.T) {
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(`{"zeta":1,"alpha":"a","mid":{"b":2,"a":1}}`), obj))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":1,"alpha":"a","mid":{"b":2,"a":1}}`, string(out))
	assert.Equal(t, `{"zeta":1,"alpha":"a","mid":{"b":2,"a":1}}`, string(out))
}

func TestObject_SetKeepsPositionOfExistingKey(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", 1))
	require.NoError(t, obj.Set("b", 2))
	require.NoError(t, obj.Set("a", 3))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	raw, ok := obj.Raw("a")
	require.True(t, ok)
	assert.Equal(t, "3", string(raw))
}

func TestObject_RejectsNonObject(t *testing.T) {
	for _, input := range []string{`[]`, `"x"`, `12`, `null`} {
		obj := NewObject()
		assert.Error(t, json.Unmarshal([]byte(input), obj), input)
	}
}

func TestObject_StringEntriesSkipsNonStrings(t *testing.T) {
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(`{"build":"tsc","n":3,"test":"jest"}`), obj))

	assert.Equal(t, []Entry{{Key: "build", Value: "tsc"}, {Key: "test", Value: "jest"}}, obj.StringEntries())
}

func TestObject_Indent(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("name", "demo"))
	require.NoError(t, obj.Set("scripts", map[string]string{"dev": "vite"}))

	out, err := obj.Indent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"demo\",\n  \"scripts\": {\n    \"dev\": \"vite\"\n  }\n}\n", string(out))
}

func TestObject_NestedObject(t *testing.T) {
	obj := NewObject()
	require.NoError(t, json.Unmarshal([]byte(`{"compilerOptions":{"strict":true}}`), obj))

	child, ok, err := obj.Object("compilerOptions")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"strict"}, child.Keys())

	_, ok, err = obj.Object("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestObject_SetDoesNotEscapeHTML(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.Set("build", "tsc && node dist/<main>.js"))

	raw, ok := o.Raw("build")
	require.True(t, ok)
	assert.Equal(t, `"tsc && node dist/<main>.js"`, string(raw))
}
