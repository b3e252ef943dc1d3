package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_PreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	keys := []string{"zeta", "alpha", "mid", "alpha2", "last"}
	for i, k := range keys {
		obj.Set(k, int64(i))
	}

	require.Equal(t, len(keys), obj.Len())
	for i, m := range obj.Members() {
		assert.Equal(t, keys[i], m.Key)
		assert.Equal(t, int64(i), m.Value)
	}
}

func TestObject_SetNeverDeduplicates(t *testing.T) {
	// The generators guarantee key uniqueness; the container must not
	// second-guess them by dropping or merging anything.
	obj := NewObject()
	obj.Set("k", int64(1))
	obj.Set("k", int64(2))

	require.Equal(t, 2, obj.Len())
	assert.Equal(t, int64(1), obj.Members()[0].Value)
	assert.Equal(t, int64(2), obj.Members()[1].Value)
}

func TestObject_ManyMembers(t *testing.T) {
	obj := NewObjectCap(10000)
	for i := 0; i < 10000; i++ {
		obj.Set(fmt.Sprintf("key%d", i), int64(i))
	}
	require.Equal(t, 10000, obj.Len())
	assert.Equal(t, "key0", obj.Members()[0].Key)
	assert.Equal(t, "key9999", obj.Members()[9999].Key)
}

func TestPayloadConstructors(t *testing.T) {
	doc := Document(NewObject())
	assert.Equal(t, RepDocument, doc.Rep)
	assert.NotNil(t, doc.Doc)

	text := Text(`{"a":`)
	assert.Equal(t, RepText, text.Rep)
	assert.Equal(t, `{"a":`, text.Text)

	bin := Binary([]byte{0xFF, 0xFF})
	assert.Equal(t, RepBinary, bin.Rep)
	assert.Equal(t, []byte{0xFF, 0xFF}, bin.Bytes)
}

func TestRepresentation_String(t *testing.T) {
	assert.Equal(t, "document", RepDocument.String())
	assert.Equal(t, "text", RepText.String())
	assert.Equal(t, "binary", RepBinary.String())
	assert.Equal(t, "unknown", Representation(99).String())
}
