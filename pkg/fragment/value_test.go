package fragment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/buildlocale/pkg/fragment"
)

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()
		o := fragment.NewObject()
		o.Set("zeta", 1)
		o.Set("alpha", 2)
		o.Set("mid", 3)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, o.Keys())
		assert.Equal(t, 3, o.Len())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		t.Parallel()
		o := fragment.NewObject()
		o.Set("a", 1)
		o.Set("b", 2)
		o.Set("a", 3)
		assert.Equal(t, []string{"a", "b"}, o.Keys())
		v, ok := o.Get("a")
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("all iterates in order", func(t *testing.T) {
		t.Parallel()
		o := fragment.NewObject()
		o.Set("b", "x")
		o.Set("a", "y")
		var keys []string
		for k := range o.All() {
			keys = append(keys, k)
		}
		assert.Equal(t, []string{"b", "a"}, keys)
	})

	t.Run("nil object is empty", func(t *testing.T) {
		t.Parallel()
		var o *fragment.Object
		assert.Equal(t, 0, o.Len())
		assert.Nil(t, o.Keys())
		_, ok := o.Get("a")
		assert.False(t, ok)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	inner := fragment.NewObject()
	inner.Set("x", "1")
	o := fragment.NewObject()
	o.Set("nested", inner)
	o.Set("list", []any{"a", inner})

	c := o.Clone()
	inner.Set("y", "2")

	nested, _ := c.Get("nested")
	assert.Equal(t, []string{"x"}, nested.(*fragment.Object).Keys())

	list, _ := c.Get("list")
	assert.Equal(t, []string{"x"}, list.([]any)[1].(*fragment.Object).Keys())
}

func TestShallowCopy(t *testing.T) {
	t.Parallel()

	o := fragment.NewObject()
	o.Set("a", 1)
	c := o.ShallowCopy()
	c.Set("b", 2)

	assert.Equal(t, []string{"a"}, o.Keys())
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fragment.KindObject, fragment.KindOf(fragment.NewObject()))
	assert.Equal(t, fragment.KindArray, fragment.KindOf([]any{1}))
	assert.Equal(t, fragment.KindScalar, fragment.KindOf("s"))
	assert.Equal(t, fragment.KindScalar, fragment.KindOf(json.Number("1")))
	assert.Equal(t, fragment.KindScalar, fragment.KindOf(nil))
	assert.Equal(t, "array", fragment.KindArray.String())
}

func TestFromMapAndMap(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"b": "2",
		"a": map[string]any{"y": true, "x": nil},
		"c": []any{map[string]any{"k": "v"}},
	}

	o := fragment.FromMap(m)
	assert.Equal(t, []string{"a", "b", "c"}, o.Keys())

	nested, _ := o.Get("a")
	assert.Equal(t, []string{"x", "y"}, nested.(*fragment.Object).Keys())
	assert.Equal(t, m, o.Map())
}
