package nested_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/datablock/pkg/nested"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var res any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&res))
	return res
}

const doc = `{
  "organization": {
    "duns": "540924028",
    "primaryName": "Acme Co",
    "numberOfEmployees": [{"value": 120}],
    "legalForm": null,
    "industryCodes": [
      {"code": "5411", "priority": 1},
      {"code": 7371, "priority": "2"}
    ],
    "isStandalone": true,
    "tradeStyleNames": "ACME",
    "score": 1e-3
  }
}`

func TestValue(t *testing.T) {
	root := decode(t, doc)

	tests := []struct {
		msg  string
		path []any
		ok   bool
	}{
		{"existing key", []any{"organization", "duns"}, true},
		{"missing key", []any{"organization", "nope"}, false},
		{"null value", []any{"organization", "legalForm"}, false},
		{"through null", []any{"organization", "legalForm", "description"}, false},
		{"slice index", []any{"organization", "industryCodes", 1, "code"}, true},
		{"index out of range", []any{"organization", "industryCodes", 5}, false},
		{"negative index", []any{"organization", "industryCodes", -1}, false},
		{"string key on slice", []any{"organization", "industryCodes", "code"}, false},
		{"index on map", []any{"organization", 0}, false},
		{"key on scalar", []any{"organization", "duns", "x"}, false},
		{"unsupported step", []any{"organization", 1.5}, false},
		{"empty path", nil, true},
	}

	for _, v := range tests {
		_, ok := nested.Value(root, v.path...)
		assert.Equal(t, v.ok, ok, v.msg)
	}

	_, ok := nested.Value(nil, "organization")
	assert.False(t, ok, "nil root")
}

func TestGet(t *testing.T) {
	root := decode(t, doc)

	assert.Equal(t, "Acme Co",
		nested.Get(root, "n/a", "organization", "primaryName"))
	assert.Equal(t, "n/a",
		nested.Get(root, "n/a", "organization", "missing"))
	// wrong type returns the default
	assert.Equal(t, "n/a",
		nested.Get(root, "n/a", "organization", "isStandalone"))
	assert.True(t, nested.Get(root, false, "organization", "isStandalone"))
	assert.True(t, nested.Has(root, "organization", "industryCodes", 0))
	assert.False(t, nested.Has(root, "organization", "legalForm"))
}

func TestString(t *testing.T) {
	root := decode(t, doc)

	tests := []struct {
		msg  string
		path []any
		res  string
		nil  bool
	}{
		{"plain string", []any{"organization", "duns"}, "540924028", false},
		{"numeric code", []any{"organization", "industryCodes", 1, "code"}, "7371", false},
		{"bool as string", []any{"organization", "isStandalone"}, "true", false},
		{"missing", []any{"organization", "missing"}, "", true},
		{"object", []any{"organization", "numberOfEmployees", 0}, "", true},
	}

	for _, v := range tests {
		res := nested.String(root, v.path...)
		if v.nil {
			assert.Nil(t, res, v.msg)
			continue
		}
		require.NotNil(t, res, v.msg)
		assert.Equal(t, v.res, *res, v.msg)
	}

	blank := map[string]any{"name": "   "}
	assert.Nil(t, nested.String(blank, "name"))

	f := map[string]any{"v": 1234567890.0}
	assert.Equal(t, "1234567890", *nested.String(f, "v"))
}

func TestNumbers(t *testing.T) {
	root := decode(t, doc)

	i := nested.Int(root, "organization", "numberOfEmployees", 0, "value")
	require.NotNil(t, i)
	assert.Equal(t, 120, *i)

	i = nested.Int(root, "organization", "industryCodes", 1, "priority")
	require.NotNil(t, i)
	assert.Equal(t, 2, *i)

	f := nested.Float(root, "organization", "score")
	require.NotNil(t, f)
	assert.InDelta(t, 0.001, *f, 1e-9)

	assert.Nil(t, nested.Int(root, "organization", "primaryName"))
	assert.Nil(t, nested.Float(root, "organization", "missing"))

	m := map[string]any{"value": 125000.5}
	f = nested.Float(m, "value")
	require.NotNil(t, f)
	assert.Equal(t, 125000.5, *f)
}

func TestBool(t *testing.T) {
	m := map[string]any{"a": true, "b": "false", "c": "maybe", "d": 1.0}
	assert.True(t, *nested.Bool(m, "a"))
	assert.False(t, *nested.Bool(m, "b"))
	assert.Nil(t, nested.Bool(m, "c"))
	assert.Nil(t, nested.Bool(m, "d"))
	assert.Nil(t, nested.Bool(m, "e"))
}

func TestMapSlice(t *testing.T) {
	root := decode(t, doc)

	org := nested.Map(root, "organization")
	require.NotNil(t, org)
	assert.Nil(t, nested.Map(root, "organization", "duns"))

	codes := nested.Slice(root, "organization", "industryCodes")
	assert.Len(t, codes, 2)

	// a lone scalar becomes a one-element slice
	names := nested.Slice(root, "organization", "tradeStyleNames")
	assert.Equal(t, []any{"ACME"}, names)

	assert.Nil(t, nested.Slice(root, "organization", "missing"))
	assert.Nil(t, nested.Slice(root, "organization", "legalForm"))
}
