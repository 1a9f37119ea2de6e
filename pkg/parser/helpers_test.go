package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		msg, s string
		exp    *time.Time
	}{
		{"full", "2021-03-04", ptr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"month", "2021-03", ptr(time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))},
		{"rfc3339", "2021-03-04T22:10:00-05:00", ptr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"no zone", "2021-03-04T10:00:00", ptr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"spaces", " 2021-03-04 ", ptr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"year", "2021", nil},
		{"garbage", "March 4", nil},
		{"bad day", "2021-02-30", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.exp, parseDate(tt.s))
		})
	}
}

func TestPriority(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, priority("ACME", 0))
	assert.Equal(3, priority(map[string]any{"name": "x"}, 2))
	assert.Equal(7, priority(map[string]any{"priority": 7.0}, 0))
}

func TestScalarOr(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("a", *scalarOr(" a ", "name"))
	assert.Equal("b", *scalarOr(map[string]any{"name": "b"}, "name"))
	assert.Equal("c", *scalarOr(map[string]any{"email": "c"}, "address", "email"))
	assert.Nil(scalarOr(map[string]any{"other": "d"}, "name"))
	assert.Nil(scalarOr(nil, "name"))
}

func TestMoney(t *testing.T) {
	assert := assert.New(t)
	m := map[string]any{
		"amount":  map[string]any{"value": 125000.5, "currency": "usd"},
		"noCurr":  map[string]any{"value": 1.0},
		"invalid": "12",
	}
	res := money(m, "amount")
	assert.Equal(125000.5, *res.Value)
	assert.Equal("USD", *res.Currency)
	res = money(m, "noCurr")
	assert.Nil(res.Currency)
	assert.True(money(m, "invalid").IsZero())
	assert.True(money(m, "absent").IsZero())
}

func ptr[T any](v T) *T {
	return &v
}
