package parser

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gnames/datablock/pkg/nested"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/gnlib"
)

// dateLayouts are tried in order. A month without a day means the first
// day of the month.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
}

// str returns a normalized non-empty string or nil.
func str(root any, path ...any) *string {
	s := nested.String(root, path...)
	if s == nil {
		return nil
	}
	res := strings.TrimSpace(gnlib.FixUtf8(*s))
	if res == "" {
		return nil
	}
	return &res
}

func upper(root any, path ...any) *string {
	s := str(root, path...)
	if s == nil {
		return nil
	}
	res := strings.ToUpper(*s)
	return &res
}

// desc reads a field that is either a plain string or a coded object.
func desc(root any, path ...any) *string {
	if m := nested.Map(root, path...); m != nil {
		return str(m, "description")
	}
	return str(root, path...)
}

// scalarOr reads an element of a repeatable field that is either a bare
// string or an object wrapping it under one of the keys.
func scalarOr(v any, keys ...string) *string {
	if _, ok := v.(map[string]any); !ok {
		return str(v)
	}
	for _, k := range keys {
		if s := str(v, k); s != nil {
			return s
		}
	}
	return nil
}

func date(root any, path ...any) *time.Time {
	s := nested.String(root, path...)
	if s == nil {
		return nil
	}
	return parseDate(*s)
}

// parseDate returns the calendar date of s or nil if s is not a date.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		t, err := time.Parse(l, s)
		if err != nil {
			continue
		}
		res := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &res
	}
	return nil
}

func money(root any, path ...any) schema.Money {
	m := nested.Map(root, path...)
	if m == nil {
		return schema.Money{}
	}
	return schema.Money{
		Value:    nested.Float(m, "value"),
		Currency: upper(m, "currency"),
	}
}

func coded(root any, path ...any) schema.Coded {
	m := nested.Map(root, path...)
	if m == nil {
		return schema.Coded{}
	}
	return schema.Coded{
		Description: str(m, "description"),
		DnbCode:     nested.Int(m, "dnbCode"),
	}
}

// codedFlat reads a coded pair stored as sibling fields, like
// reliabilityDescription and reliabilityDnBCode.
func codedFlat(m map[string]any, prefix string) schema.Coded {
	return schema.Coded{
		Description: str(m, prefix+"Description"),
		DnbCode:     nested.Int(m, prefix+"DnBCode"),
	}
}

func codeDesc(root any, path ...any) schema.CodeDesc {
	m := nested.Map(root, path...)
	if m == nil {
		return schema.CodeDesc{}
	}
	return schema.CodeDesc{
		Code:        str(m, "code"),
		Description: str(m, "description"),
	}
}

func address(root any, path ...any) schema.Address {
	m := nested.Map(root, path...)
	if m == nil {
		return schema.Address{}
	}
	return schema.Address{
		Line1:       str(m, "streetAddress", "line1"),
		Line2:       str(m, "streetAddress", "line2"),
		Locality:    str(m, "addressLocality", "name"),
		Region:      str(m, "addressRegion", "name"),
		RegionAbbr:  str(m, "addressRegion", "abbreviatedName"),
		PostalCode:  str(m, "postalCode"),
		CountryName: str(m, "addressCountry", "name"),
		CountryISO:  upper(m, "addressCountry", "isoAlpha2Code"),
		Latitude:    nested.Float(m, "latitude"),
		Longitude:   nested.Float(m, "longitude"),
	}
}

// addressLine joins the parts of an address into one line.
func addressLine(root any, path ...any) *string {
	a := address(root, path...)
	var parts []string
	for _, p := range []*string{
		a.Line1, a.Line2, a.Locality, a.Region, a.PostalCode, a.CountryISO,
	} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	res := strings.Join(parts, ", ")
	return &res
}

// priority returns the explicit priority of an item, or its 1-based
// position in the source array.
func priority(item any, idx int) int {
	if p := nested.Int(item, "priority"); p != nil {
		return *p
	}
	return idx + 1
}

// objects returns map elements of an array field. Other elements are
// skipped, their positions are kept in the returned indices.
func objects(root any, path ...any) ([]map[string]any, []int) {
	var res []map[string]any
	var idx []int
	for i, v := range nested.Slice(root, path...) {
		if m, ok := v.(map[string]any); ok {
			res = append(res, m)
			idx = append(idx, i)
		}
	}
	return res, idx
}

// rawJSON keeps a fragment of the document as JSON text.
func rawJSON(root any, path ...any) schema.RawJSON {
	v, ok := nested.Value(root, path...)
	if !ok {
		return nil
	}
	res, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return schema.RawJSON(res)
}

// section returns an object section of the organization and whether the
// section is present at all.
func section(org map[string]any, key string) (map[string]any, bool) {
	if !nested.Has(org, key) {
		return nil, false
	}
	return nested.Map(org, key), true
}

func textEntries(root any, path ...any) []schema.TextEntry {
	items, idx := objects(root, path...)
	res := make([]schema.TextEntry, 0, len(items))
	for i, v := range items {
		text := str(v, "text")
		if text == nil {
			continue
		}
		res = append(res, schema.TextEntry{
			Text:            text,
			TypeDescription: str(v, "typeDescription"),
			TypeDnbCode:     nested.Int(v, "typeDnBCode"),
			Language:        coded(v, "language"),
			Priority:        priority(v, idx[i]),
		})
	}
	return res
}
