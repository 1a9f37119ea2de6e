package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Money is a monetary amount with its ISO 4217 currency code.
// Embed it with an embeddedPrefix to get <prefix>value and
// <prefix>currency columns. Currency is NULL when the source omits it.
type Money struct {
	Value    *float64 `gorm:"type:numeric(18,2)"`
	Currency *string  `gorm:"size:3"`
}

// IsZero returns true if neither value nor currency are set.
func (m Money) IsZero() bool {
	return m.Value == nil && m.Currency == nil
}

// Coded is a vendor description paired with its numeric D&B code.
type Coded struct {
	Description *string `gorm:"size:500"`
	DnbCode     *int
}

// IsZero returns true if the pair is empty.
func (c Coded) IsZero() bool {
	return c.Description == nil && c.DnbCode == nil
}

// CodeDesc is a description paired with an alphanumeric code.
type CodeDesc struct {
	Code        *string `gorm:"size:50"`
	Description *string `gorm:"size:500"`
}

// Address is a postal address flattened into columns of its owner.
type Address struct {
	Line1       *string  `gorm:"column:line1;size:500"`
	Line2       *string  `gorm:"column:line2;size:500"`
	Locality    *string  `gorm:"size:200"`
	Region      *string  `gorm:"size:200"`
	RegionAbbr  *string  `gorm:"size:50"`
	PostalCode  *string  `gorm:"size:50"`
	CountryName *string  `gorm:"size:200"`
	CountryISO  *string  `gorm:"column:country_iso;size:2"`
	Latitude    *float64 `gorm:"type:numeric(10,6)"`
	Longitude   *float64 `gorm:"type:numeric(10,6)"`
}

// RawJSON keeps a JSON fragment as text.
type RawJSON json.RawMessage

// Scan implements the sql.Scanner interface for RawJSON.
func (j *RawJSON) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case string:
		*j = RawJSON(v)
	case []byte:
		*j = append(RawJSON(nil), v...)
	default:
		return fmt.Errorf("unsupported type for RawJSON: %T", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for RawJSON.
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// MarshalJSON keeps the fragment as is in JSON output.
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}
