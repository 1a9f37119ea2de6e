// Package document classifies decoded vendor JSON into one of the known
// document categories.
//
// A Document is a closed set of variants: CompanyInfoDoc, EventsFilingsDoc
// and FinancialsDoc. The unexported marker method keeps other packages from
// adding variants, so a new category always requires a change here and in
// every exhaustive switch over Document.
package document

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Category names a kind of vendor document.
type Category string

const (
	// CompanyInfo is a firmographic profile of a company.
	CompanyInfo Category = "companyinfo"
	// EventsFilings contains legal events, awards, exclusions and other
	// filings.
	EventsFilings Category = "eventsfilings"
	// Financials contains financial statements.
	Financials Category = "financials"
)

// Categories lists all known categories.
func Categories() []Category {
	return []Category{CompanyInfo, EventsFilings, Financials}
}

// Key is the natural key of a company with the display attributes that
// travel with it.
type Key struct {
	// DUNS is the 9-digit company identifier.
	DUNS string `validate:"required,len=9,number"`

	// PrimaryName is the display name of the company.
	PrimaryName string

	// Country is the ISO 3166 alpha-2 country code.
	Country string `validate:"omitempty,len=2,alpha"`
}

// Document is a classified vendor document.
type Document interface {
	// Category returns the kind of the document.
	Category() Category

	// Key returns the validated natural key of the company.
	Key() Key

	// Organization returns the root object of the document.
	Organization() map[string]any

	isDocument()
}

type base struct {
	key Key
	org map[string]any
}

func (b base) Key() Key                     { return b.key }
func (b base) Organization() map[string]any { return b.org }
func (b base) isDocument()                  {}

// CompanyInfoDoc is a company profile document.
type CompanyInfoDoc struct{ base }

// Category implements Document.
func (CompanyInfoDoc) Category() Category { return CompanyInfo }

// EventsFilingsDoc is an events and filings document.
type EventsFilingsDoc struct{ base }

// Category implements Document.
func (EventsFilingsDoc) Category() Category { return EventsFilings }

// FinancialsDoc is a financial statements document.
type FinancialsDoc struct{ base }

// Category implements Document.
func (FinancialsDoc) Category() Category { return Financials }

// New decodes and classifies a document. The hint is used only when the
// category cannot be determined from the content. It can be a category
// name or a file name.
func New(data []byte, hint string) (Document, error) {
	root, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Classify(root, hint)
}

// Decode parses JSON data into a generic tree. Numbers are kept as
// json.Number to preserve long identifiers and exact amounts.
func Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var res map[string]any
	if err := dec.Decode(&res); err != nil {
		return nil, DecodeError(err)
	}
	if dec.More() {
		return nil, DecodeError(errTrailingData)
	}
	if res == nil {
		return nil, DecodeError(errNotObject)
	}
	return res, nil
}

// Classify determines the category of a decoded document and extracts
// its natural key.
func Classify(root map[string]any, hint string) (Document, error) {
	cat, ok := DetectCategory(root, hint)
	if !ok {
		return nil, UnknownCategoryError(hint)
	}

	org, _ := root["organization"].(map[string]any)
	if org == nil {
		return nil, NoKeyError(cat)
	}

	key, err := NewKey(org)
	if err != nil {
		return nil, err
	}

	b := base{key: key, org: org}
	switch cat {
	case CompanyInfo:
		return CompanyInfoDoc{b}, nil
	case EventsFilings:
		return EventsFilingsDoc{b}, nil
	case Financials:
		return FinancialsDoc{b}, nil
	}
	return nil, UnknownCategoryError(hint)
}

// ParseCategory converts a category name, a vendor block ID or a file name
// into a Category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	switch {
	case strings.Contains(s, "companyinfo"):
		return CompanyInfo, true
	case strings.Contains(s, "eventfiling"),
		strings.Contains(s, "eventsfiling"):
		return EventsFilings, true
	case strings.Contains(s, "financial"):
		return Financials, true
	}
	return "", false
}
