package document

import (
	"errors"
	"fmt"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
)

var (
	errTrailingData = errors.New("unexpected data after the top-level object")
	errNotObject    = errors.New("top-level JSON value is not an object")
)

// DecodeError is returned when a document is not a valid JSON object.
func DecodeError(err error) error {
	msg := `Cannot decode JSON document

<em>Possible causes:</em>
  - The file is truncated or not JSON
  - The top-level value is not an object`

	return &gn.Error{
		Code: errcode.DocumentDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to decode document: %w", err),
	}
}

// UnknownCategoryError is returned when neither the content nor the hint
// identify the document category.
func UnknownCategoryError(hint string) error {
	msg := `Cannot determine category of the document (hint: <em>'%s'</em>)

<em>How to fix:</em>
  1. Make sure inquiryDetail.blockIDs is present in the document
  2. Provide a category with <em>--category</em> or in the manifest`

	return &gn.Error{
		Code: errcode.DocumentUnknownCategoryError,
		Msg:  msg,
		Vars: []any{hint},
		Err:  fmt.Errorf("unknown document category, hint %q", hint),
	}
}

// NoKeyError is returned when a document has no organization DUNS.
func NoKeyError(cat Category) error {
	msg := "Document of category <em>'%s'</em> has no organization DUNS"

	return &gn.Error{
		Code: errcode.DocumentNoKeyError,
		Msg:  msg,
		Vars: []any{cat},
		Err:  fmt.Errorf("organization.duns is missing in %q document", cat),
	}
}

// InvalidKeyError is returned when the DUNS is not 9 digits.
func InvalidKeyError(duns string, err error) error {
	msg := "DUNS <em>'%s'</em> is not a 9-digit number"

	return &gn.Error{
		Code: errcode.DocumentInvalidKeyError,
		Msg:  msg,
		Vars: []any{duns},
		Err:  fmt.Errorf("invalid DUNS %q: %w", duns, err),
	}
}
