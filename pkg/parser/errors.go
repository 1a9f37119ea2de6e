package parser

import (
	"fmt"

	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
)

// UnsupportedDocumentError is returned for a document type the parser does
// not know about.
func UnsupportedDocumentError(doc document.Document) error {
	msg := "Document type <em>%T</em> is not supported"
	return &gn.Error{
		Code: errcode.ParserUnsupportedDocumentError,
		Msg:  msg,
		Vars: []any{doc},
		Err:  fmt.Errorf("unsupported document type %T", doc),
	}
}
