// Package document defines the boundary to the external PDF parsing
// collaborator. Implementations live in infrastructure.
package document

import (
	"context"

	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// Parser turns raw bytes into a parsed document.
type Parser interface {
	// Parse reads data as a PDF document. Malformed input fails with
	// ErrParse.
	Parse(ctx context.Context, data []byte) (Document, error)
}

// Document is one parsed PDF document. A document is scoped to a single
// dump operation and never shared across requests.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Page returns the page with the given 1-based number.
	Page(number int) (Page, error)

	// Resolver resolves indirect references against this document's
	// object table.
	Resolver() object.Resolver
}

// Page is one parsed page.
type Page interface {
	// Contents returns the page's content-stream list in document order.
	Contents() ([]object.Stream, error)

	// Resources returns the page's resource dictionary with values left
	// unresolved (references intact), keyed by display name.
	Resources() (map[string]object.Object, error)
}
