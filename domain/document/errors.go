package document

import "errors"

// Domain errors for document parsing and page access.
var (
	// ErrParse indicates the byte content is not a well-formed PDF
	// document, or its page and object structure is unreadable.
	ErrParse = errors.New("malformed pdf document")

	// ErrPageOutOfRange indicates the requested page number is less than 1
	// or exceeds the document's page count.
	ErrPageOutOfRange = errors.New("page number out of range")
)
