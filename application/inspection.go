// Package application provides application services.
package application

import (
	"context"
	"fmt"
	"os"

	"github.com/felixgeelhaar/pdfscope/domain/document"
	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// PageDump is the fully rendered inspection result for one page.
type PageDump struct {
	// Contents is the normalized form of the page's content stream. When
	// the page declares more than one content stream, each stream's
	// rendering overwrites the previous one, so only the last survives.
	Contents any `json:"contents"`

	// Resources maps each resource name to its normalized value.
	Resources map[string]any `json:"resources"`
}

// InspectionService dumps raw page internals through the parsing
// collaborator. Each call parses from scratch; nothing is cached or shared
// between calls.
type InspectionService struct {
	parser document.Parser
}

// NewInspectionService creates a new inspection service.
func NewInspectionService(parser document.Parser) *InspectionService {
	return &InspectionService{parser: parser}
}

// DumpPage parses data and renders the content streams and resource
// dictionary of the page with the given 1-based number. Page numbers below
// 1 or beyond the document's page count fail with
// document.ErrPageOutOfRange; malformed input fails with document.ErrParse.
func (s *InspectionService) DumpPage(ctx context.Context, data []byte, page int) (*PageDump, error) {
	doc, err := s.parser.Parse(ctx, data)
	if err != nil {
		return nil, err
	}

	if page < 1 || page > doc.PageCount() {
		return nil, fmt.Errorf("%w: page %d of %d", document.ErrPageOutOfRange, page, doc.PageCount())
	}

	pg, err := doc.Page(page)
	if err != nil {
		return nil, err
	}

	norm := object.NewNormalizer(doc.Resolver())

	streams, err := pg.Contents()
	if err != nil {
		return nil, err
	}
	var contents any = map[string]any{}
	for _, st := range streams {
		contents, err = norm.Normalize(object.StreamOf(st))
		if err != nil {
			return nil, err
		}
	}

	raw, err := pg.Resources()
	if err != nil {
		return nil, err
	}
	resources := make(map[string]any, len(raw))
	for name, value := range raw {
		nv, err := norm.Normalize(value)
		if err != nil {
			return nil, err
		}
		resources[name] = nv
	}

	return &PageDump{Contents: contents, Resources: resources}, nil
}

// DumpPageFile reads path and dumps the given page. Convenience for the
// CLI path.
func (s *InspectionService) DumpPageFile(ctx context.Context, path string, page int) (*PageDump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.DumpPage(ctx, data, page)
}
