// Package pdfcpu adapts github.com/pdfcpu/pdfcpu to the document parsing
// ports. All knowledge of pdfcpu's object taxonomy stays inside this
// package.
package pdfcpu

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/felixgeelhaar/pdfscope/domain/document"
)

// Parser implements document.Parser over pdfcpu.
type Parser struct {
	conf *model.Configuration
}

// NewParser creates a parser with pdfcpu's default configuration.
func NewParser() *Parser {
	return &Parser{conf: model.NewDefaultConfiguration()}
}

// Parse reads and validates data as a PDF document. Any pdfcpu failure
// surfaces as document.ErrParse.
func (p *Parser) Parse(ctx context.Context, data []byte) (document.Document, error) {
	rctx, err := api.ReadContext(bytes.NewReader(data), p.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", document.ErrParse, err)
	}
	if err := api.ValidateContext(rctx); err != nil {
		return nil, fmt.Errorf("%w: %v", document.ErrParse, err)
	}
	return &Document{ctx: rctx}, nil
}
