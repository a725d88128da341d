package pdfcpu

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/felixgeelhaar/pdfscope/domain/document"
	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// Document implements document.Document over a pdfcpu context.
type Document struct {
	ctx *model.Context
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Page returns the page with the given 1-based number.
func (d *Document) Page(number int) (document.Page, error) {
	if number < 1 || number > d.ctx.PageCount {
		return nil, fmt.Errorf("%w: page %d of %d", document.ErrPageOutOfRange, number, d.ctx.PageCount)
	}
	dict, _, _, err := d.ctx.PageDict(number, false)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", document.ErrParse, number, err)
	}
	if dict == nil {
		return nil, fmt.Errorf("%w: page %d of %d", document.ErrPageOutOfRange, number, d.ctx.PageCount)
	}
	return &Page{ctx: d.ctx, dict: dict}, nil
}

// Resolver resolves indirect references against this document's xref table.
func (d *Document) Resolver() object.Resolver {
	return &Resolver{ctx: d.ctx}
}

// Page implements document.Page over a pdfcpu page dictionary.
type Page struct {
	ctx  *model.Context
	dict types.Dict
}

// Contents returns the page's content streams in document order. A page
// without a Contents entry yields an empty list.
func (p *Page) Contents() ([]object.Stream, error) {
	obj, found := p.dict.Find("Contents")
	if !found {
		return nil, nil
	}
	var streams []object.Stream
	if err := p.collectStreams(obj, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

// collectStreams walks a Contents value, which is a stream, a reference to
// a stream, or an array of either.
func (p *Page) collectStreams(obj types.Object, out *[]object.Stream) error {
	switch o := obj.(type) {
	case types.IndirectRef:
		target, err := p.ctx.Dereference(o)
		if err != nil {
			return fmt.Errorf("%w: contents %s: %v", document.ErrParse, o, err)
		}
		if sd, ok := target.(types.StreamDict); ok {
			*out = append(*out, newStream(o.ObjectNumber.Value(), sd))
			return nil
		}
		return p.collectStreams(target, out)

	case types.StreamDict:
		*out = append(*out, newStream(0, o))
		return nil

	case types.Array:
		for _, item := range o {
			if err := p.collectStreams(item, out); err != nil {
				return err
			}
		}
		return nil

	case nil:
		return nil

	default:
		return fmt.Errorf("%w: unexpected contents value %T", document.ErrParse, obj)
	}
}

// Resources returns the page's resource dictionary with each value left
// unresolved. A page without a Resources entry yields an empty mapping.
func (p *Page) Resources() (map[string]object.Object, error) {
	obj, found := p.dict.Find("Resources")
	if !found {
		return map[string]object.Object{}, nil
	}
	target, err := p.ctx.Dereference(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: resources: %v", document.ErrParse, err)
	}
	dict, ok := target.(types.Dict)
	if !ok {
		return nil, fmt.Errorf("%w: resources is %T, want dictionary", document.ErrParse, target)
	}
	out := make(map[string]object.Object, len(dict))
	for name, value := range dict {
		out[name] = toObject(value)
	}
	return out, nil
}
