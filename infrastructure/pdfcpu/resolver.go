package pdfcpu

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/felixgeelhaar/pdfscope/domain/document"
	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// Resolver implements object.Resolver over a pdfcpu xref table. pdfcpu's
// Dereference follows reference chains itself, so one Resolve call yields a
// direct value.
type Resolver struct {
	ctx *model.Context
}

// Resolve returns the value the reference points at. A stream target keeps
// the reference's object number for rendering.
func (r *Resolver) Resolve(ref object.Ref) (object.Object, error) {
	ir := types.NewIndirectRef(ref.Number, ref.Generation)
	target, err := r.ctx.Dereference(*ir)
	if err != nil {
		return object.Null(), fmt.Errorf("%w: %s: %v", document.ErrParse, ref, err)
	}
	if sd, ok := target.(types.StreamDict); ok {
		return object.StreamOf(newStream(ref.Number, sd)), nil
	}
	return toObject(target), nil
}
