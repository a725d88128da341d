package pdfcpu

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// stream implements object.Stream over a pdfcpu stream dictionary.
type stream struct {
	objNr int
	sd    types.StreamDict
}

func newStream(objNr int, sd types.StreamDict) *stream {
	return &stream{objNr: objNr, sd: sd}
}

// ObjectNumber returns the stream's indirect object number, or 0 for a
// stream reached without a reference.
func (s *stream) ObjectNumber() int {
	return s.objNr
}

// Filters returns the declared filter pipeline, outermost first.
func (s *stream) Filters() []object.Filter {
	if len(s.sd.FilterPipeline) == 0 {
		return nil
	}
	filters := make([]object.Filter, 0, len(s.sd.FilterPipeline))
	for _, f := range s.sd.FilterPipeline {
		params := object.Null()
		if f.DecodeParms != nil {
			params = toObject(f.DecodeParms)
		}
		filters = append(filters, object.Filter{Name: f.Name, Params: params})
	}
	return filters
}

// RawBytes returns the stream content before any filter is applied.
func (s *stream) RawBytes() []byte {
	return s.sd.Raw
}

// Decoded applies the filter pipeline. Failures surface as
// object.ErrDecode.
func (s *stream) Decoded() ([]byte, error) {
	if len(s.sd.Content) == 0 && len(s.sd.Raw) > 0 {
		if err := s.sd.Decode(); err != nil {
			return nil, fmt.Errorf("%w: object %d: %v", object.ErrDecode, s.objNr, err)
		}
	}
	return s.sd.Content, nil
}
