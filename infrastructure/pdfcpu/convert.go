package pdfcpu

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/felixgeelhaar/pdfscope/domain/object"
)

// toObject maps a pdfcpu object into the closed domain shape. Indirect
// references stay unresolved; the normalizer resolves them on demand.
// Atomic parser types without a dedicated shape (numbers, booleans) carry
// their textual rendering.
func toObject(obj types.Object) object.Object {
	switch o := obj.(type) {
	case nil:
		return object.Null()

	case types.Dict:
		m := make(map[string]object.Object, len(o))
		for k, v := range o {
			m[k] = toObject(v)
		}
		return object.DictOf(m)

	case types.Array:
		items := make([]object.Object, 0, len(o))
		for _, v := range o {
			items = append(items, toObject(v))
		}
		return object.ArrayOf(items)

	case types.Name:
		return object.TextOf(o.Value())

	case types.StringLiteral:
		// PDF strings are byte strings.
		return object.BinaryOf([]byte(o.Value()))

	case types.HexLiteral:
		b, err := o.Bytes()
		if err != nil {
			return object.OpaqueOf(o.String())
		}
		return object.BinaryOf(b)

	case types.StreamDict:
		// A stream reached without a reference has no object number of
		// its own.
		return object.StreamOf(newStream(0, o))

	case types.IndirectRef:
		return object.RefTo(o.ObjectNumber.Value(), o.GenerationNumber.Value())

	default:
		return object.OpaqueOf(obj.String())
	}
}
