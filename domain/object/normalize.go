package object

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Normalizer converts parsed PDF values into JSON-safe structures: nested
// maps and slices of strings, with binary content base64-encoded and all
// indirection fully resolved. The result carries no references and no
// cycles.
type Normalizer struct {
	resolver Resolver
}

// NewNormalizer creates a normalizer that resolves indirect references
// through r. A nil resolver is allowed for reference-free values; hitting a
// reference then fails with ErrNoResolver.
func NewNormalizer(r Resolver) *Normalizer {
	return &Normalizer{resolver: r}
}

// Normalize renders obj as a JSON-safe value. Dispatch follows the shape of
// the value: null, mapping, sequence, text, binary, stream, reference, then
// the opaque fallback. References are resolved and the target normalized in
// turn; a reference already being resolved on the current path fails with
// ErrCycle rather than recursing forever.
func (n *Normalizer) Normalize(obj Object) (any, error) {
	return n.normalize(obj, make(map[Ref]bool))
}

func (n *Normalizer) normalize(obj Object, seen map[Ref]bool) (any, error) {
	switch obj.Kind {
	case KindNull:
		return nil, nil

	case KindDict:
		out := make(map[string]any, len(obj.Dict))
		for k, v := range obj.Dict {
			nv, err := n.normalize(v, seen)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil

	case KindArray:
		out := make([]any, 0, len(obj.Array))
		for _, v := range obj.Array {
			nv, err := n.normalize(v, seen)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil

	case KindText:
		return obj.Text, nil

	case KindBinary:
		return base64.StdEncoding.EncodeToString(obj.Binary), nil

	case KindStream:
		return n.renderStream(obj.Stream, seen)

	case KindRef:
		if n.resolver == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoResolver, obj.Ref)
		}
		if seen[obj.Ref] {
			return nil, fmt.Errorf("%w: %s", ErrCycle, obj.Ref)
		}
		seen[obj.Ref] = true
		target, err := n.resolver.Resolve(obj.Ref)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", obj.Ref, err)
		}
		out, err := n.normalize(target, seen)
		delete(seen, obj.Ref)
		return out, err

	case KindOpaque:
		return obj.Opaque, nil

	default:
		return nil, fmt.Errorf("unrecognized object kind %s", obj.Kind)
	}
}

// renderStream renders a stream object as a single-key mapping whose key
// names the stream's object number in PDF notation. An unfiltered or
// deflate-compressed stream contributes its decoded text; any other filter
// contributes its normalized decode parameters and the base64 of the raw,
// undecoded bytes. When multiple filters are declared, each pair overwrites
// the previous one's output, so the last pair determines the result.
func (n *Normalizer) renderStream(s Stream, seen map[Ref]bool) (map[string]any, error) {
	body := make(map[string]any)

	filters := s.Filters()
	if len(filters) == 0 {
		text, err := decodedText(s)
		if err != nil {
			return nil, err
		}
		body["stream"] = text
	} else {
		for _, f := range filters {
			if f.Name == FilterFlate {
				text, err := decodedText(s)
				if err != nil {
					return nil, err
				}
				body["stream"] = text
			} else {
				params, err := n.normalize(f.Params, seen)
				if err != nil {
					return nil, err
				}
				body["params"] = params
				body["stream"] = base64.StdEncoding.EncodeToString(s.RawBytes())
			}
		}
	}

	return map[string]any{fmt.Sprintf("%d 0 obj", s.ObjectNumber()): body}, nil
}

// decodedText applies the stream's filter pipeline and interprets the
// result as ASCII text.
func decodedText(s Stream) (string, error) {
	data, err := s.Decoded()
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for i, b := range data {
		if b > 0x7f {
			return "", fmt.Errorf("%w: non-ascii byte 0x%02x at offset %d", ErrDecode, b, i)
		}
	}
	return string(data), nil
}
