package object_test

import (
	"testing"

	"github.com/felixgeelhaar/pdfscope/domain/object"
)

func TestConstructors_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obj  object.Object
		want object.Kind
	}{
		{"null", object.Null(), object.KindNull},
		{"dict", object.DictOf(map[string]object.Object{"K": object.Null()}), object.KindDict},
		{"array", object.ArrayOf([]object.Object{object.Null()}), object.KindArray},
		{"text", object.TextOf("Name"), object.KindText},
		{"binary", object.BinaryOf([]byte{0x01}), object.KindBinary},
		{"ref", object.RefTo(7, 0), object.KindRef},
		{"opaque", object.OpaqueOf("42"), object.KindOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.obj.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", tt.obj.Kind, tt.want)
			}
		})
	}
}

func TestRef_String(t *testing.T) {
	t.Parallel()

	ref := object.Ref{Number: 12, Generation: 0}
	if got := ref.String(); got != "12 0 R" {
		t.Errorf("String() = %q, want %q", got, "12 0 R")
	}
}

func TestIsNull(t *testing.T) {
	t.Parallel()

	if !object.Null().IsNull() {
		t.Error("Null().IsNull() should be true")
	}
	if object.TextOf("x").IsNull() {
		t.Error("TextOf should not be null")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind object.Kind
		want string
	}{
		{object.KindNull, "null"},
		{object.KindDict, "dict"},
		{object.KindArray, "array"},
		{object.KindText, "text"},
		{object.KindBinary, "binary"},
		{object.KindStream, "stream"},
		{object.KindRef, "ref"},
		{object.KindOpaque, "opaque"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
