package pdfcpu

import (
	"bytes"
	"compress/zlib"
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/felixgeelhaar/pdfscope/application"
	"github.com/felixgeelhaar/pdfscope/domain/document"
	"github.com/felixgeelhaar/pdfscope/domain/object"
)

const pageText = "BT /F1 12 Tf 72 712 Td (Hello) Tj ET"

// buildPDF assembles a single-page document with one content stream and a
// font resource. With flate set the stream body is zlib-compressed and
// tagged with a FlateDecode filter.
func buildPDF(t *testing.T, flate bool) []byte {
	t.Helper()

	body := []byte(pageText)
	filter := ""
	if flate {
		var zb bytes.Buffer
		zw := zlib.NewWriter(&zb)
		if _, err := zw.Write(body); err != nil {
			t.Fatalf("compress: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("compress: %v", err)
		}
		body = zb.Bytes()
		filter = " /Filter /FlateDecode"
	}

	var buf bytes.Buffer
	offsets := make([]int, 6)
	buf.WriteString("%PDF-1.4\n")

	obj := func(n int, dict string) {
		offsets[n] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n, dict)
	}

	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	obj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>")

	offsets[4] = buf.Len()
	fmt.Fprintf(&buf, "4 0 obj\n<< /Length %d%s >>\nstream\n", len(body), filter)
	buf.Write(body)
	buf.WriteString("\nendstream\nendobj\n")

	obj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n")
	buf.WriteString("0000000000 65535 f \n")
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)

	return buf.Bytes()
}

func TestParse_PageCount(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse(context.Background(), buildPDF(t, false))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := doc.PageCount(); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("definitely not a pdf")},
		{"empty", nil},
		{"truncated", buildPDF(t, false)[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewParser().Parse(context.Background(), tt.data)
			if !errors.Is(err, document.ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestPage_OutOfRange(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse(context.Background(), buildPDF(t, false))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for _, page := range []int{0, -1, 2} {
		if _, err := doc.Page(page); !errors.Is(err, document.ErrPageOutOfRange) {
			t.Errorf("Page(%d) error = %v, want ErrPageOutOfRange", page, err)
		}
	}
}

func TestPage_Contents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flate bool
	}{
		{"plain", false},
		{"flate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := NewParser().Parse(context.Background(), buildPDF(t, tt.flate))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			page, err := doc.Page(1)
			if err != nil {
				t.Fatalf("Page(1) error = %v", err)
			}
			streams, err := page.Contents()
			if err != nil {
				t.Fatalf("Contents() error = %v", err)
			}
			if len(streams) != 1 {
				t.Fatalf("Contents() returned %d streams, want 1", len(streams))
			}

			st := streams[0]
			if got := st.ObjectNumber(); got != 4 {
				t.Errorf("ObjectNumber() = %d, want 4", got)
			}
			decoded, err := st.Decoded()
			if err != nil {
				t.Fatalf("Decoded() error = %v", err)
			}
			if string(decoded) != pageText {
				t.Errorf("Decoded() = %q, want %q", decoded, pageText)
			}

			filters := st.Filters()
			if tt.flate {
				if len(filters) != 1 || filters[0].Name != object.FilterFlate {
					t.Errorf("Filters() = %v, want one FlateDecode entry", filters)
				}
			} else if len(filters) != 0 {
				t.Errorf("Filters() = %v, want none", filters)
			}
		})
	}
}

func TestPage_Resources(t *testing.T) {
	t.Parallel()

	doc, err := NewParser().Parse(context.Background(), buildPDF(t, false))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	res, err := page.Resources()
	if err != nil {
		t.Fatalf("Resources() error = %v", err)
	}

	font, ok := res["Font"]
	if !ok {
		t.Fatalf("Resources() = %v, want a Font entry", res)
	}
	if font.Kind != object.KindDict {
		t.Errorf("Font resource kind = %v, want dict", font.Kind)
	}
}

// Full pass through the parsing adapter, the resolver, and the rendering
// pipeline, for both an unfiltered and a flate-compressed content stream.
func TestDumpPage_EndToEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flate bool
	}{
		{"plain", false},
		{"flate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := application.NewInspectionService(NewParser())
			dump, err := svc.DumpPage(context.Background(), buildPDF(t, tt.flate), 1)
			if err != nil {
				t.Fatalf("DumpPage() error = %v", err)
			}

			wantContents := map[string]any{
				"4 0 obj": map[string]any{"stream": pageText},
			}
			if !reflect.DeepEqual(dump.Contents, wantContents) {
				t.Errorf("Contents = %#v, want %#v", dump.Contents, wantContents)
			}

			wantFont := map[string]any{
				"F1": map[string]any{
					"Type":     "Font",
					"Subtype":  "Type1",
					"BaseFont": "Helvetica",
				},
			}
			if !reflect.DeepEqual(dump.Resources["Font"], wantFont) {
				t.Errorf("Resources[Font] = %#v, want %#v", dump.Resources["Font"], wantFont)
			}
		})
	}
}
