// Package catalog enumerates the PDF files served as MCP resources. The
// catalog is built once at startup and treated as immutable thereafter; it
// is passed by reference into the request-handling path.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MediaTypePDF is the media type registered for every catalog entry.
const MediaTypePDF = "application/pdf"

// uriScheme prefixes every resource URI.
const uriScheme = "pdf://"

// Entry is one cataloged PDF file.
type Entry struct {
	// Name is the file's base name without extension.
	Name string

	// URI addresses the entry as an MCP resource (pdf://<name>).
	URI string

	// Path is the absolute filesystem path.
	Path string

	// MediaType is always MediaTypePDF.
	MediaType string
}

// Catalog is the immutable set of entries discovered at startup.
type Catalog struct {
	entries map[string]Entry
	order   []string
}

// Scan builds a catalog from the PDF files directly inside dir. The scan is
// non-recursive and matches the .pdf extension case-insensitively. An
// unreadable directory is an error; a readable directory with no matches
// yields an empty catalog.
func Scan(dir string) (*Catalog, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	c := &Catalog{entries: make(map[string]Entry)}
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		ext := filepath.Ext(de.Name())
		if !strings.EqualFold(ext, ".pdf") {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", de.Name(), err)
		}
		entry := Entry{
			Name:      strings.TrimSuffix(de.Name(), ext),
			Path:      abs,
			MediaType: MediaTypePDF,
		}
		entry.URI = uriScheme + entry.Name
		c.entries[entry.URI] = entry
		c.order = append(c.order, entry.URI)
	}
	return c, nil
}

// Resolve returns the entry addressed by uri, or ErrNotFound.
func (c *Catalog) Resolve(uri string) (Entry, error) {
	entry, ok := c.entries[uri]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, uri)
	}
	return entry, nil
}

// Entries returns all entries in discovery order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, uri := range c.order {
		out = append(out, c.entries[uri])
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
