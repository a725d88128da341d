package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for inspection logging.

// ResourceURI adds a resource URI field.
func ResourceURI(uri string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("resource", uri)
	}
}

// PageNumber adds a page number field.
func PageNumber(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("page", n)
	}
}

// DataDir adds the scanned directory field.
func DataDir(dir string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("data_dir", dir)
	}
}

// EntryCount adds a catalog entry count field.
func EntryCount(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("entries", n)
	}
}

// Transport adds a transport field.
func Transport(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("transport", name)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
