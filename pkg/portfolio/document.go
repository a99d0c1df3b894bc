package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNullDocument reports a payload that is the JSON literal null. A
// resource served as null carries no data and is treated as missing.
var ErrNullDocument = errors.New("portfolio: document is null")

// Document wraps a raw resource payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("portfolio: source is required")
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Document{}, errors.New("portfolio: raw document is empty")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return Document{}, ErrNullDocument
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode unmarshals the JSON payload into out. Unknown fields are ignored so
// data files can carry extra keys for other consumers.
func (d Document) Decode(out any) error {
	if len(d.raw) == 0 {
		return errors.New("portfolio: document is empty")
	}
	if err := json.Unmarshal(d.raw, out); err != nil {
		return fmt.Errorf("portfolio: decode %s: %w", d.Location(), err)
	}
	return nil
}
