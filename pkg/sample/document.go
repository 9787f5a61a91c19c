package sample

import (
	"errors"
	"path"
	"strings"
)

// Format names the encoding of a raw sample document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat derives the document format from the source location's
// extension. Unknown extensions default to JSON.
func DetectFormat(location string) Format {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document wraps one raw sample payload together with its origin and format.
type Document struct {
	source Source
	raw    []byte
	format Format
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("sample: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("sample: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone, format: DetectFormat(src.Location())}, nil
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

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Format returns the detected payload encoding.
func (d Document) Format() Format {
	return d.format
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the payload into a Value according to its format.
func (d Document) Decode() (Value, error) {
	if d.format == FormatYAML {
		return DecodeYAML(d.raw)
	}
	return DecodeBytes(d.raw)
}
