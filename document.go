package describe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/WhiteAbeLincoln/sf-describe/errors"
)

// FileSuffix is appended to a document's name to form its filename.
const FileSuffix = ".desc.json"

// Document is one describe document: a JSON record describing the schema of
// a single remote data object. The library only interprets the required
// "name" field; the rest of the body is preserved byte-compact and opaque,
// so a document round-trips through export and import unchanged.
type Document struct {
	name string
	body []byte
}

// ParseDocument parses JSON text into a Document. The content must be a JSON
// value carrying a non-empty "name" field; everything else is kept as-is.
func ParseDocument(data []byte) (*Document, error) {
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err)
	}
	if probe.Name == "" {
		return nil, errors.ErrMissingName
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err)
	}
	return &Document{name: probe.Name, body: buf.Bytes()}, nil
}

// NewDocument builds a Document by serializing v, which must marshal to a
// JSON value with a non-empty "name" field.
func NewDocument(v any) (*Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedDocument, err)
	}
	return ParseDocument(data)
}

// Name returns the document's name.
func (d *Document) Name() string {
	return d.name
}

// Filename returns the name of the file this document is stored under:
// {name}.desc.json.
func (d *Document) Filename() string {
	return d.name + FileSuffix
}

// Bytes returns the document's canonical serialized form: compact JSON with
// no trailing newline. The returned slice is a copy.
func (d *Document) Bytes() []byte {
	return append([]byte(nil), d.body...)
}

// Decode unmarshals the document body into v for callers that want typed
// access to a describe schema.
func (d *Document) Decode(v any) error {
	if err := json.Unmarshal(d.body, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.name, err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}
