package trainmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Document is the ordered sequence of map cells
type Document []Cell

// DecodeDocument parses a map document. The top level must be an array of
// objects; anything after the array is rejected.
func DecodeDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty map document")
		}
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("map document must be a JSON array, got %s", describe(tok))
	}
	doc := Document{}
	for dec.More() {
		var c Cell
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("cell %d: %w", len(doc), err)
		}
		doc = append(doc, c)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after map document")
	}
	return doc, nil
}

// Clone returns a deep copy
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for i, c := range d {
		out[i] = c.Clone()
	}
	return out
}

// CountType returns how many cells carry the given type tag
func (d Document) CountType(typ string) int {
	n := 0
	for _, c := range d {
		if c.Type() == typ {
			n++
		}
	}
	return n
}
