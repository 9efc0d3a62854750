package formatter

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/theoremus-urban-solutions/trainmap-eva/trainmap"
)

// DefaultIndent is the indentation of pretty-printed output
const DefaultIndent = "  "

// BuildJSON serializes a map document. An empty indent uses DefaultIndent.
func BuildJSON(doc trainmap.Document, indent string) ([]byte, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	if doc == nil {
		doc = trainmap.Document{}
	}
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

// WriteFile serializes doc and creates or truncates path with it
func WriteFile(path string, doc trainmap.Document, indent string) error {
	b, err := BuildJSON(doc, indent)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
