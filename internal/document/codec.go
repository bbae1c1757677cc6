package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a document from its JSON wire form as produced by the
// introspection step.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// Encode writes a document as JSON for the code-emission step.
func Encode(w io.Writer, doc Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}
