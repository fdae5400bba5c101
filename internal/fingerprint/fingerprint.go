// Package fingerprint derives a stable content hash for a configuration
// document so runs over the same document can be recognised.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"agentlint/internal/document"

	jsoniter "github.com/json-iterator/go"
)

// canonical encodes mappings with sorted keys and no insignificant
// whitespace.
var canonical = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// CanonicalJSON returns the canonical encoding of doc. A nil document encodes
// the same as an empty one.
func CanonicalJSON(doc document.Document) ([]byte, error) {
	if doc == nil {
		doc = document.Document{}
	}
	data, err := canonical.Marshal(map[string]any(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Compute returns "sha256:<hex>" over the canonical encoding of doc. Two
// documents that differ only in key order or formatting share a fingerprint.
func Compute(doc document.Document) (string, error) {
	data, err := CanonicalJSON(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
