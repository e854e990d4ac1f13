// Package plaintext turns stored UTF-8 files into document text.
package plaintext

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(name string, reader io.Reader) (string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read source document: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("unsupported binary format: %s", name)
	}
	return strings.TrimSpace(string(raw)), nil
}
