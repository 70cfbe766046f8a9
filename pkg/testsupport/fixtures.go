// Package testsupport loads the docx JSON fixtures, expected Markdown and
// golden case tables shared by the renderer, export and command tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goliatone/go-docx-markdown/pkg/docx"
)

// LoadFixture reads a fixture file verbatim. Expected Markdown is compared
// byte for byte, so nothing is trimmed.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadDocument reads a docx JSON export and decodes it into a block tree.
func LoadDocument(path string) (*docx.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := docx.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// LoadGolden decodes a JSON array of golden cases. An empty table is an
// error so a truncated file cannot turn a golden test into a no-op.
func LoadGolden[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []T
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("golden %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("golden %s: no cases", path)
	}
	return cases, nil
}
