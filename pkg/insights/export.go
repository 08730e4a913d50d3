package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/unowned-ai/reflections/pkg/journal"
)

// ExportFilename is the default download name for an export made at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("journal_export_%s.json", now.Format(journal.DateLayout))
}

// MarshalExport renders the collection as an indented JSON array, the same
// shape the JSON file backend stores. HTML characters are not escaped.
func MarshalExport(entries []journal.Entry) ([]byte, error) {
	if entries == nil {
		entries = []journal.Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
