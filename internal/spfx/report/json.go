package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/o365cli/o365/internal/spfx/upgrade"
)

// RenderJSON renders the rows as an indented JSON array.
func RenderJSON(rows []upgrade.FindingToReport) (string, error) {
	if rows == nil {
		rows = []upgrade.FindingToReport{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
