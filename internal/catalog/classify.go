package catalog

import "strings"

type typeRule struct {
	substrings []string
	label      string
}

// Classification is ordered; the first matching rule wins. Types outside the
// table still enter the catalog and display as plain documents.
var typeRules = []typeRule{
	{[]string{"pdf"}, "PDF"},
	{[]string{"image"}, "Image"},
	{[]string{"video"}, "Video"},
	{[]string{"excel", "spreadsheet", "csv"}, "Spreadsheet"},
	{[]string{"wordprocessingml", "msword"}, "Word Document"},
}

// DefaultTypeLabel is the bucket for types outside the classification table.
const DefaultTypeLabel = "Document"

// TypeLabel derives the human-readable label for a MIME type.
func TypeLabel(mimeType string) string {
	normalized := strings.ToLower(strings.TrimSpace(mimeType))
	if normalized == "" {
		return DefaultTypeLabel
	}
	for _, rule := range typeRules {
		for _, substr := range rule.substrings {
			if strings.Contains(normalized, substr) {
				return rule.label
			}
		}
	}
	return DefaultTypeLabel
}
