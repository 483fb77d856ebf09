package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeRecordings deserializes a persisted recording catalog. Corrupt blobs
// and unrecognized entries decode to nothing rather than an error: a catalog
// that cannot be read is an empty catalog.
func DecodeRecordings(raw []byte) []Recording {
	if len(raw) == 0 {
		return nil
	}
	var decoded []Recording
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	out := decoded[:0]
	for _, rec := range decoded {
		if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.URI) == "" {
			continue
		}
		if strings.TrimSpace(rec.Duration) == "" {
			rec.Duration = "Unknown"
		}
		out = append(out, rec)
	}
	return out
}

// EncodeRecordings serializes a recording catalog for the key-value store.
func EncodeRecordings(records []Recording) ([]byte, error) {
	if records == nil {
		records = []Recording{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode recordings: %w", err)
	}
	return data, nil
}

// DecodeFiles deserializes a persisted file catalog with the same leniency
// as DecodeRecordings. Files additionally require a display name; entries
// without a type classify as "unknown" and fall back to the generic label.
func DecodeFiles(raw []byte) []File {
	if len(raw) == 0 {
		return nil
	}
	var decoded []File
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	out := decoded[:0]
	for _, f := range decoded {
		if strings.TrimSpace(f.ID) == "" || strings.TrimSpace(f.URI) == "" {
			continue
		}
		if strings.TrimSpace(f.Name) == "" {
			continue
		}
		if strings.TrimSpace(f.Type) == "" {
			f.Type = "unknown"
		}
		out = append(out, f)
	}
	return out
}

// EncodeFiles serializes a file catalog for the key-value store.
func EncodeFiles(files []File) ([]byte, error) {
	if files == nil {
		files = []File{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("encode files: %w", err)
	}
	return data, nil
}
