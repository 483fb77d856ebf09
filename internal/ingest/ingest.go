package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// Candidate describes a staged item ready to enter a catalog. The path still
// points at the caller's staging location; the library copies it into the
// vault before any record is created.
type Candidate struct {
	Path          string
	SuggestedName string
	MIMEType      string
	SizeHint      int64
}

// Inspect builds an import candidate from a source file. The suggested name
// comes from embedded audio metadata when present, otherwise from the file
// name itself.
func Inspect(path string) (Candidate, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Candidate{}, fmt.Errorf("file does not exist: %s", absPath)
		}
		return Candidate{}, fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return Candidate{}, fmt.Errorf("%s is a directory", absPath)
	}

	mimeType := TypeByPath(absPath)
	name := inferNameFromPath(absPath)
	if strings.HasPrefix(mimeType, "audio/") {
		if title := probeAudioTitle(absPath); title != "" {
			name = title
		}
	}

	return Candidate{
		Path:          absPath,
		SuggestedName: name,
		MIMEType:      mimeType,
		SizeHint:      info.Size(),
	}, nil
}

// probeAudioTitle reads embedded tags from an audio file. Untagged or
// unreadable files simply yield no suggestion.
func probeAudioTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title())
}

func inferNameFromPath(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "Import"
	}
	return base
}

// DurationLabel formats an elapsed capture duration for display. The label
// is never parsed back; callers that lose track of the duration use
// "Unknown" instead.
func DurationLabel(d time.Duration) string {
	if d < 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d sec", int(d.Round(time.Second)/time.Second))
}

// DefaultRecordingName derives the timestamped label given to captures the
// user has not named yet.
func DefaultRecordingName(at time.Time) string {
	return "Recording_" + at.Format("15:04:05")
}
