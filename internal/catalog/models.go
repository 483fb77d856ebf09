package catalog

// Key identifies one persisted catalog in the key-value store.
type Key string

const (
	// KeyRecordings holds the captured audio clip catalog.
	KeyRecordings Key = "AUDIO_RECORDINGS"
	// KeyFiles holds the imported document catalog.
	KeyFiles Key = "SAVED_FILES"
)

// Record is the capability set shared by both catalog variants.
type Record interface {
	// RecordID returns the opaque unique identifier.
	RecordID() string
	// DisplayName returns the user-visible label.
	DisplayName() string
	// StoragePath returns the absolute backing-store path. It never changes
	// after creation.
	StoragePath() string
	// SizeBytes reports the known byte size, if any.
	SizeBytes() (int64, bool)
	// SearchText returns the strings the filter matches against.
	SearchText() []string
}

// Recording is one captured audio clip.
//
// Duration is a display label computed at capture-stop time; "Unknown" is a
// valid value and the field is never parsed back into a number.
type Recording struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	URI      string `json:"uri"`
	Size     *int64 `json:"size,omitempty"`
}

func (r Recording) RecordID() string    { return r.ID }
func (r Recording) DisplayName() string { return r.Name }
func (r Recording) StoragePath() string { return r.URI }

func (r Recording) SizeBytes() (int64, bool) {
	if r.Size == nil {
		return 0, false
	}
	return *r.Size, true
}

func (r Recording) SearchText() []string { return []string{r.Name} }

// WithSize returns a copy with the byte size backfilled.
func (r Recording) WithSize(n int64) Recording {
	r.Size = &n
	return r
}

// WithName returns a copy with the display label replaced.
func (r Recording) WithName(name string) Recording {
	r.Name = name
	return r
}

// File is one imported document.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
	Type string `json:"type"`
	Size *int64 `json:"size,omitempty"`
	Date string `json:"date"`
}

func (f File) RecordID() string    { return f.ID }
func (f File) DisplayName() string { return f.Name }
func (f File) StoragePath() string { return f.URI }

func (f File) SizeBytes() (int64, bool) {
	if f.Size == nil {
		return 0, false
	}
	return *f.Size, true
}

// SearchText includes the derived type label so "spreadsheet" finds .xlsx
// imports regardless of their names.
func (f File) SearchText() []string { return []string{f.Name, TypeLabel(f.Type)} }

// WithSize returns a copy with the byte size backfilled.
func (f File) WithSize(n int64) File {
	f.Size = &n
	return f
}

// WithName returns a copy with the display label replaced.
func (f File) WithName(name string) File {
	f.Name = name
	return f
}
