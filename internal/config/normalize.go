package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRecorder()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RecordingsDir) == "" {
		c.Paths.RecordingsDir = filepath.Join(c.Paths.DataDir, "recordings")
	}
	if c.Paths.RecordingsDir, err = expandPath(c.Paths.RecordingsDir); err != nil {
		return fmt.Errorf("paths.recordings_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.FilesDir) == "" {
		c.Paths.FilesDir = filepath.Join(c.Paths.DataDir, "files")
	}
	if c.Paths.FilesDir, err = expandPath(c.Paths.FilesDir); err != nil {
		return fmt.Errorf("paths.files_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRecorder() {
	c.Recorder.Binary = strings.TrimSpace(c.Recorder.Binary)
	if c.Recorder.Binary == "" {
		c.Recorder.Binary = defaultRecorderBinary
	}
	c.Recorder.Device = strings.TrimSpace(c.Recorder.Device)
	if c.Recorder.Device == "" {
		c.Recorder.Device = defaultRecorderDevice
	}
	c.Recorder.Format = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(c.Recorder.Format, ".")))
	if c.Recorder.Format == "" {
		c.Recorder.Format = defaultRecorderFormat
	}
	if c.Recorder.MaxSeconds <= 0 {
		c.Recorder.MaxSeconds = defaultRecorderMaxSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
