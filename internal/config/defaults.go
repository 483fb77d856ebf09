package config

const (
	defaultDataDir            = "~/.local/share/satchel"
	defaultRecorderBinary     = "ffmpeg"
	defaultRecorderDevice     = "default"
	defaultRecorderFormat     = "m4a"
	defaultRecorderMaxSeconds = 3600
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Recorder: Recorder{
			Binary:     defaultRecorderBinary,
			Device:     defaultRecorderDevice,
			Format:     defaultRecorderFormat,
			MaxSeconds: defaultRecorderMaxSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
