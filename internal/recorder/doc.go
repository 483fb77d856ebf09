// Package recorder captures audio by shelling out to an external tool,
// ffmpeg by default. It produces temp files that feed the library's
// recording add flow.
package recorder
