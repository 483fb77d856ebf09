package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"satchel/internal/catalog"
)

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func colorize(color text.Color, value string) string {
	if !stdoutIsTTY() {
		return value
	}
	return color.Sprint(value)
}

func statusLabel(ok bool) string {
	if ok {
		return colorize(text.FgGreen, "ok")
	}
	return colorize(text.FgRed, "fail")
}

// sizeLabel renders a record's byte size, or "-" when it is not known yet.
func sizeLabel(rec catalog.Record) string {
	size, ok := rec.SizeBytes()
	if !ok {
		return "-"
	}
	return humanSize(size)
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchID resolves a full id or an unambiguous prefix against the catalog,
// so commands accept the short ids the tables display.
func matchID[T catalog.Record](records []T, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("record id must not be empty")
	}
	var match string
	for _, rec := range records {
		id := rec.RecordID()
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", arg)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no record matches id %q", arg)
	}
	return match, nil
}
