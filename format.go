package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders an integer with thousands separators ("12,345").
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// formatDuration renders a duration in seconds as a single human unit.
func formatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	default:
		return fmt.Sprintf("%.1f days", seconds/86400)
	}
}

// timePeriodLabel buckets an hour of day into a coarse period label.
func timePeriodLabel(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 17:
		return "Afternoon"
	case hour >= 17 && hour < 22:
		return "Evening"
	default:
		return "Night"
	}
}

// truncate shortens s to at most n characters, appending "..." when cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// stripDataURL removes a data URL prefix ("data:image/png;base64,") if the
// service included one in a base64 image field.
func stripDataURL(s string) string {
	if idx := strings.Index(s, ";base64,"); idx != -1 {
		return s[idx+8:]
	}
	return s
}

// imageDataURI wraps a base64 image payload in a data URI for <img src>,
// sniffing the mimetype from the decoded bytes. Undecodable payloads are
// passed through as PNG and left for the browser to reject.
func imageDataURI(b64 string) string {
	raw := stripDataURL(b64)

	mimetype := "image/png"
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil && len(decoded) > 0 {
		mimetype = http.DetectContentType(decoded)
	}
	return "data:" + mimetype + ";base64," + raw
}
