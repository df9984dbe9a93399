package main

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// dashboardLink builds the absolute dashboard URL for a session, suitable
// for sharing or QR encoding.
func dashboardLink(publicURL, sessionID string) string {
	return fmt.Sprintf("%s/dashboard?session_id=%s", publicURL, url.QueryEscape(sessionID))
}

// sessionQR renders a QR code PNG encoding the session's dashboard link, so
// an analysis can be opened on another device.
func sessionQR(publicURL, sessionID string) ([]byte, error) {
	png, err := qrcode.Encode(dashboardLink(publicURL, sessionID), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode QR: %w", err)
	}
	return png, nil
}
