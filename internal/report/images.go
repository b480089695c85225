package report

import (
	"bytes"
	"encoding/base64"
	"strings"
)

// Inline task images arrive as base64 payloads, optionally wrapped in a data
// URL. PNG and JPEG are the two supported encodings; anything else is
// reported as not-ok and the caller skips the image instead of failing the
// document.

var dataURLPrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/jpg;base64,",
}

func decodeEmbeddedImage(payload string) (data []byte, imageType string, ok bool) {
	raw := payload
	for _, prefix := range dataURLPrefixes {
		if strings.HasPrefix(payload, prefix) {
			raw = strings.TrimPrefix(payload, prefix)
			break
		}
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, "", false
	}

	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return data, "PNG", true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return data, "JPG", true
	default:
		return nil, "", false
	}
}
