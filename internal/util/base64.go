package util

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrEmptyPayload = errors.New("empty payload")

// DecodeBase64Payload decodes a base64 body as sent by browsers. A leading
// "data:<mime>;base64," prefix is stripped, and both padded and unpadded
// standard encodings are accepted.
func DecodeBase64Payload(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	if s == "" {
		return nil, ErrEmptyPayload
	}

	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
