package random

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"
)

// RequestID returns a 16-character URL-safe identifier.
func RequestID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
