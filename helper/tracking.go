package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateTrackingID builds a human-traceable correlation key, e.g.
// APP-20260901-3F09AC. It is assigned once at application creation and joins
// the application to its tracking-log entries and payment record.
func GenerateTrackingID(prefix string) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}
