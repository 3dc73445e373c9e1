package export

import (
	"fmt"
	"time"
)

// Filename builds "<prefix>_YYYYMMDD_HHMM.<ext>" from the local wall
// clock. Hours and minutes are deliberately not zero-padded: existing
// consumers match on the legacy shape, so 9:05 AM yields "..._95.ext".
func Filename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%d%d.%s", prefix, now.Format("20060102"), now.Hour(), now.Minute(), ext)
}
