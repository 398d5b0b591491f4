package utils

import (
	"time"
	_ "time/tzdata"
)

// JakartaLocation is the IDX exchange timezone (WIB). Falls back to a fixed UTC+7 zone.
func JakartaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// TimeNowWIB returns the current time in the exchange timezone.
func TimeNowWIB() time.Time {
	return time.Now().In(JakartaLocation())
}

// PrettyDate formats t the way the digests show timestamps, e.g. "18 Oct 2026 14:05 WIB".
func PrettyDate(t time.Time) string {
	return t.In(JakartaLocation()).Format("02 Jan 2006 15:04") + " WIB"
}
