package logging

import (
	"fmt"
	"time"
)

// logTimestampLayout renders UTC timestamps with microsecond precision.
const logTimestampLayout = "2006-01-02T15:04:05.000000"

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.UTC().Format(logTimestampLayout)
}

// formatElapsed renders a duration as H:MM:SS.ffffff with hours unpadded,
// the form timer scopes append to their labels.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int64(d / time.Second)
	micros := (d - time.Duration(seconds)*time.Second) / time.Microsecond
	return fmt.Sprintf("%d:%02d:%02d.%06d", hours, minutes, seconds, micros)
}
