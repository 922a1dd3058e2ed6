package logging

import (
	"testing"
	"time"
)

func TestFormatTimestampUTCMicroseconds(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 30, 15, 123456789, time.UTC)
	if got := formatTimestamp(ts); got != "2026-08-31T09:30:15.123456" {
		t.Errorf("formatTimestamp = %q", got)
	}
}

func TestFormatTimestampConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("TEST", 2*3600)
	ts := time.Date(2026, 8, 31, 11, 0, 0, 0, zone)
	if got := formatTimestamp(ts); got != "2026-08-31T09:00:00.000000" {
		t.Errorf("formatTimestamp = %q", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00.000000"},
		{123 * time.Microsecond, "0:00:00.000123"},
		{90*time.Second + 250*time.Millisecond, "0:01:30.250000"},
		{3*time.Hour + 7*time.Minute + 9*time.Second, "3:07:09.000000"},
		{26 * time.Hour, "26:00:00.000000"},
		{-time.Second, "0:00:00.000000"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.d); got != tc.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
