// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strconv"
	"strings"
	"time"
)

const (
	isoDay   = "2006-01-02"
	isoMonth = "2006-01"
	aglcDay  = "2 January 2006"
	aglcMon  = "January 2006"
)

// FormatDate renders a date string in AGLC form. YYYY-MM-DD becomes
// "2 January 2006", YYYY-MM becomes "January 2006" and a "D Month YYYY"
// string loses any leading zero on the day. Anything else, including
// invalid dates, is returned trimmed but otherwise unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := time.Parse(isoDay, s); err == nil {
		return t.Format(aglcDay)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(aglcDay)
	}
	if t, err := time.Parse(isoMonth, s); err == nil {
		return t.Format(aglcMon)
	}

	parts := strings.Fields(s)
	if len(parts) == 3 {
		if day, err := strconv.Atoi(parts[0]); err == nil && day > 0 && day <= 31 {
			return strconv.Itoa(day) + " " + parts[1] + " " + parts[2]
		}
	}
	return s
}

// FormatTime renders t as "2 January 2006". The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(aglcDay)
}
