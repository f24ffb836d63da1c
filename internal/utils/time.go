package utils

import "time"

// FormatLocal returns t in the local time zone as a short date and time.
func FormatLocal(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// ParseDay accepts either 2006-01-02 or 02/01/06.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t, err = time.ParseInLocation("02/01/06", s, time.Local)
	}
	return t, err
}
