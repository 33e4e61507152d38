package repository

import (
	"strings"
	"time"
)

// timeLayout is the storage format for entry timestamps: local wall-clock
// time at second precision, no offset. SQLite's date() function then yields
// the local calendar date, which is what the daily/weekly rollups filter on.
const timeLayout = "2006-01-02 15:04:05"

// dateLayout is the format passed to SQLite date() comparisons.
const dateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.Local)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The modernc driver exposes constraint failures only through the
// error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a SQLite FOREIGN KEY
// constraint failure.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
