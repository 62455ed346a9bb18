package schema

import (
	"regexp"
	"time"
)

var emailFormatRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var uuidFormatRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// checkFormat validates str against the named format. Known formats are
// email, uuid, and date-time; unknown formats are accepted silently
// (warn-only).
func checkFormat(format, str string) string {
	switch format {
	case "email":
		if !emailFormatRegex.MatchString(str) {
			return "value is not a valid email address"
		}
	case "uuid":
		if !uuidFormatRegex.MatchString(str) {
			return "value is not a valid uuid"
		}
	case "date-time":
		if _, err := time.Parse(time.RFC3339, str); err != nil {
			return "value is not a valid RFC3339 date-time"
		}
	}
	return ""
}
