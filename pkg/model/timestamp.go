package model

import (
	"fmt"
	"time"
)

// timestampLayouts are the accepted event time formats. The second form is an ISO-8601
// timestamp without a zone offset, which the seed data uses.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp validates an event time value. The zero value is not accepted.
func ParseTimestamp(value string) error {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("invalid time format: %q", value)
}
