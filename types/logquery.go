package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DateLayouts are the accepted formats for the from/to query parameters and
// the exercise date field, tried in order.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

// LogQuery holds the parsed filter parameters of a logs request.
// Nil bounds mean unbounded; Limit == 0 means no cap.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ParseDate parses a date string against the accepted layouts.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", raw)
}

// ParseLogQuery extracts from, to and limit from the request query string.
// Both date bounds are optional and inclusive. A missing, zero, negative or
// non-numeric limit means unlimited, never an empty result.
func ParseLogQuery(c *gin.Context) (*LogQuery, error) {
	q := &LogQuery{}

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		t, err := ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter: %w", err)
		}
		q.From = &t
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		t, err := ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter: %w", err)
		}
		q.To = &t
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			q.Limit = n
		}
	}
	return q, nil
}
