// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Id generation, date parsing, and link extraction for new records
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"culturadesk/models"
)

// Commands generate ids; the store never does (it only trusts them to
// be globally unique).
func newEntityID() string {
	return uuid.NewString()
}

// Sortable ids for comments and notifications, so feeds order by time
// even when timestamps collide.
func newSortableID() string {
	return ulid.Make().String()
}

// Accepted date layouts for user input.
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate converts user-entered date text into a time value. The
// store only ever sees well-formed dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// splitList turns a comma-separated flag value into a trimmed slice.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractLinks pulls http(s) URLs out of post content. Preview
// metadata stays empty; display code fills it lazily.
func extractLinks(content string) []models.LinkPreview {
	var links []models.LinkPreview
	for _, field := range strings.Fields(content) {
		trimmed := strings.TrimRight(field, ".,;:!?)")
		if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
			links = append(links, models.LinkPreview{URL: trimmed})
		}
	}
	return links
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}
