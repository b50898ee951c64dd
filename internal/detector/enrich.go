package detector

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/geocine/mdreader/internal/frontmatter"
	"github.com/geocine/mdreader/internal/models"
)

// enrichWithFrontmatter overlays a chapter's frontmatter onto the values the
// parser assigned positionally. Every parser applies this step once per
// chapter after resolving its file. Unreadable files and malformed blocks
// leave the chapter untouched.
func enrichWithFrontmatter(ch *models.Chapter) {
	content, err := os.ReadFile(ch.Path)
	if err != nil {
		return
	}

	fields, _ := frontmatter.Extract(content)
	if fields == nil {
		return
	}

	if title, ok := fields["title"].(string); ok && title != "" {
		ch.Title = title
	}
	if author, ok := fields["author"].(string); ok {
		ch.Author = author
	}
	if date, ok := fields["date"]; ok {
		ch.Date = dateString(date)
		fields["date"] = ch.Date
	}
	if draft, ok := fields["draft"].(bool); ok {
		ch.IsDraft = draft
	}
	if raw, ok := fields["chapter"]; ok {
		if num, ok := asInt(raw); ok {
			ch.Number = num
		}
	}

	ch.Metadata = fields
}

// dateString renders a frontmatter date value for display. yaml resolves
// unquoted ISO dates into time.Time, which must come back out as the
// calendar date the author wrote.
func dateString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%v", v)
}

// asInt coerces the yaml value shapes an integer can arrive in; anything
// else keeps the positional number
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
