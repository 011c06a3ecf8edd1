package formatter

import (
	"fmt"
	"time"
)

// Money renders a pre-formatted amount with the euro sign.
func Money(amount string) string {
	return amount + " €"
}

// Date renders a date in the ISO form used throughout the app.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// DueDateStyled renders a due date with urgency coloring: red when past,
// yellow within a week, plain otherwise.
func DueDateStyled(due *time.Time, now time.Time) string {
	if due == nil {
		return StyleDim.Render("--")
	}
	text := Date(*due)
	switch {
	case due.Before(now):
		return StyleRed.Render(text)
	case due.Before(now.AddDate(0, 0, 7)):
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Plural picks the singular or plural noun form for a count.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
