package models

import "time"

// DateLayout is the human-readable date format of the public API,
// e.g. "Tue Jul 04 2023". Existing clients parse this exact shape.
const DateLayout = "Mon Jan 02 2006"

type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"-"`
}

// DateString renders the exercise date in the public "Www Mmm dd yyyy" form.
func (e *Exercise) DateString() string {
	return e.Date.UTC().Format(DateLayout)
}
