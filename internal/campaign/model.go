package campaign

import "time"

// Campaign is a time-boxed signup promotion shown alongside the
// product-selection step.
type Campaign struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DiscountFee int       `json:"discount_fee"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

func (c Campaign) ActiveAt(t time.Time) bool {
	return !t.Before(c.StartsAt) && t.Before(c.EndsAt)
}
