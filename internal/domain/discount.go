package domain

import "time"

// DiscountCode is a promo code configured by the operator
type DiscountCode struct {
	ID         int64
	Code       string
	Percent    float64
	Active     bool
	ValidFrom  *time.Time
	ValidUntil *time.Time
	UsageLimit *int
	UsageCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Usable reports whether the code can be applied at the given moment.
// Callers needing the precise refusal reason check the individual
// predicates instead.
func (c *DiscountCode) Usable(now time.Time) bool {
	return c.Active && !c.NotYetValid(now) && !c.Expired(now) && !c.UsageExhausted()
}

// NotYetValid returns true if the validity window has not opened yet
func (c *DiscountCode) NotYetValid(now time.Time) bool {
	return c.ValidFrom != nil && now.Before(*c.ValidFrom)
}

// Expired returns true if the validity window has closed
func (c *DiscountCode) Expired(now time.Time) bool {
	return c.ValidUntil != nil && now.After(*c.ValidUntil)
}

// UsageExhausted returns true if the code has reached its usage limit
func (c *DiscountCode) UsageExhausted() bool {
	return c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit
}
