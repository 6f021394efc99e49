package domain

import "time"

// Quota is the state of the primary rate-limit category.
// A negative Limit means the source imposes no limit.
type Quota struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// UnlimitedQuota is reported by sources without a rate limit.
var UnlimitedQuota = Quota{Limit: -1, Remaining: -1}

// Unlimited reports whether the source imposes no limit.
func (q Quota) Unlimited() bool {
	return q.Limit < 0
}

// Exhausted reports whether no calls remain.
func (q Quota) Exhausted() bool {
	return !q.Unlimited() && q.Remaining <= 0
}
