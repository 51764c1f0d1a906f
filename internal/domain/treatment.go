package domain

import "time"

// Treatment represents a skincare treatment offered by the clinic
type Treatment struct {
	ID              int64
	Name            string
	Category        string
	Price           float64
	DurationMinutes int
	// CommissionRate доля цены, идущая мастеру как комиссия (0.0 - 1.0)
	CommissionRate float64
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CommissionFor returns the staff commission for one completed booking of this treatment
func (t *Treatment) CommissionFor(price float64) float64 {
	return price * t.CommissionRate
}
