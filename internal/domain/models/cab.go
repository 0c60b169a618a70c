package models

import "cabbooking/internal/domain"

const (
	EconomyRate = 10.0
	LuxuryRate  = 20.0
)

// Cab is a registered vehicle. Category is stored normalized.
type Cab struct {
	ID       string          `json:"cab_id"`
	Category domain.Category `json:"cab_type"`
}

// RatePerKm is derived from Category and never persisted.
func (c Cab) RatePerKm() float64 {
	if c.Category == domain.CategoryLuxury {
		return LuxuryRate
	}
	return EconomyRate
}
