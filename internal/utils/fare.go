package utils

import (
	"strings"

	"cabbooking/internal/domain"
	"cabbooking/internal/domain/models"
)

// NormalizeCategory maps free-text input onto a stored category label.
// Anything that is not "luxury" (case-insensitive) falls back to Economy.
func NormalizeCategory(category string) domain.Category {
	if strings.EqualFold(strings.TrimSpace(category), string(domain.CategoryLuxury)) {
		return domain.CategoryLuxury
	}
	return domain.CategoryEconomy
}

// RateFor returns the per-km rate for a category given as free text.
func RateFor(category string) float64 {
	return models.Cab{Category: NormalizeCategory(category)}.RatePerKm()
}
