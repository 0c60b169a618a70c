package domain

// Category is the service class of a cab; it selects the per-km rate.
type Category string

const (
	CategoryEconomy Category = "Economy"
	CategoryLuxury  Category = "Luxury"
)
