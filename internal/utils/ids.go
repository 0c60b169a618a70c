package utils

import "github.com/google/uuid"

const customerIDPrefix = "CUST-"

// NewCustomerID returns a fresh customer identifier.
func NewCustomerID() string {
	return customerIDPrefix + uuid.NewString()
}
