package entities

import "time"

type CustomerType string

const (
	CustomerTypeResidential CustomerType = "RESIDENTIAL"
	CustomerTypeCommercial  CustomerType = "COMMERCIAL"
)

// Customer owns zero or more jobs and invoices.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone-index): phone
//   - GSI2 (email-index): email
//
// Customers are never hard-deleted: no delete operation exists anywhere in
// the service, so ownership of jobs/invoices can always be resolved.

type Customer struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Type      CustomerType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
