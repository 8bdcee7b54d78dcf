package models

import "time"

// Status is the employment status of an employee.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// ParseStatus returns the Status matching s exactly.
func ParseStatus(s string) (Status, bool) {
	switch status := Status(s); status {
	case StatusActive, StatusInactive, StatusTerminated:
		return status, true
	default:
		return "", false
	}
}

// Address is the optional postal address of an employee. Every part is optional.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Employee represents an employee record.
// Department references Department.Name by value; it is not enforced as a relation.
type Employee struct {
	ID         string         `json:"_id"`
	FirstName  string         `json:"firstName"  validate:"required"`
	LastName   string         `json:"lastName"   validate:"required"`
	Email      string         `json:"email"      validate:"required,email"`
	Phone      string         `json:"phone"      validate:"required"`
	Department DepartmentName `json:"department" validate:"required,department"`
	Position   string         `json:"position"   validate:"required"`
	Salary     float64        `json:"salary"     validate:"gte=0"`
	HireDate   time.Time      `json:"hireDate"`
	Address    *Address       `json:"address,omitempty"`
	Status     Status         `json:"status"     validate:"omitempty,status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
