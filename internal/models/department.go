package models

import "time"

// DepartmentName is one of the canonical departments an employee can belong to.
type DepartmentName string

const (
	DepartmentIT         DepartmentName = "IT"
	DepartmentMarketing  DepartmentName = "Marketing"
	DepartmentSales      DepartmentName = "Sales"
	DepartmentHR         DepartmentName = "HR"
	DepartmentFinance    DepartmentName = "Finance"
	DepartmentOperations DepartmentName = "Operations"
)

var canonicalDepartments = [...]DepartmentName{
	DepartmentIT,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentHR,
	DepartmentFinance,
	DepartmentOperations,
}

// CanonicalDepartments returns the canonical department names in their fixed order.
func CanonicalDepartments() []DepartmentName {
	names := make([]DepartmentName, len(canonicalDepartments))
	copy(names, canonicalDepartments[:])

	return names
}

// ParseDepartmentName returns the canonical department matching s exactly.
func ParseDepartmentName(s string) (DepartmentName, bool) {
	for _, name := range canonicalDepartments {
		if string(name) == s {
			return name, true
		}
	}

	return "", false
}

// Department represents a department record.
type Department struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Manager     string  `json:"manager"     validate:"required"`
	Budget      float64 `json:"budget"      validate:"gte=0"`
	Location    string  `json:"location"    validate:"required"`
	// EmployeeCount is derived from the employees table and is only recomputed by seeding.
	EmployeeCount int64     `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
