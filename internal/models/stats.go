package models

// DepartmentStat is one group of the per-department employee aggregate.
type DepartmentStat struct {
	Department string  `json:"_id"`
	Count      int64   `json:"count"`
	AvgSalary  float64 `json:"avgSalary"`
}

// Stats is the aggregate view over all employees.
type Stats struct {
	TotalEmployees  int64            `json:"totalEmployees"`
	ActiveEmployees int64            `json:"activeEmployees"`
	DepartmentStats []DepartmentStat `json:"departmentStats"`
}
