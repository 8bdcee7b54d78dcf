package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/dataset"
	"github.com/UnknownOlympus/hestia/internal/services/staff"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type generateDataRequest struct {
	EmployeeCount   *int `json:"employeeCount"   validate:"omitempty,min=0"`
	DepartmentCount *int `json:"departmentCount" validate:"omitempty,min=0"`
}

// decodeGenerateData reads the optional seeding body and applies defaults. An empty body is
// the same as {}.
func decodeGenerateData(body io.Reader) (dataset.Counts, error) {
	var req generateDataRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return dataset.Counts{}, fmt.Errorf("malformed request body: %w", err)
	}
	if err := validate.Struct(req); err != nil {
		return dataset.Counts{}, fmt.Errorf("invalid request body: %w", err)
	}

	counts := dataset.Counts{
		Employees:   dataset.DefaultEmployeeCount,
		Departments: dataset.DefaultDepartmentCount,
	}
	if req.EmployeeCount != nil {
		counts.Employees = *req.EmployeeCount
	}
	if req.DepartmentCount != nil {
		counts.Departments = *req.DepartmentCount
	}

	return counts, nil
}

// parseEmployeeQuery never fails: a missing, non-numeric or non-positive limit means the default.
func parseEmployeeQuery(values url.Values) staff.EmployeeQuery {
	query := staff.EmployeeQuery{
		Department: values.Get("department"),
		Status:     values.Get("status"),
		Limit:      staff.DefaultLimit,
	}

	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query.Limit = limit
		}
	}

	return query
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type endpointDirectory struct {
	GenerateData string `json:"generateData"`
	Employees    string `json:"employees"`
	Departments  string `json:"departments"`
	ClearData    string `json:"clearData"`
	Stats        string `json:"stats"`
}

type rootResponse struct {
	Message   string            `json:"message"`
	Endpoints endpointDirectory `json:"endpoints"`
}

type generateDataResponse struct {
	Message string         `json:"message"`
	Data    dataset.Result `json:"data"`
}

type employeesResponse struct {
	Count     int               `json:"count"`
	Employees []models.Employee `json:"employees"`
}

type departmentsResponse struct {
	Count       int                 `json:"count"`
	Departments []models.Department `json:"departments"`
}
