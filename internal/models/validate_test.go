package models_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() models.Employee {
	return models.Employee{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada.lovelace@example.com",
		Phone:      "+44 20 7946 0000",
		Department: models.DepartmentIT,
		Position:   "Software Engineer",
		Salary:     120000,
		HireDate:   time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC),
		Address:    &models.Address{City: "London"},
		Status:     models.StatusActive,
	}
}

func validDepartment() models.Department {
	return models.Department{
		Name:        "IT",
		Description: "Keeps the lights on.",
		Manager:     "Grace Hopper",
		Budget:      500000,
		Location:    "Arlington",
	}
}

func TestValidateEmployee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(e *models.Employee)
		field   string
		rule    string
		wantErr bool
	}{
		{name: "valid", mutate: func(_ *models.Employee) {}},
		{name: "empty status defaults later", mutate: func(e *models.Employee) { e.Status = "" }},
		{name: "no address", mutate: func(e *models.Employee) { e.Address = nil }},
		{
			name: "missing first name", mutate: func(e *models.Employee) { e.FirstName = "" },
			field: "firstName", rule: "required", wantErr: true,
		},
		{
			name: "missing email", mutate: func(e *models.Employee) { e.Email = "" },
			field: "email", rule: "required", wantErr: true,
		},
		{
			name: "malformed email", mutate: func(e *models.Employee) { e.Email = "ada" },
			field: "email", rule: "email", wantErr: true,
		},
		{
			name: "unknown department", mutate: func(e *models.Employee) { e.Department = "Legal" },
			field: "department", rule: "department", wantErr: true,
		},
		{
			name: "unknown status", mutate: func(e *models.Employee) { e.Status = "retired" },
			field: "status", rule: "status", wantErr: true,
		},
		{
			name: "negative salary", mutate: func(e *models.Employee) { e.Salary = -1 },
			field: "salary", rule: "gte", wantErr: true,
		},
		{
			name: "missing hire date", mutate: func(e *models.Employee) { e.HireDate = time.Time{} },
			field: "hireDate", rule: "required", wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			employee := validEmployee()
			tt.mutate(&employee)

			err := models.ValidateEmployee(employee)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, models.ErrValidation)
			var vErr *models.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "employee", vErr.Entity)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.rule, vErr.Rule)
		})
	}
}

func TestValidateDepartment(t *testing.T) {
	t.Parallel()

	require.NoError(t, models.ValidateDepartment(validDepartment()))

	dept := validDepartment()
	dept.Manager = ""
	err := models.ValidateDepartment(dept)

	require.ErrorIs(t, err, models.ErrValidation)
	assert.EqualError(t, err, "department: field 'manager' failed on 'required'")

	// generated names outside the canonical set are valid department records
	dept = validDepartment()
	dept.Name = "Outdoors"
	require.NoError(t, models.ValidateDepartment(dept))
}

func TestParseDepartmentName(t *testing.T) {
	t.Parallel()

	name, ok := models.ParseDepartmentName("Finance")
	assert.True(t, ok)
	assert.Equal(t, models.DepartmentFinance, name)

	_, ok = models.ParseDepartmentName("finance")
	assert.False(t, ok, "match must be exact")
}

func TestCanonicalDepartments(t *testing.T) {
	t.Parallel()

	names := models.CanonicalDepartments()
	assert.Equal(t, []models.DepartmentName{
		models.DepartmentIT, models.DepartmentMarketing, models.DepartmentSales,
		models.DepartmentHR, models.DepartmentFinance, models.DepartmentOperations,
	}, names)

	names[0] = "Mutated"
	assert.Equal(t, models.DepartmentIT, models.CanonicalDepartments()[0])
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	status, ok := models.ParseStatus("terminated")
	assert.True(t, ok)
	assert.Equal(t, models.StatusTerminated, status)

	_, ok = models.ParseStatus("")
	assert.False(t, ok)

	assert.Equal(t, models.StatusActive, models.Status("").OrDefault())
	assert.Equal(t, models.StatusInactive, models.StatusInactive.OrDefault())
}
