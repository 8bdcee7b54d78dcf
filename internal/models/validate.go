package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails on an empty tag or a nil func.
	_ = vld.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		_, ok := ParseDepartmentName(fl.Field().String())
		return ok
	})
	_ = vld.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		_, ok := ParseStatus(fl.Field().String())
		return ok
	})

	return vld
}

// OrDefault returns StatusActive for the zero Status.
func (s Status) OrDefault() Status {
	if s == "" {
		return StatusActive
	}
	return s
}

// ValidateEmployee checks required fields and the department and status enumerations.
func ValidateEmployee(employee Employee) error {
	if err := validate.Struct(employee); err != nil {
		return toValidationError("employee", err)
	}
	if employee.HireDate.IsZero() {
		return &ValidationError{Entity: "employee", Field: "hireDate", Rule: "required"}
	}

	return nil
}

// ValidateDepartment checks the required fields of a department.
func ValidateDepartment(department Department) error {
	if err := validate.Struct(department); err != nil {
		return toValidationError("department", err)
	}

	return nil
}

func toValidationError(entity string, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Entity: entity, Field: fieldErrs[0].Field(), Rule: fieldErrs[0].Tag()}
	}

	return fmt.Errorf("%s: %w: %w", entity, ErrValidation, err)
}
