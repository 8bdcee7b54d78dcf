package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var employeeCopyColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "department",
	"position", "salary", "hire_date", "address", "status",
}

const selectEmployeeColumns = "id::text, first_name, last_name, email, phone, department, position, " +
	"salary, hire_date, address, status, created_at, updated_at"

// InsertEmployees bulk inserts employees with COPY. Records without an ID get a fresh UUID,
// written back into the slice. Empty statuses are stored as active.
func (r *Repository) InsertEmployees(ctx context.Context, employees []models.Employee) (int64, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	defer r.observe("insert_employees")()

	rows := make([][]any, 0, len(employees))
	for idx := range employees {
		employee := &employees[idx]
		if employee.ID == "" {
			employee.ID = uuid.NewString()
		}
		employee.Status = employee.Status.OrDefault()

		identifier, err := uuid.Parse(employee.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid employee id '%s': %w", employee.ID, err)
		}

		var address any
		if employee.Address != nil {
			address = employee.Address
		}

		rows = append(rows, []any{
			identifier,
			employee.FirstName,
			employee.LastName,
			employee.Email,
			employee.Phone,
			string(employee.Department),
			employee.Position,
			employee.Salary,
			employee.HireDate,
			address,
			string(employee.Status),
		})
	}

	inserted, err := r.db.CopyFrom(ctx, pgx.Identifier{"employees"}, employeeCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to insert employees: %w", translatePgError(err))
	}

	return inserted, nil
}

// DeleteAllEmployees removes every employee record.
func (r *Repository) DeleteAllEmployees(ctx context.Context) error {
	defer r.observe("delete_employees")()

	if _, err := r.db.Exec(ctx, "DELETE FROM employees"); err != nil {
		return fmt.Errorf("failed to delete employees: %w", translatePgError(err))
	}

	return nil
}

// FindEmployees returns the employees matching filter, most recently created first.
func (r *Repository) FindEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	defer r.observe("find_employees")()

	where, args := filter.where()
	query := "SELECT " + selectEmployeeColumns + " FROM employees" + where + " ORDER BY created_at DESC, seq DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", translatePgError(err))
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", translatePgError(err))
	}

	return employees, nil
}

// CountEmployees counts the employees matching filter. Limit is ignored.
func (r *Repository) CountEmployees(ctx context.Context, filter EmployeeFilter) (int64, error) {
	defer r.observe("count_employees")()

	where, args := filter.where()

	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", translatePgError(err))
	}

	return count, nil
}

// EmployeeStatsByDepartment groups every employee by department, reporting size and average salary.
func (r *Repository) EmployeeStatsByDepartment(ctx context.Context) ([]models.DepartmentStat, error) {
	defer r.observe("employee_stats")()

	query := `
		SELECT department, COUNT(*), AVG(salary)::float8
		FROM employees
		GROUP BY department;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate employees: %w", translatePgError(err))
	}
	defer rows.Close()

	stats := make([]models.DepartmentStat, 0)
	for rows.Next() {
		var stat models.DepartmentStat
		if err = rows.Scan(&stat.Department, &stat.Count, &stat.AvgSalary); err != nil {
			return nil, fmt.Errorf("failed to scan department stat: %w", err)
		}
		stats = append(stats, stat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department stats: %w", translatePgError(err))
	}

	return stats, nil
}

func (f EmployeeFilter) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.Department != nil {
		args = append(args, string(*f.Department))
		clauses = append(clauses, "department = $"+strconv.Itoa(len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		employee   models.Employee
		department string
		status     string
	)

	err := row.Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Phone,
		&department,
		&employee.Position,
		&employee.Salary,
		&employee.HireDate,
		&employee.Address,
		&status,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return models.Employee{}, err
	}

	employee.Department = models.DepartmentName(department)
	employee.Status = models.Status(status)

	return employee, nil
}
