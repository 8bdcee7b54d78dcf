package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var departmentCopyColumns = []string{
	"id", "name", "description", "manager", "budget", "location", "employee_count",
}

// InsertDepartments bulk inserts departments with COPY. Records without an ID get a fresh UUID,
// written back into the slice.
func (r *Repository) InsertDepartments(ctx context.Context, departments []models.Department) (int64, error) {
	if len(departments) == 0 {
		return 0, nil
	}
	defer r.observe("insert_departments")()

	rows := make([][]any, 0, len(departments))
	for idx := range departments {
		department := &departments[idx]
		if department.ID == "" {
			department.ID = uuid.NewString()
		}

		identifier, err := uuid.Parse(department.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid department id '%s': %w", department.ID, err)
		}

		rows = append(rows, []any{
			identifier,
			department.Name,
			department.Description,
			department.Manager,
			department.Budget,
			department.Location,
			department.EmployeeCount,
		})
	}

	inserted, err := r.db.CopyFrom(ctx, pgx.Identifier{"departments"}, departmentCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("failed to insert departments: %w", translatePgError(err))
	}

	return inserted, nil
}

// DeleteAllDepartments removes every department record.
func (r *Repository) DeleteAllDepartments(ctx context.Context) error {
	defer r.observe("delete_departments")()

	if _, err := r.db.Exec(ctx, "DELETE FROM departments"); err != nil {
		return fmt.Errorf("failed to delete departments: %w", translatePgError(err))
	}

	return nil
}

// FindDepartments returns every department ordered by name (byte order).
func (r *Repository) FindDepartments(ctx context.Context) ([]models.Department, error) {
	defer r.observe("find_departments")()

	query := `
		SELECT id::text, name, description, manager, budget, location, employee_count, created_at, updated_at
		FROM departments
		ORDER BY name COLLATE "C" ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", translatePgError(err))
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		var dept models.Department
		err = rows.Scan(
			&dept.ID,
			&dept.Name,
			&dept.Description,
			&dept.Manager,
			&dept.Budget,
			&dept.Location,
			&dept.EmployeeCount,
			&dept.CreatedAt,
			&dept.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", translatePgError(err))
	}

	return departments, nil
}

// SetDepartmentEmployeeCount overwrites the cached employee count of the named department.
// A missing department is not an error.
func (r *Repository) SetDepartmentEmployeeCount(ctx context.Context, name string, count int64) error {
	defer r.observe("set_department_employee_count")()

	query := `
		UPDATE departments
		SET employee_count = $2, updated_at = CURRENT_TIMESTAMP
		WHERE name = $1;
	`

	if _, err := r.db.Exec(ctx, query, name, count); err != nil {
		return fmt.Errorf("failed to update employee count of department '%s': %w", name, translatePgError(err))
	}

	return nil
}
