package repository

import (
	"context"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// observe starts a DBQueryDuration measurement; call the returned func when the query is done.
func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()
	return func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(duration)
	}
}

// EmployeeFilter narrows employee queries by exact-match equality. Nil fields are unconstrained.
// Limit is only applied by FindEmployees; zero means no limit.
type EmployeeFilter struct {
	Department *models.DepartmentName
	Status     *models.Status
	Limit      int
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	InsertEmployees(ctx context.Context, employees []models.Employee) (int64, error)
	DeleteAllEmployees(ctx context.Context) error
	FindEmployees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
	CountEmployees(ctx context.Context, filter EmployeeFilter) (int64, error)
	EmployeeStatsByDepartment(ctx context.Context) ([]models.DepartmentStat, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// DepartmentRepoIface represents the interface for interacting with department data in the repository.
type DepartmentRepoIface interface {
	InsertDepartments(ctx context.Context, departments []models.Department) (int64, error)
	DeleteAllDepartments(ctx context.Context) error
	FindDepartments(ctx context.Context) ([]models.Department, error)
	SetDepartmentEmployeeCount(ctx context.Context, name string, count int64) error
}

func NewDepartmentRepository(db Database, metrics *metrics.Metrics) DepartmentRepoIface {
	return &Repository{db: db, metrics: metrics}
}
