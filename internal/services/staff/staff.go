package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/cache"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

const DefaultLimit = 50

// EmployeeQuery filters an employee listing. Empty strings leave a field unconstrained;
// a non-positive Limit means DefaultLimit.
type EmployeeQuery struct {
	Department string
	Status     string
	Limit      int
}

// StatsStore caches the statistics aggregate between seeding runs. Get reports the cache
// generation it looked at, also on a miss; Set must be given that generation so a result
// computed before an invalidation is never served after it.
type StatsStore interface {
	Get(ctx context.Context) (models.Stats, int64, error)
	Set(ctx context.Context, generation int64, stats models.Stats) error
}

type Option func(*Directory)

func WithStatsCache(store StatsStore) Option {
	return func(d *Directory) {
		d.cache = store
	}
}

// Directory answers the read side of the API: employee and department listings and statistics.
type Directory struct {
	log         *slog.Logger
	employees   repository.EmployeeRepoIface
	departments repository.DepartmentRepoIface
	metrics     *metrics.Metrics
	cache       StatsStore
}

func NewDirectory(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	departments repository.DepartmentRepoIface,
	metrics *metrics.Metrics,
	opts ...Option,
) *Directory {
	directory := &Directory{
		log:         log,
		employees:   employees,
		departments: departments,
		metrics:     metrics,
	}
	for _, opt := range opts {
		opt(directory)
	}

	return directory
}

func (d *Directory) initLogger(opn string) *slog.Logger {
	return d.log.With(
		slog.String("op", opn),
		slog.String("division", "staff"),
	)
}

// ListEmployees returns at most query.Limit employees, newest first. A department or status
// that does not exist matches nothing.
func (d *Directory) ListEmployees(ctx context.Context, query EmployeeQuery) ([]models.Employee, error) {
	const opn = "Staff.ListEmployees"
	log := d.initLogger(opn)

	filter := repository.EmployeeFilter{Limit: query.Limit}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	if query.Department != "" {
		department, ok := models.ParseDepartmentName(query.Department)
		if !ok {
			log.DebugContext(ctx, "Unknown department filter", "department", query.Department)
			return []models.Employee{}, nil
		}
		filter.Department = &department
	}
	if query.Status != "" {
		status, ok := models.ParseStatus(query.Status)
		if !ok {
			log.DebugContext(ctx, "Unknown status filter", "status", query.Status)
			return []models.Employee{}, nil
		}
		filter.Status = &status
	}

	employees, err := d.employees.FindEmployees(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// ListDepartments returns every department ordered by name.
func (d *Directory) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := d.departments.FindDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return departments, nil
}

// Stats returns the employee totals and the per-department aggregate, served from the cache
// when one is configured and holds an entry.
func (d *Directory) Stats(ctx context.Context) (models.Stats, error) {
	const opn = "Staff.Stats"
	log := d.initLogger(opn)

	var (
		generation int64
		cacheable  bool
	)
	if d.cache != nil {
		stats, gen, err := d.cache.Get(ctx)
		switch {
		case err == nil:
			d.metrics.StatsCache.WithLabelValues("hit").Inc()
			return stats, nil
		case errors.Is(err, cache.ErrMiss):
			d.metrics.StatsCache.WithLabelValues("miss").Inc()
			generation, cacheable = gen, true
		default:
			d.metrics.StatsCache.WithLabelValues("error").Inc()
			log.WarnContext(ctx, "Failed to read statistics cache", sl.Err(err))
		}
	}

	stats, err := d.computeStats(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	if cacheable {
		if err = d.cache.Set(ctx, generation, stats); err != nil {
			log.WarnContext(ctx, "Failed to store statistics cache", sl.Err(err))
		}
	}

	return stats, nil
}

func (d *Directory) computeStats(ctx context.Context) (models.Stats, error) {
	total, err := d.employees.CountEmployees(ctx, repository.EmployeeFilter{})
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	active := models.StatusActive
	activeCount, err := d.employees.CountEmployees(ctx, repository.EmployeeFilter{Status: &active})
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	groups, err := d.employees.EmployeeStatsByDepartment(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to aggregate employees: %w", err)
	}
	if groups == nil {
		groups = []models.DepartmentStat{}
	}

	return models.Stats{
		TotalEmployees:  total,
		ActiveEmployees: activeCount,
		DepartmentStats: groups,
	}, nil
}
