package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/hestia/internal/generator"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

const (
	DefaultEmployeeCount   = 50
	DefaultDepartmentCount = 6

	minBudget = 100000
	maxBudget = 2000000
	minSalary = 30000
	maxSalary = 150000

	maxNameAttempts   = 5
	maxSuffixAttempts = 5
	maxRandomAttempts = 3
)

var ErrInvalidCount = errors.New("record counts must be non-negative")

var positions = []string{
	"Software Engineer", "Senior Developer", "Project Manager", "Data Analyst",
	"Marketing Specialist", "Sales Representative", "HR Specialist", "Accountant",
	"Team Lead", "Quality Assurance", "DevOps Engineer", "Business Analyst",
}

// three in four employees are active
var weightedStatuses = []string{
	string(models.StatusActive), string(models.StatusActive), string(models.StatusActive), string(models.StatusInactive),
}

var hireDateFrom = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// Counts is the requested size of a synthetic dataset.
type Counts struct {
	Employees   int
	Departments int
}

// Result reports how many records a seeding run created.
type Result struct {
	EmployeesCreated   int `json:"employeesCreated"`
	DepartmentsCreated int `json:"departmentsCreated"`
}

// Invalidator drops derived data that seeding or clearing makes stale.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Option func(*Seeder)

// WithStatsCache makes the seeder invalidate cache after every run that touched the store,
// including failed ones.
func WithStatsCache(cache Invalidator) Option {
	return func(s *Seeder) {
		s.cache = cache
	}
}

// WithClock replaces time.Now as the upper bound of generated hire dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

type Seeder struct {
	log         *slog.Logger
	employees   repository.EmployeeRepoIface
	departments repository.DepartmentRepoIface
	provider    generator.Provider
	metrics     *metrics.Metrics
	cache       Invalidator
	now         func() time.Time
}

func NewSeeder(
	log *slog.Logger,
	employees repository.EmployeeRepoIface,
	departments repository.DepartmentRepoIface,
	provider generator.Provider,
	metrics *metrics.Metrics,
	opts ...Option,
) *Seeder {
	seeder := &Seeder{
		log:         log,
		employees:   employees,
		departments: departments,
		provider:    provider,
		metrics:     metrics,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(seeder)
	}

	return seeder
}

func (s *Seeder) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "dataset"),
	)
}

// Generate replaces every employee and department with a freshly generated dataset.
// Nothing is rolled back if a later step fails.
func (s *Seeder) Generate(ctx context.Context, counts Counts) (Result, error) {
	const opn = "Dataset.Generate"
	log := s.initLogger(opn)

	startTime := time.Now()

	result, err := s.generate(ctx, log, counts)
	if err != nil {
		s.metrics.SeedRuns.WithLabelValues("failure").Inc()
		return Result{}, err
	}

	s.metrics.SeedRuns.WithLabelValues("success").Inc()
	s.metrics.RecordsSeeded.WithLabelValues("department").Add(float64(result.DepartmentsCreated))
	s.metrics.RecordsSeeded.WithLabelValues("employee").Add(float64(result.EmployeesCreated))
	s.metrics.LastSuccessfulSeed.SetToCurrentTime()

	log.InfoContext(ctx, "Dataset generated",
		"employees", result.EmployeesCreated,
		"departments", result.DepartmentsCreated,
		"duration", time.Since(startTime).String(),
	)

	return result, nil
}

func (s *Seeder) generate(ctx context.Context, log *slog.Logger, counts Counts) (Result, error) {
	if counts.Employees < 0 || counts.Departments < 0 {
		return Result{}, fmt.Errorf("%w: employees=%d, departments=%d",
			ErrInvalidCount, counts.Employees, counts.Departments)
	}

	// records are built before the store is touched, so a generation error leaves the data intact
	departments, err := s.buildDepartments(counts.Departments)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build departments: %w", err)
	}
	employees, err := s.buildEmployees(counts.Employees)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build employees: %w", err)
	}

	// from here on the store may change, whatever the outcome
	defer s.invalidate(ctx, log)

	// 1. Discard existing data
	if err = s.clear(ctx); err != nil {
		return Result{}, err
	}

	// 2. Departments, then employees
	if _, err = s.departments.InsertDepartments(ctx, departments); err != nil {
		return Result{}, fmt.Errorf("failed to save departments: %w", err)
	}
	log.DebugContext(ctx, "Departments saved", "count", len(departments))

	if _, err = s.employees.InsertEmployees(ctx, employees); err != nil {
		return Result{}, fmt.Errorf("failed to save employees: %w", err)
	}
	log.DebugContext(ctx, "Employees saved", "count", len(employees))

	// 3. Recompute the denormalized counts of the canonical departments only
	for _, name := range models.CanonicalDepartments() {
		department := name
		count, countErr := s.employees.CountEmployees(ctx, repository.EmployeeFilter{Department: &department})
		if countErr != nil {
			return Result{}, fmt.Errorf("failed to count employees of '%s': %w", name, countErr)
		}
		if err = s.departments.SetDepartmentEmployeeCount(ctx, string(name), count); err != nil {
			return Result{}, fmt.Errorf("failed to update employee count of '%s': %w", name, err)
		}
	}

	return Result{EmployeesCreated: len(employees), DepartmentsCreated: len(departments)}, nil
}

// Clear deletes every employee and department. Clearing an empty store succeeds.
func (s *Seeder) Clear(ctx context.Context) error {
	const opn = "Dataset.Clear"
	log := s.initLogger(opn)

	defer s.invalidate(ctx, log)

	if err := s.clear(ctx); err != nil {
		return err
	}

	log.InfoContext(ctx, "All data cleared")

	return nil
}

func (s *Seeder) clear(ctx context.Context) error {
	if err := s.employees.DeleteAllEmployees(ctx); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	if err := s.departments.DeleteAllDepartments(ctx); err != nil {
		return fmt.Errorf("failed to clear departments: %w", err)
	}

	return nil
}

func (s *Seeder) invalidate(ctx context.Context, log *slog.Logger) {
	if s.cache == nil {
		return
	}
	// a cancelled request may already have changed the store
	if err := s.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
		log.WarnContext(ctx, "Failed to invalidate statistics cache", sl.Err(err))
	}
}

func (s *Seeder) buildDepartments(count int) ([]models.Department, error) {
	canonical := models.CanonicalDepartments()
	used := make(map[string]struct{}, count)
	departments := make([]models.Department, 0, count)

	for idx := range count {
		var name string
		if idx < len(canonical) {
			name = string(canonical[idx])
		} else {
			name = s.uniqueDepartmentName(used, idx)
		}
		used[name] = struct{}{}

		department := models.Department{
			Name:          name,
			Description:   s.provider.Sentence(),
			Manager:       s.provider.FullName(),
			Budget:        float64(s.provider.IntRange(minBudget, maxBudget)),
			Location:      s.provider.City(),
			EmployeeCount: 0,
		}
		if err := models.ValidateDepartment(department); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	return departments, nil
}

// uniqueDepartmentName asks the provider for an unused name and falls back to an ordinal suffix.
func (s *Seeder) uniqueDepartmentName(used map[string]struct{}, idx int) string {
	var name string
	for range maxNameAttempts {
		name = s.provider.DepartmentName()
		if _, taken := used[name]; !taken && name != "" {
			return name
		}
	}
	if name == "" {
		name = "Department"
	}

	for suffix := idx + 1; ; suffix++ {
		candidate := fmt.Sprintf("%s %d", name, suffix)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

func (s *Seeder) buildEmployees(count int) ([]models.Employee, error) {
	canonical := models.CanonicalDepartments()
	departmentNames := make([]string, 0, len(canonical))
	for _, name := range canonical {
		departmentNames = append(departmentNames, string(name))
	}

	hireDateTo := s.now()
	emails := make(map[string]struct{}, count)
	employees := make([]models.Employee, 0, count)

	for range count {
		firstName := s.provider.FirstName()
		lastName := s.provider.LastName()

		email, err := s.uniqueEmail(emails, firstName, lastName)
		if err != nil {
			return nil, err
		}

		address := s.provider.Address()
		employee := models.Employee{
			FirstName:  firstName,
			LastName:   lastName,
			Email:      email,
			Phone:      s.provider.Phone(),
			Department: models.DepartmentName(s.provider.Pick(departmentNames)),
			Position:   s.provider.Pick(positions),
			Salary:     float64(s.provider.IntRange(minSalary, maxSalary)),
			HireDate:   s.provider.DateBetween(hireDateFrom, hireDateTo).UTC().Truncate(time.Millisecond),
			Address:    &address,
			Status:     models.Status(s.provider.Pick(weightedStatuses)),
		}
		if err = models.ValidateEmployee(employee); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, nil
}

// uniqueEmail derives a lower-cased address from the name. On a collision inside the batch it
// retries with a numeric suffix, then with fully random addresses, then gives up.
func (s *Seeder) uniqueEmail(used map[string]struct{}, firstName, lastName string) (string, error) {
	local := emailLocalPart(firstName) + "." + emailLocalPart(lastName)
	domain := s.provider.EmailDomain()
	candidate := strings.ToLower(local + "@" + domain)

	for attempt := 0; ; attempt++ {
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate, nil
		}

		switch {
		case attempt < maxSuffixAttempts:
			candidate = strings.ToLower(fmt.Sprintf("%s%d@%s", local, s.provider.IntRange(1, 999), domain))
		case attempt < maxSuffixAttempts+maxRandomAttempts:
			candidate = strings.ToLower(s.provider.RandomEmail())
		default:
			return "", fmt.Errorf("%w: no unique email for %s %s", models.ErrDuplicateKey, firstName, lastName)
		}
	}
}

func emailLocalPart(name string) string {
	local := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, name)
	if local == "" {
		return "user"
	}

	return local
}
