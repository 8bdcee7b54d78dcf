package dataset_test

import (
	"context"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/generator"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/services/dataset"
	mocks "github.com/UnknownOlympus/hestia/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubProvider returns fixed values so collisions can be forced.
type stubProvider struct {
	departmentName string
	randomEmails   []string
	next           int
}

func (p *stubProvider) FirstName() string { return "John" }
func (p *stubProvider) LastName() string { return "O'Brien" }
func (p *stubProvider) FullName() string { return "Jane Roe" }
func (p *stubProvider) Phone() string { return "555-0100" }
func (p *stubProvider) Sentence() string { return "Keeps the lights on." }
func (p *stubProvider) City() string { return "Springfield" }
func (p *stubProvider) DepartmentName() string { return p.departmentName }
func (p *stubProvider) EmailDomain() string { return "example.com" }
func (p *stubProvider) IntRange(lo, _ int) int { return lo }
func (p *stubProvider) Pick(opts []string) string { return opts[0] }

func (p *stubProvider) Address() models.Address {
	return models.Address{Street: "1 Main St", City: "Springfield"}
}

func (p *stubProvider) RandomEmail() string {
	email := p.randomEmails[p.next%len(p.randomEmails)]
	p.next++
	return email
}

func (p *stubProvider) DateBetween(_, to time.Time) time.Time {
	return to
}

type fixture struct {
	employees   *mocks.EmployeeRepoIface
	departments *mocks.DepartmentRepoIface
	cache       *mocks.Invalidator
	metrics     *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	return fixture{
		employees:   mocks.NewEmployeeRepoIface(t),
		departments: mocks.NewDepartmentRepoIface(t),
		cache:       mocks.NewInvalidator(t),
		metrics:     metrics.NewMetrics(prometheus.NewRegistry()),
	}
}

func (f fixture) seeder(provider generator.Provider, opts ...dataset.Option) *dataset.Seeder {
	opts = append([]dataset.Option{dataset.WithStatsCache(f.cache)}, opts...)
	return dataset.NewSeeder(sl.Discard(), f.employees, f.departments, provider, f.metrics, opts...)
}

// expectWrites registers a full successful seeding run and captures the inserted records.
func (f fixture) expectWrites(departments *[]models.Department, employees *[]models.Employee) {
	f.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
	f.departments.On("DeleteAllDepartments", mock.Anything).Return(nil).Once()
	f.departments.On("InsertDepartments", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { *departments = args.Get(1).([]models.Department) }).
		Return(int64(0), nil).Once()
	f.employees.On("InsertEmployees", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { *employees = args.Get(1).([]models.Employee) }).
		Return(int64(0), nil).Once()

	for _, name := range models.CanonicalDepartments() {
		department := name
		f.employees.On("CountEmployees", mock.Anything, repository.EmployeeFilter{Department: &department}).
			Return(int64(len(name)), nil).Once()
		f.departments.On("SetDepartmentEmployeeCount", mock.Anything, string(name), int64(len(name))).
			Return(nil).Once()
	}
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	var departments []models.Department
	var employees []models.Employee
	fx.expectWrites(&departments, &employees)
	fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	result, err := fx.seeder(generator.New(1)).Generate(t.Context(), dataset.Counts{Employees: 40, Departments: 8})

	require.NoError(t, err)
	assert.Equal(t, dataset.Result{EmployeesCreated: 40, DepartmentsCreated: 8}, result)

	require.Len(t, departments, 8)
	names := make(map[string]struct{}, len(departments))
	for idx, department := range departments {
		if idx < 6 {
			assert.Equal(t, string(models.CanonicalDepartments()[idx]), department.Name)
		}
		assert.NotContains(t, names, department.Name)
		names[department.Name] = struct{}{}
		assert.GreaterOrEqual(t, department.Budget, 100000.0)
		assert.LessOrEqual(t, department.Budget, 2000000.0)
		assert.Zero(t, department.EmployeeCount)
	}

	require.Len(t, employees, 40)
	emails := make(map[string]struct{}, len(employees))
	for _, employee := range employees {
		require.NoError(t, models.ValidateEmployee(employee))
		assert.NotContains(t, emails, employee.Email)
		emails[employee.Email] = struct{}{}
		assert.Contains(t, []models.Status{models.StatusActive, models.StatusInactive}, employee.Status)
		assert.GreaterOrEqual(t, employee.Salary, 30000.0)
		assert.LessOrEqual(t, employee.Salary, 150000.0)
		assert.False(t, employee.HireDate.Before(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.NotNil(t, employee.Address)
	}

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.SeedRuns.WithLabelValues("success")), 0)
	assert.InDelta(t, 40, testutil.ToFloat64(fx.metrics.RecordsSeeded.WithLabelValues("employee")), 0)
	assert.InDelta(t, 8, testutil.ToFloat64(fx.metrics.RecordsSeeded.WithLabelValues("department")), 0)
	assert.Positive(t, testutil.ToFloat64(fx.metrics.LastSuccessfulSeed))
}

func TestGenerate_ZeroCounts(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	var departments []models.Department
	var employees []models.Employee
	fx.expectWrites(&departments, &employees)
	fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	result, err := fx.seeder(generator.New(2)).Generate(t.Context(), dataset.Counts{})

	require.NoError(t, err)
	assert.Equal(t, dataset.Result{}, result)
	assert.Empty(t, departments)
	assert.Empty(t, employees)
}

func TestGenerate_EmailCollisions(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	var departments []models.Department
	var employees []models.Employee
	fx.expectWrites(&departments, &employees)
	fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	now := time.Date(2025, 3, 4, 5, 6, 7, 891234567, time.UTC)
	provider := &stubProvider{randomEmails: []string{"Random.One@Example.org", "random.two@example.org"}}
	seeder := fx.seeder(provider, dataset.WithClock(func() time.Time { return now }))

	_, err := seeder.Generate(t.Context(), dataset.Counts{Employees: 4, Departments: 1})

	require.NoError(t, err)
	require.Len(t, employees, 4)
	assert.Equal(t, "john.obrien@example.com", employees[0].Email)
	assert.Equal(t, "john.obrien1@example.com", employees[1].Email)
	assert.Equal(t, "random.one@example.org", employees[2].Email)
	assert.Equal(t, "random.two@example.org", employees[3].Email)
	assert.Equal(t, now.Truncate(time.Millisecond), employees[0].HireDate)
}

func TestGenerate_EmailCollisionsExhausted(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	provider := &stubProvider{randomEmails: []string{"same@example.org"}}

	_, err := fx.seeder(provider).Generate(t.Context(), dataset.Counts{Employees: 4})

	require.ErrorIs(t, err, models.ErrDuplicateKey)
	fx.employees.AssertNotCalled(t, "DeleteAllEmployees", mock.Anything)
	fx.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.SeedRuns.WithLabelValues("failure")), 0)
}

func TestGenerate_DepartmentNameCollisions(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	var departments []models.Department
	var employees []models.Employee
	fx.expectWrites(&departments, &employees)
	fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	provider := &stubProvider{departmentName: "IT", randomEmails: []string{"x@example.org"}}

	_, err := fx.seeder(provider).Generate(t.Context(), dataset.Counts{Departments: 8})

	require.NoError(t, err)
	require.Len(t, departments, 8)
	assert.Equal(t, "IT 7", departments[6].Name)
	assert.Equal(t, "IT 8", departments[7].Name)
}

func TestGenerate_NegativeCounts(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)

	_, err := fx.seeder(generator.New(3)).Generate(t.Context(), dataset.Counts{Employees: -1, Departments: 2})

	require.ErrorIs(t, err, dataset.ErrInvalidCount)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.SeedRuns.WithLabelValues("failure")), 0)
}

func TestGenerate_StoreFailure(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	fx.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
	fx.departments.On("DeleteAllDepartments", mock.Anything).Return(nil).Once()
	fx.departments.On("InsertDepartments", mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	fx.employees.On("InsertEmployees", mock.Anything, mock.Anything).
		Return(int64(0), models.ErrStoreUnavailable).Once()
	// the tables were already wiped, so cached figures are stale
	fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

	_, err := fx.seeder(generator.New(4)).Generate(t.Context(), dataset.Counts{Employees: 5, Departments: 2})

	require.ErrorIs(t, err, models.ErrStoreUnavailable)
	fx.employees.AssertNotCalled(t, "CountEmployees", mock.Anything, mock.Anything)
	assert.InDelta(t, 0, testutil.ToFloat64(fx.metrics.SeedRuns.WithLabelValues("success")), 0)
}

func TestGenerate_InvalidatesAfterLastWrite(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	ctx, cancel := context.WithCancel(t.Context())
	written := 0
	fx.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
	fx.departments.On("DeleteAllDepartments", mock.Anything).Return(nil).Once()
	fx.departments.On("InsertDepartments", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	fx.employees.On("InsertEmployees", mock.Anything, mock.Anything).Return(int64(3), nil).Once()
	fx.employees.On("CountEmployees", mock.Anything, mock.Anything).Return(int64(0), nil)
	fx.departments.On("SetDepartmentEmployeeCount", mock.Anything, mock.Anything, int64(0)).
		Run(func(mock.Arguments) {
			written++
			cancel()
		}).
		Return(nil)
	fx.cache.On("Invalidate", mock.Anything).
		Run(func(args mock.Arguments) {
			assert.Len(t, models.CanonicalDepartments(), written, "invalidated before the last write")
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return(nil).Once()

	_, err := fx.seeder(generator.New(4)).Generate(ctx, dataset.Counts{Employees: 3, Departments: 1})

	require.NoError(t, err)
}

func TestGenerate_CacheFailureIsIgnored(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	var departments []models.Department
	var employees []models.Employee
	fx.expectWrites(&departments, &employees)
	fx.cache.On("Invalidate", mock.Anything).Return(assert.AnError).Once()

	result, err := fx.seeder(generator.New(5)).Generate(t.Context(), dataset.Counts{Employees: 1, Departments: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, result.EmployeesCreated)
}

func TestClear(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)
		fx.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
		fx.departments.On("DeleteAllDepartments", mock.Anything).Return(nil).Once()
		fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

		require.NoError(t, fx.seeder(generator.New(6)).Clear(t.Context()))
	})

	t.Run("employee delete failure", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)
		fx.employees.On("DeleteAllEmployees", mock.Anything).Return(assert.AnError).Once()
		fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

		err := fx.seeder(generator.New(6)).Clear(t.Context())

		require.ErrorIs(t, err, assert.AnError)
		fx.departments.AssertNotCalled(t, "DeleteAllDepartments", mock.Anything)
	})

	t.Run("department delete failure", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)
		fx.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
		fx.departments.On("DeleteAllDepartments", mock.Anything).Return(assert.AnError).Once()
		fx.cache.On("Invalidate", mock.Anything).Return(nil).Once()

		err := fx.seeder(generator.New(6)).Clear(t.Context())

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("without cache", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)
		fx.employees.On("DeleteAllEmployees", mock.Anything).Return(nil).Once()
		fx.departments.On("DeleteAllDepartments", mock.Anything).Return(nil).Once()
		seeder := dataset.NewSeeder(sl.Discard(), fx.employees, fx.departments, generator.New(6), fx.metrics)

		require.NoError(t, seeder.Clear(t.Context()))
	})
}
