package generator

import (
	"sync"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/tamathecxder/randomail"
)

// Provider supplies randomized, realistic field values for synthetic records.
type Provider interface {
	FirstName() string
	LastName() string
	FullName() string
	Phone() string
	Sentence() string
	City() string
	Address() models.Address
	// DepartmentName returns a generic department name, possibly one of the canonical six.
	DepartmentName() string
	EmailDomain() string
	// RandomEmail returns a complete address unrelated to any name.
	RandomEmail() string
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// Pick returns a uniform element of options, which must not be empty.
	Pick(options []string) string
	// DateBetween returns a uniform instant in [from, to].
	DateBetween(from, to time.Time) time.Time
}

var freeEmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com"}

const sentenceWords = 8

// Faker is a Provider backed by gofakeit. It is safe for concurrent use.
type Faker struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// New returns a Faker seeded with seed; a zero seed picks a random one.
func New(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed)}
}

func (f *Faker) FirstName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.FirstName()
}

func (f *Faker) LastName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.LastName()
}

func (f *Faker) FullName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Name()
}

func (f *Faker) Phone() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Phone()
}

func (f *Faker) Sentence() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Sentence(sentenceWords)
}

func (f *Faker) City() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.City()
}

func (f *Faker) Address() models.Address {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Address{
		Street:  f.faker.Street(),
		City:    f.faker.City(),
		State:   f.faker.State(),
		ZipCode: f.faker.Zip(),
		Country: f.faker.Country(),
	}
}

func (f *Faker) DepartmentName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.ProductCategory()
}

func (f *Faker) EmailDomain() string {
	return f.Pick(freeEmailDomains)
}

func (f *Faker) RandomEmail() string {
	return randomail.GenerateRandomEmail()
}

func (f *Faker) IntRange(lo, hi int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.IntRange(lo, hi)
}

func (f *Faker) Pick(options []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return options[f.faker.IntRange(0, len(options)-1)]
}

func (f *Faker) DateBetween(from, to time.Time) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.DateRange(from, to)
}
