// Package fakers generates random test data for request schemas and
// fixtures. A Fake is seeded, so a fixed seed reproduces the same sequence.
package fakers

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Fake produces random values. It is safe for concurrent use.
type Fake struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// New returns a Fake seeded with seed. A zero seed picks a time-based seed.
func New(seed int64) *Fake {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Fake{faker: gofakeit.New(seed)}
}

// Default is the shared generator used by schema constructors.
var Default = New(0)

var emailCounter atomic.Uint64

// Email returns a unique address. With a domain argument the address uses
// that domain.
func (f *Fake) Email(domain ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	user := strings.ToLower(f.faker.Username())
	host := f.faker.DomainName()
	if len(domain) > 0 && domain[0] != "" {
		host = domain[0]
	}
	// The counter keeps addresses unique across one process even when the
	// generator repeats a username.
	return fmt.Sprintf("%d.%s@%s", emailCounter.Add(1), user, host)
}

// Password returns a 12 character password of letters and digits.
func (f *Fake) Password() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Password(true, true, true, false, false, 12)
}

// LastName returns a random last name.
func (f *Fake) LastName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.LastName()
}

// FirstName returns a random first name.
func (f *Fake) FirstName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.FirstName()
}

// MiddleName returns a random middle name.
func (f *Fake) MiddleName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.MiddleName()
}

// Sentence returns a short sentence.
func (f *Fake) Sentence() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Sentence(6)
}

// Text returns a paragraph of text.
func (f *Fake) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.Paragraph(1, 3, 8, " ")
}

// UUID returns a random UUID string.
func (f *Fake) UUID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.UUID()
}

// Integer returns an integer in [start, end]. Without arguments the range
// is [1, 100].
func (f *Fake) Integer(bounds ...int) int {
	start, end := 1, 100
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	if end < start {
		start, end = end, start
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.IntRange(start, end)
}

// MaxScore returns a maximum score in [50, 100].
func (f *Fake) MaxScore() int {
	return f.Integer(50, 100)
}

// MinScore returns a minimum score in [1, 30].
func (f *Fake) MinScore() int {
	return f.Integer(1, 30)
}

// EstimatedTime returns a duration such as "4 weeks".
func (f *Fake) EstimatedTime() string {
	return fmt.Sprintf("%d weeks", f.Integer(1, 10))
}
