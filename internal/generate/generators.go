// Package generate produces synthetic column values from a seedable random
// stream. One Source per generation run; a Source is not safe for
// concurrent use.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// ValueFunc produces one synthetic value per call. The dynamic type is one
// of: nil, bool, int, float64, string.
type ValueFunc func() any

// Source wraps the random stream behind all value producers. The seed is
// injectable so tests and reruns are reproducible.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with the given seed. Seed 0 selects a
// time-based seed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// IntBetween returns an integer in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// FloatBetween returns a float in [lo, hi) rounded to two decimal places.
func (s *Source) FloatBetween(lo, hi float64) float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

// Bool returns true or false with equal probability.
func (s *Source) Bool() bool {
	return s.rng.Intn(2) == 0
}

// Word returns a single lowercase word.
func (s *Source) Word() string {
	return s.pick(loremWords)
}

// FirstName returns a given name.
func (s *Source) FirstName() string {
	return s.pick(firstNames)
}

// LastName returns a family name.
func (s *Source) LastName() string {
	return s.pick(lastNames)
}

// FullName returns "First Last".
func (s *Source) FullName() string {
	return s.FirstName() + " " + s.LastName()
}

// Email returns a plausible personal email address.
func (s *Source) Email() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(s.FirstName()),
		strings.ToLower(s.LastName()),
		s.rng.Intn(1000),
		s.pick(emailDomains),
	)
}

// PhoneNumber returns a US-style phone number.
func (s *Source) PhoneNumber() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d",
		200+s.rng.Intn(800), s.rng.Intn(1000), s.rng.Intn(10000))
}

// StreetAddress returns "<number> <street> <suffix>".
func (s *Source) StreetAddress() string {
	return fmt.Sprintf("%d %s %s",
		1+s.rng.Intn(9999), s.pick(streetNames), s.pick(streetSuffixes))
}

// City returns a city name.
func (s *Source) City() string {
	return s.pick(cities)
}

// Country returns a country name.
func (s *Source) Country() string {
	return s.pick(countries)
}

// PostalCode returns a five-digit zip code.
func (s *Source) PostalCode() string {
	return fmt.Sprintf("%05d", s.rng.Intn(100000))
}

// CompanyName returns "<Name> <suffix>".
func (s *Source) CompanyName() string {
	return s.pick(lastNames) + " " + s.pick(companySuffixes)
}

// Timestamp returns a random instant from the last ten years, formatted as
// a SQL datetime literal body: YYYY-MM-DD HH:MM:SS. No timezone and no
// sub-second fraction; the ISO 'T' separator trips several engines.
func (s *Source) Timestamp() string {
	const tenYears = 10 * 365 * 24 * time.Hour
	offset := time.Duration(s.rng.Int63n(int64(tenYears)))
	return time.Now().Add(-offset).Format("2006-01-02 15:04:05")
}

// MoneyAmount returns a monetary value with exactly two fractional digits.
func (s *Source) MoneyAmount() float64 {
	return s.FloatBetween(1, 10000)
}
