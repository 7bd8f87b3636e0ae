// Package pass holds the fixed bus-pass catalog and every derivation keyed by pass type
// (database id, display label, expiry date, pass number).
package pass

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Kind is the pass-type tag used in URLs, requests and the session stash.
type Kind string

const (
	OneDay      Kind = "oneday"
	OneMonth    Kind = "onemonth"
	ThreeMonths Kind = "threemonths"
)

// Product is one of the three pass offerings.
type Product struct {
	ID       int      `json:"id"`
	Key      Kind     `json:"pass_key"`
	Title    string   `json:"title"`
	Label    string   `json:"label"`
	Duration string   `json:"duration"`
	Price    int64    `json:"price"`
	Features []string `json:"features"`

	days   int
	months int
}

var catalog = []Product{
	{
		ID:       1,
		Key:      OneDay,
		Title:    "1-Day Pass",
		Label:    "One Day",
		Duration: "24 hours",
		Price:    50,
		Features: []string{
			"Unlimited travel for 1 day",
			"Valid on all regular buses",
			"Cost-effective for single day travel",
			"No photo required",
		},
		days: 1,
	},
	{
		ID:       2,
		Key:      OneMonth,
		Title:    "1-Month Pass",
		Label:    "One Month",
		Duration: "30 days",
		Price:    350,
		Features: []string{
			"Unlimited travel for 1 month",
			"Valid on all regular buses",
			"Perfect for daily commuters",
			"Photo ID included",
		},
		months: 1,
	},
	{
		ID:       3,
		Key:      ThreeMonths,
		Title:    "3-Month Pass",
		Label:    "Three Months",
		Duration: "90 days",
		Price:    750,
		Features: []string{
			"Unlimited travel for 3 months",
			"Valid on all regular buses",
			"Best value for regular travelers",
			"Photo ID included",
			"25% savings compared to monthly passes",
		},
		months: 3,
	},
}

// Catalog returns a copy of the three products ordered by id.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	for i, p := range catalog {
		out[i] = p.clone()
	}
	return out
}

func (p Product) clone() Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}

// ParseKind trims surrounding whitespace, then accepts the exact lower-case tag only.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.TrimSpace(s))
	_, ok := ByKind(k)
	return k, ok
}

func ByKind(k Kind) (Product, bool) {
	for _, p := range catalog {
		if p.Key == k {
			return p.clone(), true
		}
	}
	return Product{}, false
}

func ByID(id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Product{}, false
}

func (k Kind) Valid() bool {
	_, ok := ByKind(k)
	return ok
}

// ID is the passes.id value for the kind, 0 when unknown.
func (k Kind) ID() int {
	if p, ok := ByKind(k); ok {
		return p.ID
	}
	return 0
}

func (k Kind) Label() string {
	if p, ok := ByKind(k); ok {
		return p.Label
	}
	return "Pass"
}

// ID maps a raw pass-type tag to its database id; unknown tags map to 0.
func ID(key string) int { return Kind(key).ID() }

// Label maps a raw pass-type tag to its human label; unknown tags map to "Pass".
func Label(key string) string { return Kind(key).Label() }

// ExpiryDate adds the pass duration to issue. Calendar months clamp to the last day of the
// target month, so Jan 31 + 1 month is Feb 28 (or 29). Unknown tags return issue unchanged.
func ExpiryDate(issue time.Time, key string) time.Time {
	p, ok := ByKind(Kind(key))
	if !ok {
		return issue
	}
	if p.days > 0 {
		return issue.AddDate(0, 0, p.days)
	}
	return addMonthsClamped(issue, p.months)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	first := now.With(t).BeginningOfMonth().AddDate(0, months, 0)
	last := now.With(first).EndOfMonth()

	day := t.Day()
	if day > last.Day() {
		day = last.Day()
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// GeneratePassNumber returns "PMPML" + the first three characters of area upper-cased
// (space padded when shorter) + a random six-digit number. Collisions are not checked.
func GeneratePassNumber(area string) string {
	code := []rune(strings.ToUpper(area))
	if len(code) > 3 {
		code = code[:3]
	}
	prefix := string(code) + strings.Repeat(" ", 3-len(code))
	return fmt.Sprintf("PMPML%s%06d", prefix, 100000+rand.Intn(900000))
}
