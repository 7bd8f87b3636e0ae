package pass

import (
	"regexp"
	"testing"
	"time"
)

func TestIDIsStableAndDistinct(t *testing.T) {
	cases := map[string]int{
		"oneday":      1,
		"onemonth":    2,
		"threemonths": 3,
		"":            0,
		"OneDay":      0,
		"bogus":       0,
	}
	for key, want := range cases {
		if got := ID(key); got != want {
			t.Fatalf("ID(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"oneday":      "One Day",
		"onemonth":    "One Month",
		"threemonths": "Three Months",
		"weekly":      "Pass",
	}
	for key, want := range cases {
		if got := Label(key); got != want {
			t.Fatalf("Label(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestExpiryDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name  string
		issue time.Time
		key   string
		want  time.Time
	}{
		{"one day", day(2025, 1, 10), "oneday", day(2025, 1, 11)},
		{"one day year end", day(2025, 12, 31), "oneday", day(2026, 1, 1)},
		{"one month", day(2025, 1, 10), "onemonth", day(2025, 2, 10)},
		{"three months", day(2025, 1, 10), "threemonths", day(2025, 4, 10)},
		{"month clamps", day(2025, 1, 31), "onemonth", day(2025, 2, 28)},
		{"month clamps leap", day(2024, 1, 31), "onemonth", day(2024, 2, 29)},
		{"three months clamps", day(2025, 11, 30), "threemonths", day(2026, 2, 28)},
		{"unknown key", day(2025, 1, 10), "bogus", day(2025, 1, 10)},
	}
	for _, tc := range cases {
		if got := ExpiryDate(tc.issue, tc.key); !got.Equal(tc.want) {
			t.Fatalf("%s: got %s want %s", tc.name, got.Format(time.DateOnly), tc.want.Format(time.DateOnly))
		}
	}
}

func TestExpiryDateKeepsLocationAndClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	issue := time.Date(2025, 3, 31, 18, 45, 0, 0, loc)
	got := ExpiryDate(issue, "onemonth")
	want := time.Date(2025, 4, 30, 18, 45, 0, 0, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestGeneratePassNumber(t *testing.T) {
	re := regexp.MustCompile(`^PMPML[A-Z ]{3}[1-9][0-9]{5}$`)
	for _, area := range []string{"Kothrud", "Pune City", "pimpri-chinchwad"} {
		got := GeneratePassNumber(area)
		if !re.MatchString(got) {
			t.Fatalf("GeneratePassNumber(%q) = %q", area, got)
		}
	}
	if got := GeneratePassNumber("Kothrud"); got[:8] != "PMPMLKOT" {
		t.Fatalf("unexpected prefix %q", got)
	}
	if got := GeneratePassNumber("Ab"); got[:8] != "PMPMLAB " {
		t.Fatalf("short area should be space padded, got %q", got)
	}
}

func TestParseKindAndCatalog(t *testing.T) {
	if k, ok := ParseKind(" threemonths "); !ok || k != ThreeMonths {
		t.Fatalf("ParseKind trimmed tag failed: %q %v", k, ok)
	}
	if _, ok := ParseKind("yearly"); ok {
		t.Fatalf("yearly should not parse")
	}

	products := Catalog()
	if len(products) != 3 {
		t.Fatalf("catalog size %d", len(products))
	}
	products[0].Features[0] = "mutated"
	if p, _ := ByID(1); p.Features[0] == "mutated" {
		t.Fatalf("Catalog must return a copy")
	}
	for _, p := range products {
		if got, ok := ByID(p.ID); !ok || got.Key != p.Key {
			t.Fatalf("ByID(%d) mismatch", p.ID)
		}
		if p.Key.ID() != p.ID {
			t.Fatalf("Kind(%s).ID() = %d", p.Key, p.Key.ID())
		}
	}
}

func TestLookupsDoNotShareCatalog(t *testing.T) {
	byID, _ := ByID(1)
	byID.Features[0] = "mutated"
	byKind, _ := ByKind(OneMonth)
	byKind.Features[0] = "mutated"

	products := Catalog()
	if products[0].Features[0] == "mutated" || products[1].Features[0] == "mutated" {
		t.Fatalf("lookup result shares features with the catalog: %q / %q",
			products[0].Features[0], products[1].Features[0])
	}
	if again, _ := ByID(1); again.Features[0] != "Unlimited travel for 1 day" {
		t.Fatalf("ByID(1).Features[0] = %q", again.Features[0])
	}
}
