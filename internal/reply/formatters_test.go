package reply

import (
	"strings"
	"testing"

	"github.com/careerlink/assistant/internal/jobs"
)

func floatPtr(v float64) *float64 { return &v }

func TestFormatJobsEmptyListReturnsSentinel(t *testing.T) {
	t.Parallel()

	if got := FormatJobs(nil, 5); got != NoJobsFound {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestFormatJobsRespectsMaxCount(t *testing.T) {
	t.Parallel()

	items := []*jobs.Job{
		{Title: "Go Engineer", CompanyName: "TechCorp", Location: "Berlin", Salary: &jobs.SalaryRange{Min: 70000, Max: 90000, Currency: "EUR"}},
		{Title: "Designer", CompanyName: "PixelWorks", Location: "Remote"},
		{Title: "Analyst", CompanyName: "DataHouse", Location: "Hamburg"},
	}

	got := FormatJobs(items, 2)

	if strings.Count(got, "\n\n") != 1 {
		t.Fatalf("expected exactly 2 entries, got: %q", got)
	}
	for _, want := range []string{"Go Engineer", "TechCorp", "Designer", "PixelWorks"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q: %q", want, got)
		}
	}
	if strings.Contains(got, "Analyst") {
		t.Fatalf("third job should be cut off: %q", got)
	}
	if !strings.Contains(got, "70000-90000 EUR") {
		t.Fatalf("expected salary range rendered: %q", got)
	}
}

func TestFormatJobsMissingFieldsDegrade(t *testing.T) {
	t.Parallel()

	got := FormatJobs([]*jobs.Job{{}}, 5)

	for _, want := range []string{"Job Title", "Company", "Location TBD", "Competitive"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected placeholder %q in %q", want, got)
		}
	}
}

func TestFormatJobsMissingCurrencyDefaults(t *testing.T) {
	t.Parallel()

	got := FormatJobs([]*jobs.Job{
		{Title: "Analyst", CompanyName: "DataHouse", Salary: &jobs.SalaryRange{Min: 40000, Max: 50000}},
	}, 1)

	if !strings.Contains(got, "40000-50000 USD") {
		t.Fatalf("expected default currency, got %q", got)
	}
}

func TestFormatCompanies(t *testing.T) {
	t.Parallel()

	got := FormatCompanies([]*jobs.Company{{Name: "TechCorp", Industry: "Technology"}}, 5)

	if !strings.Contains(got, "TechCorp") || !strings.Contains(got, "Technology") {
		t.Fatalf("expected name and industry, got %q", got)
	}
}

func TestFormatCompaniesNestedRecord(t *testing.T) {
	t.Parallel()

	record := &jobs.Company{Company: &jobs.Company{Name: "PixelWorks", Industry: "Design"}}
	got := FormatCompanies([]*jobs.Company{record}, 5)

	if !strings.Contains(got, "PixelWorks") || !strings.Contains(got, "Design") {
		t.Fatalf("expected nested fields resolved, got %q", got)
	}
}

func TestFormatCompaniesEmpty(t *testing.T) {
	t.Parallel()

	if got := FormatCompanies(nil, 5); got != NoCompaniesFound {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestFormatFieldAggregates(t *testing.T) {
	t.Parallel()

	items := []*jobs.FieldAggregate{
		{Field: "Technology", AvgSalary: floatPtr(72000), MaxSalary: floatPtr(120000), Openings: 42},
		{Field: "Design"},
	}

	got := FormatFieldAggregates(items, 5)

	if !strings.Contains(got, "1. Technology: avg 72000, max 120000 (42 openings)") {
		t.Fatalf("unexpected first row: %q", got)
	}
	if !strings.Contains(got, "2. Design: avg N/A, max N/A (0 openings)") {
		t.Fatalf("expected N/A placeholders: %q", got)
	}
}

func TestFormatSalaryStats(t *testing.T) {
	t.Parallel()

	if got := FormatSalaryStats(nil); got != "" {
		t.Fatalf("expected empty string for nil stats, got %q", got)
	}
	if got := FormatSalaryStats(&jobs.SalaryStats{Max: floatPtr(90000)}); got != "" {
		t.Fatalf("expected empty string without average, got %q", got)
	}

	got := FormatSalaryStats(&jobs.SalaryStats{Average: floatPtr(55000), Max: floatPtr(90000), Currency: "EUR"})
	if got != "Average salary: 55000 EUR (max 90000 EUR)" {
		t.Fatalf("unexpected stats line: %q", got)
	}

	got = FormatSalaryStats(&jobs.SalaryStats{Average: floatPtr(55000)})
	if got != "Average salary: 55000 USD" {
		t.Fatalf("expected default currency, got %q", got)
	}
}
