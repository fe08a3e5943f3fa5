// Package reply turns resolved intents and domain records into user-facing
// text. Formatters never fail: a chat reply must always render something, so
// malformed or partially-populated records degrade to placeholder labels.
package reply

import (
	"fmt"
	"strings"

	"github.com/careerlink/assistant/internal/jobs"
)

const (
	// NoJobsFound is rendered instead of an empty section when the job list
	// is empty, so templates never display a blank block.
	NoJobsFound = "No jobs found at the moment. Try adjusting your search!"
	// NoCompaniesFound is the company-list counterpart of NoJobsFound.
	NoCompaniesFound = "No companies found at the moment."
	// NoFieldsFound is rendered when no salary aggregates are available.
	NoFieldsFound = "No salary data available yet."

	placeholderTitle    = "Job Title"
	placeholderCompany  = "Company"
	placeholderLocation = "Location TBD"
	placeholderSalary   = "Competitive"
	placeholderIndustry = "General"
	defaultCurrency     = "USD"
)

// FormatJobs renders up to maxJobs records as a numbered list.
func FormatJobs(items []*jobs.Job, maxJobs int) string {
	if len(items) == 0 {
		return NoJobsFound
	}
	if maxJobs > 0 && len(items) > maxJobs {
		items = items[:maxJobs]
	}

	var builder strings.Builder
	for i, job := range items {
		title := placeholderTitle
		company := placeholderCompany
		location := placeholderLocation

		if job != nil {
			if strings.TrimSpace(job.Title) != "" {
				title = job.Title
			}
			if strings.TrimSpace(job.CompanyName) != "" {
				company = job.CompanyName
			}
			if strings.TrimSpace(job.Location) != "" {
				location = job.Location
			}
		}

		if i > 0 {
			builder.WriteString("\n\n")
		}
		fmt.Fprintf(&builder, "%d. %s @ %s\n   %s | %s", i+1, title, company, location, formatSalaryRange(jobSalary(job)))
	}
	return builder.String()
}

func jobSalary(job *jobs.Job) *jobs.SalaryRange {
	if job == nil {
		return nil
	}
	return job.Salary
}

func formatSalaryRange(salary *jobs.SalaryRange) string {
	if salary == nil || (salary.Min == 0 && salary.Max == 0) {
		return placeholderSalary
	}

	currency := salary.Currency
	if strings.TrimSpace(currency) == "" {
		currency = defaultCurrency
	}

	switch {
	case salary.Min > 0 && salary.Max > 0:
		return fmt.Sprintf("%.0f-%.0f %s", salary.Min, salary.Max, currency)
	case salary.Min > 0:
		return fmt.Sprintf("from %.0f %s", salary.Min, currency)
	default:
		return fmt.Sprintf("up to %.0f %s", salary.Max, currency)
	}
}

// FormatCompanies renders up to maxCompanies records as a numbered list.
// Records sometimes nest their fields under a "company" sub-object; both
// shapes are handled.
func FormatCompanies(items []*jobs.Company, maxCompanies int) string {
	if len(items) == 0 {
		return NoCompaniesFound
	}
	if maxCompanies > 0 && len(items) > maxCompanies {
		items = items[:maxCompanies]
	}

	var builder strings.Builder
	for i, record := range items {
		name, industry := companyFields(record)

		if i > 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "%d. %s (%s)", i+1, name, industry)
	}
	return builder.String()
}

func companyFields(record *jobs.Company) (name, industry string) {
	name = placeholderCompany
	industry = placeholderIndustry
	if record == nil {
		return name, industry
	}

	candidate := record
	if strings.TrimSpace(candidate.Name) == "" && candidate.Company != nil {
		candidate = candidate.Company
	}

	if strings.TrimSpace(candidate.Name) != "" {
		name = candidate.Name
	}
	if strings.TrimSpace(candidate.Industry) != "" {
		industry = candidate.Industry
	}
	return name, industry
}

// FormatFieldAggregates renders ranked salary-by-field rows.
func FormatFieldAggregates(items []*jobs.FieldAggregate, maxFields int) string {
	if len(items) == 0 {
		return NoFieldsFound
	}
	if maxFields > 0 && len(items) > maxFields {
		items = items[:maxFields]
	}

	var builder strings.Builder
	for i, field := range items {
		name := placeholderIndustry
		avg := "N/A"
		max := "N/A"
		openings := 0

		if field != nil {
			if strings.TrimSpace(field.Field) != "" {
				name = field.Field
			}
			if field.AvgSalary != nil {
				avg = fmt.Sprintf("%.0f", *field.AvgSalary)
			}
			if field.MaxSalary != nil {
				max = fmt.Sprintf("%.0f", *field.MaxSalary)
			}
			openings = field.Openings
		}

		if i > 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "%d. %s: avg %s, max %s (%d openings)", i+1, name, avg, max, openings)
	}
	return builder.String()
}

// FormatSalaryStats renders a one-line salary summary. It is the only
// formatter permitted to return an empty string: no average means the
// template section should be omitted entirely.
func FormatSalaryStats(stats *jobs.SalaryStats) string {
	if stats == nil || stats.Average == nil {
		return ""
	}

	currency := stats.Currency
	if strings.TrimSpace(currency) == "" {
		currency = defaultCurrency
	}

	if stats.Max != nil {
		return fmt.Sprintf("Average salary: %.0f %s (max %.0f %s)", *stats.Average, currency, *stats.Max, currency)
	}
	return fmt.Sprintf("Average salary: %.0f %s", *stats.Average, currency)
}
