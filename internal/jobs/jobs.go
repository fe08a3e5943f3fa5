// Package jobs holds the read-only domain records the assistant renders:
// job postings, companies, and salary aggregates. The records are owned by
// the platform backend; this package only consumes already-fetched values.
package jobs

// SalaryRange describes a posted salary. Absent on postings that do not
// disclose compensation.
type SalaryRange struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type Job struct {
	ID              string       `json:"id,omitempty"`
	Title           string       `json:"title,omitempty"`
	CompanyName     string       `json:"company_name,omitempty"`
	Location        string       `json:"location,omitempty"`
	Salary          *SalaryRange `json:"salary_range,omitempty"`
	Industry        string       `json:"industry,omitempty"`
	Description     string       `json:"description,omitempty"`
	JobType         string       `json:"job_type,omitempty"`
	ExperienceLevel string       `json:"experience_level,omitempty"`
	Skills          []string     `json:"skills,omitempty"`
}

// Company may carry its fields directly or nested under a "company"
// sub-object, depending on which backend endpoint produced the record.
type Company struct {
	Name     string   `json:"name,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// FieldAggregate is a ranked salary-by-field summary row. Average and Max
// are pointers so a missing figure is distinguishable from zero.
type FieldAggregate struct {
	Field     string   `json:"field,omitempty"`
	AvgSalary *float64 `json:"avg_salary,omitempty"`
	MaxSalary *float64 `json:"max_salary,omitempty"`
	Openings  int      `json:"openings,omitempty"`
}

// SalaryStats summarizes salaries across a result set.
type SalaryStats struct {
	Average  *float64 `json:"average,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}
