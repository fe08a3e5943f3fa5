package jobs

import "strings"

// SearchFilters is the structured search intent extracted from a free-text
// message. Every field is optional: an absent field means the user did not
// mention the constraint, not that the constraint is zero.
type SearchFilters struct {
	Skills          []string     `json:"skills,omitempty"`
	Locations       []string     `json:"locations,omitempty"`
	JobTypes        []string     `json:"jobTypes,omitempty"`
	ExperienceLevel string       `json:"experienceLevel,omitempty"`
	SalaryRange     *SalaryRange `json:"salaryRange,omitempty"`
	Industries      []string     `json:"industries,omitempty"`
	Companies       []string     `json:"companies,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f SearchFilters) IsEmpty() bool {
	return len(f.Skills) == 0 && len(f.Locations) == 0 && len(f.JobTypes) == 0 &&
		f.ExperienceLevel == "" && f.SalaryRange == nil &&
		len(f.Industries) == 0 && len(f.Companies) == 0
}

// ApplyFilters returns the jobs matching every set constraint. Matching is
// case-insensitive containment, consistent with how the assistant matches
// keywords elsewhere.
func ApplyFilters(items []*Job, filters SearchFilters) []*Job {
	matched := make([]*Job, 0, len(items))
	for _, job := range items {
		if job == nil {
			continue
		}
		if !matchesAny(filters.Skills, job.Skills...) {
			continue
		}
		if !matchesAny(filters.Locations, job.Location) {
			continue
		}
		if !matchesAny(filters.JobTypes, job.JobType) {
			continue
		}
		if !matchesLevel(filters.ExperienceLevel, job.ExperienceLevel) {
			continue
		}
		if !matchesSalary(filters.SalaryRange, job.Salary) {
			continue
		}
		if !matchesAny(filters.Industries, job.Industry) {
			continue
		}
		if !matchesAny(filters.Companies, job.CompanyName) {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}

// matchesAny passes when no constraint is set or any wanted value appears in
// any candidate value.
func matchesAny(wanted []string, candidates ...string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, want := range wanted {
		want = strings.ToLower(strings.TrimSpace(want))
		if want == "" {
			continue
		}
		for _, candidate := range candidates {
			if strings.Contains(strings.ToLower(candidate), want) {
				return true
			}
		}
	}
	return false
}

func matchesLevel(wanted, actual string) bool {
	wanted = strings.ToLower(strings.TrimSpace(wanted))
	if wanted == "" || wanted == "any" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(actual), wanted)
}

func matchesSalary(wanted, actual *SalaryRange) bool {
	if wanted == nil {
		return true
	}
	// Postings without a disclosed salary stay in the result set; dropping
	// them would hide most of the catalog.
	if actual == nil {
		return true
	}
	if wanted.Min > 0 && actual.Max > 0 && actual.Max < wanted.Min {
		return false
	}
	if wanted.Max > 0 && actual.Min > 0 && actual.Min > wanted.Max {
		return false
	}
	return true
}
