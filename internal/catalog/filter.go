package catalog

import "errors"

// All is the sentinel selection meaning "no constraint" for a facet.
// An empty selection is treated the same way.
const All = "All"

// ErrNoMatch is returned when filtering leaves no jobs. Callers surface it
// as a "try different filters" state, not a failure.
var ErrNoMatch = errors.New("no jobs match the selected criteria")

// Facets are the optional filter selections applied before ranking.
// Categorical matches are exact and case-sensitive, as stored.
type Facets struct {
	Industry        string  `json:"industry"`
	ExperienceLevel string  `json:"experience_level"`
	JobType         string  `json:"job_type"`
	Location        string  `json:"location"`
	MinSalary       float64 `json:"min_salary"`
}

// Filter returns the jobs satisfying every facet selection, preserving
// catalog order. Jobs with a missing salary fail the minimum-salary
// threshold: unparseable rows never leak past a salary constraint.
func (c *Catalog) Filter(f Facets) ([]Job, error) {
	var matched []Job
	for _, j := range c.Jobs {
		if !selected(f.Industry, j.Industry) {
			continue
		}
		if !selected(f.ExperienceLevel, j.ExperienceLevel) {
			continue
		}
		if !selected(f.JobType, j.JobType) {
			continue
		}
		if !selected(f.Location, j.Location) {
			continue
		}
		if !j.Salary.Valid || j.Salary.Amount < f.MinSalary {
			continue
		}
		matched = append(matched, j)
	}
	if len(matched) == 0 {
		return nil, ErrNoMatch
	}
	return matched, nil
}

func selected(want, have string) bool {
	return want == "" || want == All || want == have
}
