// Package catalog holds the static job dataset and its facet filtering.
package catalog

import "sort"

// Job represents one row of the job dataset.
type Job struct {
	Title           string `json:"job_title"`
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experience_level"`
	JobType         string `json:"job_type"`
	Location        string `json:"location"`
	Salary          Salary `json:"salary"`
	Skills          string `json:"skills"`
}

// Salary is an explicit value-or-missing amount. Source data contains
// non-numeric salary cells; those load as missing rather than zero so
// threshold comparisons never have to guess.
type Salary struct {
	Amount float64 `json:"amount"`
	Valid  bool    `json:"valid"`
}

// Catalog is the immutable job dataset shared by all sessions. Nothing
// writes back to it after load; ranking scores live on per-request copies.
type Catalog struct {
	Jobs []Job
}

// FacetValues are the distinct values observed per facet column, plus the
// observed salary range. Vocabularies are open: whatever the dataset
// contains is what the filters offer.
type FacetValues struct {
	Industries       []string `json:"industries"`
	ExperienceLevels []string `json:"experience_levels"`
	JobTypes         []string `json:"job_types"`
	Locations        []string `json:"locations"`
	MinSalary        float64  `json:"min_salary"`
	MaxSalary        float64  `json:"max_salary"`
}

// FacetValues scans the catalog and returns sorted distinct values for each
// categorical facet. Rows with missing salary do not contribute to the range.
func (c *Catalog) FacetValues() FacetValues {
	industries := map[string]bool{}
	levels := map[string]bool{}
	types := map[string]bool{}
	locations := map[string]bool{}

	fv := FacetValues{}
	first := true
	for _, j := range c.Jobs {
		if j.Industry != "" {
			industries[j.Industry] = true
		}
		if j.ExperienceLevel != "" {
			levels[j.ExperienceLevel] = true
		}
		if j.JobType != "" {
			types[j.JobType] = true
		}
		if j.Location != "" {
			locations[j.Location] = true
		}
		if j.Salary.Valid {
			if first || j.Salary.Amount < fv.MinSalary {
				fv.MinSalary = j.Salary.Amount
			}
			if first || j.Salary.Amount > fv.MaxSalary {
				fv.MaxSalary = j.Salary.Amount
			}
			first = false
		}
	}

	fv.Industries = sortedKeys(industries)
	fv.ExperienceLevels = sortedKeys(levels)
	fv.JobTypes = sortedKeys(types)
	fv.Locations = sortedKeys(locations)
	return fv
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
