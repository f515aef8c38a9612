// Package careers holds the pure, in-memory derivations behind the public
// browsing views: job/company filtering and the values derived from them.
package careers

import (
	"sort"
	"strings"

	"github.com/Suchethan021/careerhub-platform/internal/models"
)

// JobFilter is a set of predicates ANDed together. Zero-value fields are
// inactive; an entirely zero JobFilter passes every job through unchanged.
type JobFilter struct {
	SearchTerm      string
	Location        string
	JobType         models.JobType
	ExperienceLevel models.ExperienceLevel
}

func (f JobFilter) active() bool {
	return f.SearchTerm != "" || f.Location != "" || f.JobType != "" || f.ExperienceLevel != ""
}

// FilterJobs returns the subsequence of jobs satisfying every active
// predicate. Free text matches case-insensitively against title and
// description; location, job type and experience level match exactly.
func FilterJobs(jobs []models.Job, f JobFilter) []models.Job {
	if !f.active() {
		return jobs
	}
	term := strings.ToLower(f.SearchTerm)
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if term != "" &&
			!strings.Contains(strings.ToLower(j.Title), term) &&
			!strings.Contains(strings.ToLower(j.Description), term) {
			continue
		}
		if f.Location != "" && (j.Location == nil || *j.Location != f.Location) {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.ExperienceLevel != "" && j.ExperienceLevel != f.ExperienceLevel {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FilterCompanies matches search case-insensitively against company names.
// An empty search term is the identity.
func FilterCompanies(companies []models.Company, search string) []models.Company {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return companies
	}
	out := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}

// Locations returns the distinct non-empty locations across jobs, sorted,
// for the location filter dropdown.
func Locations(jobs []models.Job) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, j := range jobs {
		if j.Location == nil || *j.Location == "" {
			continue
		}
		if _, ok := seen[*j.Location]; ok {
			continue
		}
		seen[*j.Location] = struct{}{}
		out = append(out, *j.Location)
	}
	sort.Strings(out)
	return out
}
