// Patches previously seeded jobs: strips the "#n" suffix from titles and
// backfills salary ranges by base title. Companies are selected by
// SEED_COMPANY1_SLUG and SEED_COMPANY2_SLUG.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type titleSalary struct {
	Min, Max int64
	Str      string
}

// Annual INR bands per title, mirrored in cmd/seed-jobs.
var salaryByTitle = map[string]titleSalary{
	"Software Engineer":             {1200000, 1800000, "₹12L – ₹18L per year"},
	"Senior Backend Engineer":       {2200000, 3200000, "₹22L – ₹32L per year"},
	"Frontend Engineer":             {1100000, 1700000, "₹11L – ₹17L per year"},
	"Product Designer":              {1000000, 1600000, "₹10L – ₹16L per year"},
	"Talent Acquisition Specialist": {800000, 1400000, "₹8L – ₹14L per year"},
	"Data Analyst":                  {900000, 1500000, "₹9L – ₹15L per year"},
	"Customer Success Manager":      {800000, 1400000, "₹8L – ₹14L per year"},
	"Marketing Manager":             {900000, 1600000, "₹9L – ₹16L per year"},
}

func getEnv(name string) string {
	v := os.Getenv(name)
	if v == "" {
		fmt.Fprintf(os.Stderr, "Missing required environment variable: %s\n", name)
		os.Exit(1)
	}
	return v
}

func patchCompanyJobs(ctx context.Context, r repo.Repo, slug string) {
	company, err := r.GetCompanyBySlug(ctx, slug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to find company with slug %q: %v\n", slug, err)
		os.Exit(1)
	}

	jobs, err := r.ListJobsByCompany(ctx, company.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching jobs for company %s: %v\n", slug, err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Printf("No jobs found for %s, nothing to patch.\n", slug)
		return
	}

	for _, job := range jobs {
		baseTitle := strings.TrimSpace(strings.SplitN(job.Title, "#", 2)[0])
		patch := repo.JobPatch{Title: &baseTitle}
		if s, ok := salaryByTitle[baseTitle]; ok {
			min, max, str := s.Min, s.Max, s.Str
			currency := "INR"
			period := models.PeriodYearly
			patch.SalaryMin = &min
			patch.SalaryMax = &max
			patch.SalaryCurrency = &currency
			patch.SalaryPeriod = &period
			patch.SalaryRangeString = &str
		} else {
			patch.ClearSalary = true
		}
		if _, err := r.UpdateJob(ctx, company.ID, job.ID, patch); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating job %s for company %s: %v\n", job.ID, slug, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Patched %d jobs for %s\n", len(jobs), slug)
}

func main() {
	_ = godotenv.Load()

	databaseURL := getEnv("DATABASE_URL")
	company1Slug := getEnv("SEED_COMPANY1_SLUG")
	company2Slug := getEnv("SEED_COMPANY2_SLUG")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	r := repo.New(pool)
	patchCompanyJobs(ctx, r, company1Slug)
	patchCompanyJobs(ctx, r, company2Slug)
	fmt.Println("Job titles and salaries updated successfully.")
}
