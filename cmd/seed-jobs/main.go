// Seeds demo jobs for two companies so the public board has data to filter.
// Target companies are configured by slug:
//
//	SEED_COMPANY1_SLUG=acme SEED_COMPANY2_SLUG=globex DATABASE_URL=... go run ./cmd/seed-jobs
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

type jobTemplate struct {
	Title           string
	Location        string
	JobType         models.JobType
	ExperienceLevel models.ExperienceLevel
}

var baseJobs = []jobTemplate{
	{"Software Engineer", "Remote", models.JobTypeFullTime, models.LevelMid},
	{"Senior Backend Engineer", "Bangalore, India", models.JobTypeFullTime, models.LevelSenior},
	{"Frontend Engineer", "Remote", models.JobTypeFullTime, models.LevelMid},
	{"Product Designer", "Remote", models.JobTypeFullTime, models.LevelMid},
	{"Talent Acquisition Specialist", "Remote", models.JobTypeFullTime, models.LevelMid},
	{"Data Analyst", "Mumbai, India", models.JobTypeFullTime, models.LevelEntry},
	{"Customer Success Manager", "Remote", models.JobTypeFullTime, models.LevelMid},
	{"Marketing Manager", "Remote", models.JobTypeFullTime, models.LevelMid},
}

type titleSalary struct {
	Min, Max int64
	Str      string
}

// Annual INR bands per title, mirrored in cmd/fix-jobs.
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

func makeJobsForCompany(company models.Company, count int) []models.Job {
	jobs := make([]models.Job, 0, count)
	for i := 0; i < count; i++ {
		tpl := baseJobs[i%len(baseJobs)]
		location := tpl.Location

		j := models.Job{
			CompanyID: company.ID,
			Title:     tpl.Title,
			Description: fmt.Sprintf("Join %s as a %s. ", company.Name, tpl.Title) +
				"This is sample seeded data to help you test filters, cards, and job detail modals.",
			Location:        &location,
			JobType:         tpl.JobType,
			ExperienceLevel: tpl.ExperienceLevel,
			Status:          models.StatusOpen,
		}
		if s, ok := salaryByTitle[tpl.Title]; ok {
			min, max, str := s.Min, s.Max, s.Str
			currency := "INR"
			period := models.PeriodYearly
			j.SalaryMin = &min
			j.SalaryMax = &max
			j.SalaryCurrency = &currency
			j.SalaryPeriod = &period
			j.SalaryRangeString = &str
		}
		jobs = append(jobs, j)
	}
	return jobs
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

	seeded := 0
	for _, target := range []struct {
		slug  string
		count int
	}{
		{company1Slug, 40},
		{company2Slug, 30},
	} {
		company, err := r.GetCompanyBySlug(ctx, target.slug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find company with slug %q: %v\n", target.slug, err)
			os.Exit(1)
		}
		for _, j := range makeJobsForCompany(company, target.count) {
			if _, err := r.CreateJob(ctx, j); err != nil {
				fmt.Fprintf(os.Stderr, "Error inserting jobs for %s: %v\n", target.slug, err)
				os.Exit(1)
			}
		}
		fmt.Printf("- %s: %d jobs\n", company.Slug, target.count)
		seeded += target.count
	}
	fmt.Printf("Successfully seeded %d jobs across companies.\n", seeded)
}
