// Imports jobs for one company from scripts/sample-data/sample_data.csv.
// The company is selected by --company-id or --company-slug; --limit caps
// how many rows are inserted.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
	"github.com/Suchethan021/careerhub-platform/internal/salary"
)

func mapExperienceLevel(level string) models.ExperienceLevel {
	switch v := strings.ToLower(level); {
	case strings.HasPrefix(v, "junior"):
		return models.LevelEntry
	case strings.HasPrefix(v, "senior"):
		return models.LevelSenior
	default:
		return models.LevelMid
	}
}

func mapJobType(employmentType, jobTypeCSV string) models.JobType {
	emp := strings.ToLower(employmentType)
	jt := strings.ToLower(jobTypeCSV)
	switch {
	case strings.Contains(jt, "intern"):
		return models.JobTypeInternship
	case strings.Contains(emp, "full"):
		return models.JobTypeFullTime
	case strings.Contains(emp, "part"):
		return models.JobTypePartTime
	default:
		return models.JobTypeContract
	}
}

func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	rdr.FieldsPerRecord = -1
	records, err := rdr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func main() {
	_ = godotenv.Load()

	companyID := flag.String("company-id", "", "target company id")
	companySlug := flag.String("company-slug", "", "target company slug")
	limit := flag.Int("limit", 0, "max rows to insert (0 = all)")
	csvPath := flag.String("csv", "scripts/sample-data/sample_data.csv", "path to the sample data csv")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "Missing required environment variable: DATABASE_URL")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	r := repo.New(pool)

	var target uuid.UUID
	switch {
	case *companyID != "":
		target, err = uuid.Parse(*companyID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --company-id: %v\n", err)
			os.Exit(1)
		}
	case *companySlug != "":
		company, err := r.GetCompanyBySlug(ctx, *companySlug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find company by slug %q: %v\n", *companySlug, err)
			os.Exit(1)
		}
		target = company.ID
	default:
		fmt.Fprintln(os.Stderr, "You must provide either --company-id=<uuid> or --company-slug=<slug>.")
		os.Exit(1)
	}

	rows, err := readRows(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read csv: %v\n", err)
		os.Exit(1)
	}
	if *limit > 0 && *limit < len(rows) {
		rows = rows[:*limit]
	}

	inserted := 0
	for _, row := range rows {
		location := row["location"]
		j := models.Job{
			CompanyID: target,
			Title:     row["title"],
			Description: fmt.Sprintf("Sample seeded job for %s in the %s team. ", row["title"], row["department"]) +
				"This is placeholder text describing responsibilities, qualifications, and what success looks like in this role.",
			JobType:         mapJobType(row["employment_type"], row["job_type"]),
			ExperienceLevel: mapExperienceLevel(row["experience_level"]),
			Status:          models.StatusOpen,
		}
		if location != "" {
			j.Location = &location
		}
		if rng, ok := salary.Parse(row["salary_range"]); ok {
			rangeString := row["salary_range"]
			j.SalaryMin = &rng.Min
			j.SalaryMax = &rng.Max
			j.SalaryCurrency = &rng.Currency
			j.SalaryPeriod = &rng.Period
			j.SalaryRangeString = &rangeString
		}
		if _, err := r.CreateJob(ctx, j); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting jobs: %v\n", err)
			os.Exit(1)
		}
		inserted++
	}

	fmt.Printf("Successfully seeded %d jobs for company %s.\n", inserted, target)
}
