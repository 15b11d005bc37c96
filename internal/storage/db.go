// Package storage loads the job catalog from Postgres, for deployments
// that keep the dataset in a table instead of a CSV file.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"job-recommender/internal/catalog"
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// LoadJobs reads the whole jobs table in insertion order. NULL salaries
// load as missing, same as non-numeric CSV cells.
func (db *DB) LoadJobs(ctx context.Context) (*catalog.Catalog, error) {
	query := `SELECT job_title, industry, experience_level, job_type, location, salary, skills
              FROM jobs
              ORDER BY id`

	rows, err := db.connection.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	cat := &catalog.Catalog{}
	missingSalaries := 0
	for rows.Next() {
		var job catalog.Job
		var salary sql.NullFloat64
		if err := rows.Scan(&job.Title, &job.Industry, &job.ExperienceLevel,
			&job.JobType, &job.Location, &salary, &job.Skills); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		if salary.Valid {
			job.Salary = catalog.Salary{Amount: salary.Float64, Valid: true}
		} else {
			missingSalaries++
		}
		cat.Jobs = append(cat.Jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read job rows: %w", err)
	}

	if missingSalaries > 0 {
		log.Printf("[Storage] %d jobs have NULL salaries, treated as missing", missingSalaries)
	}
	log.Printf("[Storage] Loaded %d jobs from database", len(cat.Jobs))
	return cat, nil
}
