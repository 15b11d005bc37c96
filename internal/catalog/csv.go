package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Required dataset columns. Header order is not significant.
var requiredColumns = []string{
	"Job_Title", "Industry", "Experience_Level", "Job_Type", "Location", "Salary", "Skills",
}

// LoadCSV reads the job dataset from a CSV file on disk.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses the job dataset from CSV. The header must contain every
// required column. Non-numeric salary cells become missing values; they are
// counted and reported in one summary line rather than logged per row.
func ReadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("catalog missing required column %q", col)
		}
	}

	cat := &Catalog{}
	badSalaries := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", line, err)
		}

		job := Job{
			Title:           record[idx["Job_Title"]],
			Industry:        record[idx["Industry"]],
			ExperienceLevel: record[idx["Experience_Level"]],
			JobType:         record[idx["Job_Type"]],
			Location:        record[idx["Location"]],
			Skills:          record[idx["Skills"]],
		}
		raw := strings.TrimSpace(record[idx["Salary"]])
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			job.Salary = Salary{Amount: amount, Valid: true}
		} else if raw != "" {
			badSalaries++
		}
		cat.Jobs = append(cat.Jobs, job)
	}

	if badSalaries > 0 {
		log.Printf("[Catalog] %d rows have non-numeric salaries, treated as missing", badSalaries)
	}
	log.Printf("[Catalog] Loaded %d jobs", len(cat.Jobs))
	return cat, nil
}
