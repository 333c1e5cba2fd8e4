package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"specrun/internal/domain"
	"specrun/spec"
)

// Save writes run results to the configured JSON output file. Only
// failed and errored cases are kept in the details section.
func (s *JSONStorage) Save(results []spec.Result, sum spec.Summary) error {
	var details []domain.CaseFailure
	for _, r := range results {
		if r.Outcome == spec.Passed {
			continue
		}
		failure := domain.CaseFailure{
			Group:   r.Group,
			Label:   r.Label,
			Outcome: r.Outcome.String(),
		}
		if r.Err != nil {
			failure.Message = r.Err.Error()
		}
		details = append(details, failure)
	}

	rec := &domain.RunRecord{
		Meta: domain.RunMeta{
			TotalCases:      sum.Total,
			PassedCases:     sum.Passed,
			FailedCases:     sum.Failed,
			ErroredCases:    sum.Errored,
			Duration:        sum.Duration.String(),
			DurationSeconds: sum.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
	return s.SaveRecord(rec)
}

// Load reads the last run record from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run record: %w", err)
	}
	var rec domain.RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse run record: %w", err)
	}
	return &rec, nil
}

// SaveRecord writes the full record to the configured JSON file.
func (s *JSONStorage) SaveRecord(rec *domain.RunRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run record: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}
	return nil
}
