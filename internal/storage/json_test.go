package storage

import (
	"errors"
	"testing"
	"time"

	"specrun/internal/config"
	"specrun/internal/domain"
	"specrun/spec"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := &config.Config{
		OutputJSONDir:  t.TempDir(),
		OutputJSONFile: "run-results.json",
	}
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := newTestStorage(t)

	results := []spec.Result{
		{Group: "FizzBuzz", Label: "three is Fizz", Outcome: spec.Passed},
		{Group: "FizzBuzz", Label: "seven is Fizz", Outcome: spec.Failed},
		{Label: "broken", Outcome: spec.Errored, Err: errors.New("boom")},
	}
	sum := spec.Summary{Total: 3, Passed: 1, Failed: 1, Errored: 1, Duration: 2 * time.Second}

	if err := st.Save(results, sum); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	rec, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if rec.Meta.TotalCases != 3 || rec.Meta.PassedCases != 1 || rec.Meta.FailedCases != 1 || rec.Meta.ErroredCases != 1 {
		t.Errorf("unexpected meta: %+v", rec.Meta)
	}
	if rec.Meta.DurationSeconds != 2 {
		t.Errorf("expected 2 seconds, got %f", rec.Meta.DurationSeconds)
	}

	// Only failed and errored cases are persisted as details
	if len(rec.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(rec.Details))
	}
	if rec.Details[0].Label != "seven is Fizz" || rec.Details[0].Outcome != "Failed" {
		t.Errorf("unexpected first detail: %+v", rec.Details[0])
	}
	if rec.Details[1].Outcome != "Errored" || rec.Details[1].Message != "boom" {
		t.Errorf("unexpected second detail: %+v", rec.Details[1])
	}
}

func TestJSONStorage_SaveRecordRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	rec, err := loadAfterSave(st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.Details[0].Reviewed {
		t.Error("expected the reviewed mark to survive the round trip")
	}
}

func loadAfterSave(st *JSONStorage) (*domain.RunRecord, error) {
	results := []spec.Result{{Label: "flaky", Outcome: spec.Failed}}
	if err := st.Save(results, spec.Summary{Total: 1, Failed: 1}); err != nil {
		return nil, err
	}
	rec, err := st.Load()
	if err != nil {
		return nil, err
	}
	rec.Details[0].Reviewed = true
	if err := st.SaveRecord(rec); err != nil {
		return nil, err
	}
	return st.Load()
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := newTestStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected an error when no run record exists")
	}
}
