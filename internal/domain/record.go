package domain

// CaseFailure represents one failed or errored case from a run
type CaseFailure struct {
	Group    string `json:"group,omitempty"`
	Label    string `json:"label"`
	Outcome  string `json:"outcome"`
	Message  string `json:"message,omitempty"`
	Reviewed bool   `json:"reviewed,omitempty"` // Track if the failure is marked as reviewed
}

// RunMeta contains metadata about a suite run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	ErroredCases    int     `json:"errored_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunRecord is the complete persisted output of one suite run
type RunRecord struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
