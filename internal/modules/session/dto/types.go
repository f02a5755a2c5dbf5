package dto

import "time"

type BeginInput struct {
	Type    string
	Minutes int
}

type BeginOutput struct {
	Type          string
	Minutes       int
	SessionNumber int
}

type FinishInput struct {
	Type          string
	Minutes       int
	SessionNumber int
	Completed     bool
}

type FinishOutput struct {
	Record    RecordOutput
	Saved     bool
	SaveError string
	FollowUp  string
}

type RunInput struct {
	Type    string
	Minutes int
}

type RunOutput struct {
	Runs []FinishOutput
}

type RecordOutput struct {
	Position      int
	Timestamp     time.Time
	TimestampText string
	Type          string
	Duration      int
	Completed     bool
	SessionNumber int
}

type StatsOutput struct {
	TotalSessions     int    `json:"total_sessions" yaml:"total_sessions"`
	CompletedSessions int    `json:"completed_sessions" yaml:"completed_sessions"`
	TotalMinutes      int    `json:"total_minutes" yaml:"total_minutes"`
	WorkSessions      int    `json:"work_sessions" yaml:"work_sessions"`
	BreakSessions     int    `json:"break_sessions" yaml:"break_sessions"`
	LogStatus         string `json:"log_status" yaml:"log_status"`
	LogError          string `json:"log_error,omitempty" yaml:"log_error,omitempty"`
}

type HistoryInput struct {
	Type          string
	CompletedOnly bool
	Limit         int
}

type ReindexOutput struct {
	Indexed   int
	LogStatus string
}
