package domain

type Stats struct {
	TotalSessions     int `json:"total_sessions" yaml:"total_sessions"`
	CompletedSessions int `json:"completed_sessions" yaml:"completed_sessions"`
	TotalMinutes      int `json:"total_minutes" yaml:"total_minutes"`
	WorkSessions      int `json:"work_sessions" yaml:"work_sessions"`
	BreakSessions     int `json:"break_sessions" yaml:"break_sessions"`
}

// Aggregate scans every record once. Only completed records count towards
// minutes and per-type totals.
func Aggregate(records []Record) Stats {
	stats := Stats{TotalSessions: len(records)}
	for _, r := range records {
		if !r.Completed {
			continue
		}
		stats.CompletedSessions++
		stats.TotalMinutes += r.Duration
		if r.Type.IsWork() {
			stats.WorkSessions++
		}
		if r.Type.IsBreak() {
			stats.BreakSessions++
		}
	}
	return stats
}
