package models

import "time"

// AthleteSummary is the reduced athlete shape embedded in leaderboard rows.
type AthleteSummary struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	State     string `json:"state"`
	District  string `json:"district"`
}

type LeaderboardEntry struct {
	Rank      int            `json:"rank"`
	Athlete   AthleteSummary `json:"athlete"`
	Value     float64        `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
}

type TestInfo struct {
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Direction Direction `json:"direction"`
}

// LeaderboardResponse carries the truncated top-N ranking for one test.
// Total is the length of the truncated list (kept for API compatibility);
// TotalEligible is the full count of verified performances for the test.
type LeaderboardResponse struct {
	Entries       []LeaderboardEntry `json:"leaderboard"`
	Total         int                `json:"total"`
	TotalEligible int                `json:"total_eligible"`
	TestInfo      TestInfo           `json:"test_info"`
}

// PersonalBest is an athlete's best verified result for one test, under
// that test's direction of improvement.
type PersonalBest struct {
	TestName   string    `json:"test_name"`
	BestValue  float64   `json:"best_value"`
	Unit       string    `json:"unit"`
	AchievedAt time.Time `json:"achieved_at"`
}

type RecentPerformance struct {
	TestName  string            `json:"test_name"`
	Value     float64           `json:"value"`
	Status    PerformanceStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// AthleteStatsResponse is the on-demand aggregation snapshot returned to the
// caller and written through to the AthleteStats cache row.
type AthleteStatsResponse struct {
	TotalPerformances    int                 `json:"total_performances"`
	VerifiedPerformances int                 `json:"verified_performances"`
	PendingPerformances  int                 `json:"pending_performances"`
	FlaggedPerformances  int                 `json:"flagged_performances"`
	TotalBadges          int                 `json:"total_badges"`
	TotalPoints          int                 `json:"total_points"`
	CurrentRank          int                 `json:"current_rank"`
	PersonalBests        []PersonalBest      `json:"personal_bests"`
	RecentPerformances   []RecentPerformance `json:"recent_performances"`
}

// DashboardCounts backs the admin dashboard.
type DashboardCounts struct {
	TotalAthletes        int64 `json:"total_athletes"`
	TotalTests           int64 `json:"total_tests"`
	TotalBadges          int64 `json:"total_badges"`
	TotalPerformances    int64 `json:"total_performances"`
	PendingPerformances  int64 `json:"pending_performances"`
	VerifiedPerformances int64 `json:"verified_performances"`
	FlaggedPerformances  int64 `json:"flagged_performances"`
}
