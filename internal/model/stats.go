package model

// UserStats is the cached statistics snapshot. It is derived from entries
// and the current goal; only LongestStreak carries history between runs.
type UserStats struct {
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	TotalIntake   float64 `json:"totalIntake"`
	AverageDaily  float64 `json:"averageDaily"`
}

// SetKey is a no-op; stats live under a fixed key.
func (s *UserStats) SetKey(string) {}

// GetKey returns the database key for the stats snapshot.
func (s *UserStats) GetKey() string {
	return KeyStats
}
