package accounting

import "time"

// CurrentStreak walks backward from today and counts consecutive days
// whose total meets target. Today is evaluated first, so a day still in
// progress that is short of target yields zero. The walk stops after
// maxDays.
func CurrentStreak(totals map[string]float64, target float64, today time.Time, maxDays int) int {
	day := StartOfDay(today.In(time.Local))
	streak := 0
	for i := 0; i < maxDays; i++ {
		if totals[DayKey(day)] < target {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// AverageDaily returns the mean of the non-empty daily totals within the
// window of days ending today (today plus window-1 earlier days).
func AverageDaily(totals map[string]float64, today time.Time, window int) float64 {
	day := StartOfDay(today.In(time.Local))
	var sum float64
	n := 0
	for i := 0; i < window; i++ {
		if total, ok := totals[DayKey(day)]; ok && total > 0 {
			sum += total
			n++
		}
		day = day.AddDate(0, 0, -1)
	}
	if n == 0 {
		return 0
	}
	return Round2(sum / float64(n))
}

// SumAll adds up every daily total.
func SumAll(totals map[string]float64) float64 {
	var sum float64
	for _, v := range totals {
		sum += v
	}
	return sum
}
