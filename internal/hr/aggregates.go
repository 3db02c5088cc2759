package hr

import (
	"sort"
	"time"
)

// KeyCount is one tally entry. Tallies keep first-seen key order, which the
// dashboard uses directly for chart data.
type KeyCount struct {
	Key   string `json:"name"`
	Count int    `json:"count"`
}

// CountByKey tallies the items by the given key function.
func CountByKey[T any](items []T, key func(T) string) []KeyCount {
	index := make(map[string]int)
	var counts []KeyCount
	for _, item := range items {
		k := key(item)
		if i, seen := index[k]; seen {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, KeyCount{Key: k, Count: 1})
	}
	return counts
}

// Anniversary is an employee's work anniversary projected onto the reference
// year.
type Anniversary struct {
	Employee Employee `json:"employee"`
	Date     string   `json:"date"` // YYYY-MM-DD
}

// UpcomingAnniversaries projects each employee's start date onto the
// reference year and returns those on or after the reference date, soonest
// first, truncated to limit. An anniversary that already passed this year is
// excluded until next year; there is no wraparound to next year's date.
func UpcomingAnniversaries(employees []Employee, reference time.Time, limit int) []Anniversary {
	refDay := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	var upcoming []Anniversary
	for _, emp := range employees {
		started, err := time.Parse("2006-01-02", emp.StartDate)
		if err != nil {
			continue
		}
		projected := time.Date(refDay.Year(), started.Month(), started.Day(), 0, 0, 0, 0, time.UTC)
		if projected.Before(refDay) {
			continue
		}
		upcoming = append(upcoming, Anniversary{Employee: emp, Date: projected.Format("2006-01-02")})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// HiresInMonth counts employees whose start date falls in the reference
// month.
func HiresInMonth(employees []Employee, reference time.Time) int {
	count := 0
	for _, emp := range employees {
		started, err := time.Parse("2006-01-02", emp.StartDate)
		if err != nil {
			continue
		}
		if started.Year() == reference.Year() && started.Month() == reference.Month() {
			count++
		}
	}
	return count
}

// CountByStatus counts employees in the given status.
func CountByStatus(employees []Employee, status EmployeeStatus) int {
	count := 0
	for _, emp := range employees {
		if emp.Status == status {
			count++
		}
	}
	return count
}

// ProgressRatio is the enrollment fill ratio in [0,1]. A course with no
// capacity reports 0 rather than dividing by zero.
func ProgressRatio(enrolled, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(enrolled) / float64(capacity)
}
