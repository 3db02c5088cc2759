package hr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByKey(t *testing.T) {
	employees := []Employee{
		{ID: "e1", Department: DeptEngineering},
		{ID: "e2", Department: DeptEngineering},
		{ID: "e3", Department: DeptDesign},
		{ID: "e4", Department: DeptEngineering},
		{ID: "e5", Department: DeptDesign},
		{ID: "e6", Department: DeptSales},
		{ID: "e7", Department: DeptEngineering},
		{ID: "e8", Department: DeptDesign},
		{ID: "e9", Department: DeptEngineering},
	}

	counts := CountByKey(employees, func(e Employee) string { return string(e.Department) })

	// Tally follows first-seen key order.
	assert.Equal(t, []KeyCount{
		{Key: "Engineering", Count: 5},
		{Key: "Design", Count: 3},
		{Key: "Sales", Count: 1},
	}, counts)
}

func TestUpcomingAnniversaries(t *testing.T) {
	alice := Employee{ID: "e1", Name: "Alice", StartDate: "2021-03-15"}

	t.Run("included when projection is on or after the reference", func(t *testing.T) {
		ref := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		upcoming := UpcomingAnniversaries([]Employee{alice}, ref, 5)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "2024-03-15", upcoming[0].Date)
	})

	t.Run("excluded once the anniversary has passed this year", func(t *testing.T) {
		ref := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
		// No wraparound to next year's date.
		assert.Empty(t, UpcomingAnniversaries([]Employee{alice}, ref, 5))
	})

	t.Run("the reference day itself counts", func(t *testing.T) {
		ref := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
		assert.Len(t, UpcomingAnniversaries([]Employee{alice}, ref, 5), 1)
	})

	t.Run("sorted soonest first and truncated", func(t *testing.T) {
		employees := []Employee{
			{ID: "e1", StartDate: "2020-12-01"},
			{ID: "e2", StartDate: "2019-06-20"},
			{ID: "e3", StartDate: "2022-06-05"},
			{ID: "e4", StartDate: "2023-01-15"}, // already passed
		}
		ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

		upcoming := UpcomingAnniversaries(employees, ref, 2)
		require.Len(t, upcoming, 2)
		assert.Equal(t, "e3", upcoming[0].Employee.ID)
		assert.Equal(t, "e2", upcoming[1].Employee.ID)
	})

	t.Run("unparseable start dates are skipped", func(t *testing.T) {
		broken := Employee{ID: "e9", StartDate: "not-a-date"}
		ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, UpcomingAnniversaries([]Employee{broken}, ref, 5))
	})
}

func TestHiresInMonth(t *testing.T) {
	employees := []Employee{
		{ID: "e1", StartDate: "2024-06-03"},
		{ID: "e2", StartDate: "2024-06-28"},
		{ID: "e3", StartDate: "2024-05-30"},
		{ID: "e4", StartDate: "2023-06-10"}, // same month, wrong year
	}
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, HiresInMonth(employees, ref))
}

func TestProgressRatio(t *testing.T) {
	assert.Equal(t, 0.5, ProgressRatio(15, 30))
	assert.Equal(t, 1.0, ProgressRatio(30, 30))
	assert.Equal(t, 0.0, ProgressRatio(0, 30))
	// Zero capacity is defined, not a division fault.
	assert.Equal(t, 0.0, ProgressRatio(5, 0))
}
