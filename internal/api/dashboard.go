package api

import (
	"net/http"
	"time"

	"zenith-hr/internal/hr"
)

const anniversaryLimit = 5

type dashboardStats struct {
	TotalEmployees        int              `json:"totalEmployees"`
	ActiveCount           int              `json:"activeCount"`
	OnLeaveCount          int              `json:"onLeaveCount"`
	NewHiresThisMonth     int              `json:"newHiresThisMonth"`
	Departments           []hr.KeyCount    `json:"departments"`
	UpcomingAnniversaries []hr.Anniversary `json:"upcomingAnniversaries"`
}

// DashboardStatsHandler computes dashboard summary statistics
// @Summary Dashboard statistics
// @Description Headcount totals, department distribution and upcoming work anniversaries, recomputed from the current employee snapshot.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboardStats
// @Router /dashboard/stats [get]
func (a *API) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	employees := a.employees.Items()
	now := time.Now()

	writeJSON(w, http.StatusOK, dashboardStats{
		TotalEmployees:    len(employees),
		ActiveCount:       hr.CountByStatus(employees, hr.StatusActive),
		OnLeaveCount:      hr.CountByStatus(employees, hr.StatusOnLeave),
		NewHiresThisMonth: hr.HiresInMonth(employees, now),
		Departments: hr.CountByKey(employees, func(e hr.Employee) string {
			return string(e.Department)
		}),
		UpcomingAnniversaries: hr.UpcomingAnniversaries(employees, now, anniversaryLimit),
	})
}
