package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenith-hr/internal/assistant"
	"zenith-hr/internal/config"
	"zenith-hr/internal/hr"
	"zenith-hr/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	a, err := NewAPI(store.NewMemory(), &config.Config{
		UploadsDir:  t.TempDir(),
		GeminiModel: "gemini-2.5-flash",
		// No API key: the assistant degrades to the fixed fallback.
	})
	require.NoError(t, err)

	return NewRouter(a)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestEmployeesEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("lists seeded employees", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/employees", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var employees []hr.Employee
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employees))
		assert.Len(t, employees, len(hr.SeedEmployees))
	})

	t.Run("adds then finds by search", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/employees", map[string]string{
			"name":       "Quinn Vega",
			"position":   "Platform Engineer",
			"department": "Engineering",
			"email":      "quinn.v@example.com",
			"phone":      "123-456-7900",
			"startDate":  "2024-02-05",
			"status":     "Active",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		search := doJSON(t, server, http.MethodGet, "/api/employees?q=quinn+vega", nil)
		require.Equal(t, http.StatusOK, search.Code)

		var matches []hr.Employee
		require.NoError(t, json.Unmarshal(search.Body.Bytes(), &matches))
		require.Len(t, matches, 1)
		assert.Equal(t, "Quinn Vega", matches[0].Name)
		assert.NotEmpty(t, matches[0].ID)
		assert.NotEmpty(t, matches[0].Avatar)
	})

	t.Run("rejects unknown department", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/employees", map[string]string{
			"name":       "Bad Record",
			"position":   "Tester",
			"department": "Operations",
			"email":      "bad@example.com",
			"phone":      "1",
			"startDate":  "2024-02-05",
			"status":     "Active",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/employees", map[string]string{
			"name": "Only Name",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboardStats(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats dashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))

	assert.Equal(t, len(hr.SeedEmployees), stats.TotalEmployees)
	assert.Equal(t, 7, stats.ActiveCount)
	assert.Equal(t, 1, stats.OnLeaveCount)
	assert.NotEmpty(t, stats.Departments)
}

func TestRecruitmentEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("board contains every stage", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/candidates/board", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var board struct {
			StageOrder []hr.Stage                  `json:"stageOrder"`
			Columns    map[hr.Stage][]hr.Candidate `json:"columns"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
		assert.Equal(t, hr.StageOrder, board.StageOrder)
		for _, stage := range hr.StageOrder {
			_, ok := board.Columns[stage]
			assert.True(t, ok, "board missing column %s", stage)
		}
	})

	t.Run("move changes the stage", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/candidates/move", map[string]string{
			"candidate_id": "can-2",
			"stage":        "Interview",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var candidates []hr.Candidate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &candidates))
		for _, c := range candidates {
			if c.ID == "can-2" {
				assert.Equal(t, hr.StageInterview, c.Stage)
			}
		}
	})

	t.Run("unknown id is a no-op with 200", func(t *testing.T) {
		before := doJSON(t, server, http.MethodGet, "/api/candidates", nil)
		rec := doJSON(t, server, http.MethodPost, "/api/candidates/move", map[string]string{
			"candidate_id": "can-404",
			"stage":        "Hired",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, before.Body.String(), rec.Body.String())
	})

	t.Run("invalid stage is rejected", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/candidates/move", map[string]string{
			"candidate_id": "can-1",
			"stage":        "Ghosted",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("new candidates start at Applied", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/candidates", map[string]string{
			"name":     "Rosa Diaz",
			"position": "Backend Engineer",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var candidates []hr.Candidate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &candidates))
		added := candidates[len(candidates)-1]
		assert.Equal(t, "Rosa Diaz", added.Name)
		assert.Equal(t, hr.StageApplied, added.Stage)
		assert.NotEmpty(t, added.AppliedDate)
	})
}

func TestCourseEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("lists courses with progress", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/courses", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []courseView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		require.Len(t, views, len(hr.SeedCourses))
		assert.InDelta(t, 0.6, views[0].Progress, 1e-9) // 18 of 30
	})

	t.Run("enrollment fills a course then rejects", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/courses", map[string]interface{}{
			"title":         "One Seat Workshop",
			"description":   "Tiny cohort",
			"duration":      30,
			"category":      "Soft Skills",
			"totalCapacity": 1,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var courses []hr.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		added := courses[len(courses)-1]
		require.Equal(t, 0, added.EnrolledCount)

		enroll := doJSON(t, server, http.MethodPost, "/api/courses/enroll", map[string]string{"course_id": added.ID})
		require.Equal(t, http.StatusOK, enroll.Code)

		var view courseView
		require.NoError(t, json.Unmarshal(enroll.Body.Bytes(), &view))
		assert.Equal(t, 1, view.EnrolledCount)
		assert.Equal(t, 1.0, view.Progress)

		again := doJSON(t, server, http.MethodPost, "/api/courses/enroll", map[string]string{"course_id": added.ID})
		assert.Equal(t, http.StatusConflict, again.Code)
	})

	t.Run("unknown course is 404", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/courses/enroll", map[string]string{"course_id": "crs-404"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/courses", map[string]interface{}{
			"title":         "Broken",
			"description":   "Broken",
			"duration":      30,
			"category":      "Technical",
			"totalCapacity": 0,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssistantEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("history opens with the greeting", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodGet, "/api/assistant/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var history []assistant.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
		require.Len(t, history, 1)
		assert.Equal(t, assistant.RoleModel, history[0].Role)
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/assistant/message", map[string]string{"message": "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("send without a key streams the fallback", func(t *testing.T) {
		rec := doJSON(t, server, http.MethodPost, "/api/assistant/message", map[string]string{"message": "Hello"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		encoded, err := json.Marshal(assistant.UnavailableMessage)
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "data: "+string(encoded))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(rec.Body.String()), "data: [DONE]"))

		history := doJSON(t, server, http.MethodGet, "/api/assistant/history", nil)
		var messages []assistant.Message
		require.NoError(t, json.Unmarshal(history.Body.Bytes(), &messages))
		require.Len(t, messages, 3)
		assert.Equal(t, assistant.UnavailableMessage, messages[2].Text)
	})
}
