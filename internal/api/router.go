package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Employees & dashboard
	mux.HandleFunc("/api/employees", a.EmployeesHandler)
	mux.HandleFunc("/api/dashboard/stats", a.DashboardStatsHandler)

	// Recruitment pipeline
	mux.HandleFunc("/api/candidates", a.CandidatesHandler)
	mux.HandleFunc("/api/candidates/board", a.BoardHandler)
	mux.HandleFunc("/api/candidates/move", a.MoveCandidateHandler)
	mux.HandleFunc("/api/candidates/resume", a.ResumeUploadHandler)

	// Learning catalog
	mux.HandleFunc("/api/courses", a.CoursesHandler)
	mux.HandleFunc("/api/courses/enroll", a.EnrollHandler)

	// AI assistant
	mux.HandleFunc("/api/assistant/history", a.AssistantHistoryHandler)
	mux.HandleFunc("/api/assistant/message", a.AssistantMessageHandler)

	return mux
}
