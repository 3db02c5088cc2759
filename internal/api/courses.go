package api

import (
	"encoding/json"
	"net/http"

	"zenith-hr/internal/hr"
)

type addCourseRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      int    `json:"duration"` // minutes
	Category      string `json:"category"`
	TotalCapacity int    `json:"totalCapacity"`
}

type enrollRequest struct {
	CourseID string `json:"course_id"`
}

type courseView struct {
	hr.Course
	Progress float64 `json:"progress"`
}

// CoursesHandler lists and adds learning catalog courses
// @Summary List or add courses
// @Description GET lists courses with their enrollment fill ratio. POST adds a course with zero enrollment.
// @Tags lms
// @Accept json
// @Produce json
// @Param course body addCourseRequest false "New course (POST)"
// @Success 200 {array} courseView
// @Success 201 {array} hr.Course
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /courses [get]
func (a *API) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		courses := a.courses.Items()
		views := make([]courseView, 0, len(courses))
		for _, course := range courses {
			views = append(views, courseView{
				Course:   course,
				Progress: hr.ProgressRatio(course.EnrolledCount, course.TotalCapacity),
			})
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		a.addCourse(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) addCourse(w http.ResponseWriter, r *http.Request) {
	var req addCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Description == "" {
		http.Error(w, "title and description are required", http.StatusBadRequest)
		return
	}
	if req.Duration <= 0 || req.TotalCapacity <= 0 {
		http.Error(w, "duration and totalCapacity must be positive", http.StatusBadRequest)
		return
	}

	category, err := hr.ParseCourseCategory(req.Category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := a.courses.Append(hr.Course{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		Category:      category,
		Thumbnail:     placeholderAvatar(),
		EnrolledCount: 0,
		TotalCapacity: req.TotalCapacity,
	})
	if err != nil {
		http.Error(w, "failed to save course", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

// EnrollHandler enrolls one participant in a course
// @Summary Enroll in course
// @Description Increments the course's enrolled count. A full course rejects the enrollment.
// @Tags lms
// @Accept json
// @Produce json
// @Param enrollment body enrollRequest true "Enrollment"
// @Success 200 {object} courseView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /courses/enroll [post]
func (a *API) EnrollHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	course, ok := a.courses.Find(func(c hr.Course) bool { return c.ID == req.CourseID })
	if !ok {
		http.Error(w, "course not found", http.StatusNotFound)
		return
	}
	if course.EnrolledCount >= course.TotalCapacity {
		http.Error(w, "course is full", http.StatusConflict)
		return
	}

	if _, err := a.courses.UpdateWhere(
		func(c hr.Course) bool { return c.ID == req.CourseID },
		func(c hr.Course) hr.Course {
			c.EnrolledCount++
			return c
		},
	); err != nil {
		http.Error(w, "failed to save course", http.StatusInternalServerError)
		return
	}

	updated, _ := a.courses.Find(func(c hr.Course) bool { return c.ID == req.CourseID })
	writeJSON(w, http.StatusOK, courseView{
		Course:   updated,
		Progress: hr.ProgressRatio(updated.EnrolledCount, updated.TotalCapacity),
	})
}
