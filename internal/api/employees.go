package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"zenith-hr/internal/hr"
)

type addEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	StartDate  string `json:"startDate"` // YYYY-MM-DD
	Status     string `json:"status"`
}

// EmployeesHandler lists, searches and adds employees
// @Summary List or add employees
// @Description GET lists employees, optionally filtered by a case-insensitive search over name, position and email. POST adds a new employee.
// @Tags employees
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Param employee body addEmployeeRequest false "New employee (POST)"
// @Success 200 {array} hr.Employee
// @Success 201 {array} hr.Employee
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /employees [get]
func (a *API) EmployeesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.employees.Search(r.URL.Query().Get("q")))
	case http.MethodPost:
		a.addEmployee(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) addEmployee(w http.ResponseWriter, r *http.Request) {
	var req addEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Position == "" || req.Email == "" || req.Phone == "" {
		http.Error(w, "name, position, email and phone are required", http.StatusBadRequest)
		return
	}

	department, err := hr.ParseDepartment(req.Department)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status, err := hr.ParseEmployeeStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	snapshot, err := a.employees.Append(hr.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: department,
		Email:      req.Email,
		Phone:      req.Phone,
		StartDate:  req.StartDate,
		Avatar:     placeholderAvatar(),
		Status:     status,
	})
	if err != nil {
		http.Error(w, "failed to save employee", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

func placeholderAvatar() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/200/200", time.Now().UnixMilli())
}
