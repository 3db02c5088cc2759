package hr

import "fmt"

// Department is the closed set of departments an employee can belong to.
type Department string

const (
	DeptEngineering Department = "Engineering"
	DeptMarketing   Department = "Marketing"
	DeptSales       Department = "Sales"
	DeptHR          Department = "HR"
	DeptDesign      Department = "Design"
)

var Departments = []Department{DeptEngineering, DeptMarketing, DeptSales, DeptHR, DeptDesign}

func ParseDepartment(raw string) (Department, error) {
	switch Department(raw) {
	case DeptEngineering, DeptMarketing, DeptSales, DeptHR, DeptDesign:
		return Department(raw), nil
	default:
		return "", fmt.Errorf("unknown department: %q", raw)
	}
}

// EmployeeStatus is the closed set of employment states.
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "Active"
	StatusOnLeave    EmployeeStatus = "On Leave"
	StatusTerminated EmployeeStatus = "Terminated"
)

func ParseEmployeeStatus(raw string) (EmployeeStatus, error) {
	switch EmployeeStatus(raw) {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return EmployeeStatus(raw), nil
	default:
		return "", fmt.Errorf("unknown employee status: %q", raw)
	}
}

// Stage is a candidate's position in the recruitment pipeline.
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
)

// StageOrder is the fixed column order of the recruitment board.
var StageOrder = []Stage{StageApplied, StageScreening, StageInterview, StageOffer, StageHired}

func ParseStage(raw string) (Stage, error) {
	switch Stage(raw) {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired:
		return Stage(raw), nil
	default:
		return "", fmt.Errorf("unknown stage: %q", raw)
	}
}

// CourseCategory is the closed set of learning catalog categories.
type CourseCategory string

const (
	CategoryTechnical  CourseCategory = "Technical"
	CategorySoftSkills CourseCategory = "Soft Skills"
	CategoryCompliance CourseCategory = "Compliance"
	CategoryLeadership CourseCategory = "Leadership"
)

func ParseCourseCategory(raw string) (CourseCategory, error) {
	switch CourseCategory(raw) {
	case CategoryTechnical, CategorySoftSkills, CategoryCompliance, CategoryLeadership:
		return CourseCategory(raw), nil
	default:
		return "", fmt.Errorf("unknown course category: %q", raw)
	}
}

// Employee is a staff record. ID is assigned on append and never changes.
type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Position   string         `json:"position"`
	Department Department     `json:"department"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	StartDate  string         `json:"startDate"` // YYYY-MM-DD
	Avatar     string         `json:"avatar"`
	Status     EmployeeStatus `json:"status"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) WithID(id string) Employee {
	e.ID = id
	return e
}

// SearchText lists the fields employee search matches against.
func (e Employee) SearchText() []string {
	return []string{e.Name, e.Position, e.Email}
}

// Candidate is an applicant moving through the recruitment pipeline.
type Candidate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Stage         Stage  `json:"stage"`
	AppliedDate   string `json:"appliedDate"` // YYYY-MM-DD
	Avatar        string `json:"avatar"`
	ResumeFile    string `json:"resumeFile,omitempty"`
	ResumeSummary string `json:"resumeSummary,omitempty"`
}

func (c Candidate) EntityID() string { return c.ID }

func (c Candidate) WithID(id string) Candidate {
	c.ID = id
	return c
}

func (c Candidate) SearchText() []string {
	return []string{c.Name, c.Position}
}

// Course is a learning catalog entry. EnrolledCount starts at zero.
type Course struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Duration      int            `json:"duration"` // minutes
	Category      CourseCategory `json:"category"`
	Thumbnail     string         `json:"thumbnail"`
	EnrolledCount int            `json:"enrolledCount"`
	TotalCapacity int            `json:"totalCapacity"`
}

func (c Course) EntityID() string { return c.ID }

func (c Course) WithID(id string) Course {
	c.ID = id
	return c
}

func (c Course) SearchText() []string {
	return []string{c.Title, c.Description}
}
