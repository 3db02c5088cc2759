package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"zenith-hr/internal/hr"
)

type addCandidateRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

type moveCandidateRequest struct {
	CandidateID string `json:"candidate_id"`
	Stage       string `json:"stage"`
}

// CandidatesHandler lists and adds recruitment candidates
// @Summary List or add candidates
// @Description GET lists all candidates. POST adds a candidate at the Applied stage with today's application date.
// @Tags recruitment
// @Accept json
// @Produce json
// @Param candidate body addCandidateRequest false "New candidate (POST)"
// @Success 200 {array} hr.Candidate
// @Success 201 {array} hr.Candidate
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /candidates [get]
func (a *API) CandidatesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.board.Candidates().Items())
	case http.MethodPost:
		a.addCandidate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) addCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Position == "" {
		http.Error(w, "name and position are required", http.StatusBadRequest)
		return
	}

	snapshot, err := a.board.Candidates().Append(hr.Candidate{
		Name:        req.Name,
		Position:    req.Position,
		Stage:       hr.StageApplied,
		AppliedDate: time.Now().Format("2006-01-02"),
		Avatar:      placeholderAvatar(),
	})
	if err != nil {
		http.Error(w, "failed to save candidate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

// BoardHandler returns the kanban board grouped by stage
// @Summary Recruitment board
// @Description Candidates grouped into the fixed pipeline columns. Every stage is present even when empty; stageOrder gives the column order.
// @Tags recruitment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /candidates/board [get]
func (a *API) BoardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stageOrder": hr.StageOrder,
		"columns":    a.board.GroupByStage(),
	})
}

// MoveCandidateHandler moves a candidate to a new pipeline stage
// @Summary Move candidate
// @Description Sets the candidate's stage; any stage is reachable from any stage. An unknown candidate id is a no-op and still returns 200.
// @Tags recruitment
// @Accept json
// @Produce json
// @Param move body moveCandidateRequest true "Stage transition"
// @Success 200 {array} hr.Candidate
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /candidates/move [post]
func (a *API) MoveCandidateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req moveCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	stage, err := hr.ParseStage(req.Stage)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := a.board.MoveToStage(req.CandidateID, stage)
	if err != nil {
		http.Error(w, "failed to save candidate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// ResumeUploadHandler attaches an uploaded resume to a candidate
// @Summary Upload candidate resume
// @Description Saves the resume file, extracts its text and queues a background AI summary for the candidate card.
// @Tags recruitment
// @Accept multipart/form-data
// @Produce json
// @Param candidate_id formData string true "Candidate ID"
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /candidates/resume [post]
func (a *API) ResumeUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	candidateID := r.FormValue("candidate_id")
	if candidateID == "" {
		http.Error(w, "candidate_id is required", http.StatusBadRequest)
		return
	}

	if _, ok := a.board.Candidates().Find(func(c hr.Candidate) bool { return c.ID == candidateID }); !ok {
		http.Error(w, "candidate not found", http.StatusNotFound)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT)", http.StatusBadRequest)
		return
	}

	parsed, err := a.resumeParser.ParseFile(header.Filename, file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to parse resume: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Resume parsed: %s (%d bytes text)", parsed.Filename, len(parsed.FullText))

	if _, err := a.board.Candidates().UpdateWhere(
		func(c hr.Candidate) bool { return c.ID == candidateID },
		func(c hr.Candidate) hr.Candidate {
			c.ResumeFile = parsed.Filename
			return c
		},
	); err != nil {
		http.Error(w, "failed to save candidate", http.StatusInternalServerError)
		return
	}

	summaryQueued := false
	if a.summarizer != nil {
		a.queueSummaryJob(candidateID, parsed.FullText)
		summaryQueued = true
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"candidate_id":   candidateID,
		"filename":       parsed.Filename,
		"text_length":    len(parsed.FullText),
		"summary_queued": summaryQueued,
	})
}
