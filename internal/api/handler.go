package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"zenith-hr/internal/assistant"
	"zenith-hr/internal/config"
	"zenith-hr/internal/hr"
	"zenith-hr/internal/resume"
	"zenith-hr/internal/store"
)

// Store keys for the three entity collections.
const (
	keyEmployees  = "employees"
	keyCandidates = "candidates"
	keyCourses    = "courses"
)

// Summarizer condenses resume text for the recruitment board.
type Summarizer interface {
	Summarize(ctx context.Context, resumeText string) (string, error)
}

type API struct {
	employees    *hr.Collection[hr.Employee]
	board        *hr.Board
	courses      *hr.Collection[hr.Course]
	session      *assistant.Session
	resumeParser *resume.Parser
	summarizer   Summarizer      // nil when the assistant is unavailable
	summaryQueue chan SummaryJob // background queue for async resume summaries
}

func NewAPI(kv store.KV, cfg *config.Config) (*API, error) {
	employees, err := hr.LoadCollection(kv, keyEmployees, hr.SeedEmployees)
	if err != nil {
		return nil, err
	}
	candidates, err := hr.LoadCollection(kv, keyCandidates, hr.SeedCandidates)
	if err != nil {
		return nil, err
	}
	courses, err := hr.LoadCollection(kv, keyCourses, hr.SeedCourses)
	if err != nil {
		return nil, err
	}

	// The assistant degrades instead of failing startup: with no key (or a
	// broken client) every send answers with the fixed unavailable notice.
	var streamer assistant.Streamer = assistant.Unavailable{}
	var summarizer Summarizer
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI assistant disabled")
	} else {
		gemini, err := assistant.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Warning: gemini client init failed, AI assistant disabled: %v", err)
		} else {
			streamer = gemini
			summarizer = gemini
		}
	}

	api := &API{
		employees:    employees,
		board:        hr.NewBoard(candidates),
		courses:      courses,
		session:      assistant.NewSession(streamer),
		resumeParser: resume.NewParser(cfg.UploadsDir),
		summarizer:   summarizer,
		summaryQueue: make(chan SummaryJob, 16),
	}

	api.StartBackgroundWorkers()

	return api, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
