package api

import (
	"context"
	"log"
	"time"

	"zenith-hr/internal/hr"
)

// SummaryJob represents a background resume summarization task
type SummaryJob struct {
	CandidateID string
	ResumeText  string
	Timestamp   time.Time
}

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	go a.summaryWorker()

	log.Println("[BackgroundJobs] Workers started (resume summaries)")
}

// summaryWorker processes resume summary jobs from the queue
func (a *API) summaryWorker() {
	log.Println("[SummaryWorker] Started")

	for job := range a.summaryQueue {
		log.Printf("[SummaryWorker] Summarizing resume for candidate %s (%d bytes)", job.CandidateID, len(job.ResumeText))

		ctx := context.Background()

		if a.summarizer == nil {
			log.Printf("[SummaryWorker] Summarizer not available, skipping candidate %s", job.CandidateID)
			continue
		}

		summary, err := a.summarizer.Summarize(ctx, job.ResumeText)
		if err != nil {
			// The upload already succeeded; a failed summary is logged and
			// dropped, the recruiter can re-upload to retry.
			log.Printf("[SummaryWorker] Summary failed for candidate %s: %v", job.CandidateID, err)
			continue
		}

		if _, err := a.board.Candidates().UpdateWhere(
			func(c hr.Candidate) bool { return c.ID == job.CandidateID },
			func(c hr.Candidate) hr.Candidate {
				c.ResumeSummary = summary
				return c
			},
		); err != nil {
			log.Printf("[SummaryWorker] Failed to save summary for candidate %s: %v", job.CandidateID, err)
			continue
		}

		log.Printf("[SummaryWorker] Candidate %s summarized (took %v)", job.CandidateID, time.Since(job.Timestamp))
	}
}

// queueSummaryJob adds a new summary job to the background queue
func (a *API) queueSummaryJob(candidateID, resumeText string) {
	job := SummaryJob{
		CandidateID: candidateID,
		ResumeText:  resumeText,
		Timestamp:   time.Now(),
	}

	// Non-blocking send
	select {
	case a.summaryQueue <- job:
		log.Printf("[BackgroundJobs] Queued summary job for candidate %s", candidateID)
	default:
		log.Printf("[BackgroundJobs] Queue full! Dropping summary job for candidate %s", candidateID)
	}
}
