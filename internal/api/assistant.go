package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"zenith-hr/internal/assistant"
)

type assistantMessageRequest struct {
	Message string `json:"message"`
}

// AssistantHistoryHandler returns the chat history
// @Summary Assistant history
// @Tags assistant
// @Produce json
// @Success 200 {array} assistant.Message
// @Router /assistant/history [get]
func (a *API) AssistantHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, a.session.History())
}

// AssistantMessageHandler sends a message and streams the reply
// @Summary Send assistant message
// @Description Streams the model reply as server-sent events; each data line is a JSON-encoded text fragment, terminated by [DONE]. Blank messages are 400, a send while a reply is in flight is 409.
// @Tags assistant
// @Accept json
// @Produce text/event-stream
// @Param message body assistantMessageRequest true "User message"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /assistant/message [post]
func (a *API) AssistantMessageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req assistantMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := a.session.Send(r.Context(), req.Message, func(fragment string) {
		// Fragments can contain newlines; JSON-encode to keep one SSE data
		// line per fragment.
		encoded, err := json.Marshal(fragment)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", encoded)
		flusher.Flush()
	})

	switch err {
	case nil:
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	case assistant.ErrEmptyMessage:
		http.Error(w, "message must not be blank", http.StatusBadRequest)
	case assistant.ErrBusy:
		http.Error(w, "a reply is already in progress", http.StatusConflict)
	default:
		http.Error(w, "assistant error", http.StatusInternalServerError)
	}
}
