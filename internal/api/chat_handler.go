package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"job-recommender/internal/embedding"
	"job-recommender/internal/recommend"
	"job-recommender/internal/session"
)

// ChatRequest is one user message. An empty session ID starts a new
// session; the issued ID comes back in the response.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID       string                     `json:"session_id"`
	Reply           string                     `json:"reply"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// ChatHandler answers a chat message with recommendations
// @Summary Chat with the assistant
// @Description Rank the message against the full catalog and reply with top matches; both turns are appended to the session transcript
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Session ID and message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (a *API) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		http.Error(w, "message is empty", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = a.sessions.NewSession()
	}

	reply, recs, err := a.assistant.Respond(r.Context(), message)
	if err != nil {
		if errors.Is(err, embedding.ErrEmptyInput) {
			http.Error(w, "message is empty", http.StatusBadRequest)
			return
		}
		// A failed reply must not corrupt the transcript; nothing was
		// appended yet.
		log.Printf("[API] Chat failed: %v", err)
		http.Error(w, "assistant unavailable", http.StatusInternalServerError)
		return
	}

	a.sessions.AppendChatTurn(sessionID, session.SenderUser, message)
	a.sessions.AppendChatTurn(sessionID, session.SenderAssistant, reply)

	writeJSON(w, http.StatusOK, ChatResponse{
		SessionID:       sessionID,
		Reply:           reply,
		Recommendations: recs,
	})
}

// ChatHistoryHandler replays a session transcript
// @Summary Get chat history
// @Description Chronological transcript for one session
// @Tags chat
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {array} session.ChatTurn
// @Failure 400 {object} map[string]string
// @Router /chat/history [get]
func (a *API) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a.sessions.ChatHistory(sessionID))
}

// NewSessionHandler issues a session ID
// @Summary Start a session
// @Description Issue a fresh session ID for chat and bookmarks
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]string
// @Router /session [post]
func (a *API) NewSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"session_id": a.sessions.NewSession()})
}
