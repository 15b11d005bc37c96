package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"job-recommender/internal/session"
)

// BookmarkRequest saves one job into the session's bookmark list.
type BookmarkRequest struct {
	SessionID string `json:"session_id"`
	JobTitle  string `json:"job_title"`
	Industry  string `json:"industry"`
	Location  string `json:"location"`
	Rating    int    `json:"rating"`
}

// BookmarkHandler appends a bookmark
// @Summary Bookmark a job
// @Description Append a bookmarked job with a 1-5 rating; duplicates are kept
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param request body BookmarkRequest true "Bookmark"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /bookmarks [post]
func (a *API) BookmarkHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.addBookmark(w, r)
	case http.MethodGet:
		a.listBookmarks(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) addBookmark(w http.ResponseWriter, r *http.Request) {
	var req BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	if req.JobTitle == "" {
		http.Error(w, "job_title is required", http.StatusBadRequest)
		return
	}

	err := a.sessions.AppendBookmark(req.SessionID, session.Bookmark{
		JobTitle: req.JobTitle,
		Industry: req.Industry,
		Location: req.Location,
		Rating:   req.Rating,
	})
	if err != nil {
		if errors.Is(err, session.ErrInvalidRating) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to save bookmark", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "bookmarked"})
}

// listBookmarks returns the session's bookmarks
// @Summary List bookmarks
// @Description Bookmarked jobs for one session, in insertion order
// @Tags bookmarks
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {array} session.Bookmark
// @Failure 400 {object} map[string]string
// @Router /bookmarks [get]
func (a *API) listBookmarks(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, a.sessions.Bookmarks(sessionID))
}
