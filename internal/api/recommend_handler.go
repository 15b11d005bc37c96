package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"job-recommender/internal/catalog"
	"job-recommender/internal/embedding"
	"job-recommender/internal/recommend"
)

// RecommendRequest carries the user text and facet selections for one
// recommendation query.
type RecommendRequest struct {
	// SkillsText is typed skills input, e.g. "Python, SQL, ML".
	SkillsText string `json:"skills_text"`
	// ResumeText is extracted resume text. When both are present the
	// resume text wins.
	ResumeText string         `json:"resume_text"`
	Facets     catalog.Facets `json:"facets"`
	// TopK overrides the configured default when positive.
	TopK int `json:"top_k"`
}

// RecommendResponse is the ranked result list. NoMatch is set when the
// facet filter left nothing to rank; that is a neutral outcome, not an
// error.
type RecommendResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	NoMatch         bool                       `json:"no_match,omitempty"`
	Message         string                     `json:"message,omitempty"`
}

// RecommendHandler filters the catalog by facets and ranks the remainder
// @Summary Get job recommendations
// @Description Filter jobs by facets, rank by semantic similarity to the user text
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "User text and facet selections"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommend [post]
func (a *API) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// Resume text wins over typed skills when both are supplied.
	userText := strings.TrimSpace(req.ResumeText)
	if userText == "" {
		userText = strings.TrimSpace(req.SkillsText)
	}
	if userText == "" {
		http.Error(w, "supply skills_text or resume_text", http.StatusBadRequest)
		return
	}

	subset, err := a.catalog.Filter(req.Facets)
	if errors.Is(err, catalog.ErrNoMatch) {
		writeJSON(w, http.StatusOK, RecommendResponse{
			Recommendations: []recommend.Recommendation{},
			NoMatch:         true,
			Message:         "No jobs match the selected criteria. Try adjusting filters.",
		})
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = a.topK
	}

	recs, err := a.ranker.Rank(r.Context(), userText, subset, topK)
	if err != nil {
		if errors.Is(err, embedding.ErrEmptyInput) {
			http.Error(w, "user text is empty", http.StatusBadRequest)
			return
		}
		log.Printf("[API] Ranking failed: %v", err)
		http.Error(w, "ranking failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, RecommendResponse{Recommendations: recs})
}
