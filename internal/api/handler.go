// Package api exposes the recommender over HTTP. The HTTP client is the
// presentation layer; all it supplies is facet selections, user text and a
// session ID, and all it gets back is ranked jobs, transcripts and
// bookmark lists.
package api

import (
	"encoding/json"
	"net/http"

	"job-recommender/internal/assistant"
	"job-recommender/internal/catalog"
	"job-recommender/internal/recommend"
	"job-recommender/internal/session"
)

type API struct {
	catalog   *catalog.Catalog
	ranker    *recommend.Ranker
	assistant *assistant.Assistant
	sessions  *session.Store
	topK      int
}

func NewAPI(cat *catalog.Catalog, ranker *recommend.Ranker, asst *assistant.Assistant, sessions *session.Store, topK int) *API {
	if topK <= 0 {
		topK = recommend.DefaultTopK
	}
	return &API{
		catalog:   cat,
		ranker:    ranker,
		assistant: asst,
		sessions:  sessions,
		topK:      topK,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// FacetsHandler returns the filter vocabulary discovered from the catalog
// @Summary List facet values
// @Description Distinct values per facet column plus the observed salary range
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.FacetValues
// @Router /facets [get]
func (a *API) FacetsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.catalog.FacetValues())
}
