package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textsift/textsift/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"` // optional top-K truncation, 0 means all
}

// SearchResponse is the JSON shape returned to clients. Hits may be a
// truncated view of the full ranking; Total always reflects the whole corpus.
type SearchResponse struct {
	Hits    []services.Hit `json:"hits"`
	Total   int            `json:"total"`
	Took    int64          `json:"took"`
	QueryId string         `json:"query_id"`
}

// SearchHandler handles search requests against the loaded index.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}
	if req.Limit < 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Limit must not be negative")
		return
	}

	startTime := time.Now()
	result, err := api.accessor.Search(req.Query)
	if err != nil {
		api.countSearch("error")
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Search failed: "+err.Error())
		return
	}
	api.observeSearch(time.Since(startTime), len(result.Hits))

	hits := result.Hits
	if req.Limit > 0 && len(hits) > req.Limit {
		hits = hits[:req.Limit]
	}

	c.JSON(http.StatusOK, SearchResponse{
		Hits:    hits,
		Total:   result.Total,
		Took:    result.Took,
		QueryId: result.QueryId,
	})
}

func (api *API) countSearch(outcome string) {
	if api.metrics != nil {
		api.metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	}
}

func (api *API) observeSearch(elapsed time.Duration, results int) {
	if api.metrics == nil {
		return
	}
	api.metrics.SearchesTotal.WithLabelValues("ok").Inc()
	api.metrics.SearchLatency.Observe(elapsed.Seconds())
	api.metrics.SearchResultsCount.Observe(float64(results))
}
