package api

import (
	"database/sql"
	"net/http"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/stock"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/store"
)

// StatsHandler serves summary counts over the filtered item view.
type StatsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/stats. It accepts the same location/category/q
// selectors as the item listing and summarizes only the matching items.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to compute stats")
		return
	}

	locationID, category, search := filterParams(r)
	summary := stock.Summarize(stock.Filter(items, locationID, category, search))
	jsonResponse(w, http.StatusOK, summary)
}
