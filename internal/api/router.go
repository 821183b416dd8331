package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/assist"
)

// NewRouter creates the API router with all endpoints registered.
// assistClient may be nil, in which case the assist endpoints report the
// feature as unavailable.
func NewRouter(db *sql.DB, assistClient assist.Client, assistTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	locationsHandler := &LocationsHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	statsHandler := &StatsHandler{DB: db}
	assistHandler := &AssistHandler{DB: db, Client: assistClient, Timeout: assistTimeout}

	// Locations.
	mux.HandleFunc("GET /api/locations", locationsHandler.List)
	mux.HandleFunc("POST /api/locations", locationsHandler.Create)
	mux.HandleFunc("GET /api/locations/{id}", locationsHandler.Get)
	mux.HandleFunc("DELETE /api/locations/{id}", locationsHandler.Delete)

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)

	// Derived stats over the filtered view.
	mux.HandleFunc("GET /api/stats", statsHandler.Get)

	// AI assist.
	mux.HandleFunc("POST /api/assist/analyze", assistHandler.Analyze)
	mux.HandleFunc("POST /api/assist/plan", assistHandler.Plan)

	return mux
}
